// Package file persists users and workout records as two JSON array files
// in an application data directory, the on-device layout of the original
// app: users.json and workout_records.json. A missing file reads as an
// empty list.
package file

import (
	"encoding/json"
	"os"
	"path/filepath"
)

const (
	usersFileName   = "users.json"
	recordsFileName = "workout_records.json"
)

// readJSONArray loads a JSON array file into out. A missing file is not an
// error; out is left as the empty slice.
func readJSONArray(path string, out any) error {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return err
	}
	return json.Unmarshal(data, out)
}

// writeJSONArray writes v as a JSON array, creating the parent directory
// if needed. Written via a temp file + rename so readers never observe a
// half-written file.
func writeJSONArray(path string, v any) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}
