package domain

// Badge is a named achievement. IsUnlocked is derived from the user's
// cumulative per-part set totals on every evaluation; it is never stored.
type Badge struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	IsUnlocked  bool   `json:"isUnlocked"`
}
