package analytics

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"alcyxob/fitstack/internal/domain"
)

// EmptySummaryMessage is returned as the report when there is nothing to
// summarize.
const EmptySummaryMessage = "아직 운동 기록이 없습니다"

// FilterLogsInRange flattens the logs of every record whose date falls in
// the inclusive [from, to] range, preserving record order. A record only
// contributes when its date parses AND both bounds are non-nil; nil bounds
// therefore select nothing rather than everything, and never panic.
// Records with unparseable dates are skipped without comment.
func FilterLogsInRange(records []domain.WorkoutRecord, from, to *time.Time) []domain.ExerciseLog {
	var logs []domain.ExerciseLog
	for _, rec := range records {
		day, ok := ParseDate(rec.Date)
		if !ok {
			continue
		}
		if from == nil || to == nil {
			continue
		}
		if day.Before(*from) || day.After(*to) {
			continue
		}
		logs = append(logs, rec.Logs...)
	}
	return logs
}

// PartTotal is the cumulative set count for one body part.
type PartTotal struct {
	Part string `json:"part"`
	Sets int    `json:"sets"`
}

// Summary holds the aggregate figures over a flat sequence of logs.
// PartTotals is ordered by first appearance of each part in the input,
// and TopPart is the stable argmax over that order.
type Summary struct {
	TotalSets  int         `json:"totalSets"`
	ActiveDays int         `json:"activeDays"`
	PartTotals []PartTotal `json:"partTotals"`
	TopPart    string      `json:"topPart"`
	Report     string      `json:"report"`
}

// Summarize computes the summary for a flat log sequence. Pure and
// deterministic: identical input always produces the identical Summary,
// including the formatted report text.
func Summarize(logs []domain.ExerciseLog) Summary {
	if len(logs) == 0 {
		return Summary{Report: EmptySummaryMessage}
	}

	var totalSets int
	dates := make(map[string]struct{})
	partIndex := make(map[string]int)
	var partTotals []PartTotal

	for _, l := range logs {
		totalSets += l.Sets
		dates[l.Date] = struct{}{}
		if i, seen := partIndex[l.Part]; seen {
			partTotals[i].Sets += l.Sets
		} else {
			partIndex[l.Part] = len(partTotals)
			partTotals = append(partTotals, PartTotal{Part: l.Part, Sets: l.Sets})
		}
	}

	// Stable argmax: first part reaching the maximum wins.
	top := partTotals[0]
	for _, pt := range partTotals[1:] {
		if pt.Sets > top.Sets {
			top = pt
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "총 운동 세트: %d세트\n", totalSets)
	fmt.Fprintf(&b, "운동한 날: %d일\n", len(dates))
	b.WriteString("부위별 세트\n")
	for _, pt := range partTotals {
		fmt.Fprintf(&b, "- %s: %d세트\n", pt.Part, pt.Sets)
	}
	fmt.Fprintf(&b, "가장 많이 운동한 부위: %s", top.Part)

	return Summary{
		TotalSets:  totalSets,
		ActiveDays: len(dates),
		PartTotals: partTotals,
		TopPart:    top.Part,
		Report:     b.String(),
	}
}

// DayTotal is the total number of sets logged on one date.
type DayTotal struct {
	Date string `json:"date"` // yyyy.MM.dd
	Sets int    `json:"sets"`
}

// DailySetTotals regroups logs into per-date set totals, ascending by date
// string. The layout is zero padded, so the lexicographic order is the
// chronological one. Every set in the input is counted exactly once.
func DailySetTotals(logs []domain.ExerciseLog) []DayTotal {
	byDate := make(map[string]int)
	for _, l := range logs {
		byDate[l.Date] += l.Sets
	}

	totals := make([]DayTotal, 0, len(byDate))
	for date, sets := range byDate {
		totals = append(totals, DayTotal{Date: date, Sets: sets})
	}
	sort.Slice(totals, func(i, j int) bool { return totals[i].Date < totals[j].Date })
	return totals
}

// TrendMessage narrates the set-count change between the first and last
// day of the daily totals. Empty input yields the empty-state message.
func TrendMessage(totals []DayTotal) string {
	if len(totals) == 0 {
		return EmptySummaryMessage
	}
	diff := totals[len(totals)-1].Sets - totals[0].Sets
	switch {
	case diff > 0:
		return fmt.Sprintf("첫날보다 %d세트 늘었어요", diff)
	case diff < 0:
		return fmt.Sprintf("첫날보다 %d세트 줄었어요", -diff)
	default:
		return "첫날과 세트 수가 같아요"
	}
}
