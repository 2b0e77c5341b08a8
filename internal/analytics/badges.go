package analytics

import "alcyxob/fitstack/internal/domain"

// BadgeRule unlocks a badge when the cumulative set total for one body
// part reaches a threshold. Rules are evaluated independently; several
// badges may unlock at once.
type BadgeRule struct {
	ID          string
	Name        string
	Description string
	Icon        string
	Part        string
	Threshold   int
}

// Unlocks reports whether the rule fires against the given per-part
// cumulative totals.
func (r BadgeRule) Unlocks(partTotals map[string]int) bool {
	return partTotals[r.Part] >= r.Threshold
}

// badgeRules is the fixed rule table, in definition order. Adding a badge
// means adding a row here; nothing else branches on badge ids.
var badgeRules = []BadgeRule{
	{
		ID:          "back_100",
		Name:        "등근육 장인",
		Description: "등 운동 100세트 완료",
		Icon:        "badge_back",
		Part:        domain.PartBack,
		Threshold:   100,
	},
	{
		ID:          "leg_50",
		Name:        "강철 하체",
		Description: "하체 운동 50세트 완료",
		Icon:        "badge_leg",
		Part:        domain.PartLegs,
		Threshold:   50,
	},
}

// BadgeRules returns the rule table in definition order.
func BadgeRules() []BadgeRule {
	out := make([]BadgeRule, len(badgeRules))
	copy(out, badgeRules)
	return out
}

// CalculateBadges evaluates every rule against the given user's records,
// returning one badge per rule in rule-definition order. The unlock state
// is recomputed from scratch on every call.
func CalculateBadges(allRecords []domain.WorkoutRecord, userID string) []domain.Badge {
	partTotals := make(map[string]int)
	for _, rec := range allRecords {
		if rec.UserID != userID {
			continue
		}
		for _, l := range rec.Logs {
			partTotals[l.Part] += l.Sets
		}
	}

	badges := make([]domain.Badge, 0, len(badgeRules))
	for _, rule := range badgeRules {
		badges = append(badges, domain.Badge{
			ID:          rule.ID,
			Name:        rule.Name,
			Description: rule.Description,
			Icon:        rule.Icon,
			IsUnlocked:  rule.Unlocks(partTotals),
		})
	}
	return badges
}
