// Package workflow derives lifecycle signals from the set of completed step
// ids and drives forward/backward gating across the wizard tabs. It holds no
// state of its own; every function is a pure computation over its inputs.
package workflow

import (
	"strings"

	"github.com/harborline/freightdesk-backend/internal/domain"
)

// stageRule pairs a predicate over the completed-step set with the stage it
// produces. Rules are priority-ordered and intentionally overlapping: the
// first match wins, so reordering this table changes behavior.
type stageRule struct {
	match func(done map[string]bool) bool
	stage domain.StageLabel
}

func anyOf(ids ...string) func(map[string]bool) bool {
	return func(done map[string]bool) bool {
		for _, id := range ids {
			if done[id] {
				return true
			}
		}
		return false
	}
}

func allOf(ids ...string) func(map[string]bool) bool {
	return func(done map[string]bool) bool {
		for _, id := range ids {
			if !done[id] {
				return false
			}
		}
		return true
	}
}

var stageRules = []stageRule{
	{allOf("15", "16"), domain.StageCompleted},
	{anyOf("13", "14"), domain.StagePaymentsInProgress},
	{anyOf("11", "12"), domain.StageInvoicing},
	{anyOf("5", "6", "7", "8", "9", "10"), domain.StageDocsInProgress},
	{anyOf("4"), domain.StageBookedWithClient},
	{anyOf("3"), domain.StageBookedWithCarrier},
}

// DeriveStage maps the set of completed step ids to a lifecycle stage.
// Total: every input, including the empty set, yields exactly one label.
// Unknown ids are ignored because every rule keys off specific known ids.
func DeriveStage(done map[string]bool) domain.StageLabel {
	if len(done) == 0 {
		return domain.StageNotStarted
	}
	for _, r := range stageRules {
		if r.match(done) {
			return r.stage
		}
	}
	return domain.StageInProgress
}

// EffectiveStage applies the explicit booking-status override before stage
// derivation. A free-text status equal to CANCELLED (or the common
// misspelling CANCELED), compared case-insensitively, forces the stage to
// CANCELLED regardless of completed steps. This is the contract between the
// register aggregator and DeriveStage: the override is evaluated here, never
// inside the derivation itself.
func EffectiveStage(bookingStatus string, done map[string]bool) domain.StageLabel {
	switch strings.ToUpper(strings.TrimSpace(bookingStatus)) {
	case "CANCELLED", "CANCELED":
		return domain.StageCancelled
	}
	return DeriveStage(done)
}

// Category is a named grouping of steps for dashboard completion counts.
type Category string

const (
	CategoryClient        Category = "Client"
	CategoryCarrier       Category = "Carrier"
	CategoryDocumentation Category = "Documentation"
	CategoryFinance       Category = "Finance"
)

// categoryMembers lists each category's member step ids. Memberships overlap
// by design: a step may count toward several categories at once (e.g. "5" is
// both Client and Documentation).
var categoryMembers = map[Category][]string{
	CategoryClient:        {"1", "5", "9", "13", "16"},
	CategoryCarrier:       {"2", "3", "7", "11", "14", "15"},
	CategoryDocumentation: {"5", "6", "7", "8", "9", "10"},
	CategoryFinance:       {"11", "12", "13", "14"},
}

// Categories returns the category names in a fixed order.
func Categories() []Category {
	return []Category{CategoryClient, CategoryCarrier, CategoryDocumentation, CategoryFinance}
}

// CategoryCounts returns, per category, how many of its member steps are
// completed. Unknown ids in done contribute to no category.
func CategoryCounts(done map[string]bool) map[Category]int {
	counts := make(map[Category]int, len(categoryMembers))
	for cat, members := range categoryMembers {
		n := 0
		for _, id := range members {
			if done[id] {
				n++
			}
		}
		counts[cat] = n
	}
	return counts
}
