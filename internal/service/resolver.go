// Package service contains the business logic of the lunch service.
package service

import (
	"github.com/campuskitchen/lunch-service/internal/domain/model"
)

// MealResolver defines the interface for the preorder decision.
type MealResolver interface {
	// Resolve picks exactly one item from a date's scheduled set according
	// to the given rule. ok is false when items is empty, which callers
	// must treat as "no decision" rather than an error.
	Resolve(items []model.MenuItem, rule model.PreferenceRule) (pick model.MenuItem, ok bool)
}

// MealResolverService implements MealResolver as a pure function over the
// scheduled-item sequence. Ties are broken by input order: the first item
// among equals wins, on every invocation. No secondary sort key, no
// randomness.
type MealResolverService struct{}

// NewMealResolverService creates a new MealResolverService.
func NewMealResolverService() *MealResolverService {
	return &MealResolverService{}
}

// Resolve picks one item from items according to rule.
//
// Rules outside the enumeration must be normalized with model.NormalizeRule
// before calling; an unrecognized rule behaves like least-calories here as a
// second line of defense so legacy stored values cannot change the outcome.
func (s *MealResolverService) Resolve(items []model.MenuItem, rule model.PreferenceRule) (model.MenuItem, bool) {
	if len(items) == 0 {
		return model.MenuItem{}, false
	}

	pick := items[0]
	for _, item := range items[1:] {
		if better(item, pick, rule) {
			pick = item
		}
	}
	return pick, true
}

// better reports whether candidate beats current under rule.
// Strict comparisons keep the first-wins tie-break.
func better(candidate, current model.MenuItem, rule model.PreferenceRule) bool {
	switch rule {
	case model.RuleMostCalories:
		return candidate.Calories > current.Calories
	case model.RuleMostProtein:
		return candidate.Protein > current.Protein
	default:
		return candidate.Calories < current.Calories
	}
}
