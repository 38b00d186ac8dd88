package model

import "go.mongodb.org/mongo-driver/bson/primitive"

// PreferenceRule names a strategy for picking one meal from a day's
// scheduled set.
type PreferenceRule string

const (
	// RuleLeastCalories picks the item with the fewest calories.
	// This is also the fallback for unknown or absent rules.
	RuleLeastCalories PreferenceRule = "least calories"
	// RuleMostCalories picks the item with the most calories.
	RuleMostCalories PreferenceRule = "most calories"
	// RuleMostProtein picks the item with the most protein.
	RuleMostProtein PreferenceRule = "most protein"
)

// KnownRules lists the closed rule enumeration in presentation order.
var KnownRules = []PreferenceRule{RuleLeastCalories, RuleMostCalories, RuleMostProtein}

// Known reports whether r is part of the rule enumeration.
func (r PreferenceRule) Known() bool {
	switch r {
	case RuleLeastCalories, RuleMostCalories, RuleMostProtein:
		return true
	}
	return false
}

// NormalizeRule maps an arbitrary stored rule string onto the enumeration.
// Unknown or empty values resolve to RuleLeastCalories. This is a policy,
// not an error: it is applied once at the boundary so the resolver never
// sees an out-of-enumeration value.
func NormalizeRule(s string) PreferenceRule {
	r := PreferenceRule(s)
	if !r.Known() {
		return RuleLeastCalories
	}
	return r
}

// StudentPreference stores a student's chosen selection rule.
// At most one document exists per student; writes are upserts.
type StudentPreference struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	StudentID string             `bson:"student_id" json:"student_id" example:"42"`
	Rule      PreferenceRule     `bson:"rule" json:"rule" example:"least calories"`
}
