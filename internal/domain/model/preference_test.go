package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPreferenceRuleKnown(t *testing.T) {
	tests := []struct {
		name  string
		rule  PreferenceRule
		known bool
	}{
		{name: "least calories", rule: RuleLeastCalories, known: true},
		{name: "most calories", rule: RuleMostCalories, known: true},
		{name: "most protein", rule: RuleMostProtein, known: true},
		{name: "empty", rule: "", known: false},
		{name: "unknown value", rule: "most sugar", known: false},
		{name: "case sensitive", rule: "Least Calories", known: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.known, tt.rule.Known())
		})
	}
}

func TestNormalizeRule(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected PreferenceRule
	}{
		{name: "least calories passes through", input: "least calories", expected: RuleLeastCalories},
		{name: "most calories passes through", input: "most calories", expected: RuleMostCalories},
		{name: "most protein passes through", input: "most protein", expected: RuleMostProtein},
		{name: "empty falls back to least calories", input: "", expected: RuleLeastCalories},
		{name: "unknown falls back to least calories", input: "vegetarian", expected: RuleLeastCalories},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeRule(tt.input))
		})
	}
}

func TestKnownRulesMatchesEnumeration(t *testing.T) {
	assert.Len(t, KnownRules, 3)
	for _, r := range KnownRules {
		assert.True(t, r.Known())
	}
}
