package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidDate(t *testing.T) {
	tests := []struct {
		name  string
		date  string
		valid bool
	}{
		{name: "valid date", date: "2024-01-10", valid: true},
		{name: "leap day", date: "2024-02-29", valid: true},
		{name: "empty", date: "", valid: false},
		{name: "wrong layout", date: "10/01/2024", valid: false},
		{name: "out of range month", date: "2024-13-01", valid: false},
		{name: "date with time", date: "2024-01-10T12:00:00Z", valid: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, ValidDate(tt.date))
		})
	}
}
