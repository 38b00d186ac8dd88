package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DateLayout is the calendar date format used throughout the service.
const DateLayout = "2006-01-02"

// ScheduleEntry associates a MenuItem with a calendar date.
// Entries are append-only; duplicate (date, item) pairs are allowed and
// simply yield redundant entries.
type ScheduleEntry struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Date       string             `bson:"date" json:"date" example:"2024-01-10"`
	MenuItemID primitive.ObjectID `bson:"menu_item_id" json:"menu_item_id"`
	CreatedAt  time.Time          `bson:"created_at" json:"created_at"`
}

// ScheduledMeal is one row of the administrator's schedule overview:
// a schedule entry joined with its catalog item.
type ScheduledMeal struct {
	Date string   `json:"date" example:"2024-01-10"`
	Item MenuItem `json:"item"`
}

// ValidDate reports whether s is a well-formed calendar date.
func ValidDate(s string) bool {
	_, err := time.Parse(DateLayout, s)
	return err == nil
}
