// Package dto defines Data Transfer Objects for HTTP request and response handling.
//
// DTOs decouple the HTTP layer from the domain model, providing validation
// and serialization for API communication.
package dto

import (
	"github.com/campuskitchen/lunch-service/internal/domain/model"
)

// ValidationError represents a field validation error.
type ValidationError struct {
	Field   string
	Message string
}

// Error returns the error message for ValidationError.
func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

// AddMenuItemRequest represents the JSON request body for creating a catalog item.
//
// @Description Request to add a meal to the catalog
// @Example {"name": "Pizza", "description": "Cheesy and delicious.", "image": "images/pizza.jpg", "calories": 300, "protein": 12}
type AddMenuItemRequest struct {
	// Name is the meal name. Required.
	Name string `json:"name" binding:"required" example:"Pizza"`
	// Description is a short description shown to students.
	Description string `json:"description" example:"Cheesy and delicious."`
	// Image is a reference to the meal image.
	Image string `json:"image" example:"images/pizza.jpg"`
	// Calories is the calorie count. Must not be negative.
	Calories int `json:"calories" binding:"min=0" example:"300" minimum:"0"`
	// Protein is the protein content in grams. Optional, must not be negative.
	Protein int `json:"protein" binding:"min=0" example:"12" minimum:"0"`
} // @name AddMenuItemRequest

// Validate performs custom validation on the request.
func (r *AddMenuItemRequest) Validate() error {
	if r.Name == "" {
		return &ValidationError{Field: "name", Message: "name is required"}
	}
	if r.Calories < 0 {
		return &ValidationError{Field: "calories", Message: "must not be negative"}
	}
	if r.Protein < 0 {
		return &ValidationError{Field: "protein", Message: "must not be negative"}
	}
	return nil
}

// ScheduleItemRequest represents the JSON request body for scheduling a
// catalog item on a date. Scheduling triggers the bulk preorder pass for
// every student with a stored preference.
//
// @Description Request to offer a catalog item on a calendar date
// @Example {"date": "2024-01-10", "menu_item_id": "65a1f0c2e4b0a1b2c3d4e5f6"}
type ScheduleItemRequest struct {
	// Date is the calendar date in YYYY-MM-DD form. Required.
	Date string `json:"date" binding:"required" example:"2024-01-10"`
	// MenuItemID is the catalog item to offer on that date. Required.
	MenuItemID string `json:"menu_item_id" binding:"required" example:"65a1f0c2e4b0a1b2c3d4e5f6"`
} // @name ScheduleItemRequest

// Validate performs custom validation on the request.
func (r *ScheduleItemRequest) Validate() error {
	if !model.ValidDate(r.Date) {
		return &ValidationError{Field: "date", Message: "must be a YYYY-MM-DD date"}
	}
	if r.MenuItemID == "" {
		return &ValidationError{Field: "menu_item_id", Message: "menu_item_id is required"}
	}
	return nil
}

// SetPreferenceRequest represents the JSON request body for storing a
// student's selection rule. The rule is validated against the closed
// enumeration at the boundary.
//
// @Description Request to store the caller's meal selection rule
// @Example {"rule": "least calories"}
type SetPreferenceRequest struct {
	// Rule is one of "least calories", "most calories", "most protein".
	Rule string `json:"rule" binding:"required" example:"least calories" enums:"least calories,most calories,most protein"`
} // @name SetPreferenceRequest

// Validate performs custom validation on the request.
func (r *SetPreferenceRequest) Validate() error {
	if !model.PreferenceRule(r.Rule).Known() {
		return &ValidationError{Field: "rule", Message: "must be one of: least calories, most calories, most protein"}
	}
	return nil
}

// SubmitOrderRequest represents the JSON request body for a manual order
// submission by a student.
//
// @Description Request to order a meal for the calling student
// @Example {"meal_name": "Pizza"}
type SubmitOrderRequest struct {
	// MealName is the name of the chosen meal. Stored as a snapshot. Required.
	MealName string `json:"meal_name" binding:"required" example:"Pizza"`
} // @name SubmitOrderRequest

// Validate performs custom validation on the request.
func (r *SubmitOrderRequest) Validate() error {
	if r.MealName == "" {
		return &ValidationError{Field: "meal_name", Message: "meal_name is required"}
	}
	return nil
}
