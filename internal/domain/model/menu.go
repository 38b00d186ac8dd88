// Package model defines the core domain entities for the lunch service.
package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MenuItem represents a meal definition in the catalog.
//
// @Description Meal definition with nutritional facts
// @Example {"name": "Pizza", "description": "Cheesy and delicious.", "image": "images/pizza.jpg", "calories": 300, "protein": 12}
type MenuItem struct {
	ID primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	// Name is the display name of the meal
	Name string `bson:"name" json:"name" example:"Pizza"`
	// Description is a short description shown to students
	Description string `bson:"description" json:"description" example:"Cheesy and delicious."`
	// Image is a reference to the meal image
	Image string `bson:"image" json:"image" example:"images/pizza.jpg"`
	// Calories is the calorie count, never negative
	Calories int `bson:"calories" json:"calories" example:"300"`
	// Protein is the protein content in grams. Items created before the
	// nutrition schema extension have no protein field and read back as 0.
	Protein   int       `bson:"protein,omitempty" json:"protein" example:"12"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}

// DefaultMenuItems are seeded into an empty catalog at startup.
var DefaultMenuItems = []MenuItem{
	{Name: "Pizza", Description: "Cheesy and delicious.", Image: "images/pizza.jpg", Calories: 300, Protein: 12},
	{Name: "Burger", Description: "Juicy and flavorful.", Image: "images/burger.jpg", Calories: 500, Protein: 25},
	{Name: "Salad", Description: "Fresh and healthy.", Image: "images/salad.jpg", Calories: 150, Protein: 4},
}
