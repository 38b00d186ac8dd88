package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// OrderSource records how an order entered the ledger.
type OrderSource string

const (
	// SourceStudent marks an order submitted manually by the student.
	SourceStudent OrderSource = "student"
	// SourcePreorder marks an order recorded by the bulk preorder workflow.
	SourcePreorder OrderSource = "preorder"
)

// Order is one row of the append-only order ledger.
//
// MealName is a snapshot of the item name at order time; renaming or
// deleting the catalog item later does not alter past orders.
type Order struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	StudentID string             `bson:"student_id" json:"student_id" example:"42"`
	MealName  string             `bson:"meal_name" json:"meal_name" example:"Pizza"`
	PickedUp  bool               `bson:"picked_up" json:"picked_up"`
	Source    OrderSource        `bson:"source" json:"source" example:"student"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
}
