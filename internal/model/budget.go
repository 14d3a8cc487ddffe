package model

import "time"

// BudgetItem is a planned-vs-actual cost line entry.
type BudgetItem struct {
	ID            string    `db:"id" json:"id"`
	ItineraryID   string    `db:"itinerary_id" json:"itinerary_id"`
	Category      string    `db:"category" json:"category"`
	ItemName      string    `db:"item_name" json:"item_name"`
	PlannedAmount float64   `db:"planned_amount" json:"planned_amount"` // must be > 0
	ActualAmount  *float64  `db:"actual_amount" json:"actual_amount"`   // nil until spent
	Memo          string    `db:"memo" json:"memo"`
	CreatedAt     time.Time `db:"created_at" json:"created_at"`
	UpdatedAt     time.Time `db:"updated_at" json:"updated_at"`
}
