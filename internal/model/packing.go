package model

import "time"

// PackingItem is a checklist entry for items to bring on the trip.
type PackingItem struct {
	ID          string    `db:"id" json:"id"`
	ItineraryID string    `db:"itinerary_id" json:"itinerary_id"`
	ItemName    string    `db:"item_name" json:"item_name"`
	Category    string    `db:"category" json:"category"`
	Quantity    int       `db:"quantity" json:"quantity"` // defaults to 1
	IsChecked   bool      `db:"is_checked" json:"is_checked"`
	Memo        string    `db:"memo" json:"memo"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time `db:"updated_at" json:"updated_at"`
}
