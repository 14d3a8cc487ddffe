package model

import "time"

// TimelineItem is a single scheduled stop within an itinerary, ordered by SortOrder.
type TimelineItem struct {
	ID              string    `db:"id" json:"id"`
	ItineraryID     string    `db:"itinerary_id" json:"itinerary_id"`
	Title           string    `db:"title" json:"title"`
	Description     string    `db:"description" json:"description"`
	LocationName    string    `db:"location_name" json:"location_name"`
	LocationAddress string    `db:"location_address" json:"location_address"`
	LocationLat     *float64  `db:"location_lat" json:"location_lat,omitempty"`
	LocationLng     *float64  `db:"location_lng" json:"location_lng,omitempty"`
	StartDatetime   time.Time `db:"start_datetime" json:"start_datetime"`
	EndDatetime     time.Time `db:"end_datetime" json:"end_datetime"`
	BudgetAmount    *float64  `db:"budget_amount" json:"budget_amount,omitempty"`
	Memo            string    `db:"memo" json:"memo"`
	SortOrder       int       `db:"sort_order" json:"sort_order"` // new items get max(sort_order)+1
	CreatedAt       time.Time `db:"created_at" json:"created_at"`
	UpdatedAt       time.Time `db:"updated_at" json:"updated_at"`
}
