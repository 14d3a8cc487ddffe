package model

import "time"

// Itinerary is the top-level shared travel plan document.
type Itinerary struct {
	ID               string    `db:"id" json:"id"`
	Title            string    `db:"title" json:"title"`
	Description      string    `db:"description" json:"description"`
	Theme            string    `db:"theme" json:"theme"` // visual theme tag, e.g. "simple", "travel"
	EditPasswordHash *string   `db:"edit_password_hash" json:"-"`
	CreatedAt        time.Time `db:"created_at" json:"created_at"`
	UpdatedAt        time.Time `db:"updated_at" json:"updated_at"`
}

// UserItinerary links a user to an itinerary with a role.
type UserItinerary struct {
	ID          string    `db:"id" json:"id"`
	UserID      string    `db:"user_id" json:"user_id"`
	ItineraryID string    `db:"itinerary_id" json:"itinerary_id"`
	Role        string    `db:"role" json:"role"` // "owner" for the creator
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}

// OwnedItinerary is an itinerary joined with the requesting user's role.
type OwnedItinerary struct {
	Itinerary
	Role     string    `db:"role" json:"role"`
	LinkedAt time.Time `db:"linked_at" json:"linked_at"`
}
