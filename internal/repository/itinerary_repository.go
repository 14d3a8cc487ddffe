package repository

import (
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/soranjiro/AxI-itinerary/internal/model"
)

// ItineraryRepository provides access to itinerary rows.
//
// Queries are written with '?' bindvars and rebound per driver so the same
// statements work against PostgreSQL and SQLite.
type ItineraryRepository struct {
	db *sqlx.DB
}

// NewItineraryRepository creates a new itinerary repository.
func NewItineraryRepository(db *sqlx.DB) *ItineraryRepository {
	return &ItineraryRepository{db: db}
}

// Create inserts a new itinerary row.
func (r *ItineraryRepository) Create(it *model.Itinerary) error {
	query := r.db.Rebind(`INSERT INTO itineraries (id, title, description, theme, edit_password_hash, created_at, updated_at)
	          VALUES (?, ?, ?, ?, ?, ?, ?)`)
	_, err := r.db.Exec(query, it.ID, it.Title, it.Description, it.Theme, it.EditPasswordHash, it.CreatedAt, it.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create itinerary: %w", err)
	}
	return nil
}

// GetByID returns the itinerary with the given id. sql.ErrNoRows when absent.
func (r *ItineraryRepository) GetByID(id string) (*model.Itinerary, error) {
	var it model.Itinerary
	err := r.db.Get(&it, r.db.Rebind("SELECT * FROM itineraries WHERE id=?"), id)
	if err != nil {
		return nil, err
	}
	return &it, nil
}

// LinkUser inserts a user_itineraries row giving userID the given role.
func (r *ItineraryRepository) LinkUser(link *model.UserItinerary) error {
	query := r.db.Rebind(`INSERT INTO user_itineraries (id, user_id, itinerary_id, role, created_at)
	          VALUES (?, ?, ?, ?, ?)`)
	_, err := r.db.Exec(query, link.ID, link.UserID, link.ItineraryID, link.Role, link.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to link user to itinerary: %w", err)
	}
	return nil
}

// ListByUser returns the itineraries linked to userID with their role,
// most recently updated first.
func (r *ItineraryRepository) ListByUser(userID string) ([]model.OwnedItinerary, error) {
	itineraries := []model.OwnedItinerary{}
	query := r.db.Rebind(`SELECT i.*, ui.role, ui.created_at AS linked_at
		 FROM itineraries i
		 JOIN user_itineraries ui ON i.id = ui.itinerary_id
		 WHERE ui.user_id = ?
		 ORDER BY i.updated_at DESC`)
	if err := r.db.Select(&itineraries, query, userID); err != nil {
		return nil, fmt.Errorf("failed to list user itineraries: %w", err)
	}
	return itineraries, nil
}

// SeedDefaults inserts the itinerary together with starter timeline, packing
// and budget rows as one atomic batch.
func (r *ItineraryRepository) SeedDefaults(it *model.Itinerary, timeline []model.TimelineItem, packing []model.PackingItem, budget []model.BudgetItem) error {
	tx, err := r.db.Beginx()
	if err != nil {
		return fmt.Errorf("failed to begin seed transaction: %w", err)
	}
	defer tx.Rollback()

	insertItinerary := tx.Rebind(`INSERT INTO itineraries (id, title, description, theme, edit_password_hash, created_at, updated_at)
	          VALUES (?, ?, ?, ?, ?, ?, ?)`)
	if _, err := tx.Exec(insertItinerary, it.ID, it.Title, it.Description, it.Theme, it.EditPasswordHash, it.CreatedAt, it.UpdatedAt); err != nil {
		return fmt.Errorf("failed to seed itinerary: %w", err)
	}

	insertTimeline := tx.Rebind(`INSERT INTO timeline_items (id, itinerary_id, title, description, location_name, location_address, location_lat, location_lng, start_datetime, end_datetime, budget_amount, memo, sort_order, created_at, updated_at)
	          VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	for _, item := range timeline {
		if _, err := tx.Exec(insertTimeline, item.ID, item.ItineraryID, item.Title, item.Description, item.LocationName, item.LocationAddress, item.LocationLat, item.LocationLng, item.StartDatetime, item.EndDatetime, item.BudgetAmount, item.Memo, item.SortOrder, item.CreatedAt, item.UpdatedAt); err != nil {
			return fmt.Errorf("failed to seed timeline item: %w", err)
		}
	}

	insertPacking := tx.Rebind(`INSERT INTO packing_items (id, itinerary_id, item_name, category, quantity, is_checked, memo, created_at, updated_at)
	          VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	for _, item := range packing {
		if _, err := tx.Exec(insertPacking, item.ID, item.ItineraryID, item.ItemName, item.Category, item.Quantity, item.IsChecked, item.Memo, item.CreatedAt, item.UpdatedAt); err != nil {
			return fmt.Errorf("failed to seed packing item: %w", err)
		}
	}

	insertBudget := tx.Rebind(`INSERT INTO budget_items (id, itinerary_id, category, item_name, planned_amount, actual_amount, memo, created_at, updated_at)
	          VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	for _, item := range budget {
		if _, err := tx.Exec(insertBudget, item.ID, item.ItineraryID, item.Category, item.ItemName, item.PlannedAmount, item.ActualAmount, item.Memo, item.CreatedAt, item.UpdatedAt); err != nil {
			return fmt.Errorf("failed to seed budget item: %w", err)
		}
	}

	return tx.Commit()
}
