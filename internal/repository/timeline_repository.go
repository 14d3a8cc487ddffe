package repository

import (
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/soranjiro/AxI-itinerary/internal/model"
)

// TimelineRepository provides access to timeline item rows.
type TimelineRepository struct {
	db *sqlx.DB
}

// NewTimelineRepository creates a new timeline repository.
func NewTimelineRepository(db *sqlx.DB) *TimelineRepository {
	return &TimelineRepository{db: db}
}

// ListByItinerary returns the itinerary's timeline in display order.
func (r *TimelineRepository) ListByItinerary(itineraryID string) ([]model.TimelineItem, error) {
	items := []model.TimelineItem{}
	query := r.db.Rebind("SELECT * FROM timeline_items WHERE itinerary_id=? ORDER BY sort_order")
	if err := r.db.Select(&items, query, itineraryID); err != nil {
		return nil, fmt.Errorf("failed to list timeline items: %w", err)
	}
	return items, nil
}

// MaxSortOrder returns the highest sort_order under the itinerary, 0 when empty.
func (r *TimelineRepository) MaxSortOrder(itineraryID string) (int, error) {
	var max int
	query := r.db.Rebind("SELECT COALESCE(MAX(sort_order), 0) FROM timeline_items WHERE itinerary_id=?")
	if err := r.db.Get(&max, query, itineraryID); err != nil {
		return 0, fmt.Errorf("failed to read max sort_order: %w", err)
	}
	return max, nil
}

// Create inserts a new timeline item row.
func (r *TimelineRepository) Create(item *model.TimelineItem) error {
	query := r.db.Rebind(`INSERT INTO timeline_items (id, itinerary_id, title, description, location_name, location_address, location_lat, location_lng, start_datetime, end_datetime, budget_amount, memo, sort_order, created_at, updated_at)
	          VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	_, err := r.db.Exec(query, item.ID, item.ItineraryID, item.Title, item.Description, item.LocationName, item.LocationAddress, item.LocationLat, item.LocationLng, item.StartDatetime, item.EndDatetime, item.BudgetAmount, item.Memo, item.SortOrder, item.CreatedAt, item.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create timeline item: %w", err)
	}
	return nil
}

// Update overwrites the mutable fields of an item scoped by (id, itinerary_id).
// Returns the number of affected rows.
func (r *TimelineRepository) Update(item *model.TimelineItem) (int64, error) {
	query := r.db.Rebind(`UPDATE timeline_items
		 SET title=?, description=?, location_name=?, location_address=?, location_lat=?, location_lng=?, start_datetime=?, end_datetime=?, budget_amount=?, memo=?, updated_at=?
		 WHERE id=? AND itinerary_id=?`)
	res, err := r.db.Exec(query, item.Title, item.Description, item.LocationName, item.LocationAddress, item.LocationLat, item.LocationLng, item.StartDatetime, item.EndDatetime, item.BudgetAmount, item.Memo, item.UpdatedAt, item.ID, item.ItineraryID)
	if err != nil {
		return 0, fmt.Errorf("failed to update timeline item: %w", err)
	}
	return res.RowsAffected()
}

// Delete removes an item scoped by (id, itinerary_id). Returns affected rows.
func (r *TimelineRepository) Delete(itineraryID, itemID string) (int64, error) {
	query := r.db.Rebind("DELETE FROM timeline_items WHERE id=? AND itinerary_id=?")
	res, err := r.db.Exec(query, itemID, itineraryID)
	if err != nil {
		return 0, fmt.Errorf("failed to delete timeline item: %w", err)
	}
	return res.RowsAffected()
}

// Reorder rewrites sort_order to follow the given item id sequence, in one
// transaction.
func (r *TimelineRepository) Reorder(itineraryID string, itemIDs []string) error {
	tx, err := r.db.Beginx()
	if err != nil {
		return fmt.Errorf("failed to begin reorder transaction: %w", err)
	}
	defer tx.Rollback()

	query := tx.Rebind("UPDATE timeline_items SET sort_order=? WHERE id=? AND itinerary_id=?")
	for idx, itemID := range itemIDs {
		if _, err := tx.Exec(query, idx+1, itemID, itineraryID); err != nil {
			return fmt.Errorf("failed to reorder timeline items: %w", err)
		}
	}
	return tx.Commit()
}
