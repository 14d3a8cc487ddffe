package repository

import (
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/soranjiro/AxI-itinerary/internal/model"
)

// PackingRepository provides access to packing checklist rows.
type PackingRepository struct {
	db *sqlx.DB
}

// NewPackingRepository creates a new packing repository.
func NewPackingRepository(db *sqlx.DB) *PackingRepository {
	return &PackingRepository{db: db}
}

// ListByItinerary returns packing items ordered by (category, item_name).
func (r *PackingRepository) ListByItinerary(itineraryID string) ([]model.PackingItem, error) {
	items := []model.PackingItem{}
	query := r.db.Rebind("SELECT * FROM packing_items WHERE itinerary_id=? ORDER BY category, item_name")
	if err := r.db.Select(&items, query, itineraryID); err != nil {
		return nil, fmt.Errorf("failed to list packing items: %w", err)
	}
	return items, nil
}

// Create inserts a new packing item row.
func (r *PackingRepository) Create(item *model.PackingItem) error {
	query := r.db.Rebind(`INSERT INTO packing_items (id, itinerary_id, item_name, category, quantity, is_checked, memo, created_at, updated_at)
	          VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	_, err := r.db.Exec(query, item.ID, item.ItineraryID, item.ItemName, item.Category, item.Quantity, item.IsChecked, item.Memo, item.CreatedAt, item.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create packing item: %w", err)
	}
	return nil
}

// Update overwrites the mutable fields scoped by (id, itinerary_id).
func (r *PackingRepository) Update(item *model.PackingItem) (int64, error) {
	query := r.db.Rebind(`UPDATE packing_items
		 SET item_name=?, category=?, quantity=?, is_checked=?, memo=?, updated_at=?
		 WHERE id=? AND itinerary_id=?`)
	res, err := r.db.Exec(query, item.ItemName, item.Category, item.Quantity, item.IsChecked, item.Memo, item.UpdatedAt, item.ID, item.ItineraryID)
	if err != nil {
		return 0, fmt.Errorf("failed to update packing item: %w", err)
	}
	return res.RowsAffected()
}

// Delete removes a packing item scoped by (id, itinerary_id).
func (r *PackingRepository) Delete(itineraryID, itemID string) (int64, error) {
	query := r.db.Rebind("DELETE FROM packing_items WHERE id=? AND itinerary_id=?")
	res, err := r.db.Exec(query, itemID, itineraryID)
	if err != nil {
		return 0, fmt.Errorf("failed to delete packing item: %w", err)
	}
	return res.RowsAffected()
}
