package repository

import (
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/soranjiro/AxI-itinerary/internal/model"
)

// BudgetRepository provides access to budget ledger rows.
type BudgetRepository struct {
	db *sqlx.DB
}

// NewBudgetRepository creates a new budget repository.
func NewBudgetRepository(db *sqlx.DB) *BudgetRepository {
	return &BudgetRepository{db: db}
}

// ListByItinerary returns budget items ordered by (category, item_name).
func (r *BudgetRepository) ListByItinerary(itineraryID string) ([]model.BudgetItem, error) {
	items := []model.BudgetItem{}
	query := r.db.Rebind("SELECT * FROM budget_items WHERE itinerary_id=? ORDER BY category, item_name")
	if err := r.db.Select(&items, query, itineraryID); err != nil {
		return nil, fmt.Errorf("failed to list budget items: %w", err)
	}
	return items, nil
}

// Create inserts a new budget item row.
func (r *BudgetRepository) Create(item *model.BudgetItem) error {
	query := r.db.Rebind(`INSERT INTO budget_items (id, itinerary_id, category, item_name, planned_amount, actual_amount, memo, created_at, updated_at)
	          VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	_, err := r.db.Exec(query, item.ID, item.ItineraryID, item.Category, item.ItemName, item.PlannedAmount, item.ActualAmount, item.Memo, item.CreatedAt, item.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create budget item: %w", err)
	}
	return nil
}

// Update overwrites the mutable fields scoped by (id, itinerary_id).
func (r *BudgetRepository) Update(item *model.BudgetItem) (int64, error) {
	query := r.db.Rebind(`UPDATE budget_items
		 SET item_name=?, category=?, planned_amount=?, actual_amount=?, memo=?, updated_at=?
		 WHERE id=? AND itinerary_id=?`)
	res, err := r.db.Exec(query, item.ItemName, item.Category, item.PlannedAmount, item.ActualAmount, item.Memo, item.UpdatedAt, item.ID, item.ItineraryID)
	if err != nil {
		return 0, fmt.Errorf("failed to update budget item: %w", err)
	}
	return res.RowsAffected()
}

// Delete removes a budget item scoped by (id, itinerary_id).
func (r *BudgetRepository) Delete(itineraryID, itemID string) (int64, error) {
	query := r.db.Rebind("DELETE FROM budget_items WHERE id=? AND itinerary_id=?")
	res, err := r.db.Exec(query, itemID, itineraryID)
	if err != nil {
		return 0, fmt.Errorf("failed to delete budget item: %w", err)
	}
	return res.RowsAffected()
}
