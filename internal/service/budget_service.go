package service

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/soranjiro/AxI-itinerary/internal/apperror"
	"github.com/soranjiro/AxI-itinerary/internal/model"
	"github.com/soranjiro/AxI-itinerary/internal/validate"
)

// BudgetRepo is the storage surface the budget service needs.
type BudgetRepo interface {
	ListByItinerary(itineraryID string) ([]model.BudgetItem, error)
	Create(item *model.BudgetItem) error
	Update(item *model.BudgetItem) (int64, error)
	Delete(itineraryID, itemID string) (int64, error)
}

// BudgetService contains the business logic around the budget ledger.
type BudgetService struct {
	repo BudgetRepo
	now  func() time.Time
}

// NewBudgetService creates a new budget service.
func NewBudgetService(repo BudgetRepo) *BudgetService {
	return &BudgetService{repo: repo, now: time.Now}
}

// BudgetInput is the payload for creating or updating a budget item.
type BudgetInput struct {
	ItemName      string   `json:"item_name"`
	Category      string   `json:"category"`
	PlannedAmount float64  `json:"planned_amount"`
	ActualAmount  *float64 `json:"actual_amount"`
	Memo          string   `json:"memo"`
}

func (in BudgetInput) validateScoped(itineraryID string) error {
	if itineraryID == "" {
		return apperror.BadRequest("Itinerary ID is required")
	}
	if !validate.Required(in.ItemName) {
		return apperror.BadRequest("Item name is required")
	}
	return nil
}

// validateCreate adds the rules enforced only at creation. Updates accept a
// blank category and a zero planned amount.
func (in BudgetInput) validateCreate(itineraryID string) error {
	if err := in.validateScoped(itineraryID); err != nil {
		return err
	}
	if !validate.Required(in.Category) {
		return apperror.BadRequest("Category is required")
	}
	if in.PlannedAmount <= 0 {
		return apperror.BadRequest("Valid planned amount is required")
	}
	return nil
}

// Create inserts a budget item. ActualAmount starts null.
func (s *BudgetService) Create(itineraryID string, in BudgetInput) (*model.BudgetItem, error) {
	if err := in.validateCreate(itineraryID); err != nil {
		return nil, err
	}

	now := s.now().UTC()
	item := &model.BudgetItem{
		ID:            uuid.NewString(),
		ItineraryID:   itineraryID,
		Category:      strings.TrimSpace(in.Category),
		ItemName:      strings.TrimSpace(in.ItemName),
		PlannedAmount: in.PlannedAmount,
		ActualAmount:  nil,
		Memo:          strings.TrimSpace(in.Memo),
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := s.repo.Create(item); err != nil {
		return nil, err
	}
	return item, nil
}

// Update overwrites a budget item scoped by (id, itinerary_id).
func (s *BudgetService) Update(itineraryID, itemID string, in BudgetInput) (*model.BudgetItem, error) {
	if err := in.validateScoped(itineraryID); err != nil {
		return nil, err
	}
	if itemID == "" {
		return nil, apperror.BadRequest("Budget item ID is required")
	}

	item := &model.BudgetItem{
		ID:            itemID,
		ItineraryID:   itineraryID,
		Category:      strings.TrimSpace(in.Category),
		ItemName:      strings.TrimSpace(in.ItemName),
		PlannedAmount: in.PlannedAmount,
		ActualAmount:  in.ActualAmount,
		Memo:          strings.TrimSpace(in.Memo),
		UpdatedAt:     s.now().UTC(),
	}
	affected, err := s.repo.Update(item)
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		return nil, apperror.NotFound("Budget item not found")
	}
	return item, nil
}

// Delete removes a budget item. 404 when nothing matched.
func (s *BudgetService) Delete(itineraryID, itemID string) error {
	if itineraryID == "" {
		return apperror.BadRequest("Itinerary ID is required")
	}
	if itemID == "" {
		return apperror.BadRequest("Budget item ID is required")
	}
	affected, err := s.repo.Delete(itineraryID, itemID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return apperror.NotFound("Budget item not found")
	}
	return nil
}
