package service

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/soranjiro/AxI-itinerary/internal/apperror"
	"github.com/soranjiro/AxI-itinerary/internal/model"
	"github.com/soranjiro/AxI-itinerary/internal/validate"
)

// PackingRepo is the storage surface the packing service needs.
type PackingRepo interface {
	ListByItinerary(itineraryID string) ([]model.PackingItem, error)
	Create(item *model.PackingItem) error
	Update(item *model.PackingItem) (int64, error)
	Delete(itineraryID, itemID string) (int64, error)
}

// PackingService contains the business logic around the packing checklist.
type PackingService struct {
	repo PackingRepo
	now  func() time.Time
}

// NewPackingService creates a new packing service.
func NewPackingService(repo PackingRepo) *PackingService {
	return &PackingService{repo: repo, now: time.Now}
}

// PackingInput is the payload for creating or updating a packing item.
type PackingInput struct {
	ItemName  string `json:"item_name"`
	Category  string `json:"category"`
	Quantity  *int   `json:"quantity"`
	IsChecked bool   `json:"is_checked"`
	Memo      string `json:"memo"`
}

func (in PackingInput) validateScoped(itineraryID string) error {
	if itineraryID == "" {
		return apperror.BadRequest("Itinerary ID is required")
	}
	if !validate.Required(in.ItemName) {
		return apperror.BadRequest("Item name is required")
	}
	return nil
}

func (in PackingInput) quantity() int {
	if in.Quantity == nil || *in.Quantity <= 0 {
		return 1
	}
	return *in.Quantity
}

// Create inserts a packing item. Quantity defaults to 1, is_checked to false.
func (s *PackingService) Create(itineraryID string, in PackingInput) (*model.PackingItem, error) {
	if err := in.validateScoped(itineraryID); err != nil {
		return nil, err
	}

	now := s.now().UTC()
	item := &model.PackingItem{
		ID:          uuid.NewString(),
		ItineraryID: itineraryID,
		ItemName:    strings.TrimSpace(in.ItemName),
		Category:    strings.TrimSpace(in.Category),
		Quantity:    in.quantity(),
		IsChecked:   false,
		Memo:        strings.TrimSpace(in.Memo),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.repo.Create(item); err != nil {
		return nil, err
	}
	return item, nil
}

// Update overwrites a packing item scoped by (id, itinerary_id).
func (s *PackingService) Update(itineraryID, itemID string, in PackingInput) (*model.PackingItem, error) {
	if err := in.validateScoped(itineraryID); err != nil {
		return nil, err
	}
	if itemID == "" {
		return nil, apperror.BadRequest("Packing item ID is required")
	}

	item := &model.PackingItem{
		ID:          itemID,
		ItineraryID: itineraryID,
		ItemName:    strings.TrimSpace(in.ItemName),
		Category:    strings.TrimSpace(in.Category),
		Quantity:    in.quantity(),
		IsChecked:   in.IsChecked,
		Memo:        strings.TrimSpace(in.Memo),
		UpdatedAt:   s.now().UTC(),
	}
	affected, err := s.repo.Update(item)
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		return nil, apperror.NotFound("Packing item not found")
	}
	return item, nil
}

// Delete removes a packing item. 404 when nothing matched.
func (s *PackingService) Delete(itineraryID, itemID string) error {
	if itineraryID == "" {
		return apperror.BadRequest("Itinerary ID is required")
	}
	if itemID == "" {
		return apperror.BadRequest("Packing item ID is required")
	}
	affected, err := s.repo.Delete(itineraryID, itemID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return apperror.NotFound("Packing item not found")
	}
	return nil
}
