package service

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/soranjiro/AxI-itinerary/internal/apperror"
	"github.com/soranjiro/AxI-itinerary/internal/model"
	"github.com/soranjiro/AxI-itinerary/internal/schedule"
	"github.com/soranjiro/AxI-itinerary/internal/validate"
)

// TimelineRepo is the storage surface the timeline service needs.
type TimelineRepo interface {
	ListByItinerary(itineraryID string) ([]model.TimelineItem, error)
	MaxSortOrder(itineraryID string) (int, error)
	Create(item *model.TimelineItem) error
	Update(item *model.TimelineItem) (int64, error)
	Delete(itineraryID, itemID string) (int64, error)
	Reorder(itineraryID string, itemIDs []string) error
}

// TimelineService contains the business logic around timeline items.
type TimelineService struct {
	repo TimelineRepo
	now  func() time.Time
}

// NewTimelineService creates a new timeline service.
func NewTimelineService(repo TimelineRepo) *TimelineService {
	return &TimelineService{repo: repo, now: time.Now}
}

// TimelineInput is the payload for creating or updating a timeline item.
type TimelineInput struct {
	Title           string   `json:"title"`
	Description     string   `json:"description"`
	LocationName    string   `json:"location_name"`
	LocationAddress string   `json:"location_address"`
	LocationLat     *float64 `json:"location_lat"`
	LocationLng     *float64 `json:"location_lng"`
	StartDatetime   string   `json:"start_datetime"`
	EndDatetime     string   `json:"end_datetime"`
	DurationMinutes *float64 `json:"duration_minutes"`
	BudgetAmount    *float64 `json:"budget_amount"`
	Memo            string   `json:"memo"`
}

func (in TimelineInput) validateScoped(itineraryID string) error {
	if itineraryID == "" {
		return apperror.BadRequest("Itinerary ID is required")
	}
	if !validate.Required(in.Title) {
		return apperror.BadRequest("Title is required")
	}
	return nil
}

// Create appends a new item to the itinerary timeline. The new item's
// sort_order is one past the current maximum.
//
// The read-then-write on sort_order can race under concurrent editors; the
// single-editor assumption of shared itineraries accepts that.
func (s *TimelineService) Create(itineraryID string, in TimelineInput) (*model.TimelineItem, error) {
	if err := in.validateScoped(itineraryID); err != nil {
		return nil, err
	}

	now := s.now().UTC()
	start, end := schedule.Resolve(in.StartDatetime, in.EndDatetime, in.DurationMinutes, now, schedule.StartNow)

	maxOrder, err := s.repo.MaxSortOrder(itineraryID)
	if err != nil {
		return nil, err
	}

	item := &model.TimelineItem{
		ID:              uuid.NewString(),
		ItineraryID:     itineraryID,
		Title:           strings.TrimSpace(in.Title),
		Description:     strings.TrimSpace(in.Description),
		LocationName:    strings.TrimSpace(in.LocationName),
		LocationAddress: strings.TrimSpace(in.LocationAddress),
		LocationLat:     in.LocationLat,
		LocationLng:     in.LocationLng,
		StartDatetime:   start,
		EndDatetime:     end,
		BudgetAmount:    in.BudgetAmount,
		Memo:            strings.TrimSpace(in.Memo),
		SortOrder:       maxOrder + 1,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := s.repo.Create(item); err != nil {
		return nil, err
	}
	return item, nil
}

// Update overwrites a timeline item. A missing start time falls back to the
// current hour (minutes zeroed), unlike the create path.
func (s *TimelineService) Update(itineraryID, itemID string, in TimelineInput) (*model.TimelineItem, error) {
	if err := in.validateScoped(itineraryID); err != nil {
		return nil, err
	}
	if itemID == "" {
		return nil, apperror.BadRequest("Timeline item ID is required")
	}

	now := s.now().UTC()
	start, end := schedule.Resolve(in.StartDatetime, in.EndDatetime, in.DurationMinutes, now, schedule.StartFloorHour)

	item := &model.TimelineItem{
		ID:              itemID,
		ItineraryID:     itineraryID,
		Title:           strings.TrimSpace(in.Title),
		Description:     strings.TrimSpace(in.Description),
		LocationName:    strings.TrimSpace(in.LocationName),
		LocationAddress: strings.TrimSpace(in.LocationAddress),
		LocationLat:     in.LocationLat,
		LocationLng:     in.LocationLng,
		StartDatetime:   start,
		EndDatetime:     end,
		BudgetAmount:    in.BudgetAmount,
		Memo:            strings.TrimSpace(in.Memo),
		UpdatedAt:       now,
	}
	affected, err := s.repo.Update(item)
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		return nil, apperror.NotFound("Timeline item not found")
	}
	return item, nil
}

// Delete removes a timeline item. 404 when nothing matched.
func (s *TimelineService) Delete(itineraryID, itemID string) error {
	if itineraryID == "" {
		return apperror.BadRequest("Itinerary ID is required")
	}
	if itemID == "" {
		return apperror.BadRequest("Timeline item ID is required")
	}
	affected, err := s.repo.Delete(itineraryID, itemID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return apperror.NotFound("Timeline item not found")
	}
	return nil
}

// Reorder rewrites the display order to follow itemIDs.
func (s *TimelineService) Reorder(itineraryID string, itemIDs []string) error {
	if itineraryID == "" {
		return apperror.BadRequest("Itinerary ID is required")
	}
	if len(itemIDs) == 0 {
		return apperror.BadRequest("Item IDs are required")
	}
	return s.repo.Reorder(itineraryID, itemIDs)
}
