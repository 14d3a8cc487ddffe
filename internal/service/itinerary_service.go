package service

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/soranjiro/AxI-itinerary/internal/apperror"
	"github.com/soranjiro/AxI-itinerary/internal/auth"
	"github.com/soranjiro/AxI-itinerary/internal/model"
	"github.com/soranjiro/AxI-itinerary/internal/validate"
)

// ItineraryRepo is the storage surface the itinerary service needs.
type ItineraryRepo interface {
	Create(it *model.Itinerary) error
	GetByID(id string) (*model.Itinerary, error)
	LinkUser(link *model.UserItinerary) error
	ListByUser(userID string) ([]model.OwnedItinerary, error)
	SeedDefaults(it *model.Itinerary, timeline []model.TimelineItem, packing []model.PackingItem, budget []model.BudgetItem) error
}

// ItineraryService contains the business logic around itineraries.
type ItineraryService struct {
	repo     ItineraryRepo
	timeline TimelineRepo
	packing  PackingRepo
	budget   BudgetRepo
	hasher   auth.PasswordHasher
	now      func() time.Time
}

// NewItineraryService creates a new itinerary service.
func NewItineraryService(repo ItineraryRepo, timeline TimelineRepo, packing PackingRepo, budget BudgetRepo, hasher auth.PasswordHasher) *ItineraryService {
	return &ItineraryService{
		repo:     repo,
		timeline: timeline,
		packing:  packing,
		budget:   budget,
		hasher:   hasher,
		now:      time.Now,
	}
}

// CreateItineraryInput is the payload for creating an itinerary.
type CreateItineraryInput struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Password    string `json:"password"`
	UserID      string `json:"-"` // authenticated creator, empty for guests
}

// Create validates the input, stores the itinerary and links the creator when
// authenticated.
func (s *ItineraryService) Create(in CreateItineraryInput) (*model.Itinerary, error) {
	if !validate.Required(in.Title) {
		return nil, apperror.BadRequest("Title is required")
	}

	now := s.now().UTC()
	it := &model.Itinerary{
		ID:          uuid.NewString(),
		Title:       strings.TrimSpace(in.Title),
		Description: strings.TrimSpace(in.Description),
		Theme:       "simple",
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if in.Password != "" {
		if ok, msg := validate.Password(in.Password); !ok {
			return nil, apperror.BadRequest(msg)
		}
		hash, err := s.hasher.Hash(in.Password)
		if err != nil {
			return nil, fmt.Errorf("failed to hash edit password: %w", err)
		}
		it.EditPasswordHash = &hash
	}

	if err := s.repo.Create(it); err != nil {
		return nil, err
	}

	if in.UserID != "" {
		link := &model.UserItinerary{
			ID:          uuid.NewString(),
			UserID:      in.UserID,
			ItineraryID: it.ID,
			Role:        "owner",
			CreatedAt:   now,
		}
		if err := s.repo.LinkUser(link); err != nil {
			return nil, err
		}
	}
	return it, nil
}

// ItineraryDetail bundles an itinerary with its three child collections.
type ItineraryDetail struct {
	Itinerary     *model.Itinerary     `json:"itinerary"`
	TimelineItems []model.TimelineItem `json:"timelineItems"`
	PackingItems  []model.PackingItem  `json:"packingItems"`
	BudgetItems   []model.BudgetItem   `json:"budgetItems"`
}

// Get fetches the itinerary and all child collections. The three child lists
// are loaded concurrently.
func (s *ItineraryService) Get(id string) (*ItineraryDetail, error) {
	if id == "" {
		return nil, apperror.BadRequest("ID is required")
	}
	it, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperror.NotFound("Itinerary not found")
		}
		return nil, fmt.Errorf("failed to fetch itinerary: %w", err)
	}

	detail := &ItineraryDetail{Itinerary: it}
	var g errgroup.Group
	g.Go(func() error {
		items, err := s.timeline.ListByItinerary(id)
		detail.TimelineItems = items
		return err
	})
	g.Go(func() error {
		items, err := s.packing.ListByItinerary(id)
		detail.PackingItems = items
		return err
	})
	g.Go(func() error {
		items, err := s.budget.ListByItinerary(id)
		detail.BudgetItems = items
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return detail, nil
}

// ListForUser returns the itineraries linked to a user, newest first.
func (s *ItineraryService) ListForUser(userID string) ([]model.OwnedItinerary, error) {
	if userID == "" {
		return nil, apperror.BadRequest("User ID is required")
	}
	return s.repo.ListByUser(userID)
}

// SeedDefaults creates a sample itinerary with starter items in one batch.
func (s *ItineraryService) SeedDefaults() (*model.Itinerary, error) {
	now := s.now().UTC()
	it := &model.Itinerary{
		ID:          uuid.NewString(),
		Title:       "サンプル旅行",
		Description: "はじめてのしおりです",
		Theme:       "travel",
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	timeline := []model.TimelineItem{
		{
			ID:            uuid.NewString(),
			ItineraryID:   it.ID,
			Title:         "集合",
			Description:   "出発準備",
			LocationName:  "東京駅",
			StartDatetime: now,
			EndDatetime:   now.Add(time.Hour),
			SortOrder:     1,
			CreatedAt:     now,
			UpdatedAt:     now,
		},
	}
	packing := []model.PackingItem{
		{
			ID:          uuid.NewString(),
			ItineraryID: it.ID,
			ItemName:    "着替え",
			Category:    "衣類",
			Quantity:    2,
			CreatedAt:   now,
			UpdatedAt:   now,
		},
	}
	budget := []model.BudgetItem{
		{
			ID:            uuid.NewString(),
			ItineraryID:   it.ID,
			Category:      "交通費",
			ItemName:      "電車",
			PlannedAmount: 1200,
			CreatedAt:     now,
			UpdatedAt:     now,
		},
	}
	if err := s.repo.SeedDefaults(it, timeline, packing, budget); err != nil {
		return nil, err
	}
	return it, nil
}
