package handler

import (
	"database/sql"
	"sync"

	"github.com/soranjiro/AxI-itinerary/internal/model"
)

// In-memory repository fakes backing the router tests.

type fakeItineraryRepo struct {
	mu          sync.Mutex
	itineraries map[string]model.Itinerary
	links       []model.UserItinerary
}

func newFakeItineraryRepo() *fakeItineraryRepo {
	return &fakeItineraryRepo{itineraries: make(map[string]model.Itinerary)}
}

func (f *fakeItineraryRepo) Create(it *model.Itinerary) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.itineraries[it.ID] = *it
	return nil
}

func (f *fakeItineraryRepo) GetByID(id string) (*model.Itinerary, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	it, ok := f.itineraries[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	return &it, nil
}

func (f *fakeItineraryRepo) LinkUser(link *model.UserItinerary) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.links = append(f.links, *link)
	return nil
}

func (f *fakeItineraryRepo) ListByUser(userID string) ([]model.OwnedItinerary, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	owned := []model.OwnedItinerary{}
	for _, link := range f.links {
		if link.UserID != userID {
			continue
		}
		if it, ok := f.itineraries[link.ItineraryID]; ok {
			owned = append(owned, model.OwnedItinerary{Itinerary: it, Role: link.Role, LinkedAt: link.CreatedAt})
		}
	}
	return owned, nil
}

func (f *fakeItineraryRepo) SeedDefaults(it *model.Itinerary, timeline []model.TimelineItem, packing []model.PackingItem, budget []model.BudgetItem) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.itineraries[it.ID] = *it
	return nil
}

type fakeTimelineRepo struct {
	mu    sync.Mutex
	items []model.TimelineItem
}

func (f *fakeTimelineRepo) ListByItinerary(itineraryID string) ([]model.TimelineItem, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := []model.TimelineItem{}
	for _, item := range f.items {
		if item.ItineraryID == itineraryID {
			out = append(out, item)
		}
	}
	return out, nil
}

func (f *fakeTimelineRepo) MaxSortOrder(itineraryID string) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	max := 0
	for _, item := range f.items {
		if item.ItineraryID == itineraryID && item.SortOrder > max {
			max = item.SortOrder
		}
	}
	return max, nil
}

func (f *fakeTimelineRepo) Create(item *model.TimelineItem) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.items = append(f.items, *item)
	return nil
}

func (f *fakeTimelineRepo) Update(item *model.TimelineItem) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, existing := range f.items {
		if existing.ID == item.ID && existing.ItineraryID == item.ItineraryID {
			item.SortOrder = existing.SortOrder
			item.CreatedAt = existing.CreatedAt
			f.items[i] = *item
			return 1, nil
		}
	}
	return 0, nil
}

func (f *fakeTimelineRepo) Delete(itineraryID, itemID string) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, existing := range f.items {
		if existing.ID == itemID && existing.ItineraryID == itineraryID {
			f.items = append(f.items[:i], f.items[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

func (f *fakeTimelineRepo) Reorder(itineraryID string, itemIDs []string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	order := make(map[string]int, len(itemIDs))
	for idx, id := range itemIDs {
		order[id] = idx + 1
	}
	for i, item := range f.items {
		if item.ItineraryID == itineraryID {
			if pos, ok := order[item.ID]; ok {
				f.items[i].SortOrder = pos
			}
		}
	}
	return nil
}

type fakePackingRepo struct {
	mu    sync.Mutex
	items []model.PackingItem
}

func (f *fakePackingRepo) ListByItinerary(itineraryID string) ([]model.PackingItem, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := []model.PackingItem{}
	for _, item := range f.items {
		if item.ItineraryID == itineraryID {
			out = append(out, item)
		}
	}
	return out, nil
}

func (f *fakePackingRepo) Create(item *model.PackingItem) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.items = append(f.items, *item)
	return nil
}

func (f *fakePackingRepo) Update(item *model.PackingItem) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, existing := range f.items {
		if existing.ID == item.ID && existing.ItineraryID == item.ItineraryID {
			f.items[i] = *item
			return 1, nil
		}
	}
	return 0, nil
}

func (f *fakePackingRepo) Delete(itineraryID, itemID string) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, existing := range f.items {
		if existing.ID == itemID && existing.ItineraryID == itineraryID {
			f.items = append(f.items[:i], f.items[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

type fakeBudgetRepo struct {
	mu    sync.Mutex
	items []model.BudgetItem
}

func (f *fakeBudgetRepo) ListByItinerary(itineraryID string) ([]model.BudgetItem, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := []model.BudgetItem{}
	for _, item := range f.items {
		if item.ItineraryID == itineraryID {
			out = append(out, item)
		}
	}
	return out, nil
}

func (f *fakeBudgetRepo) Create(item *model.BudgetItem) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.items = append(f.items, *item)
	return nil
}

func (f *fakeBudgetRepo) Update(item *model.BudgetItem) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, existing := range f.items {
		if existing.ID == item.ID && existing.ItineraryID == item.ItineraryID {
			f.items[i] = *item
			return 1, nil
		}
	}
	return 0, nil
}

func (f *fakeBudgetRepo) Delete(itineraryID, itemID string) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, existing := range f.items {
		if existing.ID == itemID && existing.ItineraryID == itineraryID {
			f.items = append(f.items[:i], f.items[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

type fakeUserRepo struct {
	mu    sync.Mutex
	users map[string]model.User // by id
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]model.User)}
}

func (f *fakeUserRepo) Create(user *model.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.users[user.ID] = *user
	return nil
}

func (f *fakeUserRepo) GetByEmail(email string) (*model.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.Email == email {
			u := u
			return &u, nil
		}
	}
	return nil, sql.ErrNoRows
}

func (f *fakeUserRepo) GetByID(id string) (*model.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	return &u, nil
}

func (f *fakeUserRepo) EmailExists(email string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeUserRepo) UpdateProfile(user *model.User) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	existing, ok := f.users[user.ID]
	if !ok {
		return 0, nil
	}
	existing.Name = user.Name
	existing.UpdatedAt = user.UpdatedAt
	f.users[user.ID] = existing
	return 1, nil
}

type fakeSessionStore struct {
	mu       sync.Mutex
	sessions map[string]model.Session // by token
}

func newFakeSessionStore() *fakeSessionStore {
	return &fakeSessionStore{sessions: make(map[string]model.Session)}
}

func (f *fakeSessionStore) Create(s *model.Session) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sessions[s.Token] = *s
	return nil
}

func (f *fakeSessionStore) GetByToken(token string) (*model.Session, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	s, ok := f.sessions[token]
	if !ok {
		return nil, sql.ErrNoRows
	}
	return &s, nil
}

func (f *fakeSessionStore) Delete(token string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.sessions, token)
	return nil
}
