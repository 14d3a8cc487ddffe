package store

import (
	"sort"

	"github.com/soranjiro/AxI-itinerary/internal/model"
)

// TimelineState mirrors the timeline of the open itinerary.
type TimelineState struct {
	Items     []model.TimelineItem
	IsLoading bool
	Error     string
}

// TimelineStore exposes the timeline action set over a Container.
type TimelineStore struct {
	*Container[TimelineState]
}

// NewTimelineStore creates an empty timeline store.
func NewTimelineStore() *TimelineStore {
	return &TimelineStore{NewContainer(TimelineState{})}
}

// SetLoading toggles the loading flag.
func (s *TimelineStore) SetLoading(loading bool) {
	s.Update(func(st TimelineState) TimelineState {
		st.IsLoading = loading
		return st
	})
}

// SetError records an error message; empty clears it.
func (s *TimelineStore) SetError(msg string) {
	s.Update(func(st TimelineState) TimelineState {
		st.Error = msg
		return st
	})
}

// SetItems replaces the item list.
func (s *TimelineStore) SetItems(items []model.TimelineItem) {
	s.Update(func(st TimelineState) TimelineState {
		st.Items = append([]model.TimelineItem(nil), items...)
		return st
	})
}

// AddItem appends an item and keeps the list sorted by sort_order.
func (s *TimelineStore) AddItem(item model.TimelineItem) {
	s.Update(func(st TimelineState) TimelineState {
		items := append(append([]model.TimelineItem(nil), st.Items...), item)
		sort.SliceStable(items, func(i, j int) bool {
			return items[i].SortOrder < items[j].SortOrder
		})
		st.Items = items
		return st
	})
}

// UpdateItem applies partial changes to the item with the given id.
func (s *TimelineStore) UpdateItem(id string, apply func(model.TimelineItem) model.TimelineItem) {
	s.Update(func(st TimelineState) TimelineState {
		items := append([]model.TimelineItem(nil), st.Items...)
		for i, item := range items {
			if item.ID == id {
				items[i] = apply(item)
			}
		}
		st.Items = items
		return st
	})
}

// RemoveItem drops the item with the given id.
func (s *TimelineStore) RemoveItem(id string) {
	s.Update(func(st TimelineState) TimelineState {
		items := make([]model.TimelineItem, 0, len(st.Items))
		for _, item := range st.Items {
			if item.ID != id {
				items = append(items, item)
			}
		}
		st.Items = items
		return st
	})
}

// Reorder replaces the list with an explicitly ordered one, as after a
// drag-and-drop.
func (s *TimelineStore) Reorder(items []model.TimelineItem) {
	s.Update(func(st TimelineState) TimelineState {
		st.Items = append([]model.TimelineItem(nil), items...)
		return st
	})
}
