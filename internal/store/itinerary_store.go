package store

import "github.com/soranjiro/AxI-itinerary/internal/model"

// ItineraryState mirrors the currently open itinerary document.
type ItineraryState struct {
	Current   *model.Itinerary
	IsLoading bool
	Error     string
}

// ItineraryStore exposes the itinerary action set over a Container.
type ItineraryStore struct {
	*Container[ItineraryState]
}

// NewItineraryStore creates an empty itinerary store.
func NewItineraryStore() *ItineraryStore {
	return &ItineraryStore{NewContainer(ItineraryState{})}
}

// SetLoading toggles the loading flag.
func (s *ItineraryStore) SetLoading(loading bool) {
	s.Update(func(st ItineraryState) ItineraryState {
		st.IsLoading = loading
		return st
	})
}

// SetError records an error message; empty clears it.
func (s *ItineraryStore) SetError(msg string) {
	s.Update(func(st ItineraryState) ItineraryState {
		st.Error = msg
		return st
	})
}

// SetCurrent replaces the open itinerary.
func (s *ItineraryStore) SetCurrent(it *model.Itinerary) {
	s.Update(func(st ItineraryState) ItineraryState {
		st.Current = it
		return st
	})
}

// UpdateCurrent applies partial changes to the open itinerary; no-op when
// nothing is open.
func (s *ItineraryStore) UpdateCurrent(apply func(model.Itinerary) model.Itinerary) {
	s.Update(func(st ItineraryState) ItineraryState {
		if st.Current == nil {
			return st
		}
		updated := apply(*st.Current)
		st.Current = &updated
		return st
	})
}
