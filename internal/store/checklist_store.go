package store

import "github.com/soranjiro/AxI-itinerary/internal/model"

// ListState mirrors an unordered item collection of the open itinerary.
type ListState[T any] struct {
	Items     []T
	IsLoading bool
	Error     string
}

// ListStore is the shared action set for the packing and budget mirrors.
type ListStore[T any] struct {
	*Container[ListState[T]]
	id func(T) string
}

func newListStore[T any](id func(T) string) *ListStore[T] {
	return &ListStore[T]{Container: NewContainer(ListState[T]{}), id: id}
}

// SetLoading toggles the loading flag.
func (s *ListStore[T]) SetLoading(loading bool) {
	s.Update(func(st ListState[T]) ListState[T] {
		st.IsLoading = loading
		return st
	})
}

// SetError records an error message; empty clears it.
func (s *ListStore[T]) SetError(msg string) {
	s.Update(func(st ListState[T]) ListState[T] {
		st.Error = msg
		return st
	})
}

// SetItems replaces the item list.
func (s *ListStore[T]) SetItems(items []T) {
	s.Update(func(st ListState[T]) ListState[T] {
		st.Items = append([]T(nil), items...)
		return st
	})
}

// AddItem appends an item.
func (s *ListStore[T]) AddItem(item T) {
	s.Update(func(st ListState[T]) ListState[T] {
		st.Items = append(append([]T(nil), st.Items...), item)
		return st
	})
}

// UpdateItem applies partial changes to the item with the given id.
func (s *ListStore[T]) UpdateItem(id string, apply func(T) T) {
	s.Update(func(st ListState[T]) ListState[T] {
		items := append([]T(nil), st.Items...)
		for i, item := range items {
			if s.id(item) == id {
				items[i] = apply(item)
			}
		}
		st.Items = items
		return st
	})
}

// RemoveItem drops the item with the given id.
func (s *ListStore[T]) RemoveItem(id string) {
	s.Update(func(st ListState[T]) ListState[T] {
		items := make([]T, 0, len(st.Items))
		for _, item := range st.Items {
			if s.id(item) != id {
				items = append(items, item)
			}
		}
		st.Items = items
		return st
	})
}

// NewPackingStore creates an empty packing checklist mirror.
func NewPackingStore() *ListStore[model.PackingItem] {
	return newListStore(func(i model.PackingItem) string { return i.ID })
}

// NewBudgetStore creates an empty budget ledger mirror.
func NewBudgetStore() *ListStore[model.BudgetItem] {
	return newListStore(func(i model.BudgetItem) string { return i.ID })
}
