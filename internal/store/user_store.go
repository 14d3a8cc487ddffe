package store

import "github.com/soranjiro/AxI-itinerary/internal/model"

// UserState mirrors the signed-in account, nil when browsing as a guest.
type UserState struct {
	Current *model.User
}

// UserStore exposes login/logout over a Container.
type UserStore struct {
	*Container[UserState]
}

// NewUserStore creates a store with no signed-in user.
func NewUserStore() *UserStore {
	return &UserStore{NewContainer(UserState{})}
}

// Login records the signed-in user.
func (s *UserStore) Login(user model.User) {
	s.Update(func(st UserState) UserState {
		st.Current = &user
		return st
	})
}

// Logout clears the signed-in user.
func (s *UserStore) Logout() {
	s.Update(func(st UserState) UserState {
		st.Current = nil
		return st
	})
}

// Current returns the signed-in user, nil for guests.
func (s *UserStore) Current() *model.User {
	return s.Get().Current
}
