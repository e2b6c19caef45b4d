package store

import (
	"sync"

	"github.com/jimforte/Misago/models"
)

// State is the root application state. The post collection is owned
// exclusively by the store; all mutation flows through Dispatch.
type State struct {
	Posts []*models.Post
}

// Reducer maps (state, action) to the next state. Reducers must be pure
// and must return their input untouched for actions they do not handle.
type Reducer func(State, Action) State

// PostsReducer lifts ReducePosts into the root state shape.
func PostsReducer(state State, action Action) State {
	state.Posts = ReducePosts(state.Posts, action)
	return state
}

// Store holds the root state and runs every dispatched action through its
// reducers in order. Sibling slices are composed by passing additional
// reducers to New; there is no implicit global registry.
type Store struct {
	mu       sync.RWMutex
	state    State
	reducers []Reducer
	subs     []func(State)
}

func New(initial State, reducers ...Reducer) *Store {
	if len(reducers) == 0 {
		reducers = []Reducer{PostsReducer}
	}
	return &Store{
		state:    initial,
		reducers: reducers,
	}
}

// Dispatch applies the action and returns the resulting state. Subscribers
// are notified after the state is swapped in.
func (s *Store) Dispatch(action Action) State {
	s.mu.Lock()
	next := s.state
	for _, reduce := range s.reducers {
		next = reduce(next, action)
	}
	s.state = next
	subs := s.subs
	s.mu.Unlock()

	for _, sub := range subs {
		sub(next)
	}
	return next
}

// Subscribe registers a callback invoked after every dispatch. Callbacks
// are expected to diff by element reference to find what changed.
func (s *Store) Subscribe(sub func(State)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subs = append(s.subs, sub)
}

func (s *Store) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// FindPost returns the stored post with the given id, or nil.
func (s *Store) FindPost(id int64) *models.Post {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, post := range s.state.Posts {
		if post.ID == id {
			return post
		}
	}
	return nil
}
