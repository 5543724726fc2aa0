package service

import (
	"sync"

	"github.com/agrodat/property360/internal/model"
	"github.com/agrodat/property360/internal/store"
)

// Store is the persistence contract the managers write through after every
// mutation.
type Store interface {
	Load(key string, out interface{}) bool
	Save(key string, value interface{})
}

// State is the root application object owning the whole state tree: the
// property with its fields, the task board, the ledger and the season
// productivity history. Manager commands run under its lock, which keeps
// the one-logical-writer model of the original even with concurrent HTTP
// requests.
//
// Mutations replace slices instead of editing them in place, so a snapshot
// handed out under the lock stays consistent after release.
type State struct {
	mu sync.Mutex

	Property     model.Property
	Tasks        []model.Task
	Transactions []model.Transaction
	Seasons      []model.SeasonYield
}

// LoadState reads the four documents, substituting the built-in dataset for
// anything missing or unreadable.
func LoadState(st Store) *State {
	s := &State{}

	if !st.Load(store.KeyProperty, &s.Property) || s.Property.Name == "" || s.Property.Fields == nil {
		s.Property = store.DefaultProperty()
	}
	for i := range s.Property.Fields {
		s.Property.Fields[i].RefreshSoilSnapshot()
	}

	if !st.Load(store.KeyTasks, &s.Tasks) {
		s.Tasks = store.DefaultTasks()
	}
	if !st.Load(store.KeyTransactions, &s.Transactions) {
		s.Transactions = store.DefaultTransactions()
	}
	if !st.Load(store.KeySeasonHistory, &s.Seasons) {
		s.Seasons = store.DefaultSeasonHistory()
	}

	return s
}
