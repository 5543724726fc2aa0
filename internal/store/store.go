package store

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/rs/zerolog"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// The four state documents, keyed by fixed names.
const (
	KeyProperty      = "property360_data"
	KeyTasks         = "property360_tasks"
	KeyTransactions  = "property360_transactions"
	KeySeasonHistory = "property360_prod_history"
)

type document struct {
	Key       string    `gorm:"column:key;primaryKey"`
	Value     string    `gorm:"column:value"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (document) TableName() string { return "documents" }

// Store persists JSON-serialized slices of application state. Reads fall
// back to the caller's default instead of failing; writes are synchronous
// and swallowed on error, leaving the in-memory state authoritative.
type Store struct {
	db  *gorm.DB
	log zerolog.Logger
}

func New(db *gorm.DB, log zerolog.Logger) *Store {
	return &Store{db: db, log: log}
}

// Load fills out from the stored document and reports whether it succeeded.
// A missing key, unreadable row or undecodable payload all report false so
// the caller keeps its default.
func (s *Store) Load(key string, out interface{}) bool {
	var doc document
	if err := s.db.First(&doc, "key = ?", key).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			s.log.Warn().Err(err).Str("key", key).Msg("document read failed, using default")
		}
		return false
	}
	if err := json.Unmarshal([]byte(doc.Value), out); err != nil {
		s.log.Warn().Err(err).Str("key", key).Msg("document corrupt, using default")
		return false
	}
	return true
}

func (s *Store) Save(key string, value interface{}) {
	payload, err := json.Marshal(value)
	if err != nil {
		s.log.Warn().Err(err).Str("key", key).Msg("document encode failed")
		return
	}

	doc := document{Key: key, Value: string(payload), UpdatedAt: time.Now().UTC()}
	err = s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&doc).Error
	if err != nil {
		s.log.Warn().Err(err).Str("key", key).Msg("document write failed")
	}
}
