package cartControllers

import (
	"encoding/json"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/mookistore/vapeshop-api/models"
)

// SessionStore persists cart line items per browsing session as a single
// serialized payload, one row per session key.
type SessionStore struct {
	db  *gorm.DB
	log *zap.Logger
}

func NewSessionStore(db *gorm.DB, log *zap.Logger) *SessionStore {
	return &SessionStore{db: db, log: log}
}

// Load returns the session's line items. A missing row or an unparseable
// payload loads as an empty cart, never an error: corrupt persisted state must
// degrade, not crash.
func (s *SessionStore) Load(sessionID string) ([]models.CartLineItem, error) {
	var session models.CartSession
	if err := s.db.Where("session_id = ?", sessionID).First(&session).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return []models.CartLineItem{}, nil
		}
		return nil, err
	}

	var items []models.CartLineItem
	if err := json.Unmarshal([]byte(session.Payload), &items); err != nil {
		s.log.Warn("discarding corrupt cart payload",
			zap.String("session_id", sessionID),
			zap.Error(err))
		return []models.CartLineItem{}, nil
	}
	return items, nil
}

// Save upserts the serialized line items under the session key. Called after
// every ledger mutation.
func (s *SessionStore) Save(sessionID string, items []models.CartLineItem) error {
	if items == nil {
		items = []models.CartLineItem{}
	}
	payload, err := json.Marshal(items)
	if err != nil {
		return err
	}

	session := models.CartSession{SessionID: sessionID, Payload: string(payload)}
	return s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "session_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"payload", "updated_at"}),
	}).Create(&session).Error
}

// Clear erases the session's persisted cart.
func (s *SessionStore) Clear(sessionID string) error {
	return s.db.Where("session_id = ?", sessionID).Delete(&models.CartSession{}).Error
}
