// Package settings holds the single shop configuration document
// printed on tickets. Unlike the collection stores it guards exactly
// one record, with the same write-through discipline.
package settings

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"go.uber.org/zap"
)

const fileName = "settings.json"

// ShopSettings is the global shop configuration.
type ShopSettings struct {
	ShopName     string `json:"shopName"`
	Address      string `json:"address"`
	Phone        string `json:"phone"`
	Siret        string `json:"siret,omitempty"`
	TicketFooter string `json:"ticketFooter,omitempty"`
}

// Store is the single-document settings repository.
type Store struct {
	mu       sync.RWMutex
	path     string
	settings ShopSettings
	log      *zap.Logger
}

// NewStore loads the settings file under dataDir, writing defaults on
// first run.
func NewStore(dataDir string, log *zap.Logger) *Store {
	s := &Store{path: filepath.Join(dataDir, fileName), log: log}

	b, err := os.ReadFile(s.path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		s.settings = ShopSettings{
			ShopName: "Pizzeria Bella Napoli",
			Address:  "12 Rue de la Pizza, Paris",
			Phone:    "01 23 45 67 89",
		}
		s.persist()
		log.Info("default shop settings generated")
	case err != nil:
		log.Error("settings load failed, using defaults", zap.Error(err))
	default:
		if err := json.Unmarshal(b, &s.settings); err != nil {
			log.Error("settings decode failed, using defaults", zap.Error(err))
		} else {
			log.Info("shop settings loaded")
		}
	}
	return s
}

// Get returns the current settings.
func (s *Store) Get() ShopSettings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.settings
}

// Update replaces the settings and writes through.
func (s *Store) Update(next ShopSettings) ShopSettings {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.settings = next
	s.persist()
	return s.settings
}

func (s *Store) persist() {
	b, err := json.MarshalIndent(s.settings, "", "  ")
	if err != nil {
		s.log.Error("settings encode failed", zap.Error(err))
		return
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		s.log.Error("settings write failed", zap.Error(err))
		return
	}
	if err := os.WriteFile(s.path, b, 0o644); err != nil {
		s.log.Error("settings write failed", zap.Error(err))
	}
}
