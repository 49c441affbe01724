package store

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/LavenderBridge/verdure/internal/algorithm"
	"github.com/LavenderBridge/verdure/internal/models"
)

const (
	progressKey     = "user_progress"
	customImagesKey = "custom_images"
)

// ErrCorruptRecord marks a stored blob that is present but does not parse.
// Callers get zero-valued defaults alongside it and should log and carry on.
var ErrCorruptRecord = errors.New("stored record is corrupt")

// Store persists the two application blobs (progress, custom images) as
// JSON values in a single key-value table.
type Store struct {
	db     *sql.DB
	logger *slog.Logger
}

// Open creates the data directory and database if needed and returns a
// ready store.
func Open(dataDir string, logger *slog.Logger) (*Store, error) {
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, fmt.Errorf("cannot create data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, "verdure.db")
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, err
	}

	if _, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS kv (
			key   TEXT PRIMARY KEY,
			value TEXT NOT NULL
		)
	`); err != nil {
		db.Close()
		return nil, err
	}

	return &Store{db: db, logger: logger}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) get(key string) (string, bool, error) {
	var value string
	err := s.db.QueryRow("SELECT value FROM kv WHERE key = ?", key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return value, true, nil
}

func (s *Store) set(key, value string) error {
	_, err := s.db.Exec(`
		INSERT INTO kv (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		key, value,
	)
	return err
}

// LoadProgress returns the stored progress record, or zero-valued defaults
// when nothing is stored yet. A present-but-unparsable blob also yields
// defaults, together with ErrCorruptRecord.
func (s *Store) LoadProgress() (models.UserProgress, error) {
	var p models.UserProgress

	raw, ok, err := s.get(progressKey)
	if err != nil {
		return p, err
	}
	if !ok {
		return p, nil
	}

	if err := json.Unmarshal([]byte(raw), &p); err != nil {
		s.logger.Warn("progress record is corrupt, falling back to defaults", "error", err)
		return models.UserProgress{}, fmt.Errorf("%w: %v", ErrCorruptRecord, err)
	}
	return p, nil
}

// SaveProgress overwrites the stored progress record.
func (s *Store) SaveProgress(p models.UserProgress) error {
	data, err := json.Marshal(p)
	if err != nil {
		return err
	}
	return s.set(progressKey, string(data))
}

// RecordCycleCompletion bumps the studied count, advances the streak and
// appends a CYCLE history entry dated now. Returns the persisted record.
func (s *Store) RecordCycleCompletion(plantsStudied int, now time.Time) (models.UserProgress, error) {
	p, err := s.LoadProgress()
	if err != nil && !errors.Is(err, ErrCorruptRecord) {
		return p, err
	}

	p = algorithm.AdvanceCycle(p, plantsStudied, now)
	p.History = append(p.History, models.StudySession{
		ID:   uuid.NewString(),
		Date: now,
		Kind: models.KindCycle,
	})

	if err := s.SaveProgress(p); err != nil {
		return p, err
	}
	s.logger.Debug("recorded cycle completion", "plants", plantsStudied, "streak", p.Streak)
	return p, nil
}

// RecordQuizCompletion bumps the cumulative quiz totals and appends a QUIZ
// history entry with the session score. The streak is not touched.
func (s *Store) RecordQuizCompletion(correct, total int, now time.Time) (models.UserProgress, error) {
	p, err := s.LoadProgress()
	if err != nil && !errors.Is(err, ErrCorruptRecord) {
		return p, err
	}

	p = algorithm.AdvanceQuiz(p, correct, total)
	score := correct
	p.History = append(p.History, models.StudySession{
		ID:    uuid.NewString(),
		Date:  now,
		Kind:  models.KindQuiz,
		Score: &score,
	})

	if err := s.SaveProgress(p); err != nil {
		return p, err
	}
	s.logger.Debug("recorded quiz completion", "correct", correct, "total", total)
	return p, nil
}

// LoadCustomImages returns the custom-image map, empty when nothing is
// stored. A corrupt blob yields an empty map and ErrCorruptRecord.
func (s *Store) LoadCustomImages() (map[string]string, error) {
	raw, ok, err := s.get(customImagesKey)
	if err != nil {
		return nil, err
	}
	if !ok {
		return map[string]string{}, nil
	}

	images := map[string]string{}
	if err := json.Unmarshal([]byte(raw), &images); err != nil {
		s.logger.Warn("custom-image map is corrupt, falling back to empty", "error", err)
		return map[string]string{}, fmt.Errorf("%w: %v", ErrCorruptRecord, err)
	}
	return images, nil
}

func (s *Store) saveCustomImages(images map[string]string) error {
	data, err := json.Marshal(images)
	if err != nil {
		return err
	}
	return s.set(customImagesKey, string(data))
}

// SetCustomImage stores blob as the image override for plantID. The blob
// must already be codec-produced; raw uploads never land here.
func (s *Store) SetCustomImage(plantID, blob string) error {
	images, err := s.LoadCustomImages()
	if err != nil && !errors.Is(err, ErrCorruptRecord) {
		return err
	}
	images[plantID] = blob
	return s.saveCustomImages(images)
}

// ResetCustomImage removes the override for plantID; merges revert to the
// base image afterwards.
func (s *Store) ResetCustomImage(plantID string) error {
	images, err := s.LoadCustomImages()
	if err != nil && !errors.Is(err, ErrCorruptRecord) {
		return err
	}
	delete(images, plantID)
	return s.saveCustomImages(images)
}
