package user

import (
	"fmt"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"tamstore-bot/internal/storage"
)

// Repository is the contact-statistics store.
type Repository interface {
	// Touch records an inbound message: it creates the contact on first
	// sight, bumps the message count and last-contact time, and returns
	// the updated stats.
	Touch(userID string) (Stats, error)

	Stats(userID string) (Stats, bool)
	AllStats() map[string]Stats

	IncrementAutoReply(userID string) error
	AutoReplyCount(userID string) int
	ResetDailyCounters() error

	RecordQuizTaken(userID string) error
	RecordPollParticipation(userID string) error
	AppendQuizResult(userID string, result QuizResult) error

	Backup(backupDir string, keep int) error
}

type fileRepository struct {
	mu   sync.Mutex
	path string
	data *store
	now  func() time.Time
}

// NewFileRepository loads users.json, seeding an empty structure when the
// file does not exist yet.
func NewFileRepository(path string) (Repository, error) {
	data := newStore()
	if err := storage.LoadOrSeed(path, data, newStore()); err != nil {
		return nil, fmt.Errorf("load user data: %w", err)
	}
	if data.AutoReplySent == nil {
		data.AutoReplySent = make(map[string]int)
	}
	if data.UserStats == nil {
		data.UserStats = make(map[string]*Stats)
	}

	return &fileRepository{path: path, data: data, now: time.Now}, nil
}

// persist is called with r.mu held.
func (r *fileRepository) persist() error {
	if err := storage.Save(r.path, r.data); err != nil {
		return fmt.Errorf("save user data: %w", err)
	}
	return nil
}

// get is called with r.mu held; it creates the contact on first sight.
func (r *fileRepository) get(userID string) *Stats {
	s, ok := r.data.UserStats[userID]
	if !ok {
		now := r.now()
		s = &Stats{FirstContact: now, LastContact: now}
		r.data.UserStats[userID] = s
	}
	return s
}

func (r *fileRepository) Touch(userID string) (Stats, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s := r.get(userID)
	s.LastContact = r.now()
	s.MessageCount++

	return *s, r.persist()
}

func (r *fileRepository) Stats(userID string) (Stats, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.data.UserStats[userID]
	if !ok {
		return Stats{}, false
	}
	return *s, true
}

func (r *fileRepository) AllStats() map[string]Stats {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make(map[string]Stats, len(r.data.UserStats))
	for id, s := range r.data.UserStats {
		out[id] = *s
	}
	return out
}

func (r *fileRepository) IncrementAutoReply(userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.data.AutoReplySent[userID]++
	r.get(userID).AutoReplySent++

	return r.persist()
}

func (r *fileRepository) AutoReplyCount(userID string) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.data.AutoReplySent[userID]
}

// ResetDailyCounters clears the per-day auto-reply ledger. Lifetime
// per-contact totals in Stats are untouched.
func (r *fileRepository) ResetDailyCounters() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.data.AutoReplySent = make(map[string]int)
	return r.persist()
}

func (r *fileRepository) RecordQuizTaken(userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.get(userID).QuizzesTaken++
	return r.persist()
}

func (r *fileRepository) RecordPollParticipation(userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.get(userID).PollsParticipated++
	return r.persist()
}

func (r *fileRepository) AppendQuizResult(userID string, result QuizResult) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	s := r.get(userID)
	s.QuizHistory = append(s.QuizHistory, result)
	if len(s.QuizHistory) > quizHistoryLimit {
		s.QuizHistory = s.QuizHistory[len(s.QuizHistory)-quizHistoryLimit:]
	}

	return r.persist()
}

// Backup copies users.json into backupDir and prunes old copies down to
// keep.
func (r *fileRepository) Backup(backupDir string, keep int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, err := storage.Backup(r.path, backupDir); err != nil {
		return fmt.Errorf("backup user data: %w", err)
	}
	prefix := strings.TrimSuffix(filepath.Base(r.path), filepath.Ext(r.path))
	if _, err := storage.CleanupBackups(backupDir, prefix, keep); err != nil {
		return fmt.Errorf("cleanup user backups: %w", err)
	}
	return nil
}
