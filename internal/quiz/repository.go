package quiz

import (
	"fmt"
	"sync"

	"tamstore-bot/internal/storage"
)

// Repository reads the quiz catalog and persists poll tallies.
type Repository interface {
	Quizzes() []Quiz
	QuizByID(id string) (*Quiz, bool)
	Polls() []Poll
	PollByID(id string) (*Poll, bool)

	// RecordVote increments the tally for option on the poll and writes
	// the file back.
	RecordVote(pollID, option string) (*Poll, error)
}

type fileRepository struct {
	mu   sync.Mutex
	path string
	data *File
}

func NewFileRepository(path string) (Repository, error) {
	data := &File{}
	if err := storage.LoadOrSeed(path, data, &File{}); err != nil {
		return nil, fmt.Errorf("load quiz data: %w", err)
	}
	return &fileRepository{path: path, data: data}, nil
}

func (r *fileRepository) Quizzes() []Quiz {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Quiz(nil), r.data.Quizzes...)
}

func (r *fileRepository) QuizByID(id string) (*Quiz, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.data.Quizzes {
		if r.data.Quizzes[i].ID == id {
			cp := r.data.Quizzes[i]
			return &cp, true
		}
	}
	return nil, false
}

func (r *fileRepository) Polls() []Poll {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Poll(nil), r.data.Polls...)
}

func (r *fileRepository) PollByID(id string) (*Poll, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.pollByID(id)
	if !ok {
		return nil, false
	}
	cp := *p
	return &cp, true
}

// pollByID is called with r.mu held.
func (r *fileRepository) pollByID(id string) (*Poll, bool) {
	for i := range r.data.Polls {
		if r.data.Polls[i].ID == id {
			return &r.data.Polls[i], true
		}
	}
	return nil, false
}

func (r *fileRepository) RecordVote(pollID, option string) (*Poll, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.pollByID(pollID)
	if !ok {
		return nil, ErrPollNotFound
	}
	if p.Results == nil {
		p.Results = make(map[string]int)
	}
	p.Results[option]++

	if err := storage.Save(r.path, r.data); err != nil {
		return nil, fmt.Errorf("save quiz data: %w", err)
	}
	cp := *p
	return &cp, nil
}
