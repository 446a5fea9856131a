// Package user tracks per-contact statistics: first/last contact,
// message counts, auto-reply counters and quiz history, persisted to a
// JSON file with rotating backups.
package user

import "time"

// Stats is everything tracked for one contact.
type Stats struct {
	FirstContact      time.Time    `json:"first_contact"`
	LastContact       time.Time    `json:"last_contact"`
	MessageCount      int          `json:"message_count"`
	AutoReplySent     int          `json:"auto_reply_sent"`
	QuizzesTaken      int          `json:"quizzes_taken"`
	PollsParticipated int          `json:"polls_participated"`
	QuizHistory       []QuizResult `json:"quiz_history,omitempty"`
}

// QuizResult is one completed quiz in a contact's history.
type QuizResult struct {
	QuizID         string        `json:"quiz_id"`
	Score          int           `json:"score"`
	TotalQuestions int           `json:"total_questions"`
	Percentage     int           `json:"percentage"`
	CompletedAt    time.Time     `json:"completed_at"`
	Duration       time.Duration `json:"duration"`
}

// quizHistoryLimit caps how many results are kept per contact.
const quizHistoryLimit = 10

// store is the on-disk shape of users.json.
type store struct {
	AutoReplySent map[string]int    `json:"auto_reply_sent"`
	UserStats     map[string]*Stats `json:"user_stats"`
}

func newStore() *store {
	return &store{
		AutoReplySent: make(map[string]int),
		UserStats:     make(map[string]*Stats),
	}
}
