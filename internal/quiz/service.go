package quiz

import (
	"context"
	"strconv"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"tamstore-bot/internal/logger"
	"tamstore-bot/internal/user"
)

// StatsSink receives participation events for the user statistics store.
type StatsSink interface {
	RecordQuizTaken(userID string) error
	RecordPollParticipation(userID string) error
	AppendQuizResult(userID string, result user.QuizResult) error
}

// staleAfter is how long an untouched session survives before the
// periodic cleanup removes it.
const staleAfter = time.Hour

// Service runs quiz and poll sessions. Sessions live in memory; only
// poll tallies and finished quiz results are persisted.
type Service struct {
	repo  Repository
	stats StatsSink

	mu           sync.Mutex
	quizSessions map[string]*Session
	pollSessions map[string]PollSession

	now func() time.Time
}

func NewService(repo Repository, stats StatsSink) *Service {
	return &Service{
		repo:         repo,
		stats:        stats,
		quizSessions: make(map[string]*Session),
		pollSessions: make(map[string]PollSession),
		now:          time.Now,
	}
}

func (s *Service) QuizList() string {
	return quizListText(s.repo.Quizzes())
}

func (s *Service) PollList() string {
	return pollListText(s.repo.Polls())
}

// StartQuiz opens a quiz session for the 1-based quiz number. The first
// question is held back until the user types "mulai".
func (s *Service) StartQuiz(ctx context.Context, userID string, number int) (string, error) {
	quizzes := s.repo.Quizzes()
	if number < 1 || number > len(quizzes) {
		return "❌ Nomor kuis tidak valid. Ketik *kuis* untuk melihat daftar.", ErrQuizNotFound
	}
	q := quizzes[number-1]
	if len(q.Questions) == 0 {
		return "❌ Kuis ini belum memiliki pertanyaan. Ketik *kuis* untuk melihat daftar.", ErrQuizNotFound
	}

	s.mu.Lock()
	s.quizSessions[userID] = &Session{QuizID: q.ID, StartTime: s.now()}
	delete(s.pollSessions, userID)
	s.mu.Unlock()

	if err := s.stats.RecordQuizTaken(userID); err != nil {
		logger.FromCtx(ctx).Warn("record quiz taken", zap.Error(err))
	}
	logger.FromCtx(ctx).Info("quiz started", zap.String("quiz_id", q.ID))

	return quizIntroText(&q), nil
}

// StartPoll opens a poll session for the 1-based poll number.
func (s *Service) StartPoll(ctx context.Context, userID string, number int) (string, error) {
	polls := s.repo.Polls()
	if number < 1 || number > len(polls) {
		return "❌ Nomor polling tidak valid. Ketik *poll* untuk melihat daftar.", ErrPollNotFound
	}
	p := polls[number-1]

	s.mu.Lock()
	s.pollSessions[userID] = PollSession{PollID: p.ID, StartTime: s.now()}
	delete(s.quizSessions, userID)
	s.mu.Unlock()

	if err := s.stats.RecordPollParticipation(userID); err != nil {
		logger.FromCtx(ctx).Warn("record poll participation", zap.Error(err))
	}
	logger.FromCtx(ctx).Info("poll started", zap.String("poll_id", p.ID))

	return pollPromptText(&p), nil
}

func (s *Service) InQuiz(userID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.quizSessions[userID]
	return ok
}

func (s *Service) InPoll(userID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.pollSessions[userID]
	return ok
}

// HandleQuizAnswer advances the user's quiz session: "mulai" reveals the
// first question, then answers A-D are scored one by one.
func (s *Service) HandleQuizAnswer(ctx context.Context, userID, input string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.quizSessions[userID]
	if !ok {
		return "", ErrNoSession
	}
	q, ok := s.repo.QuizByID(sess.QuizID)
	if !ok || len(q.Questions) == 0 || sess.CurrentQuestion >= len(q.Questions) {
		// The quiz file changed under the session.
		delete(s.quizSessions, userID)
		return "", ErrQuizNotFound
	}

	answer := strings.ToLower(strings.TrimSpace(input))

	if !sess.Started {
		if answer != "mulai" {
			return "🚀 Ketik *mulai* untuk memulai kuis!", ErrInvalidAnswer
		}
		sess.Started = true
		return questionText(q, 0), nil
	}

	if answer < "a" || answer > "d" || len(answer) != 1 {
		return "❌ Jawaban tidak valid. Pilih A, B, C, atau D.", ErrInvalidAnswer
	}

	question := q.Questions[sess.CurrentQuestion]
	correct := strings.EqualFold(answer, question.Correct)
	sess.Answers = append(sess.Answers, Answer{
		QuestionID: question.ID,
		Answer:     strings.ToUpper(answer),
		Correct:    correct,
	})
	if correct {
		sess.Score++
	}
	sess.CurrentQuestion++

	reply := answerFeedbackText(question, answer, correct)

	if sess.CurrentQuestion < len(q.Questions) {
		return reply + "\n\n" + questionText(q, sess.CurrentQuestion), nil
	}
	return reply + "\n\n" + s.finishQuiz(ctx, userID, q, sess), nil
}

// finishQuiz is called with s.mu held.
func (s *Service) finishQuiz(ctx context.Context, userID string, q *Quiz, sess *Session) string {
	delete(s.quizSessions, userID)

	now := s.now()
	result := user.QuizResult{
		QuizID:         q.ID,
		Score:          sess.Score,
		TotalQuestions: len(q.Questions),
		Percentage:     sess.Score * 100 / len(q.Questions),
		CompletedAt:    now,
		Duration:       now.Sub(sess.StartTime),
	}
	if err := s.stats.AppendQuizResult(userID, result); err != nil {
		logger.FromCtx(ctx).Warn("append quiz result", zap.Error(err))
	}
	logger.FromCtx(ctx).Info("quiz finished",
		zap.String("quiz_id", q.ID),
		zap.Int("score", sess.Score),
	)

	return quizResultText(q, sess.Score)
}

// HandlePollVote records the user's 1-based option choice and replies
// with the updated tally.
func (s *Service) HandlePollVote(ctx context.Context, userID, input string) (string, error) {
	s.mu.Lock()
	sess, ok := s.pollSessions[userID]
	s.mu.Unlock()
	if !ok {
		return "", ErrNoSession
	}

	p, ok := s.repo.PollByID(sess.PollID)
	if !ok {
		s.endPoll(userID)
		return "", ErrPollNotFound
	}

	choice, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil || choice < 1 || choice > len(p.Options) {
		return "❌ Pilihan tidak valid. Pilih nomor yang tersedia.", ErrInvalidVote
	}
	option := p.Options[choice-1]

	updated, err := s.repo.RecordVote(p.ID, option)
	if err != nil {
		return "", err
	}
	s.endPoll(userID)

	logger.FromCtx(ctx).Info("poll vote recorded",
		zap.String("poll_id", p.ID),
		zap.String("option", option),
	)
	return pollResultText(updated, option), nil
}

func (s *Service) endPoll(userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.pollSessions, userID)
}

// CleanupStale drops quiz and poll sessions untouched for over an hour
// and reports how many were removed.
func (s *Service) CleanupStale() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := s.now().Add(-staleAfter)
	removed := 0

	for id, sess := range s.quizSessions {
		if sess.StartTime.Before(cutoff) {
			delete(s.quizSessions, id)
			removed++
		}
	}
	for id, sess := range s.pollSessions {
		if sess.StartTime.Before(cutoff) {
			delete(s.pollSessions, id)
			removed++
		}
	}
	return removed
}
