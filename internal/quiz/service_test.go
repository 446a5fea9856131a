package quiz

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tamstore-bot/internal/storage"
	"tamstore-bot/internal/user"
)

type statsSpy struct {
	quizzes int
	polls   int
	results []user.QuizResult
}

func (s *statsSpy) RecordQuizTaken(string) error { s.quizzes++; return nil }

func (s *statsSpy) RecordPollParticipation(string) error { s.polls++; return nil }

func (s *statsSpy) AppendQuizResult(_ string, r user.QuizResult) error {
	s.results = append(s.results, r)
	return nil
}

func fixtureFile() *File {
	return &File{
		Quizzes: []Quiz{{
			ID:          "quiz_produk",
			Title:       "Kuis Produk",
			Description: "Seberapa kenal Anda dengan produk kami?",
			Questions: []Question{
				{
					ID:          "q1",
					Question:    "Apa warna logo toko?",
					Options:     []string{"A. Merah", "B. Biru", "C. Hijau", "D. Kuning"},
					Correct:     "B",
					Explanation: "Logo toko berwarna biru.",
				},
				{
					ID:          "q2",
					Question:    "Berapa lama garansi produk?",
					Options:     []string{"A. 1 bulan", "B. 3 bulan", "C. 6 bulan", "D. 1 tahun"},
					Correct:     "D",
					Explanation: "Semua produk bergaransi 1 tahun.",
				},
			},
		}},
		Polls: []Poll{{
			ID:       "poll_produk",
			Title:    "Produk Favorit",
			Question: "Produk apa yang paling Anda suka?",
			Options:  []string{"Headset", "Mouse", "Keyboard"},
			Results:  map[string]int{"Headset": 2},
		}},
	}
}

func newTestService(t *testing.T) (*Service, *statsSpy, string) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "quiz.json")
	require.NoError(t, storage.Save(path, fixtureFile()))

	repo, err := NewFileRepository(path)
	require.NoError(t, err)

	stats := &statsSpy{}
	return NewService(repo, stats), stats, path
}

func TestQuizList(t *testing.T) {
	svc, _, _ := newTestService(t)

	text := svc.QuizList()
	assert.Contains(t, text, "DAFTAR KUIS")
	assert.Contains(t, text, "Kuis Produk")
	assert.Contains(t, text, "2 pertanyaan")
}

func TestStartQuiz(t *testing.T) {
	ctx := context.Background()

	t.Run("InvalidNumber", func(t *testing.T) {
		svc, _, _ := newTestService(t)

		for _, n := range []int{0, 2, -1} {
			_, err := svc.StartQuiz(ctx, "u1", n)
			assert.ErrorIs(t, err, ErrQuizNotFound, "number %d", n)
		}
		assert.False(t, svc.InQuiz("u1"))
	})

	t.Run("OpensSessionAndCountsParticipation", func(t *testing.T) {
		svc, stats, _ := newTestService(t)

		reply, err := svc.StartQuiz(ctx, "u1", 1)
		require.NoError(t, err)
		assert.Contains(t, reply, "Kuis Produk")
		assert.Contains(t, reply, "Ketik *mulai*")
		assert.True(t, svc.InQuiz("u1"))
		assert.Equal(t, 1, stats.quizzes)
	})
}

func TestHandleQuizAnswer(t *testing.T) {
	ctx := context.Background()

	t.Run("RequiresMulaiBeforeQuestions", func(t *testing.T) {
		svc, _, _ := newTestService(t)
		_, err := svc.StartQuiz(ctx, "u1", 1)
		require.NoError(t, err)

		reply, err := svc.HandleQuizAnswer(ctx, "u1", "a")
		assert.ErrorIs(t, err, ErrInvalidAnswer)
		assert.Contains(t, reply, "mulai")

		reply, err = svc.HandleQuizAnswer(ctx, "u1", "MULAI")
		require.NoError(t, err)
		assert.Contains(t, reply, "PERTANYAAN 1/2")
		assert.Contains(t, reply, "Apa warna logo toko?")
	})

	t.Run("RejectsNonLetterAnswers", func(t *testing.T) {
		svc, _, _ := newTestService(t)
		_, err := svc.StartQuiz(ctx, "u1", 1)
		require.NoError(t, err)
		_, err = svc.HandleQuizAnswer(ctx, "u1", "mulai")
		require.NoError(t, err)

		for _, input := range []string{"e", "1", "ab", ""} {
			_, err := svc.HandleQuizAnswer(ctx, "u1", input)
			assert.ErrorIs(t, err, ErrInvalidAnswer, "input %q", input)
		}
	})

	t.Run("ScoresAndFinishes", func(t *testing.T) {
		svc, stats, _ := newTestService(t)
		_, err := svc.StartQuiz(ctx, "u1", 1)
		require.NoError(t, err)
		_, err = svc.HandleQuizAnswer(ctx, "u1", "mulai")
		require.NoError(t, err)

		// Wrong answer: correct is B.
		reply, err := svc.HandleQuizAnswer(ctx, "u1", "a")
		require.NoError(t, err)
		assert.Contains(t, reply, "SALAH")
		assert.Contains(t, reply, "Jawaban yang benar: *B*")
		assert.Contains(t, reply, "PERTANYAAN 2/2")

		// Right answer finishes the quiz.
		reply, err = svc.HandleQuizAnswer(ctx, "u1", "d")
		require.NoError(t, err)
		assert.Contains(t, reply, "BENAR")
		assert.Contains(t, reply, "KUIS SELESAI")
		assert.Contains(t, reply, "Benar: 1/2")
		assert.Contains(t, reply, "50%")

		assert.False(t, svc.InQuiz("u1"))
		require.Len(t, stats.results, 1)
		assert.Equal(t, 1, stats.results[0].Score)
		assert.Equal(t, 50, stats.results[0].Percentage)
	})

	t.Run("NoSession", func(t *testing.T) {
		svc, _, _ := newTestService(t)
		_, err := svc.HandleQuizAnswer(ctx, "u1", "a")
		assert.ErrorIs(t, err, ErrNoSession)
	})
}

func TestPollFlow(t *testing.T) {
	ctx := context.Background()

	t.Run("ListAndStart", func(t *testing.T) {
		svc, stats, _ := newTestService(t)

		assert.Contains(t, svc.PollList(), "Produk Favorit")

		reply, err := svc.StartPoll(ctx, "u1", 1)
		require.NoError(t, err)
		assert.Contains(t, reply, "Produk apa yang paling Anda suka?")
		assert.True(t, svc.InPoll("u1"))
		assert.Equal(t, 1, stats.polls)
	})

	t.Run("InvalidNumber", func(t *testing.T) {
		svc, _, _ := newTestService(t)
		_, err := svc.StartPoll(ctx, "u1", 9)
		assert.ErrorIs(t, err, ErrPollNotFound)
	})

	t.Run("VotePersistsTally", func(t *testing.T) {
		svc, _, path := newTestService(t)
		_, err := svc.StartPoll(ctx, "u1", 1)
		require.NoError(t, err)

		_, err = svc.HandlePollVote(ctx, "u1", "banyak")
		assert.ErrorIs(t, err, ErrInvalidVote)

		reply, err := svc.HandlePollVote(ctx, "u1", "2")
		require.NoError(t, err)
		assert.Contains(t, reply, "Pilihan Anda: Mouse")
		assert.Contains(t, reply, "Total Partisipan: 3")
		assert.False(t, svc.InPoll("u1"))

		// Tally written back to quiz.json.
		saved := &File{}
		require.NoError(t, storage.Load(path, saved))
		assert.Equal(t, 1, saved.Polls[0].Results["Mouse"])
		assert.Equal(t, 2, saved.Polls[0].Results["Headset"])
	})
}

func TestStartQuizReplacesPollSession(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestService(t)

	_, err := svc.StartPoll(ctx, "u1", 1)
	require.NoError(t, err)
	_, err = svc.StartQuiz(ctx, "u1", 1)
	require.NoError(t, err)

	assert.True(t, svc.InQuiz("u1"))
	assert.False(t, svc.InPoll("u1"))
}

func TestCleanupStale(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestService(t)

	base := time.Date(2026, 8, 31, 9, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return base }

	_, err := svc.StartQuiz(ctx, "u1", 1)
	require.NoError(t, err)
	_, err = svc.StartPoll(ctx, "u2", 1)
	require.NoError(t, err)

	svc.now = func() time.Time { return base.Add(30 * time.Minute) }
	assert.Equal(t, 0, svc.CleanupStale())

	svc.now = func() time.Time { return base.Add(61 * time.Minute) }
	assert.Equal(t, 2, svc.CleanupStale())
	assert.False(t, svc.InQuiz("u1"))
	assert.False(t, svc.InPoll("u2"))
}

// stubRepo lets a test change the quiz data under an open session.
type stubRepo struct {
	quiz Quiz
}

func (s *stubRepo) Quizzes() []Quiz { return []Quiz{s.quiz} }

func (s *stubRepo) QuizByID(id string) (*Quiz, bool) {
	if id != s.quiz.ID {
		return nil, false
	}
	cp := s.quiz
	return &cp, true
}

func (s *stubRepo) Polls() []Poll { return nil }

func (s *stubRepo) PollByID(string) (*Poll, bool) { return nil, false }

func (s *stubRepo) RecordVote(string, string) (*Poll, error) { return nil, ErrPollNotFound }

func TestStartQuizWithoutQuestions(t *testing.T) {
	ctx := context.Background()
	repo := &stubRepo{quiz: Quiz{ID: "quiz_kosong", Title: "Kuis Kosong"}}
	svc := NewService(repo, &statsSpy{})

	reply, err := svc.StartQuiz(ctx, "u1", 1)
	assert.ErrorIs(t, err, ErrQuizNotFound)
	assert.Contains(t, reply, "belum memiliki pertanyaan")
	assert.False(t, svc.InQuiz("u1"))
}

func TestQuizAnswerAfterQuestionsRemoved(t *testing.T) {
	ctx := context.Background()
	repo := &stubRepo{quiz: Quiz{
		ID:    "quiz_produk",
		Title: "Kuis Produk",
		Questions: []Question{{
			ID:       "q1",
			Question: "Apa warna logo toko?",
			Options:  []string{"A. Merah", "B. Biru"},
			Correct:  "B",
		}},
	}}
	svc := NewService(repo, &statsSpy{})

	_, err := svc.StartQuiz(ctx, "u1", 1)
	require.NoError(t, err)

	repo.quiz.Questions = nil

	reply, err := svc.HandleQuizAnswer(ctx, "u1", "mulai")
	assert.ErrorIs(t, err, ErrQuizNotFound)
	assert.Empty(t, reply)
	assert.False(t, svc.InQuiz("u1"))
}
