package user

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepository(t *testing.T) (Repository, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "users.json")
	repo, err := NewFileRepository(path)
	require.NoError(t, err)
	return repo, path
}

func TestTouch(t *testing.T) {
	repo, path := newTestRepository(t)

	first, err := repo.Touch("u1")
	require.NoError(t, err)
	assert.Equal(t, 1, first.MessageCount)
	assert.False(t, first.FirstContact.IsZero())

	second, err := repo.Touch("u1")
	require.NoError(t, err)
	assert.Equal(t, 2, second.MessageCount)
	assert.Equal(t, first.FirstContact, second.FirstContact)

	// Survives a reload.
	reloaded, err := NewFileRepository(path)
	require.NoError(t, err)
	s, ok := reloaded.Stats("u1")
	require.True(t, ok)
	assert.Equal(t, 2, s.MessageCount)
}

func TestStatsUnknownUser(t *testing.T) {
	repo, _ := newTestRepository(t)

	_, ok := repo.Stats("ghost")
	assert.False(t, ok)
}

func TestAutoReplyCounters(t *testing.T) {
	repo, _ := newTestRepository(t)

	assert.Equal(t, 0, repo.AutoReplyCount("u1"))
	require.NoError(t, repo.IncrementAutoReply("u1"))
	require.NoError(t, repo.IncrementAutoReply("u1"))
	assert.Equal(t, 2, repo.AutoReplyCount("u1"))

	require.NoError(t, repo.ResetDailyCounters())
	assert.Equal(t, 0, repo.AutoReplyCount("u1"))

	// Lifetime total keeps counting across daily resets.
	s, ok := repo.Stats("u1")
	require.True(t, ok)
	assert.Equal(t, 2, s.AutoReplySent)
}

func TestQuizHistory(t *testing.T) {
	repo, _ := newTestRepository(t)

	require.NoError(t, repo.RecordQuizTaken("u1"))
	for i := 0; i < 12; i++ {
		err := repo.AppendQuizResult("u1", QuizResult{
			QuizID:         "quiz_umum",
			Score:          i,
			TotalQuestions: 12,
			CompletedAt:    time.Now(),
		})
		require.NoError(t, err)
	}

	s, ok := repo.Stats("u1")
	require.True(t, ok)
	assert.Equal(t, 1, s.QuizzesTaken)
	require.Len(t, s.QuizHistory, 10, "history is capped")
	assert.Equal(t, 2, s.QuizHistory[0].Score, "oldest results dropped")
	assert.Equal(t, 11, s.QuizHistory[9].Score)
}

func TestAllStats(t *testing.T) {
	repo, _ := newTestRepository(t)

	_, err := repo.Touch("u1")
	require.NoError(t, err)
	_, err = repo.Touch("u2")
	require.NoError(t, err)

	all := repo.AllStats()
	assert.Len(t, all, 2)
}

func TestBackupRotation(t *testing.T) {
	repo, path := newTestRepository(t)
	backupDir := filepath.Join(filepath.Dir(path), "backup")

	_, err := repo.Touch("u1")
	require.NoError(t, err)

	require.NoError(t, repo.Backup(backupDir, 7))

	entries, err := os.ReadDir(backupDir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Regexp(t, `^users_.*\.json$`, entries[0].Name())
}
