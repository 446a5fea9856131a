package quiz

import "errors"

var (
	ErrQuizNotFound  = errors.New("quiz not found")
	ErrPollNotFound  = errors.New("poll not found")
	ErrInvalidAnswer = errors.New("invalid quiz answer")
	ErrInvalidVote   = errors.New("invalid poll vote")
	ErrNoSession     = errors.New("no active quiz or poll session")
)
