// Package quiz implements the interactive quiz and polling engine:
// quizzes stepped through question by question with scoring, and
// single-question polls with persisted vote tallies.
package quiz

import "time"

// Question is one multiple-choice quiz question. Options carry their own
// letter prefix ("A. ..."); Correct holds the letter.
type Question struct {
	ID          string   `json:"id"`
	Question    string   `json:"question"`
	Options     []string `json:"options"`
	Correct     string   `json:"correct"`
	Explanation string   `json:"explanation"`
}

type Quiz struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Questions   []Question `json:"questions"`
}

// Poll is a single-question vote. Results maps option text to vote count
// and is persisted across restarts.
type Poll struct {
	ID       string         `json:"id"`
	Title    string         `json:"title"`
	Question string         `json:"question"`
	Options  []string       `json:"options"`
	Results  map[string]int `json:"results"`
}

// File is the on-disk shape of quiz.json.
type File struct {
	Quizzes []Quiz `json:"quizzes"`
	Polls   []Poll `json:"polls"`
}

// Answer records one answered question within a session.
type Answer struct {
	QuestionID string `json:"question_id"`
	Answer     string `json:"answer"`
	Correct    bool   `json:"correct"`
}

// Session is an in-progress quiz for one user. A session starts in the
// intro state; the first question is sent when the user types "mulai".
type Session struct {
	QuizID          string
	CurrentQuestion int
	Started         bool
	Score           int
	Answers         []Answer
	StartTime       time.Time
}

// PollSession marks a user as voting on a poll.
type PollSession struct {
	PollID    string
	StartTime time.Time
}
