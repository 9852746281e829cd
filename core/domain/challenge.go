// ABOUTME: ChallengeState domain model holds the yearly reading-challenge counters
// ABOUTME: Validated against a plausibility bound before being accepted

package domain

import (
	"errors"
	"fmt"
)

// MaxPlausibleGoal bounds the yearly challenge goal. Matches outside the
// bound come from coincidental number pairs in page text, not the widget.
const MaxPlausibleGoal = 500

// ChallengeState holds the yearly "books read vs. goal" counters scraped
// independently of the per-book activity data.
type ChallengeState struct {
	BooksRead int `json:"books_read"`
	BooksGoal int `json:"books_goal"`
}

// NewChallengeState builds a ChallengeState, rejecting implausible counters.
func NewChallengeState(read, goal int) (*ChallengeState, error) {
	s := &ChallengeState{BooksRead: read, BooksGoal: goal}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// Validate enforces 0 <= read <= goal <= MaxPlausibleGoal.
func (s *ChallengeState) Validate() error {
	if s.BooksRead < 0 {
		return errors.New("books read cannot be negative")
	}
	if s.BooksRead > s.BooksGoal {
		return errors.New("books read cannot exceed goal")
	}
	if s.BooksGoal > MaxPlausibleGoal {
		return errors.New("goal exceeds plausibility bound")
	}
	return nil
}

// String formats the counters for display, e.g. "12 of 30 books".
func (s *ChallengeState) String() string {
	return fmt.Sprintf("%d of %d books", s.BooksRead, s.BooksGoal)
}
