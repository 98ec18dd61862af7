// Package session holds the state of one categorization pass over imported
// transactions: the source list, a cursor, and the accumulated output.
package session

import (
	"github.com/VeteranWolfy/track-finance/internal/model"
	"github.com/VeteranWolfy/track-finance/internal/patterns"
)

// Session is an explicit categorization workflow: no ambient state, handlers
// receive it by reference.
type Session struct {
	Source []model.Transaction
	Cursor int
	Output []model.Transaction
}

// New creates a session over txns with the cursor at the start.
func New(txns []model.Transaction) *Session {
	return &Session{Source: txns}
}

// Current returns the transaction under the cursor.
func (s *Session) Current() (model.Transaction, bool) {
	if s.Cursor < 0 || s.Cursor >= len(s.Source) {
		return model.Transaction{}, false
	}
	return s.Source[s.Cursor], true
}

// Next advances the cursor, reporting whether it moved.
func (s *Session) Next() bool {
	if s.Cursor >= len(s.Source)-1 {
		return false
	}
	s.Cursor++
	return true
}

// Prev moves the cursor back, reporting whether it moved.
func (s *Session) Prev() bool {
	if s.Cursor <= 0 {
		return false
	}
	s.Cursor--
	return true
}

// Categorize assigns the category for key to the current transaction,
// appends it to the output, and advances the cursor. Unlike Next, the cursor
// moves past the end after the last transaction so Current reports done. It
// reports whether a transaction was categorized.
func (s *Session) Categorize(key rune) bool {
	current, ok := s.Current()
	if !ok {
		return false
	}
	current.Category = model.CategoryForKey(key)
	s.Output = append(s.Output, current)
	s.Cursor++
	return true
}

// Remaining returns how many source transactions lie at or after the
// cursor.
func (s *Session) Remaining() int {
	if s.Cursor >= len(s.Source) {
		return 0
	}
	return len(s.Source) - s.Cursor
}

// AutoCategorize categorizes every source transaction with the pattern
// suggester and returns the output list. The cursor ends past the last
// transaction.
func (s *Session) AutoCategorize() []model.Transaction {
	for _, t := range s.Source[s.Cursor:] {
		t.Category = patterns.SuggestCategory(t.Description)
		s.Output = append(s.Output, t)
	}
	s.Cursor = len(s.Source)
	return s.Output
}
