package session

import (
	"fmt"
	"io"

	"github.com/eiannone/keyboard"

	"github.com/VeteranWolfy/track-finance/internal/model"
	"github.com/VeteranWolfy/track-finance/internal/patterns"
)

// Run drives the session from the keyboard: digits 0-9 categorize and
// advance, 'n'/'p' move without categorizing, 'q' or Esc finishes. The
// categorized output is in s.Output afterwards.
func (s *Session) Run(w io.Writer) error {
	if err := keyboard.Open(); err != nil {
		return fmt.Errorf("opening keyboard: %w", err)
	}
	defer keyboard.Close()

	printKeyHelp(w)

	for {
		current, ok := s.Current()
		if !ok {
			fmt.Fprintln(w, "No more transactions to review.")
			return nil
		}
		printTransaction(w, s.Cursor, len(s.Source), current)

		char, key, err := keyboard.GetKey()
		if err != nil {
			return fmt.Errorf("reading key: %w", err)
		}

		switch {
		case key == keyboard.KeyEsc || char == 'q':
			return nil
		case char == 'n':
			s.Next()
		case char == 'p':
			s.Prev()
		case char >= '0' && char <= '9':
			s.Categorize(char)
			if _, more := s.Current(); !more {
				fmt.Fprintln(w, "All transactions reviewed.")
				return nil
			}
		}
	}
}

func printKeyHelp(w io.Writer) {
	fmt.Fprintln(w, "Categorize each transaction:")
	for _, key := range []rune{'1', '2', '3', '4', '5', '6', '7', '8', '9', '0'} {
		fmt.Fprintf(w, "  %c  %s\n", key, model.CategoryKeys[key])
	}
	fmt.Fprintln(w, "  n/p  next/previous   q/Esc  finish")
	fmt.Fprintln(w)
}

func printTransaction(w io.Writer, index, total int, t model.Transaction) {
	fmt.Fprintf(w, "[%d/%d] %s  %s  £%s  (suggested: %s)\n",
		index+1, total, t.DateISO(), t.Description, t.Cost.StringFixed(2),
		patterns.SuggestCategory(t.Description))
}
