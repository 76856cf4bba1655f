// Package command implements the minibar command-line grammar: `split`,
// `theme`, and `close`, parsed by a small set of recursive-descent
// scanner helpers in the teacher's spirit of a hand-rolled cursor over a
// byte slice rather than a generated parser.
//
// Grounded on original_source/editor.c's skip_spaces/skip_to_start_of_line/
// skip_identifier/read_identifier/skip_char/read_number and handle_command
// (spec.md §4.6).
package command

import "fmt"

// Kind identifies which command a parsed line represents.
type Kind int

const (
	KindUnknown         Kind = iota
	KindSplitVertical        // "split -": stacked top/bottom
	KindSplitHorizontal      // "split |": side by side
	KindTheme
	KindClose
)

// Command is the result of parsing one minibar command line.
type Command struct {
	Kind Kind

	// ThemeArg is the text following "theme", with leading spaces skipped
	// and the rest kept verbatim — either a number or a name — for
	// KindTheme; resolving it against a theme
	// table is the caller's job (theme.Table.Resolve).
	ThemeArg string
}

// scanner is a cursor over a byte slice, mirroring the original's
// char** cursor idiom as a Go value type instead of a pointer-to-pointer.
type scanner struct {
	data []byte
	pos  int
}

func (s *scanner) skipSpaces() {
	for s.pos < len(s.data) && s.data[s.pos] == ' ' {
		s.pos++
	}
}

func (s *scanner) skipIdentifier(keyword string) bool {
	s.skipSpaces()
	if len(s.data)-s.pos < len(keyword) {
		return false
	}
	if string(s.data[s.pos:s.pos+len(keyword)]) != keyword {
		return false
	}
	s.pos += len(keyword)
	return true
}

func (s *scanner) skipChar(c byte) bool {
	s.skipSpaces()
	if s.pos < len(s.data) && s.data[s.pos] == c {
		s.pos++
		return true
	}
	return false
}

func isIdentifierLiteral(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || (b >= '0' && b <= '9') || b == '_' || b == '-' || b == '.' || b == '/'
}

func (s *scanner) readIdentifier() string {
	s.skipSpaces()
	start := s.pos
	for s.pos < len(s.data) && isIdentifierLiteral(s.data[s.pos]) {
		s.pos++
	}
	return string(s.data[start:s.pos])
}

func (s *scanner) rest() string {
	s.skipSpaces()
	return string(s.data[s.pos:])
}

// ErrUnknownCommand is returned by Parse when the line matches none of
// the known command grammars, carrying the offending text for
// display_error-style reporting.
type ErrUnknownCommand struct {
	Line string
}

func (e ErrUnknownCommand) Error() string {
	return fmt.Sprintf("unknown command `%s`", e.Line)
}

// Parse interprets one minibar command-mode line.
func Parse(line []byte) (Command, error) {
	s := &scanner{data: line}

	switch {
	case s.skipIdentifier("split"):
		switch {
		case s.skipChar('-'):
			return Command{Kind: KindSplitVertical}, nil
		case s.skipChar('|'):
			return Command{Kind: KindSplitHorizontal}, nil
		default:
			return Command{}, fmt.Errorf("cant split")
		}
	case s.skipIdentifier("theme"):
		return Command{Kind: KindTheme, ThemeArg: s.rest()}, nil
	case s.skipIdentifier("close"):
		return Command{Kind: KindClose}, nil
	default:
		return Command{}, ErrUnknownCommand{Line: string(line)}
	}
}
