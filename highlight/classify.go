package highlight

import "github.com/garaekz/ved/buffer"

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

func isIdentStart(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

func isIdentPart(b byte) bool {
	return isIdentStart(b) || isDigit(b) || b == '_'
}

// Classify assigns a ColorClass to every byte of line, in place. The pass is
// entirely line-local and meant to be re-run from scratch on any mutation to
// that line. lang may be nil, in which case every byte gets
// ColorEditorForeground.
//
// Grounded on original_source/editor.c's render_line, which walks a line
// byte by byte keeping a small amount of lookahead state (in a comment, in a
// string, in a char literal) rather than tokenizing into a separate pass.
func Classify(line *buffer.Line, lang *Language) {
	chars := line.Chars.Items()
	n := len(chars)
	colors := make([]buffer.ColorClass, n)

	if lang == nil {
		line.Colors.Clear()
		for range chars {
			line.Colors.Append(buffer.ColorEditorForeground)
		}
		return
	}

	i := 0
	for i < n {
		// Single-line comment: lead-in runs to end of line.
		if lang.Comments && lang.SingleLineComment != "" && hasPrefixAt(chars, i, lang.SingleLineComment) {
			for j := i; j < n; j++ {
				colors[j] = buffer.ColorComment
			}
			i = n
			break
		}

		// Multiline comment: open marker runs until the close marker or EOL.
		if lang.MultilineComments && lang.MultilineCommentOpen != "" && hasPrefixAt(chars, i, lang.MultilineCommentOpen) {
			start := i
			end := n
			if closeAt := indexFrom(chars, i+len(lang.MultilineCommentOpen), lang.MultilineCommentEnd); closeAt >= 0 {
				end = closeAt + len(lang.MultilineCommentEnd)
			}
			for j := start; j < end && j < n; j++ {
				colors[j] = buffer.ColorMultilineComment
			}
			i = end
			continue
		}

		// String literal: "..." inclusive of both quotes.
		if lang.Strings && chars[i] == '"' {
			end := i + 1
			for end < n && chars[end] != '"' {
				end++
			}
			if end < n {
				end++ // include closing quote
			}
			for j := i; j < end; j++ {
				colors[j] = buffer.ColorString
			}
			i = end
			continue
		}

		// Char literal: '...' inclusive of both quotes.
		if lang.Chars && chars[i] == '\'' {
			end := i + 1
			for end < n && chars[end] != '\'' {
				end++
			}
			if end < n {
				end++
			}
			for j := i; j < end; j++ {
				colors[j] = buffer.ColorChar
			}
			i = end
			continue
		}

		// Number: a run of pure digits.
		if lang.Numbers && isDigit(chars[i]) {
			start := i
			for i < n && isDigit(chars[i]) {
				i++
			}
			for j := start; j < i; j++ {
				colors[j] = buffer.ColorNumber
			}
			continue
		}

		// Identifier/keyword: [A-Za-z][A-Za-z0-9_]*
		if isIdentStart(chars[i]) {
			start := i
			i++
			for i < n && isIdentPart(chars[i]) {
				i++
			}
			class := buffer.ColorEditorForeground
			if lang.IsKeyword(string(chars[start:i])) {
				class = buffer.ColorKeyword
			}
			for j := start; j < i; j++ {
				colors[j] = class
			}
			continue
		}

		colors[i] = buffer.ColorEditorForeground
		i++
	}

	line.Colors.Clear()
	for _, c := range colors {
		line.Colors.Append(c)
	}
}

func hasPrefixAt(chars []byte, i int, prefix string) bool {
	if i+len(prefix) > len(chars) {
		return false
	}
	for k := 0; k < len(prefix); k++ {
		if chars[i+k] != prefix[k] {
			return false
		}
	}
	return true
}

func indexFrom(chars []byte, from int, needle string) int {
	if needle == "" || from > len(chars) {
		return -1
	}
	for i := from; i+len(needle) <= len(chars); i++ {
		if hasPrefixAt(chars, i, needle) {
			return i
		}
	}
	return -1
}

// HighlightFile reclassifies every line of f using lang. Called whenever a
// file's Highlight language changes (e.g. on open) rather than on every
// single-line mutation, which instead calls Classify directly.
func HighlightFile(f *buffer.File, lang *Language) {
	for _, l := range f.Lines {
		Classify(l, lang)
		l.Redraw = true
	}
}
