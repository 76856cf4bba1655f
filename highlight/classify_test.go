package highlight

import (
	"testing"

	"github.com/garaekz/ved/buffer"
)

func testLang(t *testing.T) *Language {
	t.Helper()
	rs := DefaultRuleSet()
	lang := rs.ByName("c")
	if lang == nil {
		t.Fatal("default rule set missing \"c\" language")
	}
	return lang
}

func colorsOf(line *buffer.Line) []buffer.ColorClass {
	return line.Colors.Items()[:line.Chars.Len()]
}

func TestClassifyNumber(t *testing.T) {
	line := buffer.NewLineFromBytes([]byte("123"))
	Classify(line, testLang(t))
	for i, c := range colorsOf(line) {
		if c != buffer.ColorNumber {
			t.Fatalf("byte %d: got %v, want ColorNumber", i, c)
		}
	}
}

func TestClassifyString(t *testing.T) {
	line := buffer.NewLineFromBytes([]byte(`"hi"`))
	Classify(line, testLang(t))
	for i, c := range colorsOf(line) {
		if c != buffer.ColorString {
			t.Fatalf("byte %d: got %v, want ColorString", i, c)
		}
	}
}

func TestClassifyUnterminatedString(t *testing.T) {
	line := buffer.NewLineFromBytes([]byte(`"hi`))
	Classify(line, testLang(t))
	for i, c := range colorsOf(line) {
		if c != buffer.ColorString {
			t.Fatalf("byte %d: got %v, want ColorString", i, c)
		}
	}
}

func TestClassifySingleLineComment(t *testing.T) {
	line := buffer.NewLineFromBytes([]byte("x // y"))
	Classify(line, testLang(t))
	colors := colorsOf(line)
	if colors[0] != buffer.ColorEditorForeground {
		t.Fatalf("byte 0: got %v, want ColorEditorForeground", colors[0])
	}
	for i := 2; i < len(colors); i++ {
		if colors[i] != buffer.ColorComment {
			t.Fatalf("byte %d: got %v, want ColorComment", i, colors[i])
		}
	}
}

func TestClassifyKeyword(t *testing.T) {
	line := buffer.NewLineFromBytes([]byte("if"))
	Classify(line, testLang(t))
	for i, c := range colorsOf(line) {
		if c != buffer.ColorKeyword {
			t.Fatalf("byte %d: got %v, want ColorKeyword", i, c)
		}
	}
}

func TestClassifyIdentifierNotKeyword(t *testing.T) {
	line := buffer.NewLineFromBytes([]byte("ifx"))
	Classify(line, testLang(t))
	for i, c := range colorsOf(line) {
		if c != buffer.ColorEditorForeground {
			t.Fatalf("byte %d: got %v, want ColorEditorForeground", i, c)
		}
	}
}

func TestClassifyKeywordLengthIndexed(t *testing.T) {
	// "for" (len 3) is a keyword, "fort" (len 4) is not in the table.
	line := buffer.NewLineFromBytes([]byte("fort"))
	Classify(line, testLang(t))
	for i, c := range colorsOf(line) {
		if c != buffer.ColorEditorForeground {
			t.Fatalf("byte %d: got %v, want ColorEditorForeground", i, c)
		}
	}
}

func TestClassifyNilLanguageIsDefault(t *testing.T) {
	line := buffer.NewLineFromBytes([]byte("if 1 \"x\""))
	Classify(line, nil)
	for i, c := range colorsOf(line) {
		if c != buffer.ColorEditorForeground {
			t.Fatalf("byte %d: got %v, want ColorEditorForeground", i, c)
		}
	}
}

func TestHighlightFileRecolorsAllLines(t *testing.T) {
	f := buffer.NewEmptyFile("x.c")
	f.Lines = []*buffer.Line{
		buffer.NewLineFromBytes([]byte("int x;")),
		buffer.NewLineFromBytes([]byte("123")),
	}
	HighlightFile(f, testLang(t))
	if colorsOf(f.Lines[0])[0] != buffer.ColorKeyword {
		t.Fatalf("expected \"int\" to classify as keyword")
	}
	if colorsOf(f.Lines[1])[0] != buffer.ColorNumber {
		t.Fatalf("expected \"123\" to classify as number")
	}
}
