package session

import (
	"reflect"
	"testing"
)

func typeWord(w *Word, glyphs ...string) {
	for _, g := range glyphs {
		w.Update(g, len(w.WrittenChars))
	}
}

func TestWordCorrectWhenTypedExactly(t *testing.T) {
	w := NewWord("casa")
	typeWord(w, "c", "a", "s", "a")
	if !w.IsCorrect() {
		t.Fatalf("expected exact word to be correct")
	}
	for i, c := range w.Chars {
		if !c.Typed || !c.Correct {
			t.Fatalf("expected char %d to be typed and correct: %+v", i, c)
		}
	}
	if len(w.ExtraWrittenChars) != 0 {
		t.Fatalf("expected no overflow, got %v", w.ExtraWrittenChars)
	}
}

func TestWordOverflowIsNeverCorrect(t *testing.T) {
	w := NewWord("sol")
	typeWord(w, "s", "o", "l", "s")
	if w.IsCorrect() {
		t.Fatalf("expected overflow to make the word incorrect")
	}
	if !reflect.DeepEqual(w.ExtraWrittenChars, []string{"s"}) {
		t.Fatalf("unexpected overflow: %v", w.ExtraWrittenChars)
	}
	if len(w.WrittenChars) != 4 {
		t.Fatalf("expected 4 written chars, got %d", len(w.WrittenChars))
	}
}

func TestWordOmissionIsNotCorrect(t *testing.T) {
	w := NewWord("mar")
	typeWord(w, "m", "a")
	if w.IsCorrect() {
		t.Fatalf("expected incomplete word to be incorrect")
	}
}

func TestWordMistypeMarksChar(t *testing.T) {
	w := NewWord("pão")
	typeWord(w, "p", "a", "o")
	if w.Chars[1].Correct {
		t.Fatalf("expected a typed for ã to be incorrect")
	}
	if !w.Chars[0].Correct || !w.Chars[2].Correct {
		t.Fatalf("expected other chars to be correct: %+v", w.Chars)
	}
}

func TestWordUpdateThenUndoRestoresState(t *testing.T) {
	cases := []struct {
		name   string
		target string
		before []string
	}{
		{name: "in range", target: "gato", before: []string{"g", "a"}},
		{name: "first char", target: "gato", before: nil},
		{name: "overflow", target: "gato", before: []string{"g", "a", "t", "o", "x"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := NewWord(tc.target)
			typeWord(w, tc.before...)
			wantChars := append([]Character(nil), w.Chars...)
			wantWritten := append([]string{}, w.WrittenChars...)
			wantExtra := append([]string{}, w.ExtraWrittenChars...)

			at := len(w.WrittenChars)
			w.Update("z", at)
			w.UndoLast(at)

			if !reflect.DeepEqual(w.Chars, wantChars) {
				t.Fatalf("chars not restored: %+v vs %+v", w.Chars, wantChars)
			}
			if !reflect.DeepEqual(append([]string{}, w.WrittenChars...), wantWritten) {
				t.Fatalf("written not restored: %v vs %v", w.WrittenChars, wantWritten)
			}
			if !reflect.DeepEqual(append([]string{}, w.ExtraWrittenChars...), wantExtra) {
				t.Fatalf("overflow not restored: %v vs %v", w.ExtraWrittenChars, wantExtra)
			}
		})
	}
}

func TestWordUndoOnEmptyWord(t *testing.T) {
	w := NewWord("um")
	w.UndoLast(0)
	if len(w.WrittenChars) != 0 || w.Chars[0].Typed {
		t.Fatalf("expected untouched word, got %+v", w)
	}
}

func TestDrawnWidthSkipsMarks(t *testing.T) {
	w := NewWord("e\u0301ca\u0301f")
	if got := len(w.Chars); got != 6 {
		t.Fatalf("expected 6 chars, got %d", got)
	}
	if got := w.DrawnWidth(); got != 4 {
		t.Fatalf("expected width 4, got %d", got)
	}
}

func TestDrawnWidthFoldsAccentsAndCountsOverflow(t *testing.T) {
	w := NewWord("relaç´ão")
	w.ExtraWrittenChars = []string{"b", "é"}
	if got := w.DrawnWidth(); got != 9 {
		t.Fatalf("expected width 9, got %d", got)
	}
}

func TestDrawnWidthStandaloneMarks(t *testing.T) {
	w := NewWord("d'´`~¨a")
	if got := w.DrawnWidth(); got != 2 {
		t.Fatalf("expected width 2, got %d", got)
	}
}

func TestGlyphsStyles(t *testing.T) {
	w := NewWord("abc")
	typeWord(w, "a", "x", "c", "d")
	got := w.Glyphs(4, true)
	want := []StyledGlyph{
		{Glyph: "a", Style: StyleCorrect},
		{Glyph: "b", Style: StyleIncorrect},
		{Glyph: "c", Style: StyleCorrect},
		{Glyph: "d", Style: StyleCurrent},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected glyphs: %+v", got)
	}
	if got := w.Glyphs(4, false); got[3].Style != StyleOverflow {
		t.Fatalf("expected overflow style outside the current word, got %+v", got[3])
	}
}

func TestGlyphsCursorFollowsOverflow(t *testing.T) {
	w := NewWord("ab")
	typeWord(w, "a", "b", "x", "y")
	got := w.Glyphs(len(w.WrittenChars), true)
	if got[2].Style != StyleOverflow || got[3].Style != StyleCurrent {
		t.Fatalf("expected cursor on the last overflow glyph, got %+v", got)
	}
	w.UndoLast(3)
	got = w.Glyphs(len(w.WrittenChars), true)
	if len(got) != 3 || got[2].Style != StyleCurrent {
		t.Fatalf("expected cursor to move back with backspace, got %+v", got)
	}
}

func TestGlyphsCursor(t *testing.T) {
	w := NewWord("ab")
	typeWord(w, "a")
	got := w.Glyphs(1, true)
	if got[1].Style != StyleCurrent {
		t.Fatalf("expected cursor on second glyph, got %+v", got)
	}
	if got := w.Glyphs(1, false); got[1].Style != StylePlain {
		t.Fatalf("expected plain glyph outside the current word, got %+v", got)
	}
}
