package session

import "time"

// KeyKind classifies a decoded key press.
type KeyKind int

const (
	KeyUnknown KeyKind = iota
	KeyGlyph
	KeySpace
	KeyBackspace
)

// Key is a decoded key press.
type Key struct {
	Kind  KeyKind
	Glyph string
}

// Session owns the words of a test and the typing cursor.
type Session struct {
	words      []*Word
	wordIndex  int
	charIndex  int
	startedAt  time.Time
	finishedAt time.Time
	clock      func() time.Time
}

// Option configures a Session.
type Option func(*Session)

// WithClock overrides the time source used for the test timer.
func WithClock(clock func() time.Time) Option {
	return func(s *Session) {
		s.clock = clock
	}
}

// New builds a session over the given target words.
func New(targets []string, opts ...Option) *Session {
	s := &Session{
		words: make([]*Word, 0, len(targets)),
		clock: time.Now,
	}
	for _, t := range targets {
		s.words = append(s.words, NewWord(t))
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Words returns the session words in order.
func (s *Session) Words() []*Word {
	return s.words
}

// Cursor returns the current word and character index.
func (s *Session) Cursor() (word, char int) {
	return s.wordIndex, s.charIndex
}

// Done reports whether every word has been passed.
func (s *Session) Done() bool {
	return s.wordIndex >= len(s.words)
}

// Started reports whether the timer is running.
func (s *Session) Started() bool {
	return !s.startedAt.IsZero()
}

// Press applies a decoded key. It reports whether the session changed.
func (s *Session) Press(k Key) bool {
	switch k.Kind {
	case KeySpace:
		return s.Space()
	case KeyGlyph:
		return s.Type(k.Glyph)
	case KeyBackspace:
		return s.Backspace()
	default:
		return false
	}
}

// Space finalizes the current word and moves to the next one.
func (s *Session) Space() bool {
	if s.Done() {
		return false
	}
	s.start()
	w := s.words[s.wordIndex]
	w.Typed = true
	w.Correct = w.IsCorrect()
	s.wordIndex++
	s.charIndex = 0
	if s.Done() {
		s.finishedAt = s.clock()
	}
	return true
}

// Type records glyph at the cursor and advances it.
func (s *Session) Type(glyph string) bool {
	if s.Done() || glyph == "" {
		return false
	}
	s.start()
	s.words[s.wordIndex].Update(glyph, s.charIndex)
	s.charIndex++
	return true
}

// Backspace removes the last keystroke. At the start of a word it steps back
// over the separating space into the previous word, which is no longer
// finalized; its typed glyphs are kept.
func (s *Session) Backspace() bool {
	if s.Done() {
		return false
	}
	if s.charIndex > 0 {
		s.charIndex--
		s.words[s.wordIndex].UndoLast(s.charIndex)
		return true
	}
	if s.wordIndex == 0 {
		return false
	}
	s.wordIndex--
	prev := s.words[s.wordIndex]
	prev.Typed = false
	prev.Correct = false
	s.charIndex = len(prev.WrittenChars)
	return true
}

// TypedCharacters counts every keystroke currently recorded against words.
func (s *Session) TypedCharacters() int {
	total := 0
	for _, w := range s.words {
		total += len(w.WrittenChars)
	}
	return total
}

// Elapsed returns the time since the first accepted key press, frozen once
// the session is done.
func (s *Session) Elapsed() time.Duration {
	if s.startedAt.IsZero() {
		return 0
	}
	if !s.finishedAt.IsZero() {
		return s.finishedAt.Sub(s.startedAt)
	}
	return s.clock().Sub(s.startedAt)
}

// Finish finalizes every word still pending and stops the timer.
func (s *Session) Finish() {
	for _, w := range s.words {
		if !w.Typed {
			w.Typed = true
			w.Correct = w.IsCorrect()
		}
	}
	if s.finishedAt.IsZero() {
		s.finishedAt = s.clock()
	}
	s.wordIndex = len(s.words)
	s.charIndex = 0
}

func (s *Session) start() {
	if s.startedAt.IsZero() {
		s.startedAt = s.clock()
	}
}
