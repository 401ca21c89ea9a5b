// Package model defines shared data structures.
package model

import "time"

// Config defines typing test settings.
type Config struct {
	Words        int
	WordListPath string
	MaxWidth     int
	Seed         int64
}

// Result captures the metrics of a completed typing test.
type Result struct {
	WPM                 float64
	RawWPM              float64
	Accuracy            float64
	CharactersTyped     int
	CorrectCharacters   int
	IncorrectCharacters int
	Elapsed             time.Duration
}
