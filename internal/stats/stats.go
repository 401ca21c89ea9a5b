// Package stats contains result calculations and reporting.
package stats

import (
	"fmt"
	"io"
	"math"
	"strings"
	"time"

	"github.com/verte-zerg/ppm/internal/model"
	"github.com/verte-zerg/ppm/internal/session"
)

const charsPerWord = 5.0

// Compute reduces the finalized words and the elapsed time into a Result.
func Compute(words []*session.Word, elapsed time.Duration) model.Result {
	correct, incorrect := 0, 0
	for _, w := range words {
		for _, c := range w.Chars {
			if c.Correct {
				correct++
			} else {
				incorrect++
			}
		}
		incorrect += len(w.ExtraWrittenChars)
	}
	typed := correct + incorrect
	wpm, raw, acc := Metrics(correct, typed, elapsed)
	return model.Result{
		WPM:                 wpm,
		RawWPM:              raw,
		Accuracy:            acc,
		CharactersTyped:     typed,
		CorrectCharacters:   correct,
		IncorrectCharacters: incorrect,
		Elapsed:             elapsed,
	}
}

// Metrics computes WPM, raw WPM, and accuracy. Accuracy is 0 when nothing was
// typed and both speeds are 0 when no time has elapsed.
func Metrics(correct, typed int, elapsed time.Duration) (wpm, raw, accuracy float64) {
	if typed > 0 {
		accuracy = float64(correct) / float64(typed)
	}
	minutes := elapsed.Minutes()
	if minutes <= 0 {
		return 0, 0, accuracy
	}
	raw = (float64(typed) / charsPerWord) / minutes
	wpm = raw * accuracy
	return wpm, raw, accuracy
}

// FormatWPM formats the result speed for the banner, e.g. "87.50 ppm".
func FormatWPM(r model.Result) string {
	return fmt.Sprintf("%.2f ppm", floor2(r.WPM))
}

// SummaryLines returns the accuracy and raw speed lines shown under the banner.
func SummaryLines(r model.Result) []string {
	return []string{
		fmt.Sprintf("%.2f%% ACC      :      Letras escritas: %d => ✓ %d | ✕ %d",
			floor2(r.Accuracy*100),
			r.CharactersTyped,
			r.CorrectCharacters,
			r.IncorrectCharacters,
		),
		fmt.Sprintf("%.2f ppm puro  em %s", floor2(r.RawWPM), r.Elapsed.Truncate(time.Second)),
	}
}

// RenderSummary prints the summary lines.
func RenderSummary(w io.Writer, r model.Result) error {
	for _, line := range SummaryLines(r) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

// RenderMistakes prints a table of the words that were not typed correctly.
func RenderMistakes(w io.Writer, words []*session.Word) error {
	rows := [][]string{}
	for _, word := range words {
		if word.Correct {
			continue
		}
		typed := strings.Join(word.WrittenChars, "")
		if typed == "" {
			typed = "-"
		}
		rows = append(rows, []string{word.Text(), typed})
	}
	if len(rows) == 0 {
		return nil
	}
	if _, err := fmt.Fprintln(w, ""); err != nil {
		return err
	}
	for _, line := range formatTable([]string{"Palavra", "Digitado"}, rows, nil) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

func floor2(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	// The epsilon keeps exact decimals such as 0.57*100 from flooring down.
	return math.Floor(v*100+1e-9) / 100
}
