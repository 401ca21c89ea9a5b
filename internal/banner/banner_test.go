package banner

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/verte-zerg/ppm/internal/model"
)

func TestLinesRendersArt(t *testing.T) {
	lines := Lines("87.50 ppm")
	if len(lines) < 3 {
		t.Fatalf("expected multi-line banner, got %d lines", len(lines))
	}
	if strings.Contains(strings.Join(lines, "\n"), "87.50 ppm") {
		t.Fatalf("expected art rather than plain text")
	}
}

func TestRender(t *testing.T) {
	var buf bytes.Buffer
	r := model.Result{
		WPM:                 48,
		RawWPM:              60,
		Accuracy:            0.8,
		CharactersTyped:     300,
		CorrectCharacters:   240,
		IncorrectCharacters: 60,
		Elapsed:             time.Minute,
	}
	if err := Render(&buf, r, nil); err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "80.00% ACC") || !strings.Contains(out, "60.00 ppm puro") {
		t.Fatalf("expected summary lines, got %s", out)
	}
}
