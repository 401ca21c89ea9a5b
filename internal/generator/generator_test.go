package generator

import (
	"reflect"
	"testing"
)

func TestSampleCountAndMembership(t *testing.T) {
	corpus := []string{"casa", "mar", "sol"}
	words := NewWithSeed(1).Sample(corpus, 50)
	if len(words) != 50 {
		t.Fatalf("expected 50 words, got %d", len(words))
	}
	allowed := map[string]bool{"casa": true, "mar": true, "sol": true}
	for _, w := range words {
		if !allowed[w] {
			t.Fatalf("unexpected word %q", w)
		}
	}
}

func TestSampleDeterministicWithSeed(t *testing.T) {
	corpus := []string{"a", "b", "c", "d", "e"}
	first := NewWithSeed(42).Sample(corpus, 20)
	second := NewWithSeed(42).Sample(corpus, 20)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("expected identical samples, got %v and %v", first, second)
	}
}

func TestSampleWithReplacement(t *testing.T) {
	words := NewWithSeed(7).Sample([]string{"só"}, 3)
	if !reflect.DeepEqual(words, []string{"só", "só", "só"}) {
		t.Fatalf("expected repeated word, got %v", words)
	}
}

func TestSampleEmpty(t *testing.T) {
	g := NewWithSeed(1)
	if words := g.Sample(nil, 5); words != nil {
		t.Fatalf("expected nil for empty corpus, got %v", words)
	}
	if words := g.Sample([]string{"a"}, 0); words != nil {
		t.Fatalf("expected nil for zero count, got %v", words)
	}
}
