package xhash

import "testing"

func TestHash64Deterministic(t *testing.T) {
	a := Hash64([]byte("hello"))
	b := Hash64([]byte("hello"))
	if a != b {
		t.Fatalf("Hash64 not deterministic: %d != %d", a, b)
	}
}

func TestHash64DiffersOnContent(t *testing.T) {
	a := Hash64([]byte("hello"))
	b := Hash64([]byte("jello"))
	if a == b {
		t.Fatalf("Hash64 collided on distinct short strings (allowed but vanishingly unlikely here): %d", a)
	}
}

func TestHashStringMatchesHash64(t *testing.T) {
	s := "the quick brown fox"
	if HashString(s) != Hash64([]byte(s)) {
		t.Fatalf("HashString(%q) != Hash64([]byte(%q))", s, s)
	}
}
