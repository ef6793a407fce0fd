package arena

import "testing"

func TestAllocCopyInterns(t *testing.T) {
	a := New(64)

	got, err := a.AllocCopy([]byte("hello"))
	if err != nil {
		t.Fatalf("AllocCopy() error = %v", err)
	}
	if string(got) != "hello" {
		t.Fatalf("AllocCopy() = %q, want %q", got, "hello")
	}

	// Mutating the source must not affect the interned copy.
	src := []byte("hello")
	interned, _ := a.AllocCopy(src)
	src[0] = 'x'
	if string(interned) != "hello" {
		t.Fatalf("interned copy mutated: got %q", interned)
	}
}

func TestAllocAlignment(t *testing.T) {
	a := New(64)

	if _, err := a.Alloc(3); err != nil {
		t.Fatalf("Alloc(3) error = %v", err)
	}
	if a.Used()%align != 0 {
		// Used() reflects the bump position, which must always land on an
		// alignment boundary after an allocation.
		t.Fatalf("Used() = %d, not %d-byte aligned", a.Used(), align)
	}
}

func TestAllocExhausted(t *testing.T) {
	a := New(8)

	if _, err := a.Alloc(8); err != nil {
		t.Fatalf("Alloc(8) error = %v", err)
	}
	if _, err := a.Alloc(1); err != ErrExhausted {
		t.Fatalf("Alloc(1) error = %v, want ErrExhausted", err)
	}
}

func TestCapAndUsed(t *testing.T) {
	a := New(128)
	if a.Cap() != 128 {
		t.Fatalf("Cap() = %d, want 128", a.Cap())
	}
	if a.Used() != 0 {
		t.Fatalf("Used() = %d, want 0", a.Used())
	}
	if _, err := a.Alloc(10); err != nil {
		t.Fatalf("Alloc() error = %v", err)
	}
	if a.Used() == 0 {
		t.Fatal("Used() = 0 after allocation")
	}
}
