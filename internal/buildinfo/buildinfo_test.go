package buildinfo

import "testing"

func TestString(t *testing.T) {
	prev := Version
	Version = "1.2.0"
	t.Cleanup(func() { Version = prev })

	want := "yahtzee 1.2.0 (commit=none, date=unknown)"
	if got := String(); got != want {
		t.Fatalf("String() = %q, want %q", got, want)
	}
}
