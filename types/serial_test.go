package types

import "testing"

func TestParseFormat(t *testing.T) {
	type C struct {
		in   string
		db   uint8
		par  Parity
		sb   uint8
		okay bool
	}
	for _, c := range []C{
		{"8N1", 8, ParityNone, 1, true},
		{"7e2", 7, ParityEven, 2, true},
		{"5O1", 5, ParityOdd, 1, true},
		{"9N1", 0, ParityNone, 0, false},
		{"8X1", 0, ParityNone, 0, false},
		{"8N3", 0, ParityNone, 0, false},
		{"8N", 0, ParityNone, 0, false},
		{"", 0, ParityNone, 0, false},
	} {
		db, par, sb, ok := ParseFormat(c.in)
		if ok != c.okay || db != c.db || par != c.par || sb != c.sb {
			t.Fatalf("ParseFormat(%q) = %d %v %d %v, want %d %v %d %v",
				c.in, db, par, sb, ok, c.db, c.par, c.sb, c.okay)
		}
	}
}

func TestSerialConfigFormat(t *testing.T) {
	if got := Default8N1(9600).Format(); got != "8N1" {
		t.Fatalf("Default8N1.Format() = %q, want 8N1", got)
	}
	c := SerialConfig{DataBits: 7, Parity: ParityOdd, StopBits: 2}
	if got := c.Format(); got != "7O2" {
		t.Fatalf("Format() = %q, want 7O2", got)
	}
}

func TestParityString(t *testing.T) {
	if ParityEven.String() != "even" || ParityOdd.String() != "odd" || Parity(9).String() != "none" {
		t.Fatalf("unexpected parity strings")
	}
}
