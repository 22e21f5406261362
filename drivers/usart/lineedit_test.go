package usart_test

import (
	"testing"
)

func TestReadLineBackspaceEcho(t *testing.T) {
	d, sims := newRig(t)
	sims[0].Feed([]byte{'a', 'b', 0x08, 'c', '\r'})

	var buf [16]byte
	n := d.ReadLine(0, buf[:], true)
	if n != 2 || string(buf[:n]) != "ac" || buf[n] != 0 {
		t.Fatalf("ReadLine = %d %q", n, buf[:n+1])
	}
	if got, want := string(sims[0].TX()), "ab\b \bc\r\n"; got != want {
		t.Fatalf("echo = %q, want %q", got, want)
	}
}

func TestReadLineDELAndLF(t *testing.T) {
	d, sims := newRig(t)
	sims[1].Feed([]byte{'x', 'y', 0x7F, 0x7F, 'z', '\n', 'r', 'e', 's', 't'})

	var buf [16]byte
	n := d.ReadLine(1, buf[:], true)
	if string(buf[:n]) != "z" {
		t.Fatalf("line = %q, want z", buf[:n])
	}
	if got, want := string(sims[1].TX()), "xy\b \b\b \bz\r\n"; got != want {
		t.Fatalf("echo = %q, want %q", got, want)
	}
	if sims[1].Pending() != 4 {
		t.Fatalf("ReadLine consumed past terminator: pending=%d", sims[1].Pending())
	}
}

func TestReadLineBackspaceOnEmpty(t *testing.T) {
	d, sims := newRig(t)
	sims[0].Feed([]byte{0x08, 0x7F, '\r'})

	var buf [4]byte
	buf[0] = 'q'
	n := d.ReadLine(0, buf[:], true)
	if n != 0 || buf[0] != 0 {
		t.Fatalf("ReadLine = %d %q, want empty", n, buf[:1])
	}
	if got := string(sims[0].TX()); got != "\r\n" {
		t.Fatalf("echo = %q, want only CR LF", got)
	}
}

func TestReadLineNoEcho(t *testing.T) {
	d, sims := newRig(t)
	sims[0].FeedString("secret\b!\r")

	var buf [16]byte
	n := d.ReadLine(0, buf[:], false)
	if string(buf[:n]) != "secre!" {
		t.Fatalf("line = %q", buf[:n])
	}
	if len(sims[0].TX()) != 0 {
		t.Fatalf("echo with echo=false: %q", sims[0].TX())
	}
}

func TestReadLineCapacity(t *testing.T) {
	d, sims := newRig(t)
	sims[0].FeedString("abcdef\r")

	var buf [3]byte
	n := d.ReadLine(0, buf[:], true)
	if n != 2 || string(buf[:2]) != "ab" || buf[2] != 0 {
		t.Fatalf("ReadLine = %d %q", n, buf[:])
	}
	// Discarded bytes are not echoed.
	if got, want := string(sims[0].TX()), "ab\r\n"; got != want {
		t.Fatalf("echo = %q, want %q", got, want)
	}
	if sims[0].Pending() != 0 {
		t.Fatalf("pending = %d", sims[0].Pending())
	}
}

func TestReadLineBackspaceAfterFull(t *testing.T) {
	d, sims := newRig(t)
	sims[0].Feed([]byte{'a', 'b', 'c', 0x08, 'd', '\r'})

	var buf [3]byte
	n := d.ReadLine(0, buf[:], false)
	if string(buf[:n]) != "ad" {
		t.Fatalf("line = %q, want ad", buf[:n])
	}
}

func TestReadLineCapacityOne(t *testing.T) {
	d, sims := newRig(t)
	sims[0].FeedString("abc\r")

	buf := []byte{'x'}
	if n := d.ReadLine(0, buf, true); n != 0 || buf[0] != 0 {
		t.Fatalf("ReadLine = %d %q", n, buf)
	}
	if got := string(sims[0].TX()); got != "\r\n" {
		t.Fatalf("echo = %q", got)
	}
}

func TestReadLineZeroCapacity(t *testing.T) {
	d, sims := newRig(t)
	sims[0].FeedString("abc\r")
	if n := d.ReadLine(0, nil, true); n != 0 {
		t.Fatalf("ReadLine(nil) = %d", n)
	}
	if sims[0].Pending() != 4 || sims[0].Writes() != 0 {
		t.Fatalf("ReadLine(nil) touched the port")
	}
}

func TestStreamReadLine(t *testing.T) {
	d, sims := newRig(t)
	sims[3].FeedString("42\r")
	var buf [8]byte
	n := d.Stream(3).ReadLine(buf[:], false)
	if string(buf[:n]) != "42" {
		t.Fatalf("line = %q", buf[:n])
	}
}
