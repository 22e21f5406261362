// Package ansi emits the small ANSI/VT100 subset used by the serial console:
// clear screen, absolute cursor positioning and foreground colour. Each call
// writes one complete escape sequence; no terminal state is tracked.
package ansi

import "io"

// Color is an SGR foreground code.
type Color uint8

const (
	Reset   Color = 0
	Red     Color = 31
	Green   Color = 32
	Yellow  Color = 33
	Blue    Color = 34
	Magenta Color = 35
	Cyan    Color = 36
	White   Color = 37
)

const (
	esc         = 0x1B
	clearScreen = "\x1b[2J\x1b[H"
)

// ClearScreen erases the display and homes the cursor.
func ClearScreen(w io.ByteWriter) { writeString(w, clearScreen) }

// MoveCursor emits ESC [ row ; col H.
func MoveCursor(w io.ByteWriter, row, col uint8) {
	_ = w.WriteByte(esc)
	_ = w.WriteByte('[')
	putNum(w, row)
	_ = w.WriteByte(';')
	putNum(w, col)
	_ = w.WriteByte('H')
}

// SetColor emits ESC [ code m; Reset renders as ESC [ 0 m.
func SetColor(w io.ByteWriter, c Color) {
	_ = w.WriteByte(esc)
	_ = w.WriteByte('[')
	putNum(w, uint8(c))
	_ = w.WriteByte('m')
}

// putNum writes n in decimal without leading zeros.
func putNum(w io.ByteWriter, n uint8) {
	if n >= 100 {
		_ = w.WriteByte('0' + n/100)
	}
	if n >= 10 {
		_ = w.WriteByte('0' + (n/10)%10)
	}
	_ = w.WriteByte('0' + n%10)
}

func writeString(w io.ByteWriter, s string) {
	for i := 0; i < len(s); i++ {
		_ = w.WriteByte(s[i])
	}
}
