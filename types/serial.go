package types

// ------------------------
// Serial
// ------------------------

type Parity uint8

const (
	ParityNone Parity = iota
	ParityEven
	ParityOdd
)

func (p Parity) String() string {
	switch p {
	case ParityEven:
		return "even"
	case ParityOdd:
		return "odd"
	default:
		return "none"
	}
}

// Letter returns the conventional frame-format letter (N, E, O).
func (p Parity) Letter() byte {
	switch p {
	case ParityEven:
		return 'E'
	case ParityOdd:
		return 'O'
	default:
		return 'N'
	}
}

// SerialConfig is the full line setting applied to one port.
type SerialConfig struct {
	Baud     uint32 // 0 selects the driver default
	DataBits uint8
	Parity   Parity
	StopBits uint8
}

// Default8N1 returns 8 data bits, no parity, 1 stop bit at baud.
func Default8N1(baud uint32) SerialConfig {
	return SerialConfig{Baud: baud, DataBits: 8, Parity: ParityNone, StopBits: 1}
}

// Format renders the frame format as e.g. "8N1".
func (c SerialConfig) Format() string {
	return string([]byte{'0' + c.DataBits%10, c.Parity.Letter(), '0' + c.StopBits%10})
}

// ParseFormat decodes "8N1"-style notation. Parity letters are
// case-insensitive. ok is false for anything outside 5..8 / N,E,O / 1..2.
func ParseFormat(s string) (dataBits uint8, parity Parity, stopBits uint8, ok bool) {
	if len(s) != 3 {
		return 0, ParityNone, 0, false
	}
	if s[0] < '5' || s[0] > '8' {
		return 0, ParityNone, 0, false
	}
	switch s[1] {
	case 'N', 'n':
		parity = ParityNone
	case 'E', 'e':
		parity = ParityEven
	case 'O', 'o':
		parity = ParityOdd
	default:
		return 0, ParityNone, 0, false
	}
	if s[2] != '1' && s[2] != '2' {
		return 0, ParityNone, 0, false
	}
	return s[0] - '0', parity, s[2] - '0', true
}

type SerialInfo struct {
	Port   uint8
	Baud   uint32 // 0 if unspecified
	Format string
}
