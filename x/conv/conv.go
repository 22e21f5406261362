// Package conv holds allocation-free number/text conversions for firmware.
// Output helpers write into a caller buffer from the end and return the used
// slice, so no fmt/strconv dependency is pulled into MCU builds.
package conv

const digits = "0123456789ABCDEF"

// MaxU16 is the saturation ceiling for ParseU16.
const MaxU16 = 65535

// ParseU16 scans leading ASCII digits of s and returns their value.
// Scanning stops at the first non-digit (NUL included); an empty or nil input
// yields 0. The result saturates at 65535 instead of wrapping.
func ParseU16[T ~string | ~[]byte](s T) uint16 {
	var v uint32
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < '0' || c > '9' {
			break
		}
		v = v*10 + uint32(c-'0')
		if v > MaxU16 {
			return MaxU16
		}
	}
	return uint16(v)
}

// FormatU16 writes the decimal form of v into buf and returns the used slice.
// buf should be length >= 5.
func FormatU16(buf []byte, v uint16) []byte {
	return utoa(buf, uint32(v), 10)
}

// FormatBase writes v in base 2, 10 or 16 (uppercase) into buf and returns
// the used slice. Any other base falls back to 10. buf should be length >= 16
// to hold a binary rendering.
func FormatBase(buf []byte, v uint16, base int) []byte {
	switch base {
	case 2, 10, 16:
	default:
		base = 10
	}
	return utoa(buf, uint32(v), uint32(base))
}

func utoa(buf []byte, n, base uint32) []byte {
	if len(buf) == 0 {
		return buf[:0]
	}
	i := len(buf)
	if n == 0 {
		i--
		buf[i] = '0'
		return buf[i:]
	}
	for n > 0 && i > 0 {
		i--
		buf[i] = digits[n%base]
		n /= base
	}
	return buf[i:]
}
