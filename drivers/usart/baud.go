package usart

import "uartterm-go/x/mathx"

// Baud is one divisor/speed-mode solution for a requested rate.
type Baud struct {
	Requested uint32
	Divisor   uint16 // UBRRn value, 12 bits
	Double    bool   // U2Xn set: 8 clocks per bit instead of 16
	Actual    uint32 // achieved rate, truncated
	ErrorPPTT uint32 // |Actual-Requested| in parts per ten thousand
}

// CalcBaud chooses between normal (16x) and double-speed (8x) sampling for
// baud at clockHz, keeping whichever gives the lower error. Double speed wins
// ties. The divisor is masked to the 12 bits UBRRn holds; at very low rates
// the programmed divisor therefore wraps, as it does on the hardware.
// A zero baud is replaced by DefaultBaud.
func CalcBaud(clockHz, baud uint32) Baud {
	if baud == 0 {
		baud = DefaultBaud
	}
	norm := candidate(clockHz, baud, 16)
	dbl := candidate(clockHz, baud, 8)
	if dbl.ErrorPPTT <= norm.ErrorPPTT {
		return dbl
	}
	return norm
}

// candidate rounds clock/(k*baud) to the nearest divisor+1.
func candidate(clockHz, baud uint32, k uint64) Baud {
	q := mathx.RoundDiv(uint64(clockHz), k*uint64(baud))
	if q == 0 {
		q = 1
	}
	return solution(clockHz, baud, k, q)
}

func solution(clockHz, baud uint32, k, q uint64) Baud {
	actual := uint64(clockHz) / (k * q)
	return Baud{
		Requested: baud,
		Divisor:   uint16((q - 1) & divisorMask),
		Double:    k == 8,
		Actual:    uint32(actual),
		ErrorPPTT: baudError(actual, uint64(baud)),
	}
}

// baudError is |actual-target|*10000/target, saturated to uint32.
func baudError(actual, target uint64) uint32 {
	e := mathx.AbsDiff(actual, target) * 10000 / target
	if e > 0xFFFF_FFFF {
		return 0xFFFF_FFFF
	}
	return uint32(e)
}

// StandardBauds lists the rates commonly offered by terminal programs.
var StandardBauds = [...]uint32{
	300, 600, 1200, 2400, 4800, 9600, 14400, 19200, 28800, 38400,
	57600, 76800, 115200, 230400, 250000, 500000, 1_000_000, 2_000_000,
}

// Table returns the solution for each of StandardBauds at clockHz.
func Table(clockHz uint32) []Baud {
	out := make([]Baud, 0, len(StandardBauds))
	for _, b := range StandardBauds {
		out = append(out, CalcBaud(clockHz, b))
	}
	return out
}

// setBaud programs U2X and UBRRn. Computed fresh on every call.
func (d *Driver) setBaud(b *Bank, baud uint32) {
	s := CalcBaud(d.clockHz, baud)
	if s.Double {
		b.UCSRA.SetBits(1 << bitU2X)
	} else {
		b.UCSRA.ClearBits(1 << bitU2X)
	}
	b.UBRRH.Set(uint8(s.Divisor>>8) & 0x0F)
	b.UBRRL.Set(uint8(s.Divisor))
}
