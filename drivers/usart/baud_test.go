package usart_test

import (
	"testing"

	"uartterm-go/drivers/usart"
)

func TestCalcBaudKnownRates16MHz(t *testing.T) {
	type C struct {
		baud    uint32
		divisor uint16
		double  bool
		errPPTT uint32
	}
	for _, c := range []C{
		{9600, 207, true, 15},     // tie at 0.15%: double speed wins
		{57600, 34, true, 79},     // normal would be 2.1%
		{115200, 16, true, 212},   // normal would be 3.5%
		{250000, 7, true, 0},      // exact in both modes
		{2_000_000, 0, true, 0},   // only reachable at 8x
		{300, 3332, false, 0},     // 8x would be 0.33%
		{1_000_000, 1, true, 0},
	} {
		got := usart.CalcBaud(usart.DefaultClockHz, c.baud)
		if got.Divisor != c.divisor || got.Double != c.double || got.ErrorPPTT != c.errPPTT {
			t.Fatalf("CalcBaud(16MHz, %d) = %+v, want divisor=%d double=%v err=%d",
				c.baud, got, c.divisor, c.double, c.errPPTT)
		}
		if got.Requested != c.baud {
			t.Fatalf("Requested = %d, want %d", got.Requested, c.baud)
		}
	}
}

func TestCalcBaudZeroMeans9600(t *testing.T) {
	got := usart.CalcBaud(usart.DefaultClockHz, 0)
	want := usart.CalcBaud(usart.DefaultClockHz, 9600)
	if got != want {
		t.Fatalf("CalcBaud(0) = %+v, want %+v", got, want)
	}
}

// reference re-derives one candidate straight from the divisor formula.
func reference(clock, baud uint32, k uint64) (ubrr, actual, errPPTT uint64) {
	q := (uint64(clock) + k*uint64(baud)/2) / (k * uint64(baud))
	if q == 0 {
		q = 1
	}
	actual = uint64(clock) / (k * q)
	diff := actual - uint64(baud)
	if actual < uint64(baud) {
		diff = uint64(baud) - actual
	}
	return q - 1, actual, diff * 10000 / uint64(baud)
}

func TestCalcBaudPicksLowerErrorDoubleOnTie(t *testing.T) {
	clocks := []uint32{1_000_000, 8_000_000, 14_745_600, 16_000_000, 18_432_000, 20_000_000}
	for _, clock := range clocks {
		for baud := uint32(1); baud <= 1_000_000; baud += 997 {
			got := usart.CalcBaud(clock, baud)

			nU, nA, nE := reference(clock, baud, 16)
			dU, dA, dE := reference(clock, baud, 8)

			wantDouble := dE <= nE
			if got.Double != wantDouble {
				t.Fatalf("clock %d baud %d: double=%v, want %v (errN=%d errD=%d)",
					clock, baud, got.Double, wantDouble, nE, dE)
			}
			u, a, e := nU, nA, nE
			if wantDouble {
				u, a, e = dU, dA, dE
			}
			u &= 0x0FFF
			if uint64(got.Divisor) != u || uint64(got.Actual) != a || uint64(got.ErrorPPTT) != e {
				t.Fatalf("clock %d baud %d: got %+v, want ubrr=%d actual=%d err=%d",
					clock, baud, got, u, a, e)
			}
		}
	}
}

func TestCalcBaudDivisorWraps(t *testing.T) {
	type C struct {
		clock   uint32
		baud    uint32
		divisor uint16
		double  bool
		actual  uint32
	}
	for _, c := range []C{
		// 20 MHz / (8*300) rounds to 8333, UBRR 8332 keeps its low 12 bits.
		{20_000_000, 300, 140, true, 300},
		// 16 MHz / (8*1) rounds to 2e6, UBRR 1999999 & 0xFFF.
		{16_000_000, 1, 1151, true, 1},
	} {
		got := usart.CalcBaud(c.clock, c.baud)
		if got.Divisor != c.divisor || got.Double != c.double || got.Actual != c.actual {
			t.Fatalf("CalcBaud(%d, %d) = %+v, want divisor=%d double=%v actual=%d",
				c.clock, c.baud, got, c.divisor, c.double, c.actual)
		}
	}
}

func TestCalcBaudAboveClock(t *testing.T) {
	got := usart.CalcBaud(usart.DefaultClockHz, 4_000_000)
	if !got.Double || got.Divisor != 0 || got.Actual != 2_000_000 || got.ErrorPPTT != 5000 {
		t.Fatalf("CalcBaud(16MHz, 4M) = %+v", got)
	}
}

func TestTable(t *testing.T) {
	tab := usart.Table(usart.DefaultClockHz)
	if len(tab) != len(usart.StandardBauds) {
		t.Fatalf("len(Table) = %d, want %d", len(tab), len(usart.StandardBauds))
	}
	for i, b := range tab {
		if b.Requested != usart.StandardBauds[i] {
			t.Fatalf("Table[%d].Requested = %d, want %d", i, b.Requested, usart.StandardBauds[i])
		}
	}
}
