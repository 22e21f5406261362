// Package usart is a polling-mode driver for the AVR USART family
// (ATmega2560 carries four instances). The register set of each instance is
// reached through a Bank so the baud selection, framing and line editing
// logic is written once and parameterised by port.
package usart

const (
	// MaxPorts is the number of USART instances the driver can address.
	MaxPorts = 4

	// DefaultClockHz is the Arduino Mega system clock.
	DefaultClockHz = 16_000_000

	// DefaultBaud replaces a zero baud request.
	DefaultBaud = 9600

	// UBRRn is 12 bits wide; UBRRnH carries the top nibble.
	divisorMask = 0x0FFF

	// --- UCSRnA ---
	bitRXC  = 7 // receive complete
	bitUDRE = 5 // data register empty
	bitU2X  = 1 // double transmission speed

	// --- UCSRnB ---
	bitRXEN = 4
	bitTXEN = 3

	// --- UCSRnC ---
	shiftUPM  = 4 // UPMn1:0
	bitUSBS   = 3
	shiftUCSZ = 1 // UCSZn1:0

	upmNone = 0b00
	upmEven = 0b10
	upmOdd  = 0b11
)

// Register is one 8-bit memory-mapped register. *volatile.Register8 from
// TinyGo's runtime/volatile satisfies it, as do the simulated registers in
// usartsim.
type Register interface {
	Get() uint8
	Set(value uint8)
	SetBits(value uint8)
	ClearBits(value uint8)
	HasBits(value uint8) bool
}

// Bank is the register set of one USART instance.
type Bank struct {
	UCSRA Register // status + U2X
	UCSRB Register // RX/TX enables
	UCSRC Register // frame format
	UBRRH Register // divisor, high nibble
	UBRRL Register // divisor, low byte
	UDR   Register // data
}

func (b *Bank) valid() bool {
	return b != nil && b.UCSRA != nil && b.UCSRB != nil && b.UCSRC != nil &&
		b.UBRRH != nil && b.UBRRL != nil && b.UDR != nil
}
