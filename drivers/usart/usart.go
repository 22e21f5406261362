package usart

import (
	"uartterm-go/types"
	"uartterm-go/x/mathx"
)

// Port selects a USART instance, 0..MaxPorts-1.
type Port uint8

// Driver owns the register banks of up to MaxPorts USARTs.
//
// Every operation on a port that is out of range, or whose bank was not
// supplied, is a silent no-op returning the zero value. Transmit and receive
// busy-wait on the hardware flags with no timeout; callers that must stay
// responsive poll Available first. Not safe for concurrent use.
type Driver struct {
	banks   [MaxPorts]*Bank
	clockHz uint32
}

// New binds banks to ports in order (banks[0] is port 0). A nil entry leaves
// that port unpopulated. clockHz of 0 selects DefaultClockHz.
func New(clockHz uint32, banks ...*Bank) *Driver {
	if clockHz == 0 {
		clockHz = DefaultClockHz
	}
	d := &Driver{clockHz: clockHz}
	for i, b := range banks {
		if i >= MaxPorts {
			break
		}
		if b.valid() {
			d.banks[i] = b
		}
	}
	return d
}

// ClockHz reports the system clock used for baud calculation.
func (d *Driver) ClockHz() uint32 { return d.clockHz }

// Valid reports whether p addresses a populated port.
func (d *Driver) Valid(p Port) bool { return d.bank(p) != nil }

func (d *Driver) bank(p Port) *Bank {
	if p >= MaxPorts {
		return nil
	}
	return d.banks[p]
}

// EncodeFrame builds the UCSRnC value for a frame format. Data bits are
// clamped to 5..8, unknown parity means none, and anything but 2 stop bits
// means 1.
func EncodeFrame(dataBits uint8, parity types.Parity, stopBits uint8) uint8 {
	ucsz := mathx.Clamp(dataBits, 5, 8) - 5

	var upm uint8
	switch parity {
	case types.ParityOdd:
		upm = upmOdd
	case types.ParityEven:
		upm = upmEven
	default:
		upm = upmNone
	}

	var usbs uint8
	if stopBits == 2 {
		usbs = 1
	}
	return upm<<shiftUPM | usbs<<bitUSBS | ucsz<<shiftUCSZ
}

// Configure programs baud, frame format and enables RX and TX on p.
// Frame format is written in one store, then the enables in a second.
func (d *Driver) Configure(p Port, cfg types.SerialConfig) {
	b := d.bank(p)
	if b == nil {
		return
	}
	d.setBaud(b, cfg.Baud)
	b.UCSRC.Set(EncodeFrame(cfg.DataBits, cfg.Parity, cfg.StopBits))
	b.UCSRB.Set(1<<bitRXEN | 1<<bitTXEN)
}

// ---- Byte transport ----

// SendByte waits for UDREn and writes c.
func (d *Driver) SendByte(p Port, c byte) {
	b := d.bank(p)
	if b == nil {
		return
	}
	for !b.UCSRA.HasBits(1 << bitUDRE) {
	}
	b.UDR.Set(c)
}

// ReceiveByte waits for RXCn and returns UDRn. Reading UDRn clears RXCn.
func (d *Driver) ReceiveByte(p Port) byte {
	b := d.bank(p)
	if b == nil {
		return 0
	}
	for !b.UCSRA.HasBits(1 << bitRXC) {
	}
	return b.UDR.Get()
}

// Available reports RXCn without consuming data.
func (d *Driver) Available(p Port) bool {
	b := d.bank(p)
	if b == nil {
		return false
	}
	return b.UCSRA.HasBits(1 << bitRXC)
}

// SendString sends s up to its first NUL byte.
func (d *Driver) SendString(p Port, s string) {
	for i := 0; i < len(s); i++ {
		if s[i] == 0 {
			return
		}
		d.SendByte(p, s[i])
	}
}

// Write sends every byte of data, NULs included.
func (d *Driver) Write(p Port, data []byte) {
	if d.bank(p) == nil {
		return
	}
	for _, c := range data {
		d.SendByte(p, c)
	}
}
