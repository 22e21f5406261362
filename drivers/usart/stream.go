package usart

import "tinygo.org/x/drivers"

var _ drivers.UART = Stream{}

// Stream binds a Driver to one port and exposes it through the io
// interfaces, so it plugs into TinyGo drivers and the ansi helpers.
type Stream struct {
	d *Driver
	p Port
}

// Stream returns a port-bound view of d.
func (d *Driver) Stream(p Port) Stream { return Stream{d: d, p: p} }

func (s Stream) Port() Port { return s.p }

// WriteByte blocks until the byte is in UDRn.
func (s Stream) WriteByte(c byte) error {
	s.d.SendByte(s.p, c)
	return nil
}

func (s Stream) Write(b []byte) (int, error) {
	s.d.Write(s.p, b)
	return len(b), nil
}

func (s Stream) WriteString(str string) (int, error) {
	for i := 0; i < len(str); i++ {
		s.d.SendByte(s.p, str[i])
	}
	return len(str), nil
}

// Read copies whatever is already received and never blocks.
func (s Stream) Read(b []byte) (int, error) {
	n := 0
	for n < len(b) && s.d.Available(s.p) {
		b[n] = s.d.ReceiveByte(s.p)
		n++
	}
	return n, nil
}

// ReadByte blocks until a byte arrives.
func (s Stream) ReadByte() (byte, error) { return s.d.ReceiveByte(s.p), nil }

// Buffered is 1 while RXCn is set. The hardware exposes no deeper count.
func (s Stream) Buffered() int {
	if s.d.Available(s.p) {
		return 1
	}
	return 0
}

// ReadLine is Driver.ReadLine on the bound port.
func (s Stream) ReadLine(buf []byte, echo bool) int { return s.d.ReadLine(s.p, buf, echo) }
