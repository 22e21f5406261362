// Package usartsim models the register interface of an AVR USART on the host.
//
// UDRE is set unless the port is held busy, RXC follows the receive FIFO,
// reading UDR pops the FIFO and writing UDR appends to the transmit log (and
// an optional sink). Every register store is counted so callers can assert
// that an operation touched no hardware.
//
// The receive FIFO holds RXCapacity bytes; feeding more drops the oldest
// unread bytes, so callers pushing bulk input should wait on Room.
package usartsim

import (
	"io"
	"runtime"
	"sync"

	"github.com/jangala-dev/tinygo-uartx/uartx"

	"uartterm-go/drivers/usart"
)

const (
	rxc  = 1 << 7
	txc  = 1 << 6
	udre = 1 << 5
	u2x  = 1 << 1
	mpcm = 1 << 0

	// Bits of UCSRnA that software can write.
	ucsraWritable = u2x | mpcm
)

// RXCapacity is the most unread bytes the receive FIFO keeps.
const RXCapacity = 511

// USART is one simulated peripheral. Safe for use from a feeder goroutine
// while the driver polls it.
type USART struct {
	mu sync.Mutex

	rx   uartx.UART // host shim ring; drops oldest past RXCapacity
	tx   []byte
	sink io.Writer
	busy bool

	ucsra, ucsrb, ucsrc, ubrrh, ubrrl uint8
	writes                            int

	bank usart.Bank
}

// New returns an idle USART with empty FIFOs.
func New() *USART {
	u := &USART{}
	u.bank = usart.Bank{
		UCSRA: &reg{u: u, get: u.getStatus, set: u.setStatus},
		UCSRB: u.plain(&u.ucsrb),
		UCSRC: u.plain(&u.ucsrc),
		UBRRH: u.plain(&u.ubrrh),
		UBRRL: u.plain(&u.ubrrl),
		UDR:   &reg{u: u, get: u.getData, set: u.setData},
	}
	return u
}

// Bank exposes the register set for usart.New.
func (u *USART) Bank() *usart.Bank { return &u.bank }

// Feed queues bytes as if they arrived on the line.
func (u *USART) Feed(p []byte) {
	u.mu.Lock()
	for _, c := range p {
		u.rx.Receive(c)
	}
	u.mu.Unlock()
}

// FeedString is Feed for text.
func (u *USART) FeedString(s string) { u.Feed([]byte(s)) }

// Pending is the number of received bytes not yet read from UDR.
func (u *USART) Pending() int {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.rx.Buffered()
}

// Room is how many more bytes Feed can take without dropping any.
func (u *USART) Room() int { return RXCapacity - u.Pending() }

// TX returns a copy of everything written to UDR.
func (u *USART) TX() []byte {
	u.mu.Lock()
	defer u.mu.Unlock()
	return append([]byte(nil), u.tx...)
}

// ResetTX clears the transmit log.
func (u *USART) ResetTX() {
	u.mu.Lock()
	u.tx = u.tx[:0]
	u.mu.Unlock()
}

// SetSink mirrors transmitted bytes to w (nil to disable).
func (u *USART) SetSink(w io.Writer) {
	u.mu.Lock()
	u.sink = w
	u.mu.Unlock()
}

// SetBusy holds UDRE low while busy is true, stalling transmitters.
func (u *USART) SetBusy(busy bool) {
	u.mu.Lock()
	u.busy = busy
	u.mu.Unlock()
}

// Writes counts register stores since creation.
func (u *USART) Writes() int {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.writes
}

// Regs is a snapshot of the stored register values.
type Regs struct {
	UCSRA, UCSRB, UCSRC, UBRRH, UBRRL uint8
}

// Divisor is the 12-bit UBRRn value.
func (r Regs) Divisor() uint16 { return uint16(r.UBRRH&0x0F)<<8 | uint16(r.UBRRL) }

// Double reports U2Xn.
func (r Regs) Double() bool { return r.UCSRA&u2x != 0 }

// Regs returns the current register contents; UCSRA includes live flags.
func (u *USART) Regs() Regs {
	u.mu.Lock()
	defer u.mu.Unlock()
	return Regs{
		UCSRA: u.statusLocked(),
		UCSRB: u.ucsrb,
		UCSRC: u.ucsrc,
		UBRRH: u.ubrrh,
		UBRRL: u.ubrrl,
	}
}

// ---- register plumbing (called with u.mu held) ----

func (u *USART) statusLocked() uint8 {
	v := u.ucsra & (ucsraWritable | txc)
	if !u.busy {
		v |= udre
	}
	if u.rx.Buffered() > 0 {
		v |= rxc
	}
	return v
}

func (u *USART) getStatus() uint8 { return u.statusLocked() }

func (u *USART) setStatus(v uint8) {
	// TXC is cleared by writing one to it.
	if v&txc != 0 {
		u.ucsra &^= txc
	}
	u.ucsra = u.ucsra&^ucsraWritable | v&ucsraWritable
}

func (u *USART) getData() uint8 {
	c, err := u.rx.ReadByte()
	if err != nil {
		return 0
	}
	return c
}

func (u *USART) setData(v uint8) {
	u.tx = append(u.tx, v)
	u.ucsra |= txc
	if u.sink != nil {
		_, _ = u.sink.Write([]byte{v})
	}
}

func (u *USART) plain(p *uint8) *reg {
	return &reg{
		u:   u,
		get: func() uint8 { return *p },
		set: func(v uint8) { *p = v },
	}
}

// reg adapts a get/set pair to usart.Register.
type reg struct {
	u   *USART
	get func() uint8
	set func(uint8)
}

func (r *reg) Get() uint8 {
	r.u.mu.Lock()
	v := r.get()
	idle := r.u.rx.Buffered() == 0
	r.u.mu.Unlock()
	if idle {
		// Let a feeder goroutine run while the driver spins on RXC.
		runtime.Gosched()
	}
	return v
}

func (r *reg) Set(v uint8) {
	r.u.mu.Lock()
	r.u.writes++
	r.set(v)
	r.u.mu.Unlock()
}

func (r *reg) SetBits(v uint8) {
	r.u.mu.Lock()
	r.u.writes++
	r.set(r.get() | v)
	r.u.mu.Unlock()
}

func (r *reg) ClearBits(v uint8) {
	r.u.mu.Lock()
	r.u.writes++
	r.set(r.get() &^ v)
	r.u.mu.Unlock()
}

func (r *reg) HasBits(v uint8) bool { return r.Get()&v != 0 }
