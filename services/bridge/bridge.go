// Package bridge forwards bytes from one USART to another by polling.
// It never blocks: Pump moves at most one byte and only when the source
// already has one.
package bridge

import "uartterm-go/drivers/usart"

// Config names the source and destination ports.
type Config struct {
	From usart.Port
	To   usart.Port
}

type Bridge struct {
	d   *usart.Driver
	cfg Config

	forwarded uint32
}

func New(d *usart.Driver, cfg Config) *Bridge {
	return &Bridge{d: d, cfg: cfg}
}

func (b *Bridge) Config() Config { return b.cfg }

// Pump forwards one byte if From has data. It reports the byte and whether
// one was moved.
func (b *Bridge) Pump() (byte, bool) {
	if !b.d.Available(b.cfg.From) {
		return 0, false
	}
	c := b.d.ReceiveByte(b.cfg.From)
	b.d.SendByte(b.cfg.To, c)
	b.forwarded++
	return c, true
}

// Drain pumps until From is idle or limit bytes moved (limit <= 0: no limit).
func (b *Bridge) Drain(limit int) int {
	n := 0
	for limit <= 0 || n < limit {
		if _, ok := b.Pump(); !ok {
			break
		}
		n++
	}
	return n
}

// Forwarded counts bytes moved since New.
func (b *Bridge) Forwarded() uint32 { return b.forwarded }
