//go:build !baremetal

// Package hostserial opens PC-side serial ports with the same line settings
// the firmware applies, so a host terminal and a board agree on framing.
package hostserial

import (
	"go.bug.st/serial"

	"uartterm-go/drivers/usart"
	"uartterm-go/errcode"
	"uartterm-go/types"
	"uartterm-go/x/mathx"
)

// ModeFor maps a SerialConfig onto go.bug.st/serial. Out-of-range fields are
// normalised the way the firmware does: baud 0 is DefaultBaud, data bits are
// clamped to 5..8, unknown parity is none, and only 2 selects two stop bits.
func ModeFor(cfg types.SerialConfig) *serial.Mode {
	baud := cfg.Baud
	if baud == 0 {
		baud = usart.DefaultBaud
	}
	m := &serial.Mode{
		BaudRate: int(baud),
		DataBits: int(mathx.Clamp(cfg.DataBits, 5, 8)),
		Parity:   serial.NoParity,
		StopBits: serial.OneStopBit,
	}
	switch cfg.Parity {
	case types.ParityOdd:
		m.Parity = serial.OddParity
	case types.ParityEven:
		m.Parity = serial.EvenParity
	}
	if cfg.StopBits == 2 {
		m.StopBits = serial.TwoStopBits
	}
	return m
}

// Open opens name with cfg applied.
func Open(name string, cfg types.SerialConfig) (serial.Port, error) {
	if name == "" {
		return nil, errcode.Wrap(errcode.InvalidParams, "hostserial.Open", "empty port name", nil)
	}
	p, err := serial.Open(name, ModeFor(cfg))
	if err != nil {
		return nil, errcode.Wrap(errcode.OpenFailed, "hostserial.Open", name, err)
	}
	return p, nil
}

// List enumerates serial ports visible to the OS.
func List() ([]string, error) {
	ports, err := serial.GetPortsList()
	if err != nil {
		return nil, errcode.Wrap(errcode.Error, "hostserial.List", "", err)
	}
	return ports, nil
}
