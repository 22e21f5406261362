// Package config holds the board plans: which USARTs a board brings up, with
// what line settings, and how the console and bridge are wired. Plans are Go
// tables selected at build time; nothing is read at runtime.
package config

import (
	"uartterm-go/drivers/usart"
	"uartterm-go/errcode"
	"uartterm-go/services/bridge"
	"uartterm-go/services/console"
	"uartterm-go/types"
	"uartterm-go/x/mathx"
)

// PortPlan is one port and its line settings.
type PortPlan struct {
	Port   usart.Port
	Serial types.SerialConfig
}

// Board describes one hardware setup.
type Board struct {
	Name    string
	ClockHz uint32
	Ports   []PortPlan

	Console usart.Port
	Bridge  *bridge.Config // nil: no bridge
}

// Lookup returns the named board plan.
func Lookup(name string) (Board, error) {
	b, ok := boards[name]
	if !ok {
		return Board{}, errcode.Wrap(errcode.UnknownBoard, "config.Lookup", name, nil)
	}
	return b, nil
}

// Names lists the known boards in declaration order.
func Names() []string { return append([]string(nil), boardOrder...) }

// Validate checks port ranges, frame formats and console/bridge wiring.
func (b Board) Validate() error {
	const op = "config.Validate"
	var seen [usart.MaxPorts]bool
	for _, pp := range b.Ports {
		if pp.Port >= usart.MaxPorts {
			return errcode.Wrap(errcode.UnknownPort, op, b.Name, nil)
		}
		if seen[pp.Port] {
			return errcode.Wrap(errcode.PortInUse, op, b.Name, nil)
		}
		seen[pp.Port] = true
		s := pp.Serial
		if !mathx.Between(s.DataBits, 5, 8) || !mathx.Between(s.StopBits, 1, 2) || s.Parity > types.ParityOdd {
			return errcode.Wrap(errcode.InvalidParams, op, b.Name+": frame "+s.Format(), nil)
		}
	}
	if b.Console >= usart.MaxPorts || !seen[b.Console] {
		return errcode.Wrap(errcode.InvalidParams, op, b.Name+": console port not planned", nil)
	}
	if br := b.Bridge; br != nil {
		if br.From >= usart.MaxPorts || br.To >= usart.MaxPorts || !seen[br.From] || !seen[br.To] {
			return errcode.Wrap(errcode.InvalidParams, op, b.Name+": bridge port not planned", nil)
		}
		if br.From == br.To || br.From == b.Console {
			return errcode.Wrap(errcode.InvalidParams, op, b.Name+": bridge wiring", nil)
		}
	}
	return nil
}

// Apply configures every planned port on d.
func (b Board) Apply(d *usart.Driver) {
	for _, pp := range b.Ports {
		d.Configure(pp.Port, pp.Serial)
	}
}

// ConsoleConfig derives the console wiring.
func (b Board) ConsoleConfig() console.Config {
	cfg := console.Config{Port: b.Console}
	if b.Bridge != nil {
		br := *b.Bridge
		cfg.Bridge = &br
	}
	return cfg
}

// Info summarises each planned port.
func (b Board) Info() []types.SerialInfo {
	out := make([]types.SerialInfo, 0, len(b.Ports))
	for _, pp := range b.Ports {
		out = append(out, types.SerialInfo{Port: uint8(pp.Port), Baud: pp.Serial.Baud, Format: pp.Serial.Format()})
	}
	return out
}
