// Package console is the interactive number-conversion screen served over a
// USART: it prompts for a decimal number, shows it back in decimal, hex and
// binary, and between prompts forwards bridged bytes with an on-screen trace.
package console

import (
	"uartterm-go/drivers/ansi"
	"uartterm-go/drivers/usart"
	"uartterm-go/services/bridge"
	"uartterm-go/x/conv"
)

// LineSize bounds one line of input, terminator included.
const LineSize = 32

// Prompt is shown at the input position.
const Prompt = "Enter a number:"

// Screen layout (1-based rows/cols as sent to the terminal).
const (
	promptRow = 2
	promptCol = 2
	inputCol  = promptCol + uint8(len(Prompt))

	outCol = 5
	rowDec = 3
	rowHex = 4
	rowBin = 5

	echoRow = 9
	echoCol = 3

	blank = "                                             "
)

// Config selects the console port and an optional bridge.
type Config struct {
	Port   usart.Port
	Bridge *bridge.Config
}

type Console struct {
	out    usart.Stream
	bridge *bridge.Bridge
	label  []byte

	line [LineSize]byte
	num  [16]byte
}

// New builds a console on d. The ports must already be configured.
func New(d *usart.Driver, cfg Config) *Console {
	c := &Console{out: d.Stream(cfg.Port)}
	if cfg.Bridge != nil {
		c.bridge = bridge.New(d, *cfg.Bridge)
		c.label = echoLabel(*cfg.Bridge)
	}
	return c
}

// echoLabel renders "Echo UART3->UART2: '".
func echoLabel(b bridge.Config) []byte {
	var n [3]byte
	l := append([]byte("Echo UART"), conv.FormatU16(n[:], uint16(b.From))...)
	l = append(l, "->UART"...)
	l = append(l, conv.FormatU16(n[:], uint16(b.To))...)
	return append(l, ": '"...)
}

// Step runs one prompt/convert/display cycle, then services the bridge once.
// It blocks until a line is entered and returns the parsed value.
func (c *Console) Step() uint16 {
	ansi.MoveCursor(c.out, promptRow, promptCol)
	ansi.SetColor(c.out, ansi.Yellow)
	_, _ = c.out.WriteString(Prompt)

	ansi.SetColor(c.out, ansi.Green)
	n := c.out.ReadLine(c.line[:], true)
	v := conv.ParseU16(c.line[:n])

	c.clear(promptRow, inputCol)
	c.clear(rowDec, outCol)
	c.clear(rowHex, outCol)
	c.clear(rowBin, outCol)

	ansi.SetColor(c.out, ansi.Green)
	ansi.MoveCursor(c.out, rowDec, outCol)
	_, _ = c.out.Write(conv.FormatU16(c.num[:], v))

	ansi.SetColor(c.out, ansi.Blue)
	ansi.MoveCursor(c.out, rowHex, outCol)
	_, _ = c.out.WriteString("Hex: ")
	_, _ = c.out.Write(conv.FormatBase(c.num[:], v, 16))

	ansi.SetColor(c.out, ansi.Blue)
	ansi.MoveCursor(c.out, rowBin, outCol)
	_, _ = c.out.WriteString("Bin: ")
	_, _ = c.out.Write(conv.FormatBase(c.num[:], v, 2))

	ansi.SetColor(c.out, ansi.Reset)

	c.PumpBridge()
	return v
}

func (c *Console) clear(row, col uint8) {
	ansi.MoveCursor(c.out, row, col)
	_, _ = c.out.WriteString(blank)
}

// PumpBridge forwards at most one byte across the bridge and, if it moved
// one, traces it on the console. Never blocks.
func (c *Console) PumpBridge() bool {
	if c.bridge == nil {
		return false
	}
	ch, ok := c.bridge.Pump()
	if !ok {
		return false
	}
	ansi.MoveCursor(c.out, echoRow, echoCol)
	_, _ = c.out.Write(c.label)
	if ch != 0 {
		_ = c.out.WriteByte(ch)
	}
	_ = c.out.WriteByte('\'')
	return true
}

// Bridge exposes the bridge, nil when none is configured.
func (c *Console) Bridge() *bridge.Bridge { return c.bridge }

// Run calls Step until stop reports true. A nil stop runs forever.
func (c *Console) Run(stop func() bool) {
	for stop == nil || !stop() {
		c.Step()
	}
}
