//go:build !baremetal

// uart-hostterm is the PC side of the serial console: a raw terminal bridged
// to a serial port, plus a baud divisor table for the firmware clock.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"

	"uartterm-go/drivers/usart"
	"uartterm-go/types"
	"uartterm-go/x/hostserial"
)

// Ctrl-] leaves the session, as in telnet.
const escapeKey = 0x1D

var (
	list   = flag.Bool("list", false, "list serial ports and exit")
	table  = flag.Bool("table", false, "print the USART divisor table and exit")
	clock  = flag.Uint("clock", usart.DefaultClockHz, "MCU clock in Hz for -table")
	port   = flag.String("port", "", "serial device, e.g. /dev/ttyACM0 or COM3")
	baud   = flag.Uint("baud", 115200, "baud rate")
	format = flag.String("format", "8N1", "data bits, parity (N/E/O), stop bits")
)

func main() {
	flag.Parse()

	switch {
	case *list:
		ports, err := hostserial.List()
		if err != nil {
			fatal(err)
		}
		for _, p := range ports {
			fmt.Println(p)
		}
	case *table:
		printTable(os.Stdout, uint32(*clock))
	default:
		db, par, sb, ok := types.ParseFormat(*format)
		if !ok {
			fmt.Fprintf(os.Stderr, "uart-hostterm: bad -format %q\n", *format)
			os.Exit(2)
		}
		cfg := types.SerialConfig{Baud: uint32(*baud), DataBits: db, Parity: par, StopBits: sb}
		if err := session(*port, cfg); err != nil {
			fatal(err)
		}
	}
}

func printTable(w io.Writer, clockHz uint32) {
	if clockHz == 0 {
		clockHz = usart.DefaultClockHz
	}
	fmt.Fprintf(w, "clock %d Hz\n", clockHz)
	fmt.Fprintf(w, "%8s  %-6s  %5s  %8s  %7s\n", "baud", "mode", "UBRR", "actual", "error")
	for _, b := range usart.Table(clockHz) {
		mode := "normal"
		if b.Double {
			mode = "U2X"
		}
		fmt.Fprintf(w, "%8d  %-6s  %5d  %8d  %3d.%02d%%\n",
			b.Requested, mode, b.Divisor, b.Actual, b.ErrorPPTT/100, b.ErrorPPTT%100)
	}
}

func session(name string, cfg types.SerialConfig) error {
	p, err := hostserial.Open(name, cfg)
	if err != nil {
		return err
	}
	defer p.Close()

	fd := int(os.Stdin.Fd())
	if term.IsTerminal(fd) {
		st, err := term.MakeRaw(fd)
		if err != nil {
			return err
		}
		defer term.Restore(fd, st)
	}
	fmt.Fprintf(os.Stderr, "connected to %s at %d %s, Ctrl-] to quit\r\n", name, cfg.Baud, cfg.Format())

	go func() { _, _ = io.Copy(os.Stdout, p) }()

	var b [64]byte
	for {
		n, err := os.Stdin.Read(b[:])
		for i := 0; i < n; i++ {
			if b[i] == escapeKey {
				_, werr := p.Write(b[:i])
				return werr
			}
		}
		if n > 0 {
			if _, werr := p.Write(b[:n]); werr != nil {
				return werr
			}
		}
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
	}
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "uart-hostterm: %v\n", err)
	os.Exit(1)
}
