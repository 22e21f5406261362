//go:build !baremetal

// console-sim runs the serial console against simulated USART registers.
// Keystrokes feed the console port's receiver; its transmitter is the screen.
// Ctrl-C quits.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"golang.org/x/term"

	"uartterm-go/drivers/ansi"
	"uartterm-go/drivers/usart"
	"uartterm-go/drivers/usart/usartsim"
	"uartterm-go/services/config"
	"uartterm-go/services/console"
)

const ctrlC = 0x03

var (
	boardName = flag.String("board", config.SelectedBoard, "board plan")
	inject    = flag.String("inject", "", "bytes queued on the bridge source port at start")
	boards    = flag.Bool("boards", false, "list board plans and exit")
)

func main() {
	flag.Parse()

	if *boards {
		listBoards(os.Stdout)
		return
	}

	board, err := config.Lookup(*boardName)
	if err == nil {
		err = board.Validate()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "console-sim: %v\n", err)
		os.Exit(2)
	}

	var sims [usart.MaxPorts]*usartsim.USART
	banks := make([]*usart.Bank, usart.MaxPorts)
	for _, pp := range board.Ports {
		sims[pp.Port] = usartsim.New()
		banks[pp.Port] = sims[pp.Port].Bank()
	}
	d := usart.New(board.ClockHz, banks...)
	board.Apply(d)

	tty := sims[board.Console]
	tty.SetSink(os.Stdout)
	if board.Bridge != nil && *inject != "" {
		sims[board.Bridge.From].FeedString(*inject)
	}

	restore := func() {}
	if fd := int(os.Stdin.Fd()); term.IsTerminal(fd) {
		st, err := term.MakeRaw(fd)
		if err != nil {
			fmt.Fprintf(os.Stderr, "console-sim: raw mode: %v\n", err)
			os.Exit(1)
		}
		restore = func() { _ = term.Restore(fd, st) }
	}

	go feed(tty, restore)

	ansi.ClearScreen(d.Stream(board.Console))
	console.New(d, board.ConsoleConfig()).Run(nil)
}

// feed copies stdin into the console receiver until Ctrl-C or EOF.
func feed(tty *usartsim.USART, restore func()) {
	var b [64]byte
	for {
		n, err := os.Stdin.Read(b[:])
		for i := 0; i < n; i++ {
			if b[i] == ctrlC {
				quit(restore, 0)
			}
		}
		feedAll(tty, b[:n])
		if err != nil {
			if err != io.EOF {
				fmt.Fprintf(os.Stderr, "console-sim: stdin: %v\n", err)
			}
			// Let the console consume what is queued before leaving.
			time.Sleep(200 * time.Millisecond)
			quit(restore, 0)
		}
	}
}

func listBoards(w io.Writer) {
	for _, name := range config.Names() {
		b, _ := config.Lookup(name)
		fmt.Fprintf(w, "%s  clock=%d console=%d\n", name, b.ClockHz, b.Console)
		for _, in := range b.Info() {
			fmt.Fprintf(w, "  port %d  %d %s\n", in.Port, in.Baud, in.Format)
		}
	}
}

// feedAll waits for FIFO room so a large paste is not truncated.
func feedAll(tty *usartsim.USART, p []byte) {
	for len(p) > 0 {
		room := tty.Room()
		if room == 0 {
			time.Sleep(time.Millisecond)
			continue
		}
		k := min(room, len(p))
		tty.Feed(p[:k])
		p = p[k:]
	}
}

func quit(restore func(), code int) {
	restore()
	ansi.SetColor(byteWriter{os.Stdout}, ansi.Reset)
	fmt.Fprint(os.Stdout, "\r\n")
	os.Exit(code)
}

type byteWriter struct{ w io.Writer }

func (b byteWriter) WriteByte(c byte) error {
	_, err := b.w.Write([]byte{c})
	return err
}
