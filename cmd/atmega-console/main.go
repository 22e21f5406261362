//go:build atmega2560

// Firmware for the Arduino Mega 2560. Build with -serial=none so the runtime
// leaves USART0 to the driver.
package main

import (
	"uartterm-go/drivers/ansi"
	"uartterm-go/drivers/usart"
	"uartterm-go/services/config"
	"uartterm-go/services/console"
)

func main() {
	board, err := config.Lookup(config.SelectedBoard)
	if err == nil {
		err = board.Validate()
	}
	if err != nil {
		println("[console] board:", err.Error())
		return
	}

	d := usart.Mega2560(board.ClockHz)
	board.Apply(d)

	ansi.ClearScreen(d.Stream(board.Console))
	console.New(d, board.ConsoleConfig()).Run(nil)
}
