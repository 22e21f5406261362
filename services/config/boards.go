package config

import (
	"uartterm-go/drivers/usart"
	"uartterm-go/services/bridge"
	"uartterm-go/types"
)

// Arduino Mega 2560: USART0 to the USB bridge chip, USART2/3 cross-linked.
var mega2560 = Board{
	Name:    "mega2560",
	ClockHz: usart.DefaultClockHz,
	Ports: []PortPlan{
		{Port: 0, Serial: types.Default8N1(115200)},
		{Port: 2, Serial: types.Default8N1(115200)},
		{Port: 3, Serial: types.Default8N1(115200)},
	},
	Console: 0,
	Bridge:  &bridge.Config{From: 3, To: 2},
}

// Same board with an off-standard console rate and two stop bits.
var mega2560Odd = Board{
	Name:    "mega2560-12345",
	ClockHz: usart.DefaultClockHz,
	Ports: []PortPlan{
		{Port: 0, Serial: types.SerialConfig{Baud: 12345, DataBits: 8, Parity: types.ParityNone, StopBits: 2}},
		{Port: 2, Serial: types.Default8N1(115200)},
		{Port: 3, Serial: types.Default8N1(115200)},
	},
	Console: 0,
	Bridge:  &bridge.Config{From: 3, To: 2},
}

// Host simulation: identical wiring, clock as on the Mega.
var sim = Board{
	Name:    "sim",
	ClockHz: usart.DefaultClockHz,
	Ports:   mega2560.Ports,
	Console: 0,
	Bridge:  &bridge.Config{From: 3, To: 2},
}

var boards = map[string]Board{
	mega2560.Name:    mega2560,
	mega2560Odd.Name: mega2560Odd,
	sim.Name:         sim,
}

var boardOrder = []string{mega2560.Name, mega2560Odd.Name, sim.Name}
