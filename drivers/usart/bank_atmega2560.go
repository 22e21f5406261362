//go:build atmega2560

package usart

import (
	"device/avr"
	"machine"
)

// USART0..3 of the ATmega2560, in port order.
var mega2560Banks = [MaxPorts]Bank{
	{UCSRA: avr.UCSR0A, UCSRB: avr.UCSR0B, UCSRC: avr.UCSR0C, UBRRH: avr.UBRR0H, UBRRL: avr.UBRR0L, UDR: avr.UDR0},
	{UCSRA: avr.UCSR1A, UCSRB: avr.UCSR1B, UCSRC: avr.UCSR1C, UBRRH: avr.UBRR1H, UBRRL: avr.UBRR1L, UDR: avr.UDR1},
	{UCSRA: avr.UCSR2A, UCSRB: avr.UCSR2B, UCSRC: avr.UCSR2C, UBRRH: avr.UBRR2H, UBRRL: avr.UBRR2L, UDR: avr.UDR2},
	{UCSRA: avr.UCSR3A, UCSRB: avr.UCSR3B, UCSRC: avr.UCSR3C, UBRRH: avr.UBRR3H, UBRRL: avr.UBRR3L, UDR: avr.UDR3},
}

// Mega2560 returns a Driver over all four on-chip USARTs. clockHz of 0 uses
// the CPU frequency reported by the machine package.
func Mega2560(clockHz uint32) *Driver {
	if clockHz == 0 {
		clockHz = machine.CPUFrequency()
	}
	return New(clockHz, &mega2560Banks[0], &mega2560Banks[1], &mega2560Banks[2], &mega2560Banks[3])
}
