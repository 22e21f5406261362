package usart

const (
	keyBS  = 0x08
	keyDEL = 0x7F
)

// ReadLine blocks until CR or LF arrives on p, collecting at most len(buf)-1
// bytes into buf followed by a NUL. It returns the line length.
//
// BS and DEL drop the last byte (and erase it on screen when echo is set);
// on an empty line they do nothing. Once the buffer is full further bytes are
// discarded until a terminator or backspace arrives. The terminator is echoed
// as CR LF. There is no timeout.
func (d *Driver) ReadLine(p Port, buf []byte, echo bool) int {
	if len(buf) == 0 {
		return 0
	}
	if d.bank(p) == nil {
		buf[0] = 0
		return 0
	}
	n := 0
	for {
		c := d.ReceiveByte(p)
		switch c {
		case '\r', '\n':
			if echo {
				d.SendByte(p, '\r')
				d.SendByte(p, '\n')
			}
			buf[n] = 0
			return n
		case keyBS, keyDEL:
			if n > 0 {
				n--
				if echo {
					d.SendString(p, "\b \b")
				}
			}
		default:
			if n < len(buf)-1 {
				buf[n] = c
				n++
				if echo {
					d.SendByte(p, c)
				}
			}
		}
	}
}
