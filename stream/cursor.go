// SPDX-License-Identifier: EPL-2.0

package stream

// cursor tracks the read position inside the source buffer.
// position() + remaining() == len(data) holds at all times, and the
// position only ever moves forward.
type cursor struct {
	data []byte
	off  int
}

func (c *cursor) position() int { return c.off }

func (c *cursor) remaining() int { return len(c.data) - c.off }

// window returns a view of the next n bytes without advancing.
// n must not exceed remaining().
func (c *cursor) window(n int) []byte {
	return c.data[c.off : c.off+n]
}

// advance moves the cursor forward by n bytes. A length claiming more than
// what remains is refused: the cursor stays put and advance reports false,
// so a malformed frame length can never move the position past the buffer.
func (c *cursor) advance(n int) bool {
	if n > c.remaining() {
		return false
	}
	c.off += n
	return true
}
