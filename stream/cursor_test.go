// SPDX-License-Identifier: EPL-2.0

package stream

import "testing"

func TestCursor_PositionAndRemaining(t *testing.T) {
	t.Parallel()

	c := cursor{data: make([]byte, 10)}

	if c.position() != 0 {
		t.Errorf("position() = %d, want 0", c.position())
	}
	if c.remaining() != 10 {
		t.Errorf("remaining() = %d, want 10", c.remaining())
	}

	if !c.advance(4) {
		t.Fatal("advance(4) refused with 10 bytes remaining")
	}

	if c.position() != 4 {
		t.Errorf("position() after advance = %d, want 4", c.position())
	}
	if c.remaining() != 6 {
		t.Errorf("remaining() after advance = %d, want 6", c.remaining())
	}
	if c.position()+c.remaining() != len(c.data) {
		t.Error("position() + remaining() != buffer length")
	}
}

func TestCursor_WindowDoesNotAdvance(t *testing.T) {
	t.Parallel()

	data := []byte{1, 2, 3, 4, 5}
	c := cursor{data: data}
	c.advance(2)

	w := c.window(3)
	if len(w) != 3 {
		t.Fatalf("window(3) length = %d, want 3", len(w))
	}
	if w[0] != 3 || w[2] != 5 {
		t.Errorf("window(3) = %v, want [3 4 5]", w)
	}
	if c.position() != 2 {
		t.Errorf("position() changed by window(): %d", c.position())
	}
}

func TestCursor_AdvanceRefusesOverrun(t *testing.T) {
	t.Parallel()

	c := cursor{data: make([]byte, 8)}
	c.advance(5)

	if c.advance(4) {
		t.Fatal("advance(4) accepted with only 3 bytes remaining")
	}
	if c.position() != 5 {
		t.Errorf("refused advance moved the cursor to %d", c.position())
	}

	if !c.advance(3) {
		t.Fatal("advance(3) refused with exactly 3 bytes remaining")
	}
	if c.remaining() != 0 {
		t.Errorf("remaining() = %d, want 0", c.remaining())
	}
}

func TestCursor_EmptyBuffer(t *testing.T) {
	t.Parallel()

	var c cursor

	if c.remaining() != 0 {
		t.Errorf("remaining() = %d, want 0", c.remaining())
	}
	if !c.advance(0) {
		t.Error("advance(0) refused on empty buffer")
	}
	if c.advance(1) {
		t.Error("advance(1) accepted on empty buffer")
	}
}
