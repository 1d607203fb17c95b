// SPDX-License-Identifier: EPL-2.0

// Package streamtest builds synthetic MPEG audio byte streams for tests.
//
// The builders produce structurally valid MPEG-1 Layer III frames and ID3
// tags with exactly known byte lengths, so tests can assert on cursor
// positions and source views without shipping audio fixtures.
package streamtest

// Layer III MPEG-1 field values for the rates used in tests.
var (
	bitrateField = map[int]byte{
		32: 1, 40: 2, 48: 3, 56: 4, 64: 5, 80: 6, 96: 7, 112: 8,
		128: 9, 160: 10, 192: 11, 224: 12, 256: 13, 320: 14,
	}
	sampleRateField = map[int]byte{44100: 0, 48000: 1, 32000: 2}
)

// FrameLength reports the byte length of an MPEG-1 Layer III frame with
// the given parameters, including the 4-byte header.
func FrameLength(bitrateKbps, sampleRate int, padded bool) int {
	n := 144 * bitrateKbps * 1000 / sampleRate
	if padded {
		n++
	}
	return n
}

// Header builds a 4-byte MPEG-1 Layer III frame header. The bitrate and
// sample rate must be values the tables above know about.
func Header(bitrateKbps, sampleRate int, padded, mono bool) []byte {
	b := []byte{0xFF, 0xFB, 0x00, 0x00}
	b[2] = bitrateField[bitrateKbps]<<4 | sampleRateField[sampleRate]<<2
	if padded {
		b[2] |= 0x02
	}
	if mono {
		b[3] = 0xC0
	}
	return b
}

// SilentFrame builds a complete frame: a valid header followed by a zeroed
// payload of the exact remaining length.
func SilentFrame(bitrateKbps, sampleRate int, padded, mono bool) []byte {
	frame := make([]byte, FrameLength(bitrateKbps, sampleRate, padded))
	copy(frame, Header(bitrateKbps, sampleRate, padded, mono))
	return frame
}

// ID3v2 builds an ID3v2.4 tag with a zeroed payload of size bytes; the
// full tag is 10+size bytes.
func ID3v2(size int) []byte {
	tag := make([]byte, 10+size)
	copy(tag, "ID3")
	tag[3] = 4
	tag[6] = byte(size >> 21 & 0x7F)
	tag[7] = byte(size >> 14 & 0x7F)
	tag[8] = byte(size >> 7 & 0x7F)
	tag[9] = byte(size & 0x7F)
	return tag
}

// ID3v1 builds a 128-byte ID3v1 tag.
func ID3v1() []byte {
	tag := make([]byte, 128)
	copy(tag, "TAG")
	return tag
}

// Garbage returns n bytes containing no sync word and no tag marker.
func Garbage(n int) []byte {
	b := make([]byte, n)
	for i := range b {
		b[i] = 0x55
	}
	return b
}

// Concat joins stream pieces into one buffer.
func Concat(pieces ...[]byte) []byte {
	var out []byte
	for _, p := range pieces {
		out = append(out, p...)
	}
	return out
}
