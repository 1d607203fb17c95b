// SPDX-License-Identifier: EPL-2.0

package mpeg

// id3v1Length is the fixed size of an ID3v1 tag.
const id3v1Length = 128

// tagLength reports the byte length of an ID3 tag starting at the head of
// window, if one is present. The reported length may exceed the window for
// a tag truncated by the end of the stream; the caller clamps it.
func tagLength(window []byte) (int, bool) {
	if len(window) >= 3 && window[0] == 'T' && window[1] == 'A' && window[2] == 'G' {
		return id3v1Length, true
	}
	if len(window) >= 10 && window[0] == 'I' && window[1] == 'D' && window[2] == '3' {
		// The last four header bytes hold the tag size as a syncsafe
		// integer, exclusive of the 10-byte header itself.
		size := int(window[6])<<21 | int(window[7])<<14 | int(window[8])<<7 | int(window[9])
		length := 10 + size
		if window[5]&0x10 != 0 {
			// footer present
			length += 10
		}
		return length, true
	}
	return 0, false
}
