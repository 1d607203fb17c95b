// SPDX-License-Identifier: EPL-2.0

package mpeg

// MPEG version field values.
const (
	mpegVersion2_5 = iota
	mpegVersionReserved
	mpegVersion2
	mpegVersion1
)

// MPEG layer field values.
const (
	mpegLayerReserved = iota
	mpegLayerIII
	mpegLayerII
	mpegLayerI
)

// Channel mode field values.
const (
	stereo = iota
	jointStereo
	dualChannel
	mono
)

// Bitrates in kb/s, indexed by the 4-bit bitrate field. Index 0 (free
// format) and 15 (invalid) are rejected during parsing.
var (
	v1l1Bitrates = []int{0, 32, 64, 96, 128, 160, 192, 224, 256, 288, 320, 352, 384, 416, 448}
	v1l2Bitrates = []int{0, 32, 48, 56, 64, 80, 96, 112, 128, 160, 192, 224, 256, 320, 384}
	v1l3Bitrates = []int{0, 32, 40, 48, 56, 64, 80, 96, 112, 128, 160, 192, 224, 256, 320}
	v2l1Bitrates = []int{0, 32, 48, 56, 64, 80, 96, 112, 128, 144, 160, 176, 192, 224, 256}
	v2l2Bitrates = []int{0, 8, 16, 24, 32, 40, 48, 56, 64, 80, 96, 112, 128, 144, 160}
)

// Sample rates in Hz, indexed by the 2-bit sample-rate field.
var (
	v1SampleRates  = []int{44100, 48000, 32000}
	v2SampleRates  = []int{22050, 24000, 16000}
	v25SampleRates = []int{11025, 12000, 8000}
)

// frameHeader holds the fields of one parsed 4-byte MPEG audio frame
// header, plus the sample count and frame length derived from them.
type frameHeader struct {
	version     byte
	layer       byte
	bitrate     int // kb/s
	sampleRate  int // Hz
	padding     bool
	channelMode byte
	sampleCount int // samples per channel
	frameLength int // bytes, including the header
}

func (h frameHeader) channels() int {
	if h.channelMode == mono {
		return 1
	}
	return 2
}

// layerNumber converts the header layer field to the usual 1/2/3 numbering.
func (h frameHeader) layerNumber() int {
	return 4 - int(h.layer)
}

// parseFrameHeader parses b as a 4-byte MPEG audio frame header. Anything
// with reserved or invalid field values is rejected, which is also how
// false sync words inside garbage data are filtered out.
func parseFrameHeader(b []byte) (frameHeader, bool) {
	var h frameHeader

	if len(b) < 4 || b[0] != 0xFF || b[1]&0xE0 != 0xE0 {
		return h, false
	}

	h.version = (b[1] & 0x18) >> 3
	if h.version == mpegVersionReserved {
		return h, false
	}

	h.layer = (b[1] & 0x06) >> 1
	if h.layer == mpegLayerReserved {
		return h, false
	}

	bitrateIndex := (b[2] & 0xF0) >> 4
	if bitrateIndex == 0 || bitrateIndex == 15 {
		// free-format streams carry no usable frame length
		return h, false
	}
	if h.version == mpegVersion1 {
		switch h.layer {
		case mpegLayerI:
			h.bitrate = v1l1Bitrates[bitrateIndex]
		case mpegLayerII:
			h.bitrate = v1l2Bitrates[bitrateIndex]
		case mpegLayerIII:
			h.bitrate = v1l3Bitrates[bitrateIndex]
		}
	} else {
		if h.layer == mpegLayerI {
			h.bitrate = v2l1Bitrates[bitrateIndex]
		} else {
			h.bitrate = v2l2Bitrates[bitrateIndex]
		}
	}

	sampleRateIndex := (b[2] & 0x0C) >> 2
	if sampleRateIndex == 3 {
		return h, false
	}
	switch h.version {
	case mpegVersion1:
		h.sampleRate = v1SampleRates[sampleRateIndex]
	case mpegVersion2:
		h.sampleRate = v2SampleRates[sampleRateIndex]
	case mpegVersion2_5:
		h.sampleRate = v25SampleRates[sampleRateIndex]
	}

	h.padding = b[2]&0x02 != 0
	h.channelMode = (b[3] & 0xC0) >> 6

	if emphasis := b[3] & 0x03; emphasis == 2 {
		return h, false
	}

	if h.version == mpegVersion1 {
		if h.layer == mpegLayerI {
			h.sampleCount = 384
		} else {
			h.sampleCount = 1152
		}
	} else {
		switch h.layer {
		case mpegLayerI:
			h.sampleCount = 384
		case mpegLayerII:
			h.sampleCount = 1152
		case mpegLayerIII:
			h.sampleCount = 576
		}
	}

	// A padded frame carries one extra slot: 4 bytes for layer I, one byte
	// for layers II and III.
	pad := 0
	if h.padding {
		pad = 1
		if h.layer == mpegLayerI {
			pad = 4
		}
	}
	h.frameLength = (h.sampleCount/8)*h.bitrate*1000/h.sampleRate + pad

	return h, true
}

// findFrameHeader scans window for the first offset holding a valid frame
// header.
func findFrameHeader(window []byte) (int, frameHeader, bool) {
	for i := 0; i+4 <= len(window); i++ {
		if window[i] != 0xFF {
			continue
		}
		if h, ok := parseFrameHeader(window[i:]); ok {
			return i, h, true
		}
	}
	return 0, frameHeader{}, false
}
