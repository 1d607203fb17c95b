// SPDX-License-Identifier: EPL-2.0

package stream

import "math"

// MaxSamplesPerFrame is the largest number of interleaved samples a single
// MPEG audio frame can produce: 1152 samples per channel, two channels.
const MaxSamplesPerFrame = 1152 * 2

// maxWindow caps the window handed to a Primitive in one call. Frame decode
// routines take a signed 32-bit length, so spans beyond the ceiling are
// presented as successive bounded windows instead of one oversized slice.
const maxWindow = math.MaxInt32

// Primitive locates and decodes one frame at the start of a byte window.
// A Primitive may keep per-stream state; one instance serves one Decoder.
//
// DecodeFrame reports one of three outcomes:
//   - an audio frame: samples > 0 and info.FrameBytes holds the full
//     consumed length including the header; when pcm is non-nil the
//     interleaved PCM is written there (pcm must hold at least
//     MaxSamplesPerFrame values).
//   - a non-audio chunk (tag data, garbage runs, undecodable payloads):
//     samples == 0 and info.FrameBytes > 0 names the bytes to skip.
//   - end of usable stream: samples == 0 and info.FrameBytes == 0.
//
// Passing pcm as nil requests a header-only parse; no PCM is synthesized.
// info.FrameBytes must never exceed len(window).
type Primitive interface {
	DecodeFrame(window []byte, pcm []int16) (samples int, info FrameInfo)
}

// Decoder iterates the frames of an MPEG audio stream held fully in memory.
//
// The decoder borrows data for its whole lifetime and never copies it;
// returned Frame views point back into it. A Decoder is not safe for
// concurrent use. Decoding disjoint regions in parallel requires one
// Decoder per region.
type Decoder struct {
	prim Primitive
	cur  cursor
	pcm  []int16

	// single-slot memo of the last peeked frame length; stale as soon as
	// the cursor moves for any reason other than consuming it
	cachedLen int
	hasCache  bool

	exhausted bool
}

// New creates a Decoder over data using prim to locate and decode frames.
// prim must not be shared with another Decoder.
func New(data []byte, prim Primitive) *Decoder {
	return &Decoder{
		prim: prim,
		cur:  cursor{data: data},
		pcm:  make([]int16, MaxSamplesPerFrame),
	}
}

// NextFrame decodes and returns the next audio frame, advancing past it.
// Non-audio chunks (tag data, garbage) are skipped over until an audio
// frame is found. It returns nil once no further frame can be found; from
// then on every call returns nil.
//
// The returned frame's Samples slice is overwritten by the following
// NextFrame call.
func (d *Decoder) NextFrame() *Frame {
	d.hasCache = false
	for !d.exhausted {
		samples, info := d.decode(d.pcm)
		if info.FrameBytes == 0 {
			d.exhausted = true
			break
		}
		start := d.cur.position()
		if !d.cur.advance(info.FrameBytes) {
			// the header claims more bytes than the stream holds;
			// treat the truncated tail as end of stream
			d.exhausted = true
			break
		}
		if samples > 0 {
			return &Frame{
				Bitrate:     info.Bitrate,
				Channels:    info.Channels,
				Layer:       info.Layer,
				SampleRate:  info.SampleRate,
				SampleCount: samples,
				Samples:     d.pcm[:samples*info.Channels],
				Source:      d.cur.data[start : start+info.FrameBytes],
			}
		}
		// non-audio chunk: consumed, try again on the shrunken remainder
	}
	return nil
}

// PeekFrame parses the next frame without decoding PCM and without
// advancing. The returned frame carries metadata and source bytes but an
// empty Samples slice; SampleCount still reports what a full decode would
// produce, with zero marking a non-audio chunk. The discovered length is
// remembered, so an immediately following SkipFrame does not parse again.
//
// PeekFrame returns nil when no frame starts at the current position. That
// is not a terminal condition by itself: unlike NextFrame it leaves the
// decoder as it was.
func (d *Decoder) PeekFrame() *Frame {
	if d.exhausted {
		return nil
	}
	samples, info := d.decode(nil)
	if info.FrameBytes == 0 {
		return nil
	}
	d.cachedLen = info.FrameBytes
	d.hasCache = true
	off := d.cur.position()
	return &Frame{
		Bitrate:     info.Bitrate,
		Channels:    info.Channels,
		Layer:       info.Layer,
		SampleRate:  info.SampleRate,
		SampleCount: samples,
		Source:      d.cur.data[off : off+info.FrameBytes],
	}
}

// SkipFrame advances past the next frame without decoding it. If the frame
// was just peeked its remembered length is reused, so the underlying parse
// runs at most once per frame. At end of stream SkipFrame is a no-op.
func (d *Decoder) SkipFrame() {
	n, ok := d.frameBytes()
	if !ok {
		return
	}
	if !d.cur.advance(n) {
		d.exhausted = true
	}
}

// Position returns the current offset into the source buffer.
func (d *Decoder) Position() int {
	return d.cur.position()
}

// Remaining returns the number of source bytes not yet consumed.
func (d *Decoder) Remaining() int {
	return d.cur.remaining()
}

// frameBytes resolves the length of the next frame, consuming the peek
// cache when one is set and peeking otherwise. The cache is always clear
// afterwards.
func (d *Decoder) frameBytes() (int, bool) {
	if d.hasCache {
		d.hasCache = false
		return d.cachedLen, true
	}
	f := d.PeekFrame()
	d.hasCache = false
	if f == nil {
		return 0, false
	}
	return len(f.Source), true
}

// decode presents the remaining bytes to the primitive, bounded at
// maxWindow per call.
func (d *Decoder) decode(pcm []int16) (int, FrameInfo) {
	n := d.cur.remaining()
	if n > maxWindow {
		n = maxWindow
	}
	return d.prim.DecodeFrame(d.cur.window(n), pcm)
}
