// SPDX-License-Identifier: EPL-2.0

package rmp3

import (
	"time"

	"github.com/dyedgreen/rmp3/codec/mpeg"
	"github.com/dyedgreen/rmp3/stream"
)

// New returns a frame decoder over data using the built-in MPEG decode
// primitive. data must stay unmodified for the decoder's lifetime.
func New(data []byte) *stream.Decoder {
	return stream.New(data, mpeg.New())
}

// DecodePCM16 decodes every audio frame in data and collects the PCM as
// one owned slice of interleaved 16-bit samples, together with the sample
// rate of the first audio frame. An input without any decodable frame
// yields an empty slice and a zero rate.
//
// This is a convenience for small buffers; it holds the whole decoded
// stream in memory. Iterate with New for anything large.
func DecodePCM16(data []byte) ([]int16, int) {
	dec := New(data)

	var pcm []int16
	sampleRate := 0
	for {
		frame := dec.NextFrame()
		if frame == nil {
			break
		}
		if sampleRate == 0 {
			sampleRate = frame.SampleRate
		}
		pcm = append(pcm, frame.Samples...)
	}

	return pcm, sampleRate
}

// Duration reports the total playable duration of the audio in data. It
// walks the stream with header-only peeks, so no PCM is synthesized and
// the cost is proportional to the frame count.
func Duration(data []byte) time.Duration {
	dec := New(data)

	var total time.Duration
	for {
		frame := dec.PeekFrame()
		if frame == nil {
			break
		}
		if frame.SampleCount > 0 && frame.SampleRate > 0 {
			total += time.Duration(frame.SampleCount) * time.Second / time.Duration(frame.SampleRate)
		}
		dec.SkipFrame()
	}

	return total
}

// CountFrames reports the number of audio frames in data, not counting
// tags or other non-audio chunks. Like Duration it only parses headers.
func CountFrames(data []byte) int {
	dec := New(data)

	count := 0
	for {
		frame := dec.PeekFrame()
		if frame == nil {
			break
		}
		if frame.SampleCount > 0 {
			count++
		}
		dec.SkipFrame()
	}

	return count
}
