// SPDX-License-Identifier: EPL-2.0

package stream

// FrameInfo describes one frame as reported by a Primitive.
type FrameInfo struct {
	// FrameBytes is the full consumed length in bytes, including the header.
	FrameBytes int
	// Bitrate of the frame in kb/s.
	Bitrate int
	// Channels in the frame (1 or 2).
	Channels int
	// Layer is the MPEG layer (1, 2 or 3).
	Layer int
	// SampleRate of the frame in Hz.
	SampleRate int
}

// Frame is a read-only view of one frame produced by a Decoder.
//
// Source borrows from the buffer the Decoder was built over and stays valid
// for the Decoder's lifetime. Samples borrows from the Decoder's scratch
// buffer, which is overwritten by every full decode, so it is valid only
// until the next call to NextFrame. Use CopySamples to retain samples
// across iterations.
type Frame struct {
	// Bitrate of the source frame in kb/s.
	Bitrate int
	// Channels in this frame.
	Channels int
	// Layer is the MPEG layer of this frame.
	Layer int
	// SampleRate of this frame in Hz.
	SampleRate int
	// SampleCount is the number of samples per channel. For frames
	// returned by PeekFrame this can be non-zero while Samples is empty,
	// since peeking parses the header without synthesizing PCM.
	SampleCount int
	// Samples holds the decoded PCM, interleaved by channel.
	Samples []int16
	// Source holds the source bytes of the frame, including the header.
	Source []byte
}

// CopySamples returns an owned copy of the interleaved samples, safe to
// keep after the next decode call.
func (f *Frame) CopySamples() []int16 {
	out := make([]int16, len(f.Samples))
	copy(out, f.Samples)
	return out
}
