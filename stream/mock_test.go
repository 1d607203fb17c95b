// SPDX-License-Identifier: EPL-2.0

package stream

// chunk describes one region of a scripted stream.
type chunk struct {
	length  int
	samples int // samples per channel; 0 marks a non-audio chunk
	fill    int16
}

// scriptedPrimitive replays a fixed stream layout and counts invocations.
// It implements Primitive without any real bitstream work, which lets
// tests pin down exactly when and how often the decoder consults it.
type scriptedPrimitive struct {
	total  int
	chunks []chunk

	calls     int // all DecodeFrame invocations
	fullCalls int // invocations with a PCM output buffer
}

func (p *scriptedPrimitive) DecodeFrame(window []byte, pcm []int16) (int, FrameInfo) {
	p.calls++
	if pcm != nil {
		p.fullCalls++
	}

	off := p.total - len(window)
	pos := 0
	for _, c := range p.chunks {
		if pos == off {
			info := FrameInfo{
				FrameBytes: c.length,
				Bitrate:    128,
				Channels:   2,
				Layer:      3,
				SampleRate: 44100,
			}
			if c.samples > 0 && pcm != nil {
				for i := 0; i < c.samples*info.Channels; i++ {
					pcm[i] = c.fill
				}
			}
			return c.samples, info
		}
		pos += c.length
	}

	// past the scripted chunks: nothing usable left
	return 0, FrameInfo{}
}

// scriptedStream builds the byte buffer matching chunks. The bytes of
// chunk k all hold the value k+1, so source views can be told apart.
func scriptedStream(chunks ...chunk) ([]byte, *scriptedPrimitive) {
	var data []byte
	for k, c := range chunks {
		for i := 0; i < c.length; i++ {
			data = append(data, byte(k+1))
		}
	}
	return data, &scriptedPrimitive{total: len(data), chunks: chunks}
}

// oversizedPrimitive reports a frame length larger than any window it is
// handed, imitating a header that claims more bytes than the stream holds.
type oversizedPrimitive struct {
	calls int
}

func (p *oversizedPrimitive) DecodeFrame(window []byte, pcm []int16) (int, FrameInfo) {
	p.calls++
	return 1152, FrameInfo{
		FrameBytes: len(window) + 10,
		Bitrate:    128,
		Channels:   2,
		Layer:      3,
		SampleRate: 44100,
	}
}
