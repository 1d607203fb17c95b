// SPDX-License-Identifier: EPL-2.0

package mpeg

import (
	"bytes"
	"encoding/binary"
	"io"

	gomp3 "github.com/hajimehoshi/go-mp3"

	"github.com/dyedgreen/rmp3/stream"
)

// Context is the default decode primitive behind a stream.Decoder. It
// locates frame headers and tag chunks itself and delegates Layer III PCM
// synthesis to github.com/hajimehoshi/go-mp3. One Context serves exactly
// one Decoder.
type Context struct {
	buf   []byte
	synth func(frame []byte) (io.Reader, error)
}

// New returns a fresh decode context.
func New() *Context {
	return &Context{
		synth: func(frame []byte) (io.Reader, error) {
			return gomp3.NewDecoder(bytes.NewReader(frame))
		},
	}
}

// DecodeFrame implements stream.Primitive.
//
// ID3v1/ID3v2 tags and runs of bytes without a valid sync word are
// reported as non-audio chunks, bounded by the window so the caller always
// makes progress. A frame whose header claims more bytes than the window
// holds marks the end of the usable stream, as does an empty window.
// Layer I and II frames are recognized for their length but reported as
// chunks to skip; only Layer III payloads are synthesized.
func (c *Context) DecodeFrame(window []byte, pcm []int16) (int, stream.FrameInfo) {
	if len(window) == 0 {
		return 0, stream.FrameInfo{}
	}

	if n, ok := tagLength(window); ok {
		return 0, stream.FrameInfo{FrameBytes: min(n, len(window))}
	}

	i, hdr, ok := findFrameHeader(window)
	if !ok {
		// no sync word anywhere: hand the window back as one skip chunk
		return 0, stream.FrameInfo{FrameBytes: len(window)}
	}
	if i > 0 {
		// garbage run before the next frame
		return 0, stream.FrameInfo{FrameBytes: i}
	}
	if hdr.frameLength > len(window) {
		// truncated trailing frame
		return 0, stream.FrameInfo{}
	}

	info := stream.FrameInfo{
		FrameBytes: hdr.frameLength,
		Bitrate:    hdr.bitrate,
		Channels:   hdr.channels(),
		Layer:      hdr.layerNumber(),
		SampleRate: hdr.sampleRate,
	}
	if hdr.layer != mpegLayerIII {
		return 0, info
	}
	if pcm == nil {
		// header-only parse
		return hdr.sampleCount, info
	}

	samples, err := c.synthesize(window[:hdr.frameLength], hdr, pcm)
	if err != nil {
		// undecodable payload behind a valid header: skip it
		return 0, info
	}
	return samples, info
}

// synthesize decodes the PCM of one Layer III frame into pcm and reports
// the samples produced per channel. go-mp3 emits 16-bit little-endian
// stereo regardless of the source channel count, so mono frames keep the
// left channel only.
func (c *Context) synthesize(frame []byte, hdr frameHeader, pcm []int16) (int, error) {
	dec, err := c.synth(frame)
	if err != nil {
		return 0, err
	}

	need := hdr.sampleCount * 4
	if cap(c.buf) < need {
		c.buf = make([]byte, need)
	}
	buf := c.buf[:need]

	n, err := io.ReadFull(dec, buf)
	if n < 4 {
		if err == nil || err == io.EOF {
			err = io.ErrUnexpectedEOF
		}
		return 0, err
	}

	frames := n / 4
	if hdr.channels() == 1 {
		for i := 0; i < frames; i++ {
			pcm[i] = int16(binary.LittleEndian.Uint16(buf[4*i:]))
		}
	} else {
		for i := 0; i < frames*2; i++ {
			pcm[i] = int16(binary.LittleEndian.Uint16(buf[2*i:]))
		}
	}
	return frames, nil
}
