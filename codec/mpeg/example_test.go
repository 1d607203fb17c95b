// SPDX-License-Identifier: EPL-2.0

package mpeg_test

import (
	"fmt"
	"log"
	"os"

	"github.com/dyedgreen/rmp3/codec/mpeg"
	"github.com/dyedgreen/rmp3/stream"
)

// Example wires the default primitive into a frame decoder.
func Example() {
	data, err := os.ReadFile("testdata/sample.mp3")
	if err != nil {
		log.Fatal(err)
	}

	dec := stream.New(data, mpeg.New())
	for {
		frame := dec.NextFrame()
		if frame == nil {
			break
		}
		fmt.Printf("%d kb/s, %d Hz, %d samples\n",
			frame.Bitrate, frame.SampleRate, frame.SampleCount)
	}
}

// ExampleContext_DecodeFrame parses a frame header without synthesizing
// PCM by passing a nil output buffer.
func ExampleContext_DecodeFrame() {
	// MPEG-1 Layer III, 128 kb/s, 44100 Hz, stereo
	frame := make([]byte, 417)
	copy(frame, []byte{0xFF, 0xFB, 0x90, 0x00})

	ctx := mpeg.New()
	samples, info := ctx.DecodeFrame(frame, nil)

	fmt.Println(samples, info.FrameBytes, info.Bitrate, info.SampleRate)
	// Output: 1152 417 128 44100
}
