// SPDX-License-Identifier: EPL-2.0

// Package rmp3 decodes MPEG audio streams held fully in memory, frame by
// frame, with zero-copy views into both the compressed bytes and the
// decoded PCM.
//
// The core is a cursor engine over a single byte buffer: it finds the next
// frame, skips embedded tag data, and returns transient Frame views that
// borrow from the buffer and from a reused sample scratch region. The
// MPEG bitstream mathematics is delegated to a pluggable decode primitive;
// the built-in one synthesizes Layer III PCM via
// github.com/hajimehoshi/go-mp3.
//
// # Quick Start
//
// The simplest way to decode a whole buffer is DecodePCM16:
//
//	data, _ := os.ReadFile("audio.mp3")
//	pcm, rate := rmp3.DecodePCM16(data)
//	// pcm is interleaved int16 at rate Hz
//
// # Frame Iteration
//
// For per-frame control, build a decoder and iterate:
//
//	dec := rmp3.New(data)
//	for {
//	    frame := dec.NextFrame()
//	    if frame == nil {
//	        break
//	    }
//	    fmt.Println(frame.Bitrate, frame.SampleRate, frame.SampleCount)
//	}
//
// ID3 tags and garbage runs are skipped automatically. frame.Samples is
// only valid until the next NextFrame call; use frame.CopySamples to keep
// it.
//
// # Cheap Inspection
//
// PeekFrame parses the next frame header without synthesizing PCM or
// moving the cursor, and SkipFrame advances without decoding. Duration and
// CountFrames are built on this path, so measuring a stream never pays for
// synthesis:
//
//	length := rmp3.Duration(data)
//	frames := rmp3.CountFrames(data)
//
// # Writing Output
//
// Collected samples can be written as a WAV file with formats/wav:
//
//	pcm, rate := rmp3.DecodePCM16(data)
//	f, _ := os.Create("out.wav")
//	wav.WritePCM16(f, rate, 2, pcm)
//
// # Scope
//
// The package operates on complete in-memory buffers only: no streaming
// over partial data, no seeking by timestamp, no formats beyond MPEG
// audio. A decoder is single-threaded; decode disjoint regions with
// separate decoders for parallelism.
//
// See the stream and codec/mpeg subpackages for the engine and the
// default primitive.
package rmp3
