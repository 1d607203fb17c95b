// SPDX-License-Identifier: EPL-2.0

// Package stream implements frame-by-frame iteration over an MPEG audio
// stream held fully in memory.
//
// The package tracks a cursor over the source buffer and drives a decode
// primitive (the Primitive interface) that locates frame headers and
// synthesizes PCM. The bitstream mathematics lives behind that interface;
// the default implementation is codec/mpeg.
//
// # Reading Frames
//
// Build a Decoder over the raw stream bytes and iterate:
//
//	dec := stream.New(data, mpeg.New())
//	for {
//	    frame := dec.NextFrame()
//	    if frame == nil {
//	        break
//	    }
//	    // frame.Samples holds interleaved int16 PCM
//	}
//
// Non-audio chunks such as ID3 tags are skipped automatically. When the
// stream holds no further frame, NextFrame returns nil and keeps returning
// nil; malformed trailing data terminates the sequence the same way rather
// than raising an error.
//
// # Peeking and Skipping
//
// PeekFrame parses the next frame header without synthesizing PCM and
// without moving the cursor, which is much cheaper than a full decode:
//
//	frame := dec.PeekFrame()  // metadata only, empty Samples
//	dec.SkipFrame()           // advance without decoding
//
// The length discovered by a peek is remembered, so peek-then-skip parses
// each frame exactly once. Skipping at end of stream is a harmless no-op.
//
// # Sample Lifetime
//
// The decoder owns a single scratch buffer for PCM output. Every call to
// NextFrame overwrites it, so at most one frame's Samples slice is valid
// at a time. Call Frame.CopySamples to keep samples across iterations.
//
// # Concurrency
//
// All operations are synchronous and allocation is confined to the
// returned views. A Decoder must not be used from multiple goroutines;
// decode disjoint buffer regions with separate Decoder instances instead.
package stream
