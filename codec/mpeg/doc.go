// SPDX-License-Identifier: EPL-2.0

// Package mpeg provides the default decode primitive for stream.Decoder.
//
// The package parses MPEG audio frame headers (MPEG-1, MPEG-2 and
// MPEG-2.5, all three layers) to find frame boundaries, recognizes ID3v1
// and ID3v2 tags as skippable chunks, and uses
// github.com/hajimehoshi/go-mp3 to synthesize PCM for Layer III frames.
//
// # Usage
//
// A Context holds the per-stream decode state. Create one per decoder:
//
//	dec := stream.New(data, mpeg.New())
//
// # Frame Recognition
//
// DecodeFrame classifies the head of the presented window:
//   - ID3v1 ("TAG") and ID3v2 ("ID3") tags become non-audio chunks of their
//     declared length.
//   - Bytes without a valid sync word become one bounded non-audio chunk,
//     so garbage is consumed without scanning twice.
//   - A valid frame header yields the frame's metadata (bitrate, channel
//     count, layer, sample rate) and exact byte length.
//
// # Output Format
//
// Synthesized PCM is signed 16-bit, interleaved by channel:
//   - Stereo frames: 1152 samples per channel (576 for MPEG-2/2.5).
//   - Mono frames: the left channel of go-mp3's stereo output.
//
// # Limitations
//
// Note:
//   - Only Layer III payloads are synthesized. Layer I and II frames are
//     measured and skipped, since go-mp3 decodes MP3 only.
//   - Free-format streams (bitrate index 0) are not recognized; their
//     headers carry no frame length.
//   - A frame payload that go-mp3 rejects degrades to a skipped chunk, not
//     an error, matching the stream package's frame-or-nothing contract.
package mpeg
