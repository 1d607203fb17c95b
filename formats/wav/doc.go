// SPDX-License-Identifier: EPL-2.0

// Package wav writes decoded PCM as WAV files.
//
// This package covers the output side of the decoding pipeline: samples
// collected from the frame decoder can be persisted as a standard PCM WAV
// file. It uses the github.com/go-audio library for robust WAV encoding.
//
// # Writing WAV Files
//
// Use WritePCM16 to create WAV files from interleaved 16-bit samples:
//
//	pcm, rate := rmp3.DecodePCM16(data)
//	file, _ := os.Create("output.wav")
//	err := wav.WritePCM16(file, rate, 2, pcm)
//
// The function writes a complete WAV file with proper headers. The writer
// must support seeking, since chunk sizes are finalized after the sample
// data is written.
//
// # Supported Formats
//
// Currently supported:
//   - PCM 16-bit little-endian
//   - Mono and stereo
//   - Any sample rate
//
// # Error Handling
//
// The package defines several error values:
//   - ErrInvalidSampleRate: the sample rate is zero or negative
//   - ErrUnsupportedChannelCount: only 1 or 2 channels are supported
//   - ErrUnalignedSamples: the sample slice does not divide evenly into
//     channel frames
//
// Example:
//
//	err := wav.WritePCM16(f, 44100, 3, pcm)
//	if errors.Is(err, wav.ErrUnsupportedChannelCount) {
//	    fmt.Println("mono or stereo only")
//	}
package wav
