// SPDX-License-Identifier: EPL-2.0

package wav

import "errors"

var (
	ErrInvalidSampleRate       = errors.New("invalid sample rate")
	ErrUnsupportedChannelCount = errors.New("unsupported channel count")
	ErrUnalignedSamples        = errors.New("sample count must be multiple of channels")
)
