// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"errors"

	"github.com/ik5/audplay/internal/pcmfile"
)

var (
	// ErrNotWavFile indicates the data is not a RIFF/WAVE file
	ErrNotWavFile = errors.New("not a WAV file")

	// ErrNotPCM indicates a WAVE format tag other than integer PCM
	ErrNotPCM = errors.New("only integer PCM WAV is supported")

	// ErrUnsupportedBitDepth indicates a sample width other than 16, 24 or 32 bits
	ErrUnsupportedBitDepth = pcmfile.ErrUnsupportedBitDepth
)
