// SPDX-License-Identifier: EPL-2.0

// Package mp3 provides MP3 audio file decoding.
//
// This package uses github.com/hajimehoshi/go-mp3 to decode MP3 files into
// audio.Samples packets.
//
// # Decoding MP3 Files
//
//	file, _ := os.Open("audio.mp3")
//	dec, err := mp3.New(file)
//	if err != nil {
//	    // *audio.Error of kind audio.KindMP3
//	}
//	defer dec.Close()
//
//	p, err := dec.NextPacket()
//
// # Output Format
//
// MP3 decoder output:
//   - Sample format: float32 in range [-1.0, 1.0], int16 values divided by 32768
//   - Channels: 2 (stereo, go-mp3 always upmixes)
//   - Sample rate: Depends on the MP3 file (typically 44.1kHz or 48kHz)
//
// # Seeking
//
// Seek converts milliseconds to a byte offset in the decoded PCM stream.
// New buffers readers that cannot seek, so Seek works on any input.
//
// # Limitations
//
// MP3 writing is not supported.
package mp3
