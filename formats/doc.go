// SPDX-License-Identifier: EPL-2.0

// Package formats selects a decoding strategy by name or file extension.
//
// Each strategy lives in its own subpackage and returns an audio.Decoder:
//
//   - vorbis: Ogg Vorbis decoded to audio.Samples
//   - passthrough: Ogg Vorbis pages forwarded as audio.OggData
//   - mp3, wav, aiff: decoded to audio.Samples
//
// Use NewDefaultRegistry to get all of them:
//
//	reg := formats.NewDefaultRegistry()
//	kind, _ := formats.ForFile("song.ogg")
//	dec, err := reg.Open(kind, file)
package formats
