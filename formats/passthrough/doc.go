// SPDX-License-Identifier: EPL-2.0

// Package passthrough provides a decoding strategy that does not decode.
//
// The Decoder splits an Ogg Vorbis stream into its pages and hands each
// page, byte for byte, to the sink as an audio.OggData packet. It is meant
// for backends that decode Vorbis themselves.
//
// # Framing
//
// Every page is checked for the OggS capture pattern, stream structure
// version 0 and its CRC-32 before it is delivered. The first page must
// carry the Vorbis identification header; its sample rate and channel
// count are exposed through SampleRate and Channels. New also reads the
// pages holding the comment and setup headers and keeps them.
//
// # Seeking
//
// Seek rewinds to the start and skips pages until one whose granule
// position reaches the requested time. The header pages are delivered
// again first, followed by the page that contains the requested time, so
// a sink always receives a stream it can decode. Seek(0) restarts at the
// header pages.
//
// # Errors
//
// Framing failures are *audio.Error values of kind audio.KindPassthrough
// wrapping one of the sentinel errors of this package or
// io.ErrUnexpectedEOF for a truncated page.
package passthrough
