// SPDX-License-Identifier: EPL-2.0

// Package pcmfile decodes integer PCM containers read through go-audio.
//
// The wav and aiff format packages supply an OpenFunc that parses their
// container header; the packet loop, normalization and seeking live here.
// Samples are divided by 2^(bitDepth-1), so full-scale negative values map
// to exactly -1.0.
package pcmfile
