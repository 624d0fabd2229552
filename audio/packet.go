// SPDX-License-Identifier: EPL-2.0

package audio

// Packet is one unit of audio moving from a Decoder to a Sink.
// It is either Samples or OggData; consumers switch on the concrete type:
//
//	switch p := p.(type) {
//	case audio.Samples:
//	case audio.OggData:
//	}
type Packet interface {
	// Empty reports whether the packet carries no data.
	Empty() bool

	packet()
}

// Samples holds interleaved float32 samples normalized to [-1, 1].
type Samples []float32

// OggData holds one raw Ogg page for sinks that decode it themselves.
type OggData []byte

func (s Samples) Empty() bool { return len(s) == 0 }
func (d OggData) Empty() bool { return len(d) == 0 }

func (Samples) packet() {}
func (OggData) packet() {}

// AsSamples returns the samples of p, or false if p is not Samples.
func AsSamples(p Packet) ([]float32, bool) {
	s, ok := p.(Samples)
	return s, ok
}

// AsOggData returns the page bytes of p, or false if p is not OggData.
func AsOggData(p Packet) ([]byte, bool) {
	d, ok := p.(OggData)
	return d, ok
}
