// SPDX-License-Identifier: EPL-2.0

package pcm

// Int24 is a signed 24-bit sample packed little-endian in three bytes.
type Int24 [3]byte

// NewInt24 packs the low 24 bits of v.
func NewInt24(v int32) Int24 {
	return Int24{
		byte(v),
		byte(v >> 8),
		byte(v >> 16),
	}
}

// Int32 unpacks the sample and sign-extends it.
func (s Int24) Int32() int32 {
	v := int32(s[0]) | int32(s[1])<<8 | int32(s[2])<<16
	if v&0x800000 != 0 {
		v |= ^0xFFFFFF
	}
	return v
}
