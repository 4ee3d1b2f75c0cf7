package binary

import "bytes"

// MaxSynchsafe is the largest value a 4-byte synchsafe integer can hold.
const MaxSynchsafe = 1<<28 - 1

// MaxUint24 is the largest value a 3-byte integer can hold.
const MaxUint24 = 1<<24 - 1

// DecodeSynchsafe decodes a synchsafe integer (7 bits per byte).
// ID3v2 uses 7-bit encoding where bit 7 is always 0.
func DecodeSynchsafe(b []byte) uint32 {
	if len(b) != 4 {
		return 0
	}
	return uint32(b[0]&0x7F)<<21 |
		uint32(b[1]&0x7F)<<14 |
		uint32(b[2]&0x7F)<<7 |
		uint32(b[3]&0x7F)
}

// EncodeSynchsafe encodes v, which must not exceed MaxSynchsafe.
func EncodeSynchsafe(v uint32) []byte {
	return []byte{
		byte(v>>21) & 0x7F,
		byte(v>>14) & 0x7F,
		byte(v>>7) & 0x7F,
		byte(v) & 0x7F,
	}
}

// DecodeUint24 decodes a 3-byte big-endian integer.
func DecodeUint24(b []byte) uint32 {
	if len(b) != 3 {
		return 0
	}
	return uint32(b[0])<<16 | uint32(b[1])<<8 | uint32(b[2])
}

// EncodeUint24 encodes the low 24 bits of v big-endian.
func EncodeUint24(v uint32) []byte {
	return []byte{byte(v >> 16), byte(v >> 8), byte(v)}
}

// RemoveUnsync reverses ID3v2 unsynchronisation: every 0xFF 0x00 pair
// becomes 0xFF.
func RemoveUnsync(b []byte) []byte {
	if !bytes.Contains(b, []byte{0xFF, 0x00}) {
		return b
	}
	out := make([]byte, 0, len(b))
	for i := 0; i < len(b); i++ {
		out = append(out, b[i])
		if b[i] == 0xFF && i+1 < len(b) && b[i+1] == 0x00 {
			i++
		}
	}
	return out
}

// ApplyUnsync inserts a zero byte after every 0xFF that is followed by a
// byte with its top three bits set, or by 0x00, or that ends the buffer.
func ApplyUnsync(b []byte) []byte {
	out := make([]byte, 0, len(b)+len(b)/64)
	for i := 0; i < len(b); i++ {
		out = append(out, b[i])
		if b[i] != 0xFF {
			continue
		}
		if i+1 == len(b) || b[i+1] == 0x00 || b[i+1]&0xE0 == 0xE0 {
			out = append(out, 0x00)
		}
	}
	return out
}
