// Package id3v2 implements the ID3v2.2, ID3v2.3 and ID3v2.4 frame codec,
// the frame body registry, the per-version field key tables and the tag
// aggregate built on top of them.
package id3v2

import (
	"fmt"

	"github.com/simonhull/audiotag/internal/types"
)

// Version is an ID3v2 major version.
type Version byte

const (
	V22 Version = 2
	V23 Version = 3
	V24 Version = 4
)

// Valid reports whether v is a supported major version.
func (v Version) Valid() bool {
	return v == V22 || v == V23 || v == V24
}

// IDLen returns the frame identifier length.
func (v Version) IDLen() int {
	if v == V22 {
		return 3
	}
	return 4
}

// HeaderLen returns the frame header length.
func (v Version) HeaderLen() int {
	if v == V22 {
		return 6
	}
	return 10
}

// MaxFrameSize returns the largest body size the version's size field can hold.
func (v Version) MaxFrameSize() uint32 {
	switch v {
	case V22:
		return 1<<24 - 1
	case V24:
		return 1<<28 - 1
	default:
		return 1<<32 - 1
	}
}

// Format returns the tag format for v.
func (v Version) Format() types.Format {
	switch v {
	case V22:
		return types.FormatID3v22
	case V23:
		return types.FormatID3v23
	case V24:
		return types.FormatID3v24
	default:
		return types.FormatUnknown
	}
}

func (v Version) String() string {
	return fmt.Sprintf("ID3v2.%d", byte(v))
}

// VersionOf returns the Version for an ID3v2 tag format.
func VersionOf(f types.Format) (Version, bool) {
	switch f {
	case types.FormatID3v22:
		return V22, true
	case types.FormatID3v23:
		return V23, true
	case types.FormatID3v24:
		return V24, true
	default:
		return 0, false
	}
}

// flagBits locates each frame flag inside the status and format bytes.
// A zero value means the version has no such flag.
type flagBits struct {
	tagAlterPreservation  byte
	fileAlterPreservation byte
	readOnly              byte

	grouping            byte
	compression         byte
	encryption          byte
	unsync              byte
	dataLengthIndicator byte
}

var (
	v23Flags = flagBits{
		tagAlterPreservation:  0x80,
		fileAlterPreservation: 0x40,
		readOnly:              0x20,
		compression:           0x80,
		encryption:            0x40,
		grouping:              0x20,
	}
	v24Flags = flagBits{
		tagAlterPreservation:  0x40,
		fileAlterPreservation: 0x20,
		readOnly:              0x10,
		grouping:              0x40,
		compression:           0x08,
		encryption:            0x04,
		unsync:                0x02,
		dataLengthIndicator:   0x01,
	}
)

func flagsFor(v Version) flagBits {
	switch v {
	case V23:
		return v23Flags
	case V24:
		return v24Flags
	default:
		return flagBits{}
	}
}

// convertStatusFlags maps status flags between versions by meaning.
func convertStatusFlags(status byte, from, to Version) byte {
	f, t := flagsFor(from), flagsFor(to)
	var out byte
	if f.tagAlterPreservation != 0 && status&f.tagAlterPreservation != 0 {
		out |= t.tagAlterPreservation
	}
	if f.fileAlterPreservation != 0 && status&f.fileAlterPreservation != 0 {
		out |= t.fileAlterPreservation
	}
	if f.readOnly != 0 && status&f.readOnly != 0 {
		out |= t.readOnly
	}
	return out
}
