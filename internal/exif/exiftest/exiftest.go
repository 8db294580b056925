// Package exiftest builds small EXIF payloads for tests.
package exiftest

import (
	"bytes"
	"encoding/binary"
)

// Rational is a numerator/denominator pair
type Rational [2]uint32

// DMS is a degrees, minutes, seconds triple
type DMS [3]Rational

// Deg builds a DMS from whole degrees, minutes and seconds
func Deg(d, m, s uint32) DMS {
	return DMS{{d, 1}, {m, 1}, {s, 1}}
}

const (
	typeASCII    = 2
	typeLong     = 4
	typeRational = 5

	tagGPSPointer   = 0x8825
	tagLatitudeRef  = 0x0001
	tagLatitude     = 0x0002
	tagLongitudeRef = 0x0003
	tagLongitude    = 0x0004
)

// GPSTIFF returns a little endian TIFF stream whose only content is a GPS IFD
// with the given latitude and longitude.
func GPSTIFF(lat DMS, latRef string, long DMS, longRef string) []byte {
	le := binary.LittleEndian
	buf := &bytes.Buffer{}

	const (
		ifd0Offset = 8
		gpsOffset  = ifd0Offset + 2 + 12 + 4
		dataOffset = gpsOffset + 2 + 4*12 + 4
	)

	// Header
	buf.WriteString("II")
	binary.Write(buf, le, uint16(42))
	binary.Write(buf, le, uint32(ifd0Offset))

	// IFD0 with a single GPS pointer
	binary.Write(buf, le, uint16(1))
	writeEntry(buf, tagGPSPointer, typeLong, 1, le.AppendUint32(nil, gpsOffset))
	binary.Write(buf, le, uint32(0))

	// GPS IFD
	binary.Write(buf, le, uint16(4))
	writeEntry(buf, tagLatitudeRef, typeASCII, 2, asciiValue(latRef))
	writeEntry(buf, tagLatitude, typeRational, 3, le.AppendUint32(nil, dataOffset))
	writeEntry(buf, tagLongitudeRef, typeASCII, 2, asciiValue(longRef))
	writeEntry(buf, tagLongitude, typeRational, 3, le.AppendUint32(nil, dataOffset+24))
	binary.Write(buf, le, uint32(0))

	for _, dms := range []DMS{lat, long} {
		for _, r := range dms {
			binary.Write(buf, le, r[0])
			binary.Write(buf, le, r[1])
		}
	}

	return buf.Bytes()
}

// JPEG wraps a TIFF stream in a minimal JPEG with an APP1 EXIF segment
func JPEG(tiffData []byte) []byte {
	payload := append([]byte("Exif\x00\x00"), tiffData...)

	buf := &bytes.Buffer{}
	buf.Write([]byte{0xFF, 0xD8, 0xFF, 0xE1})
	binary.Write(buf, binary.BigEndian, uint16(len(payload)+2))
	buf.Write(payload)
	buf.Write([]byte{0xFF, 0xD9})
	return buf.Bytes()
}

func writeEntry(buf *bytes.Buffer, tag, typ uint16, count uint32, value []byte) {
	le := binary.LittleEndian
	binary.Write(buf, le, tag)
	binary.Write(buf, le, typ)
	binary.Write(buf, le, count)

	var v [4]byte
	copy(v[:], value)
	buf.Write(v[:])
}

func asciiValue(ref string) []byte {
	if ref == "" {
		ref = " "
	}
	return []byte{ref[0], 0}
}
