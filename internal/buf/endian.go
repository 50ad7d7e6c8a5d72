package buf

import "encoding/binary"

// U16LE reads a little-endian uint16 at b[off:]. Returns 0, false when out of range.
func U16LE(b []byte, off int) (uint16, bool) {
	s, ok := Slice(b, off, 2)
	if !ok {
		return 0, false
	}
	return binary.LittleEndian.Uint16(s), true
}

// U32LE reads a little-endian uint32 at b[off:]. Returns 0, false when out of range.
func U32LE(b []byte, off int) (uint32, bool) {
	s, ok := Slice(b, off, 4)
	if !ok {
		return 0, false
	}
	return binary.LittleEndian.Uint32(s), true
}

// U64LE reads a little-endian uint64 at b[off:]. Returns 0, false when out of range.
func U64LE(b []byte, off int) (uint64, bool) {
	s, ok := Slice(b, off, 8)
	if !ok {
		return 0, false
	}
	return binary.LittleEndian.Uint64(s), true
}

// PutU16LE writes v at b[off:] and reports whether it fit.
func PutU16LE(b []byte, off int, v uint16) bool {
	s, ok := Slice(b, off, 2)
	if ok {
		binary.LittleEndian.PutUint16(s, v)
	}
	return ok
}

// PutU32LE writes v at b[off:] and reports whether it fit.
func PutU32LE(b []byte, off int, v uint32) bool {
	s, ok := Slice(b, off, 4)
	if ok {
		binary.LittleEndian.PutUint32(s, v)
	}
	return ok
}

// PutU64LE writes v at b[off:] and reports whether it fit.
func PutU64LE(b []byte, off int, v uint64) bool {
	s, ok := Slice(b, off, 8)
	if ok {
		binary.LittleEndian.PutUint64(s, v)
	}
	return ok
}
