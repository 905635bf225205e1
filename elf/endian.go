package elf

// decodeUint16 reads a 16-bit integer from the first two bytes of b in
// the byte order indicated by isLSB. It does not bounds-check b; callers
// must slice to at least 2 bytes first.
func decodeUint16(b []byte, isLSB bool) uint16 {
	b0, b1 := uint16(b[0]), uint16(b[1])
	if isLSB {
		return b0 | b1<<8
	}
	return b1 | b0<<8
}

// decodeUint32 reads a 32-bit integer from the first four bytes of b.
func decodeUint32(b []byte, isLSB bool) uint32 {
	w0 := uint32(decodeUint16(b[0:2], isLSB))
	w1 := uint32(decodeUint16(b[2:4], isLSB))
	if isLSB {
		return w0 | w1<<16
	}
	return w1 | w0<<16
}

// decodeUint64 reads a 64-bit integer from the first eight bytes of b.
func decodeUint64(b []byte, isLSB bool) uint64 {
	d0 := uint64(decodeUint32(b[0:4], isLSB))
	d1 := uint64(decodeUint32(b[4:8], isLSB))
	if isLSB {
		return d0 | d1<<32
	}
	return d1 | d0<<32
}
