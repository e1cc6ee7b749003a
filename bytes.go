package modbusrtu

// be16Get extracts a 16-bit big-endian value from p (PDU wire order).
func be16Get(p []byte) uint16 {
	return uint16(p[0])<<8 | uint16(p[1])
}

// be16Set stores value as big-endian into p, high byte first.
func be16Set(p []byte, value uint16) {
	p[0] = byte(value >> 8)
	p[1] = byte(value)
}

// le16Get extracts a 16-bit little-endian value from p (used only for the
// trailing CRC field on the wire).
func le16Get(p []byte) uint16 {
	return uint16(p[1])<<8 | uint16(p[0])
}

// le16Set stores value as little-endian into p, low byte first.
func le16Set(p []byte, value uint16) {
	p[0] = byte(value)
	p[1] = byte(value >> 8)
}

// byteCount returns the number of bytes needed to pack bitCount bits,
// LSB-first within each byte (ceil(bitCount/8)).
func byteCount(bitCount uint16) int {
	return int((bitCount + 7) / 8)
}

// packBits writes the quantity booleans in bits into dst, LSB-first,
// filling the low-order bits of dst[0] with the lowest-address bit first.
// dst must be at least byteCount(quantity) bytes.
func packBits(dst []byte, bits []bool) {
	for i := range dst {
		dst[i] = 0
	}
	for i, set := range bits {
		if set {
			dst[i/8] |= 1 << uint(i%8)
		}
	}
}

// unpackBits decodes quantity bits from src, LSB-first, mirroring packBits.
func unpackBits(quantity uint16, src []byte) []bool {
	bits := make([]bool, quantity)
	for i := range bits {
		byteIdx, bitIdx := i/8, uint(i%8)
		bits[i] = src[byteIdx]&(1<<bitIdx) != 0
	}
	return bits
}
