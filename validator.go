package modbusrtu

// validateFrame reports whether frame is a well-formed request addressed
// to ownAddress (unicast) or to the broadcast address 0 (§4.2):
//
//  1. length >= minFrameLength
//  2. address byte is ownAddress or 0
//  3. the trailing little-endian CRC-16 matches the preceding bytes
//
// An invalid frame produces no response at all, including a unicast
// frame with a bad CRC (P2).
func validateFrame(frame []byte, ownAddress byte) bool {
	n := len(frame)
	if n < minFrameLength {
		return false
	}

	addr := frame[0]
	if addr != ownAddress && addr != 0 {
		return false
	}

	want := crc16(frame[:n-2])
	got := le16Get(frame[n-2:])
	return want == got
}
