package modbusrtu

// Poll processes a latched frame, if one is available, and is a no-op
// otherwise. Call from the main/cooperative loop.
//
// Processing order: claim the frame (processingFrame=true, so ISR
// byte-received events are dropped for the duration), validate it,
// dispatch to the matching handler, transmit a response unless the
// request was a broadcast or the frame was invalid, then release the
// frame and return the receiver to accepting new data.
func (s *Slave) Poll() {
	if !s.frameAvailable.Load() {
		return
	}
	s.processingFrame.Store(true)
	defer func() {
		s.frameAvailable.Store(false)
		s.processingFrame.Store(false)
		s.frameLen = 0
	}()

	frame := s.frame[:s.frameLen]
	if !validateFrame(frame, s.config.Address) {
		return // P2: bad length/address/CRC, no response
	}

	addr := frame[0]
	fc := frame[1]
	req := frame[2 : len(frame)-2]

	payloadLen, ex := s.dispatch(fc, req)

	if addr == 0 {
		return // P3: broadcast, never respond regardless of outcome
	}

	s.transmit(addr, fc, ex, payloadLen)
}

// transmit assembles the response ADU (address | PDU | CRC-16 LE) in
// s.aduBuf and hands it to the configured Write callback. No allocation:
// s.staging holds the PDU, built by dispatch/handlers or, on exception,
// directly here (§4.3, §9).
func (s *Slave) transmit(addr, fc byte, ex Exception, payloadLen int) {
	var pduLen int
	if ex != NoException {
		s.staging[0] = fc | exceptionBit
		s.staging[1] = byte(ex)
		pduLen = 2
	} else {
		s.staging[0] = fc
		pduLen = 1 + payloadLen
	}

	s.aduBuf[0] = addr
	n := copy(s.aduBuf[1:], s.staging[:pduLen])
	crc := crc16(s.aduBuf[:1+n])
	le16Set(s.aduBuf[1+n:1+n+2], crc)

	s.config.Write(s.aduBuf[:1+n+2])
}
