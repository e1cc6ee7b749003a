package modbusrtu

// RxByte appends a received byte into the frame buffer. Call from the
// UART receive interrupt, once per received byte, in wire order.
//
// While a previous frame is still being processed (Poll has claimed it
// but not yet released it), the byte is silently dropped and no state
// transition occurs (§4.1, §5, P8).
func (s *Slave) RxByte(b byte) {
	if s.processingFrame.Load() {
		return
	}

	switch SlaveState(s.state.Load()) {
	case StateIdle:
		s.frameLen = 0
		s.frameOK = true
		s.frame[0] = b
		s.frameLen = 1
		s.state.Store(uint32(StateReception))

	case StateReception:
		if int(s.frameLen) < maxFrameLength {
			s.frame[s.frameLen] = b
			s.frameLen++
		} else {
			// Buffer is full: this byte cannot be stored. The frame is
			// marked bad but reception must still end cleanly at the
			// next silent interval (§3 invariants).
			s.frameOK = false
			s.state.Store(uint32(StateControlAndWaiting))
		}

	case StateControlAndWaiting:
		// A byte arriving after the 1.5t gap but before the 3.5t gap is
		// a gap violation. The source accepts the already-latched bytes
		// as-is rather than invalidating the frame (§9 open question) -
		// this implementation preserves that rather than adding
		// stricter behavior of its own.

	default:
		// StateUninitialized: Init has not run yet, ignore.
	}
}

// OnePointFiveTElapsed signals that 1.5 character-times have elapsed
// since the last received byte. Call from the timer interrupt. A no-op
// unless the receiver is currently in StateReception (P9).
func (s *Slave) OnePointFiveTElapsed() {
	if SlaveState(s.state.Load()) == StateReception {
		s.state.Store(uint32(StateControlAndWaiting))
	}
}

// ThreePointFiveTElapsed signals that 3.5 character-times have elapsed
// since the last received byte. Call from the timer interrupt. A no-op
// unless the receiver is currently in StateControlAndWaiting (P9). On
// firing, the receiver returns to StateIdle; if the latched frame is
// still marked ok, it becomes available to Poll, otherwise it is
// silently discarded.
func (s *Slave) ThreePointFiveTElapsed() {
	if SlaveState(s.state.Load()) != StateControlAndWaiting {
		return
	}
	if s.frameOK {
		s.frameAvailable.Store(true)
	}
	s.state.Store(uint32(StateIdle))
}
