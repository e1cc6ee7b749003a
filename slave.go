package modbusrtu

import "sync/atomic"

// SlaveState is one of the states of the receiver state machine (§4.1).
type SlaveState uint32

const (
	// StateUninitialized is the sentinel state before Init succeeds.
	StateUninitialized SlaveState = iota
	// StateIdle is the state between frames: the next received byte
	// starts a new frame.
	StateIdle
	// StateReception is entered on the first byte of a frame and left
	// either on overflow or on the 1.5t silent interval.
	StateReception
	// StateControlAndWaiting waits out the remainder of the 3.5t silent
	// interval before the frame is handed off (or discarded).
	StateControlAndWaiting
)

const (
	maxFrameLength = 256 // Modbus RTU ADU maximum (address + PDU + CRC)
	minFrameLength = 4   // address + function code + 2-byte CRC
	maxPDULength   = 253 // ADU maximum minus address and CRC
)

// Slave is a Modbus RTU slave instance. The zero value is not usable;
// construct one and call Init before any other method. A Slave has
// process lifetime and is never destroyed - storage is caller-owned,
// typically a package-level or static variable on embedded targets.
//
// RxByte, OnePointFiveTElapsed and ThreePointFiveTElapsed are safe to
// call from interrupt context. Poll is meant for the main/cooperative
// loop. Init must complete before either context is active.
type Slave struct {
	config SlaveConfig

	state atomic.Uint32

	// frame, frameLen and frameOK are written by the ISR-context event
	// methods and read by Poll. The two atomics below delimit disjoint
	// write/read windows (§5): ISR writes only while processingFrame is
	// false, Poll reads only after observing frameAvailable true and
	// having set processingFrame true itself.
	frame    [maxFrameLength]byte
	frameLen uint16
	frameOK  bool

	frameAvailable  atomic.Bool
	processingFrame atomic.Bool

	// staging is the scratch region handlers serialize their response
	// PDU payload into (§9 Buffer aliasing). It never aliases frame.
	staging [maxPDULength]byte

	// aduBuf holds the fully framed response (address + PDU + CRC),
	// assembled by transmit from staging. Reused across polls so that
	// Poll never allocates.
	aduBuf [maxFrameLength]byte
}

// Init validates cfg and resets slave to StateIdle. It must be called
// exactly once, before RxByte/OnePointFiveTElapsed/ThreePointFiveTElapsed/
// Poll are invoked, and must not run concurrently with them.
func Init(slave *Slave, cfg *SlaveConfig) error {
	if slave == nil {
		return ErrNilSlave
	}
	if err := cfg.Verify(); err != nil {
		return err
	}

	slave.config = *cfg
	slave.frameLen = 0
	slave.frameOK = false
	slave.frameAvailable.Store(false)
	slave.processingFrame.Store(false)
	slave.state.Store(uint32(StateIdle))
	return nil
}

// State returns the current receiver state. Exposed mainly for tests and
// diagnostics; the dispatcher never inspects it directly.
func (s *Slave) State() SlaveState {
	return SlaveState(s.state.Load())
}
