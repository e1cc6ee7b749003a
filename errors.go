package modbusrtu

import "errors"

var (
	// ErrNilSlave indicates that Init was called with a nil *Slave.
	ErrNilSlave = errors.New("modbusrtu: slave is nil")
	// ErrNilConfig indicates that Init was called with a nil *SlaveConfig.
	ErrNilConfig = errors.New("modbusrtu: config is nil")
	// ErrNilWrite indicates that the configured transmit callback is nil.
	// A slave cannot answer requests without one.
	ErrNilWrite = errors.New("modbusrtu: write callback is nil")
	// ErrInvalidAddress indicates that the configured own-address is
	// outside the valid unicast range (1..247). Address 0 is reserved
	// for broadcast and can never be a slave's own address.
	ErrInvalidAddress = errors.New("modbusrtu: address must be in 1..247")
)
