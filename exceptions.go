package modbusrtu

import "fmt"

// Exception is a Modbus exception code, returned by handlers and by the
// dispatcher itself when a request cannot be satisfied. The zero value,
// NoException, indicates success.
type Exception byte

const (
	// NoException indicates that the request was handled successfully.
	NoException Exception = 0x00
	// IllegalFunction: the function code is not supported by this slave,
	// or no handler is configured for it.
	IllegalFunction Exception = 0x01
	// IllegalDataAddress: the request's address/quantity combination is
	// invalid for the addressed data, as reported by the handler.
	IllegalDataAddress Exception = 0x02
	// IllegalDataValue: a value in the request is outside the range
	// this slave accepts - either a quantity/byte-count bound enforced
	// by the dispatcher, or a value rejected by the handler.
	IllegalDataValue Exception = 0x03
	// SlaveDeviceFailure: an unrecoverable error occurred while the
	// slave attempted to perform the requested action.
	SlaveDeviceFailure Exception = 0x04
)

// Error implements the builtin error interface, returning a human
// readable string representing the underlying exception.
func (e Exception) Error() string {
	prefix := "modbusrtu: "
	switch e {
	case NoException:
		return prefix + "no exception"
	case IllegalFunction:
		return prefix + "illegal function"
	case IllegalDataAddress:
		return prefix + "illegal data address"
	case IllegalDataValue:
		return prefix + "illegal data value"
	case SlaveDeviceFailure:
		return prefix + "slave device failure"
	}
	return prefix + fmt.Sprintf("exception %#x", byte(e))
}
