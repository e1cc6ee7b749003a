package modbusrtu

// Function codes this slave understands (§4.3).
const (
	FuncReadCoils                  = 0x01
	FuncReadDiscreteInputs         = 0x02
	FuncReadHoldingRegisters       = 0x03
	FuncReadInputRegisters         = 0x04
	FuncWriteSingleCoil            = 0x05
	FuncWriteSingleRegister        = 0x06
	FuncWriteMultipleCoils         = 0x0F
	FuncWriteMultipleRegisters     = 0x10
	FuncMaskWriteRegister          = 0x16
	FuncReadWriteMultipleRegisters = 0x17

	// FuncReadExceptionStatus and FuncDiagnostics are named by the
	// original firmware's function-code enum but never wired to a
	// handler there either. They fall through to IllegalFunction here
	// like any other unrecognized code (SPEC_FULL.md §4.3).
	FuncReadExceptionStatus = 0x07
	FuncDiagnostics         = 0x08
)

// exceptionBit marks a response function code as an exception response.
const exceptionBit = 0x80

// dispatch routes a decoded request (function code fc and its payload
// req, i.e. frame[2:len(frame)-2]) to the matching handler. Unknown
// function codes, and codes whose handler is unconfigured, both yield
// IllegalFunction without consulting any handler (§4.4).
//
// On success it returns the number of payload bytes written to
// s.staging[1:] (the function code itself goes in s.staging[0] by the
// caller). On exception, the returned length is meaningless and must be
// ignored - the caller builds the 2-byte exception PDU itself.
func (s *Slave) dispatch(fc byte, req []byte) (payloadLen int, ex Exception) {
	switch fc {
	case FuncReadCoils:
		return handleReadCoils(s, req)
	case FuncReadDiscreteInputs:
		return handleReadDiscreteInputs(s, req)
	case FuncReadHoldingRegisters:
		return handleReadHoldingRegisters(s, req)
	case FuncReadInputRegisters:
		return handleReadInputRegisters(s, req)
	case FuncWriteSingleCoil:
		return handleWriteSingleCoil(s, req)
	case FuncWriteSingleRegister:
		return handleWriteSingleRegister(s, req)
	case FuncWriteMultipleCoils:
		return handleWriteMultipleCoils(s, req)
	case FuncWriteMultipleRegisters:
		return handleWriteMultipleRegisters(s, req)
	case FuncMaskWriteRegister:
		return handleMaskWriteRegister(s, req)
	case FuncReadWriteMultipleRegisters:
		return handleReadWriteMultipleRegisters(s, req)
	default:
		return 0, IllegalFunction
	}
}
