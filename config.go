package modbusrtu

// WriteFunc delivers a fully framed response ADU to the line. The slice
// is only valid for the duration of the call; implementations that queue
// the bytes for asynchronous transmission must copy them first.
type WriteFunc func(adu []byte)

// ReadCoilsFunc and ReadDiscreteInputsFunc fill dest (byteCount(quantity)
// bytes, LSB-first per byte) with the values of quantity coils/discrete
// inputs starting at addr.
type ReadCoilsFunc func(addr, quantity uint16, dest []byte) Exception
type ReadDiscreteInputsFunc func(addr, quantity uint16, dest []byte) Exception

// ReadHoldingRegistersFunc and ReadInputRegistersFunc fill dest
// (quantity*2 bytes, big-endian per register) with the values of
// quantity registers starting at addr.
type ReadHoldingRegistersFunc func(addr, quantity uint16, dest []byte) Exception
type ReadInputRegistersFunc func(addr, quantity uint16, dest []byte) Exception

// WriteSingleCoilFunc sets the coil at addr to value.
type WriteSingleCoilFunc func(addr uint16, value bool) Exception

// WriteSingleRegisterFunc sets the register at addr to value.
type WriteSingleRegisterFunc func(addr, value uint16) Exception

// WriteMultipleCoilsFunc sets quantity coils starting at addr from src
// (byteCount(quantity) bytes, LSB-first per byte).
type WriteMultipleCoilsFunc func(addr, quantity uint16, src []byte) Exception

// WriteMultipleRegistersFunc sets quantity registers starting at addr
// from src (quantity*2 bytes, big-endian per register).
type WriteMultipleRegistersFunc func(addr, quantity uint16, src []byte) Exception

// MaskWriteRegisterFunc applies (current & andMask) | (orMask & ^andMask)
// to the register at addr.
type MaskWriteRegisterFunc func(addr, andMask, orMask uint16) Exception

// ReadWriteMultipleRegistersFunc performs the write described by
// writeAddr/writeQuantity/writeData, then fills readDest (readQuantity*2
// bytes, big-endian) with the values of readQuantity registers starting
// at readAddr. Per the Modbus spec the write happens before the read;
// this callback owns both sides and must honor that order itself.
type ReadWriteMultipleRegistersFunc func(readAddr, readQuantity, writeAddr, writeQuantity uint16, writeData []byte, readDest []byte) Exception

// SlaveConfig describes how a Slave answers requests: its own address,
// the transmit callback, and the optional per-function-code handlers.
// A function code whose handler field is nil always yields
// IllegalFunction when requested.
type SlaveConfig struct {
	// Address is the unicast address this slave answers to, 1..247.
	// Address 0 is reserved for broadcast and is never a valid value
	// here.
	Address byte

	// Write delivers a framed response ADU to the line. Required.
	Write WriteFunc

	ReadCoils                  ReadCoilsFunc
	ReadDiscreteInputs         ReadDiscreteInputsFunc
	ReadHoldingRegisters       ReadHoldingRegistersFunc
	ReadInputRegisters         ReadInputRegistersFunc
	WriteSingleCoil            WriteSingleCoilFunc
	WriteSingleRegister        WriteSingleRegisterFunc
	WriteMultipleCoils         WriteMultipleCoilsFunc
	WriteMultipleRegisters     WriteMultipleRegistersFunc
	MaskWriteRegister          MaskWriteRegisterFunc
	ReadWriteMultipleRegisters ReadWriteMultipleRegistersFunc
}

// Verify validates the SlaveConfig, returning a non-nil error if it
// cannot be used to initialize a Slave.
func (cfg *SlaveConfig) Verify() error {
	if cfg == nil {
		return ErrNilConfig
	}
	if cfg.Write == nil {
		return ErrNilWrite
	}
	if cfg.Address < 1 || cfg.Address > 247 {
		return ErrInvalidAddress
	}
	return nil
}
