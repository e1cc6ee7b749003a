package modbusrtu

// Each handler below decodes its request's fixed-layout parameters from
// req (the PDU bytes after the function code, i.e. frame[2:len-2]),
// enforces the bounds from §4.4, and - in that order - returns
// IllegalFunction if no callback is configured, IllegalDataValue if a
// bound is violated, or whatever exception the callback itself returns.
// On success it serializes the response payload into s.staging[1:] and
// returns how many bytes (including any leading byte-count field) it
// wrote there.

func handleReadCoils(s *Slave, req []byte) (int, Exception) {
	if s.config.ReadCoils == nil {
		return 0, IllegalFunction
	}
	if len(req) != 4 {
		return 0, IllegalDataValue
	}
	start := be16Get(req[0:2])
	quantity := be16Get(req[2:4])
	if quantity < 1 || quantity > 2000 {
		return 0, IllegalDataValue
	}

	bc := byteCount(quantity)
	dest := s.staging[2 : 2+bc]
	if ex := s.config.ReadCoils(start, quantity, dest); ex != NoException {
		return 0, ex
	}
	s.staging[1] = byte(bc)
	return 1 + bc, NoException
}

func handleReadDiscreteInputs(s *Slave, req []byte) (int, Exception) {
	if s.config.ReadDiscreteInputs == nil {
		return 0, IllegalFunction
	}
	if len(req) != 4 {
		return 0, IllegalDataValue
	}
	start := be16Get(req[0:2])
	quantity := be16Get(req[2:4])
	if quantity < 1 || quantity > 2000 {
		return 0, IllegalDataValue
	}

	bc := byteCount(quantity)
	dest := s.staging[2 : 2+bc]
	if ex := s.config.ReadDiscreteInputs(start, quantity, dest); ex != NoException {
		return 0, ex
	}
	s.staging[1] = byte(bc)
	return 1 + bc, NoException
}

func handleReadHoldingRegisters(s *Slave, req []byte) (int, Exception) {
	if s.config.ReadHoldingRegisters == nil {
		return 0, IllegalFunction
	}
	if len(req) != 4 {
		return 0, IllegalDataValue
	}
	start := be16Get(req[0:2])
	quantity := be16Get(req[2:4])
	if quantity < 1 || quantity > 125 {
		return 0, IllegalDataValue
	}

	n := int(quantity) * 2
	dest := s.staging[2 : 2+n]
	if ex := s.config.ReadHoldingRegisters(start, quantity, dest); ex != NoException {
		return 0, ex
	}
	s.staging[1] = byte(n)
	return 1 + n, NoException
}

func handleReadInputRegisters(s *Slave, req []byte) (int, Exception) {
	if s.config.ReadInputRegisters == nil {
		return 0, IllegalFunction
	}
	if len(req) != 4 {
		return 0, IllegalDataValue
	}
	start := be16Get(req[0:2])
	quantity := be16Get(req[2:4])
	if quantity < 1 || quantity > 125 {
		return 0, IllegalDataValue
	}

	n := int(quantity) * 2
	dest := s.staging[2 : 2+n]
	if ex := s.config.ReadInputRegisters(start, quantity, dest); ex != NoException {
		return 0, ex
	}
	s.staging[1] = byte(n)
	return 1 + n, NoException
}

func handleWriteSingleCoil(s *Slave, req []byte) (int, Exception) {
	if s.config.WriteSingleCoil == nil {
		return 0, IllegalFunction
	}
	if len(req) != 4 {
		return 0, IllegalDataValue
	}
	addr := be16Get(req[0:2])
	wire := be16Get(req[2:4])
	var value bool
	switch wire {
	case 0x0000:
		value = false
	case 0xFF00:
		value = true
	default:
		return 0, IllegalDataValue
	}

	if ex := s.config.WriteSingleCoil(addr, value); ex != NoException {
		return 0, ex
	}
	n := copy(s.staging[1:], req[:4])
	return n, NoException
}

func handleWriteSingleRegister(s *Slave, req []byte) (int, Exception) {
	if s.config.WriteSingleRegister == nil {
		return 0, IllegalFunction
	}
	if len(req) != 4 {
		return 0, IllegalDataValue
	}
	addr := be16Get(req[0:2])
	value := be16Get(req[2:4])

	if ex := s.config.WriteSingleRegister(addr, value); ex != NoException {
		return 0, ex
	}
	n := copy(s.staging[1:], req[:4])
	return n, NoException
}

func handleWriteMultipleCoils(s *Slave, req []byte) (int, Exception) {
	if s.config.WriteMultipleCoils == nil {
		return 0, IllegalFunction
	}
	if len(req) < 5 {
		return 0, IllegalDataValue
	}
	addr := be16Get(req[0:2])
	quantity := be16Get(req[2:4])
	wantBC := byteCount(quantity)
	gotBC := int(req[4])
	if quantity < 1 || quantity > 1968 || gotBC != wantBC || len(req[5:]) != wantBC {
		return 0, IllegalDataValue
	}

	if ex := s.config.WriteMultipleCoils(addr, quantity, req[5:]); ex != NoException {
		return 0, ex
	}
	n := copy(s.staging[1:], req[:4])
	return n, NoException
}

func handleWriteMultipleRegisters(s *Slave, req []byte) (int, Exception) {
	if s.config.WriteMultipleRegisters == nil {
		return 0, IllegalFunction
	}
	if len(req) < 5 {
		return 0, IllegalDataValue
	}
	addr := be16Get(req[0:2])
	quantity := be16Get(req[2:4])
	wantBC := int(quantity) * 2
	gotBC := int(req[4])
	if quantity < 1 || quantity > 123 || gotBC != wantBC || len(req[5:]) != wantBC {
		return 0, IllegalDataValue
	}

	if ex := s.config.WriteMultipleRegisters(addr, quantity, req[5:]); ex != NoException {
		return 0, ex
	}
	n := copy(s.staging[1:], req[:4])
	return n, NoException
}

func handleMaskWriteRegister(s *Slave, req []byte) (int, Exception) {
	if s.config.MaskWriteRegister == nil {
		return 0, IllegalFunction
	}
	if len(req) != 6 {
		return 0, IllegalDataValue
	}
	addr := be16Get(req[0:2])
	andMask := be16Get(req[2:4])
	orMask := be16Get(req[4:6])

	if ex := s.config.MaskWriteRegister(addr, andMask, orMask); ex != NoException {
		return 0, ex
	}
	n := copy(s.staging[1:], req[:6])
	return n, NoException
}

func handleReadWriteMultipleRegisters(s *Slave, req []byte) (int, Exception) {
	if s.config.ReadWriteMultipleRegisters == nil {
		return 0, IllegalFunction
	}
	if len(req) < 9 {
		return 0, IllegalDataValue
	}
	readAddr := be16Get(req[0:2])
	readQuantity := be16Get(req[2:4])
	writeAddr := be16Get(req[4:6])
	writeQuantity := be16Get(req[6:8])
	wantWBC := int(writeQuantity) * 2
	gotWBC := int(req[8])

	switch {
	case readQuantity < 1 || readQuantity > 125:
		return 0, IllegalDataValue
	case writeQuantity < 1 || writeQuantity > 121:
		return 0, IllegalDataValue
	case gotWBC != wantWBC || len(req[9:]) != wantWBC:
		return 0, IllegalDataValue
	}

	n := int(readQuantity) * 2
	dest := s.staging[2 : 2+n]
	ex := s.config.ReadWriteMultipleRegisters(readAddr, readQuantity, writeAddr, writeQuantity, req[9:], dest)
	if ex != NoException {
		return 0, ex
	}
	s.staging[1] = byte(n)
	return 1 + n, NoException
}
