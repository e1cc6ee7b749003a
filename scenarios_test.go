package modbusrtu

import "testing"

// These mirror the six literal end-to-end scenarios verbatim (wire bytes
// and expected output), independent of the handler-level unit tests.

func TestScenarioReadHoldingRegistersValid(t *testing.T) {
	var written []byte
	s := &Slave{}
	cfg := &SlaveConfig{
		Address: 1,
		Write:   func(adu []byte) { written = append([]byte(nil), adu...) },
		ReadHoldingRegisters: func(addr, quantity uint16, dest []byte) Exception {
			be16Set(dest[0:2], 500)
			be16Set(dest[2:4], 501)
			return NoException
		},
	}
	if err := Init(s, cfg); err != nil {
		t.Fatalf("Init: %v", err)
	}

	deliver(s, []byte{0x01, 0x03, 0x00, 0x00, 0x00, 0x02, 0xC4, 0x0B})
	s.Poll()

	want := []byte{0x01, 0x03, 0x04, 0x01, 0xF4, 0x01, 0xF5, 0x7B, 0xEA}
	if string(written) != string(want) {
		t.Fatalf("got % x, want % x", written, want)
	}
}

func TestScenarioBadCRC(t *testing.T) {
	called := false
	s := newTestSlave(t)
	s.config.Write = func([]byte) { called = true }

	deliver(s, []byte{0x01, 0x03, 0x00, 0x00, 0x00, 0x02, 0x12, 0x34})
	s.Poll()

	if called {
		t.Fatal("expected no transmission for bad CRC")
	}
	if s.frameAvailable.Load() {
		t.Fatal("frameAvailable should be cleared after Poll")
	}
}

func TestScenarioBroadcastWrite(t *testing.T) {
	var gotAddr, gotValue uint16
	called := false
	s := newTestSlave(t)
	s.config.Write = func([]byte) { called = true }
	s.config.WriteSingleRegister = func(addr, value uint16) Exception {
		gotAddr, gotValue = addr, value
		return NoException
	}

	deliver(s, frameWithCRC(0x00, 0x06, 0x00, 0x05, 0x00, 0x2A))
	s.Poll()

	if gotAddr != 5 || gotValue != 0x2A {
		t.Fatalf("addr=%d value=%#x, want 5,0x2A", gotAddr, gotValue)
	}
	if called {
		t.Fatal("expected no transmission for a broadcast request")
	}
}

func TestScenarioWrongAddress(t *testing.T) {
	called := false
	s := newTestSlave(t)
	s.config.Write = func([]byte) { called = true }

	deliver(s, frameWithCRC(0x02, 0x03, 0x00, 0x00, 0x00, 0x02))
	s.Poll()

	if called {
		t.Fatal("expected no transmission for a frame addressed to someone else")
	}
}

func TestScenarioIllegalFunction(t *testing.T) {
	var written []byte
	s := newTestSlave(t)
	s.config.Write = func(adu []byte) { written = append([]byte(nil), adu...) }

	deliver(s, frameWithCRC(0x01, 0x42, 0x00, 0x00, 0x00, 0x01))
	s.Poll()

	want := []byte{0x01, 0xC2, 0x01}
	if len(written) != 5 || string(written[:3]) != string(want) {
		t.Fatalf("got % x, want prefix % x", written, want)
	}
}

func TestScenarioWriteMultipleCoilsByteCountMismatch(t *testing.T) {
	var written []byte
	s := newTestSlave(t)
	s.config.Write = func(adu []byte) { written = append([]byte(nil), adu...) }
	s.config.WriteMultipleCoils = func(addr, quantity uint16, src []byte) Exception {
		return NoException
	}

	deliver(s, frameWithCRC(0x01, 0x0F, 0x00, 0x00, 0x00, 0x10, 0x03, 0x12, 0x34, 0x56))
	s.Poll()

	if written == nil {
		t.Fatal("expected an exception response")
	}
	if Exception(written[2]) != IllegalDataValue {
		t.Fatalf("exception code = %#x, want IllegalDataValue", written[2])
	}
}
