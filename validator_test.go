package modbusrtu

import "testing"

func frameWithCRC(payload ...byte) []byte {
	frame := make([]byte, len(payload)+2)
	copy(frame, payload)
	crc := crc16(frame[:len(payload)])
	le16Set(frame[len(payload):], crc)
	return frame
}

func TestValidateFrameAcceptsOwnAddress(t *testing.T) {
	frame := frameWithCRC(0x01, 0x03, 0x00, 0x00, 0x00, 0x01)
	if !validateFrame(frame, 0x01) {
		t.Fatal("expected valid frame to be accepted")
	}
}

func TestValidateFrameAcceptsBroadcast(t *testing.T) {
	frame := frameWithCRC(0x00, 0x03, 0x00, 0x00, 0x00, 0x01)
	if !validateFrame(frame, 0x01) {
		t.Fatal("expected broadcast frame to be accepted")
	}
}

func TestValidateFrameRejectsOtherAddress(t *testing.T) {
	frame := frameWithCRC(0x02, 0x03, 0x00, 0x00, 0x00, 0x01)
	if validateFrame(frame, 0x01) {
		t.Fatal("expected frame for another address to be rejected")
	}
}

func TestValidateFrameRejectsBadCRC(t *testing.T) {
	frame := []byte{0x01, 0x03, 0x00, 0x00, 0x00, 0x02, 0x12, 0x34}
	if validateFrame(frame, 0x01) {
		t.Fatal("expected frame with bad CRC to be rejected")
	}
}

func TestValidateFrameRejectsShortFrame(t *testing.T) {
	frame := []byte{0x01, 0x03, 0x00}
	if validateFrame(frame, 0x01) {
		t.Fatal("expected undersized frame to be rejected")
	}
}
