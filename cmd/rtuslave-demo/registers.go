package main

import (
	"sync"

	"github.com/serialbus/modbusrtu"
)

// dataStore is a trivial in-memory register map standing in for whatever
// real I/O a deployed slave would expose. It owns all bounds checking
// against its own address space; the engine never knows how large these
// tables are.
type dataStore struct {
	mu sync.Mutex

	coils          []bool
	discreteInputs []bool
	holdingRegs    []uint16
	inputRegs      []uint16
}

func newDataStore(size int) *dataStore {
	return &dataStore{
		coils:          make([]bool, size),
		discreteInputs: make([]bool, size),
		holdingRegs:    make([]uint16, size),
		inputRegs:      make([]uint16, size),
	}
}

func (d *dataStore) readCoils(addr, quantity uint16, dest []byte) modbusrtu.Exception {
	d.mu.Lock()
	defer d.mu.Unlock()
	if int(addr)+int(quantity) > len(d.coils) {
		return modbusrtu.IllegalDataAddress
	}
	bits := d.coils[addr : addr+quantity]
	for i := range dest {
		dest[i] = 0
	}
	for i, set := range bits {
		if set {
			dest[i/8] |= 1 << uint(i%8)
		}
	}
	return modbusrtu.NoException
}

func (d *dataStore) readDiscreteInputs(addr, quantity uint16, dest []byte) modbusrtu.Exception {
	d.mu.Lock()
	defer d.mu.Unlock()
	if int(addr)+int(quantity) > len(d.discreteInputs) {
		return modbusrtu.IllegalDataAddress
	}
	bits := d.discreteInputs[addr : addr+quantity]
	for i := range dest {
		dest[i] = 0
	}
	for i, set := range bits {
		if set {
			dest[i/8] |= 1 << uint(i%8)
		}
	}
	return modbusrtu.NoException
}

func (d *dataStore) readHoldingRegisters(addr, quantity uint16, dest []byte) modbusrtu.Exception {
	d.mu.Lock()
	defer d.mu.Unlock()
	if int(addr)+int(quantity) > len(d.holdingRegs) {
		return modbusrtu.IllegalDataAddress
	}
	for i := uint16(0); i < quantity; i++ {
		v := d.holdingRegs[addr+i]
		dest[i*2] = byte(v >> 8)
		dest[i*2+1] = byte(v)
	}
	return modbusrtu.NoException
}

func (d *dataStore) readInputRegisters(addr, quantity uint16, dest []byte) modbusrtu.Exception {
	d.mu.Lock()
	defer d.mu.Unlock()
	if int(addr)+int(quantity) > len(d.inputRegs) {
		return modbusrtu.IllegalDataAddress
	}
	for i := uint16(0); i < quantity; i++ {
		v := d.inputRegs[addr+i]
		dest[i*2] = byte(v >> 8)
		dest[i*2+1] = byte(v)
	}
	return modbusrtu.NoException
}

func (d *dataStore) writeSingleCoil(addr uint16, value bool) modbusrtu.Exception {
	d.mu.Lock()
	defer d.mu.Unlock()
	if int(addr) >= len(d.coils) {
		return modbusrtu.IllegalDataAddress
	}
	d.coils[addr] = value
	return modbusrtu.NoException
}

func (d *dataStore) writeSingleRegister(addr, value uint16) modbusrtu.Exception {
	d.mu.Lock()
	defer d.mu.Unlock()
	if int(addr) >= len(d.holdingRegs) {
		return modbusrtu.IllegalDataAddress
	}
	d.holdingRegs[addr] = value
	return modbusrtu.NoException
}

func (d *dataStore) writeMultipleCoils(addr, quantity uint16, src []byte) modbusrtu.Exception {
	d.mu.Lock()
	defer d.mu.Unlock()
	if int(addr)+int(quantity) > len(d.coils) {
		return modbusrtu.IllegalDataAddress
	}
	for i := uint16(0); i < quantity; i++ {
		d.coils[addr+i] = src[i/8]&(1<<uint(i%8)) != 0
	}
	return modbusrtu.NoException
}

func (d *dataStore) writeMultipleRegisters(addr, quantity uint16, src []byte) modbusrtu.Exception {
	d.mu.Lock()
	defer d.mu.Unlock()
	if int(addr)+int(quantity) > len(d.holdingRegs) {
		return modbusrtu.IllegalDataAddress
	}
	for i := uint16(0); i < quantity; i++ {
		d.holdingRegs[addr+i] = uint16(src[i*2])<<8 | uint16(src[i*2+1])
	}
	return modbusrtu.NoException
}

func (d *dataStore) maskWriteRegister(addr, andMask, orMask uint16) modbusrtu.Exception {
	d.mu.Lock()
	defer d.mu.Unlock()
	if int(addr) >= len(d.holdingRegs) {
		return modbusrtu.IllegalDataAddress
	}
	cur := d.holdingRegs[addr]
	d.holdingRegs[addr] = (cur & andMask) | (orMask &^ andMask)
	return modbusrtu.NoException
}

func (d *dataStore) readWriteMultipleRegisters(readAddr, readQuantity, writeAddr, writeQuantity uint16, writeData, readDest []byte) modbusrtu.Exception {
	d.mu.Lock()
	defer d.mu.Unlock()
	if int(writeAddr)+int(writeQuantity) > len(d.holdingRegs) {
		return modbusrtu.IllegalDataAddress
	}
	if int(readAddr)+int(readQuantity) > len(d.holdingRegs) {
		return modbusrtu.IllegalDataAddress
	}
	// Modbus mandates the write happens before the read (§6).
	for i := uint16(0); i < writeQuantity; i++ {
		d.holdingRegs[writeAddr+i] = uint16(writeData[i*2])<<8 | uint16(writeData[i*2+1])
	}
	for i := uint16(0); i < readQuantity; i++ {
		v := d.holdingRegs[readAddr+i]
		readDest[i*2] = byte(v >> 8)
		readDest[i*2+1] = byte(v)
	}
	return modbusrtu.NoException
}
