// Package modbusrtu implements a Modbus RTU slave (server) engine suitable
// for embedded deployment behind an interrupt-driven asynchronous serial
// line (RS-485/RS-232).
//
// The engine receives request ADUs byte-by-byte from a UART receive
// interrupt, uses 1.5- and 3.5-character-time silent intervals (driven by
// a timer interrupt) to delimit frames, validates address and CRC-16
// framing, dispatches the embedded PDU to user-supplied data-access
// callbacks, and emits a properly framed response ADU through a
// user-supplied transmit callback.
//
// It implements the slave/server role only: no client/master, no TCP or
// ASCII framing, no dynamic allocation, no floating point, no logging
// from the hot path. The three event-driven entry points (RxByte,
// OnePointFiveTElapsed, ThreePointFiveTElapsed) are safe to call from
// interrupt context; Poll is meant for the main/cooperative loop.
package modbusrtu
