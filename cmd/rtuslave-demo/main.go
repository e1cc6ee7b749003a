// Command rtuslave-demo wires the modbusrtu engine to a real UART and
// runs it as a standalone Modbus RTU slave. It exists to exercise the
// engine end-to-end; the register map it serves is a toy.
package main

import (
	"context"
	"flag"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/GoAethereal/cancel"
	"github.com/goburrow/serial"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/serialbus/modbusrtu"
)

func main() {
	port := flag.String("port", "/dev/ttyUSB0", "serial device")
	baud := flag.Int("baud", 19200, "baud rate")
	address := flag.Uint("address", 1, "slave address (1-247)")
	flag.Parse()

	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	if err := run(*port, *baud, byte(*address), logger); err != nil {
		logger.Error("rtuslave-demo exited", zap.Error(err))
		os.Exit(1)
	}
}

func run(port string, baud int, address byte, logger *zap.Logger) error {
	stream, err := serial.Open(&serial.Config{
		Address:  port,
		BaudRate: baud,
		DataBits: 8,
		StopBits: 1,
		Parity:   "E",
		Timeout:  100 * time.Millisecond,
	})
	if err != nil {
		return err
	}
	defer stream.Close()

	store := newDataStore(10000)
	var slave modbusrtu.Slave
	cfg := &modbusrtu.SlaveConfig{
		Address: address,
		Write: func(adu []byte) {
			if _, err := stream.Write(adu); err != nil {
				logger.Warn("transmit failed", zap.Error(err))
			}
		},
		ReadCoils:                  store.readCoils,
		ReadDiscreteInputs:         store.readDiscreteInputs,
		ReadHoldingRegisters:       store.readHoldingRegisters,
		ReadInputRegisters:         store.readInputRegisters,
		WriteSingleCoil:            store.writeSingleCoil,
		WriteSingleRegister:        store.writeSingleRegister,
		WriteMultipleCoils:         store.writeMultipleCoils,
		WriteMultipleRegisters:     store.writeMultipleRegisters,
		MaskWriteRegister:          store.maskWriteRegister,
		ReadWriteMultipleRegisters: store.readWriteMultipleRegisters,
	}
	if err := modbusrtu.Init(&slave, cfg); err != nil {
		return err
	}
	logger.Info("slave initialized", zap.String("port", port), zap.Int("baud", baud), zap.Uint8("address", address))

	parent, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	root := cancel.New().Propagate(parent)
	ctx, done := cancel.Promote(root)
	defer done()

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return readLoop(gctx, stream, &slave, baud, logger)
	})
	g.Go(func() error {
		return pollLoop(gctx, &slave)
	})

	return g.Wait()
}

// readLoop feeds received bytes into the receiver state machine and
// arms the 1.5t/3.5t silent-interval timers that a real deployment would
// derive from a UART/timer peripheral pair (§4.1, §7).
func readLoop(ctx context.Context, stream io.Reader, slave *modbusrtu.Slave, baud int, logger *zap.Logger) error {
	t1_5, t3_5 := characterTimes(baud)

	var oneHalf, threeHalf *time.Timer
	armTimers := func() {
		if oneHalf == nil {
			oneHalf = time.AfterFunc(t1_5, slave.OnePointFiveTElapsed)
			threeHalf = time.AfterFunc(t3_5, slave.ThreePointFiveTElapsed)
			return
		}
		oneHalf.Reset(t1_5)
		threeHalf.Reset(t3_5)
	}

	buf := make([]byte, 1)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		n, err := stream.Read(buf)
		if err != nil {
			if ne, ok := err.(interface{ Timeout() bool }); ok && ne.Timeout() {
				continue
			}
			logger.Warn("read failed", zap.Error(err))
			continue
		}
		if n == 0 {
			continue
		}

		slave.RxByte(buf[0])
		armTimers()
	}
}

// pollLoop stands in for the cooperative main loop of an embedded
// application, calling Poll often enough that a latched frame is
// answered promptly (§7).
func pollLoop(ctx context.Context, slave *modbusrtu.Slave) error {
	ticker := time.NewTicker(time.Millisecond)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			slave.Poll()
		}
	}
}

// characterTimes returns the 1.5 and 3.5 character-time silent intervals
// for baud. Below 19200 baud these scale with the bit rate; at or above
// it Modbus over Serial Line fixes them at 750us/1750us (§7, Modbus over
// Serial Line v1.02 §2.5.1.1).
func characterTimes(baud int) (t1_5, t3_5 time.Duration) {
	if baud >= 19200 {
		return 750 * time.Microsecond, 1750 * time.Microsecond
	}
	charTime := time.Duration(11 * int64(time.Second) / int64(baud))
	return charTime * 3 / 2, charTime * 7 / 2
}
