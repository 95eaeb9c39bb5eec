// hal/i2c.go
package hal

import "tinygo.org/x/drivers"

// I2CTx is one recorded bus transaction, in call order.
type I2CTx struct {
	Addr uint16
	W    []byte
	Rn   int
}

// I2CBus models an I²C bus. It implements drivers.I2C, so real
// tinygo.org/x/drivers device drivers can run against the board on host:
// writes are logged, and read buffers are filled from a test-injected
// response queue (zero-filled when the queue is empty).
type I2CBus struct {
	log   []I2CTx
	queue [][]byte
	err   error
}

func NewI2CBus() *I2CBus {
	return &I2CBus{}
}

// Tx records the transaction, then fails with the injected error if one is
// set, otherwise serves the next queued response into r.
func (b *I2CBus) Tx(addr uint16, w, r []byte) error {
	b.log = append(b.log, I2CTx{
		Addr: addr,
		W:    append([]byte(nil), w...),
		Rn:   len(r),
	})
	if b.err != nil {
		return b.err
	}
	for i := range r {
		r[i] = 0
	}
	if len(r) > 0 && len(b.queue) > 0 {
		copy(r, b.queue[0])
		b.queue = b.queue[1:]
	}
	return nil
}

// QueueResponse injects the bytes the next read transaction receives.
// Responses are consumed in FIFO order, one per transaction with a read
// buffer.
func (b *I2CBus) QueueResponse(data []byte) {
	b.queue = append(b.queue, append([]byte(nil), data...))
}

// FailWith makes every subsequent Tx return err. Pass nil to clear.
func (b *I2CBus) FailWith(err error) {
	b.err = err
}

// Transactions returns a copy of the transaction log since the last reset.
func (b *I2CBus) Transactions() []I2CTx {
	return append([]I2CTx(nil), b.log...)
}

// Reset clears the log, the response queue, and any injected error.
func (b *I2CBus) Reset() {
	b.log = nil
	b.queue = nil
	b.err = nil
}

var _ drivers.I2C = (*I2CBus)(nil)
