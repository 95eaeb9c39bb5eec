package hal

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestI2CBusLogsTransactions(t *testing.T) {
	b := NewI2CBus()
	if err := b.Tx(0x38, []byte{0xAC, 0x33, 0x00}, nil); err != nil {
		t.Fatalf("Tx error: %v", err)
	}
	r := make([]byte, 2)
	if err := b.Tx(0x38, nil, r); err != nil {
		t.Fatalf("Tx error: %v", err)
	}

	want := []I2CTx{
		{Addr: 0x38, W: []byte{0xAC, 0x33, 0x00}, Rn: 0},
		{Addr: 0x38, W: []byte{}, Rn: 2},
	}
	got := b.Transactions()
	// Normalise nil/empty write slices before diffing.
	for i := range got {
		if got[i].W == nil {
			got[i].W = []byte{}
		}
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("transaction log mismatch (-want +got):\n%s", diff)
	}
}

func TestI2CBusQueuedResponses(t *testing.T) {
	b := NewI2CBus()
	b.QueueResponse([]byte{0x12, 0x34})

	r := make([]byte, 2)
	if err := b.Tx(0x50, nil, r); err != nil {
		t.Fatalf("Tx error: %v", err)
	}
	if r[0] != 0x12 || r[1] != 0x34 {
		t.Fatalf("read buffer = %#v, want queued bytes", r)
	}

	// Queue exhausted: zero fill.
	r2 := []byte{0xFF, 0xFF}
	if err := b.Tx(0x50, nil, r2); err != nil {
		t.Fatalf("Tx error: %v", err)
	}
	if r2[0] != 0 || r2[1] != 0 {
		t.Fatalf("read buffer after empty queue = %#v, want zeros", r2)
	}
}

func TestI2CBusShortResponse(t *testing.T) {
	b := NewI2CBus()
	b.QueueResponse([]byte{0xAB})
	r := []byte{0xFF, 0xFF, 0xFF}
	if err := b.Tx(0x10, nil, r); err != nil {
		t.Fatalf("Tx error: %v", err)
	}
	if r[0] != 0xAB || r[1] != 0 || r[2] != 0 {
		t.Fatalf("short response fill = %#v", r)
	}
}

func TestI2CBusInjectedError(t *testing.T) {
	b := NewI2CBus()
	boom := errors.New("nak")
	b.FailWith(boom)

	err := b.Tx(0x20, []byte{1}, nil)
	if !errors.Is(err, boom) {
		t.Fatalf("Tx error = %v, want injected", err)
	}
	// The failed call is still logged.
	if n := len(b.Transactions()); n != 1 {
		t.Fatalf("transaction log has %d entries, want 1", n)
	}

	b.FailWith(nil)
	if err := b.Tx(0x20, []byte{1}, nil); err != nil {
		t.Fatalf("Tx after clearing error: %v", err)
	}
}

func TestI2CBusReset(t *testing.T) {
	b := NewI2CBus()
	b.QueueResponse([]byte{9})
	b.FailWith(errors.New("x"))
	_ = b.Tx(1, nil, nil)
	b.Reset()

	if n := len(b.Transactions()); n != 0 {
		t.Fatalf("log after reset has %d entries", n)
	}
	r := []byte{0xFF}
	if err := b.Tx(2, nil, r); err != nil {
		t.Fatalf("Tx after reset: %v", err)
	}
	if r[0] != 0 {
		t.Fatalf("queue survived reset: %#v", r)
	}
}
