// hal/flashfs.go
package hal

import "boardsim-go/text"

// Defaults for the synthetic stream every opened file serves.
const (
	DefaultStreamLen = 10
	DefaultFiller    = 'a'
)

// OpenCall is one recorded file open, in call order.
type OpenCall struct {
	Path string
	Mode string
}

// FlashFS models the flash filesystem. There is no file tree: Mount always
// succeeds and every Open yields a valid handle over the same bounded
// synthetic stream — StreamLen copies of the filler byte, regardless of path
// or mode. Callers must not rely on path- or mode-sensitive content; this is
// a deliberate, documented simplification.
type FlashFS struct {
	streamLen  int
	filler     byte
	mountCount int
	lastFormat bool
	opens      []OpenCall
}

func NewFlashFS() *FlashFS {
	return &FlashFS{streamLen: DefaultStreamLen, filler: DefaultFiller}
}

// Mount never fails. The format flag is recorded for inspection only.
func (f *FlashFS) Mount(format bool) bool {
	f.mountCount++
	f.lastFormat = format
	return true
}

// Open records the call and returns a fresh, always-valid handle.
func (f *FlashFS) Open(path, mode string) *File {
	f.opens = append(f.opens, OpenCall{Path: path, Mode: mode})
	return &File{fs: f}
}

// SetStreamLen injects how many bytes each subsequently opened handle
// serves. Test-side only.
func (f *FlashFS) SetStreamLen(n int) {
	if n < 0 {
		n = 0
	}
	f.streamLen = n
}

// SetFiller injects the byte each read returns. Test-side only.
func (f *FlashFS) SetFiller(b byte) {
	f.filler = b
}

// MountCount returns how many times Mount was called since the last reset.
func (f *FlashFS) MountCount() int { return f.mountCount }

// LastFormat returns the format flag of the most recent Mount.
func (f *FlashFS) LastFormat() bool { return f.lastFormat }

// Opens returns a copy of the open-call log since the last reset.
func (f *FlashFS) Opens() []OpenCall {
	return append([]OpenCall(nil), f.opens...)
}

// Reset clears the log and counters and restores the stream defaults.
func (f *FlashFS) Reset() {
	f.streamLen = DefaultStreamLen
	f.filler = DefaultFiller
	f.mountCount = 0
	f.lastFormat = false
	f.opens = nil
}

var _ FileSystem = (*FlashFS)(nil)

// File is an open handle. Each handle counts its own reads against the
// filesystem's configured stream length.
type File struct {
	fs   *FlashFS
	read int
}

// Available reports whether the synthetic stream has bytes left.
func (h *File) Available() bool {
	return h.read < h.fs.streamLen
}

// ReadByte returns the filler byte and advances the stream.
func (h *File) ReadByte() byte {
	h.read++
	return h.fs.filler
}

// ReadStringUntil reads until the stream is exhausted or the terminator byte
// is read, accumulating everything before it. It is composed purely from
// Available and ReadByte, so its behaviour is fully determined by those two.
func (h *File) ReadStringUntil(term byte) text.Value {
	var out text.Value
	for h.Available() {
		b := h.ReadByte()
		if b == term {
			break
		}
		out.AppendByte(b)
	}
	return out
}

// Close is a no-op terminal call.
func (h *File) Close() {}

// OK reports handle validity. Handles from this model are always valid.
func (h *File) OK() bool { return true }
