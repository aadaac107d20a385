package drain

import (
	"bytes"
	"io"
	"os"
	"sync"

	"github.com/driftlog/drift/core"
	"github.com/driftlog/drift/formatter"
)

// bufPool holds spare buffers for contended Log calls that format
// outside the writer's lock.
var bufPool = sync.Pool{
	New: func() interface{} {
		b := new(bytes.Buffer)
		b.Grow(256)
		return b
	},
}

// isConcurrentSafeWriter returns true if the writer is known to be safe
// for concurrent Write calls, allowing the drain to skip write-level
// locking.
func isConcurrentSafeWriter(w io.Writer) bool {
	if w == io.Discard {
		return true
	}
	_, ok := w.(*os.File)
	return ok
}

// Writer is a terminal sink: it serializes each record through a
// Formatter and writes the result to an io.Writer in a single Write
// call. This is where lazy fields are forced. Uncontended calls format
// into the drain-owned buffer under TryLock; contended calls format
// into a pooled buffer outside the lock and only serialize the Write.
type Writer struct {
	w              io.Writer
	fmtr           formatter.Formatter
	closer         io.Closer // optional; set for sinks owning their writer
	concurrentSafe bool

	mu  sync.Mutex // protects buf and non-concurrent-safe writers
	buf bytes.Buffer
}

// NewWriter creates a sink writing formatted records to w. The drain
// does not take ownership of w; Close does not close it.
func NewWriter(w io.Writer, f formatter.Formatter) *Writer {
	return newWriter(w, f, nil)
}

func newWriter(w io.Writer, f formatter.Formatter, closer io.Closer) *Writer {
	d := &Writer{
		w:              w,
		fmtr:           f,
		closer:         closer,
		concurrentSafe: isConcurrentSafeWriter(w),
	}
	d.buf.Grow(256)
	return d
}

// Log formats the record and writes it once.
func (d *Writer) Log(rec *core.Record, fields core.Fields) error {
	if d.mu.TryLock() {
		d.buf.Reset()
		d.fmtr.Format(rec, fields, &d.buf)
		_, err := d.w.Write(d.buf.Bytes())
		d.mu.Unlock()
		return err
	}

	// Contended: format outside the lock, write under it (or directly
	// for writers safe under concurrent Write).
	buf := bufPool.Get().(*bytes.Buffer)
	buf.Reset()
	d.fmtr.Format(rec, fields, buf)
	var err error
	if d.concurrentSafe {
		_, err = d.w.Write(buf.Bytes())
	} else {
		d.mu.Lock()
		_, err = d.w.Write(buf.Bytes())
		d.mu.Unlock()
	}
	if buf.Cap() <= 64*1024 { // don't keep very large buffers
		bufPool.Put(buf)
	}
	return err
}

// Close closes the underlying writer only when the sink owns it (file
// sinks); plain NewWriter sinks leave the writer open.
func (d *Writer) Close() error {
	if d.closer != nil {
		return d.closer.Close()
	}
	return nil
}
