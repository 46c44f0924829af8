package basictext

import (
	"io"
	"unicode/utf8"

	"github.com/musher-dev/basictext/internal/transducer"
)

// Writer wraps a UTF-8 byte consumer and pushes scalars through the
// Strict transducer before forwarding them, so anything reaching the
// underlying writer is already valid Basic Text.
type Writer struct {
	dst  io.Writer
	core *transducer.Core
}

// NewWriter returns a Writer over dst, applying opts to the Strict
// transducer it runs internally.
func NewWriter(dst io.Writer, opts ...transducer.Option) *Writer {
	return &Writer{
		dst:  dst,
		core: transducer.New(transducer.Strict, transducer.NewOptions(opts...)),
	}
}

// Write implements io.Writer. p is decoded as UTF-8 (ill-formed subparts
// become U+FFFD, matching the byte-level contract with the underlying
// collaborator) and each scalar is pushed through the Strict transducer.
// Write reports the original byte count consumed even when some of the
// scalars within it produced no output yet (withheld at a normalization
// boundary), since from the caller's perspective the bytes were accepted.
func (w *Writer) Write(p []byte) (int, error) {
	consumed := 0
	for len(p) > 0 {
		sv, size := utf8.DecodeRune(p)
		if err := w.push(sv); err != nil {
			return consumed, err
		}
		p = p[size:]
		consumed += size
	}
	return consumed, nil
}

// WriteString pushes every scalar of s through the Strict transducer.
func (w *Writer) WriteString(s string) error {
	for _, sv := range s {
		if err := w.push(sv); err != nil {
			return err
		}
	}
	return nil
}

func (w *Writer) push(sv rune) error {
	out, err := w.core.Push(sv)
	if err != nil {
		return err
	}
	return w.emit(out)
}

func (w *Writer) emit(scalars []rune) error {
	if len(scalars) == 0 {
		return nil
	}
	_, err := io.WriteString(w.dst, string(scalars))
	return err
}

// Flush validates that everything written so far forms a Basic Text
// string on its own (the Buffered Basic Text stream invariant): no
// escape sequence or CR left unresolved, and the last scalar written is
// not a BT-non-ender. It does not require a trailing newline — that is
// an End-only requirement — and it writes nothing.
func (w *Writer) Flush() error {
	return w.core.CheckFlush()
}

// End performs final validation (trailing newline, end-boundary guard,
// empty escape-sequence state), writes any scalars the transducer was
// still withholding, and closes the underlying writer if it implements
// io.Closer.
func (w *Writer) End() error {
	out, err := w.core.End(true)
	if err != nil {
		return err
	}
	if err := w.emit(out); err != nil {
		return err
	}
	if c, ok := w.dst.(io.Closer); ok {
		return c.Close()
	}
	return nil
}
