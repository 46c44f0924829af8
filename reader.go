package basictext

import (
	"bufio"
	"io"

	"github.com/musher-dev/basictext/internal/transducer"
)

// Reader wraps a UTF-8 byte producer and pulls Basic Text bytes out of it:
// invalid encodings are substituted with U+FFFD by the underlying decoder,
// and the Lossy transducer repairs everything else — boundary violations,
// disallowed scalars, escape sequences. The one validation error Read can
// return is the transducer's IncompleteVariationTable error, which the
// Lossy mode also raises for a CJK compatibility ideograph that has no
// catalogued standardized variation sequence.
type Reader struct {
	src     *bufio.Reader
	core    *transducer.Core
	pending []byte
	eof     bool
}

// NewReader returns a Reader over r, applying opts to the Lossy
// transducer it runs internally.
func NewReader(r io.Reader, opts ...transducer.Option) *Reader {
	return &Reader{
		src:  bufio.NewReader(r),
		core: transducer.New(transducer.Lossy, transducer.NewOptions(opts...)),
	}
}

// Read implements io.Reader. It reads one underlying scalar at a time,
// buffering whatever the transducer produces (which may be more or fewer
// bytes than the input scalar, or none at all while output is withheld at
// a normalization boundary) until p is filled or the pending buffer is
// exhausted.
func (r *Reader) Read(p []byte) (int, error) {
	for len(r.pending) == 0 {
		if r.eof {
			return 0, io.EOF
		}

		sv, _, err := r.src.ReadRune()
		if err != nil {
			if err != io.EOF {
				return 0, err
			}
			r.eof = true
			out, endErr := r.core.End(true)
			if endErr != nil {
				return 0, endErr
			}
			r.pending = []byte(string(out))
			continue
		}

		out, pushErr := r.core.Push(sv)
		if pushErr != nil {
			return 0, pushErr
		}
		r.pending = []byte(string(out))
	}

	n := copy(p, r.pending)
	r.pending = r.pending[n:]
	return n, nil
}
