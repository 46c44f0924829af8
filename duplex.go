package basictext

import (
	"io"

	"github.com/musher-dev/basictext/internal/transducer"
)

// Duplex composes an independent Reader and Writer over a single
// byte-duplex lower layer. The two directions share only the underlying
// channel; each runs its own transducer with its own state.
type Duplex struct {
	*Reader
	*Writer
}

// NewDuplex returns a Duplex over rw. readOpts configure the Lossy
// transducer on the read side; writeOpts configure the Strict transducer
// on the write side.
func NewDuplex(rw io.ReadWriter, readOpts []transducer.Option, writeOpts []transducer.Option) *Duplex {
	return &Duplex{
		Reader: NewReader(rw, readOpts...),
		Writer: NewWriter(rw, writeOpts...),
	}
}
