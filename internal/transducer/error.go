package transducer

import (
	"fmt"

	"github.com/musher-dev/basictext/internal/classify"
)

// Error is the Strict-mode rejection carried out of the transducer core.
// It names the offending scalar, the Unicode-recommended alternative when
// the table has one, and the byte offset into the original input.
type Error struct {
	Kind        classify.ErrorKind
	Message     string
	Scalar      rune
	Alternative []rune
	ByteOffset  int
}

func (e *Error) Error() string {
	if e.Alternative != nil {
		return fmt.Sprintf("basictext: %s at byte %d (scalar %U, recommended alternative %U): %s",
			e.Kind, e.ByteOffset, e.Scalar, e.Alternative, e.Message)
	}
	return fmt.Sprintf("basictext: %s at byte %d (scalar %U): %s", e.Kind, e.ByteOffset, e.Scalar, e.Message)
}
