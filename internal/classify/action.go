package classify

// ErrorKind enumerates the Strict-mode error kinds. Each is keyed to the
// violating scalar/sequence and its byte offset by the caller (the
// transducer core), not by the classifier itself.
type ErrorKind string

const (
	ErrNonStarterAtStart        ErrorKind = "NonStarterAtStart"
	ErrNonEnderAtEnd            ErrorKind = "NonEnderAtEnd"
	ErrMissingTrailingNewline   ErrorKind = "MissingTrailingNewline"
	ErrDisallowedControl        ErrorKind = "DisallowedControl"
	ErrDeprecatedScalar         ErrorKind = "DeprecatedScalar"
	ErrDiscouragedScalar        ErrorKind = "DiscouragedScalar"
	ErrNoncharacter             ErrorKind = "Noncharacter"
	ErrPrivateUse               ErrorKind = "PrivateUse"
	ErrTagCharacter             ErrorKind = "TagCharacter"
	ErrObjectReplacement        ErrorKind = "ObjectReplacement"
	ErrInterlinearAnnotation    ErrorKind = "InterlinearAnnotation"
	ErrExplicitBidi             ErrorKind = "ExplicitBidi"
	ErrEscapeSequence           ErrorKind = "EscapeSequence"
	ErrSingletonLetter          ErrorKind = "SingletonLetter"
	ErrLigatureOrDeprecatedForm ErrorKind = "LigatureOrDeprecatedForm"
	ErrIncompleteVariationTable ErrorKind = "IncompleteVariationTable"
	ErrBomMidstream             ErrorKind = "BomMidstream"
	ErrCrOrCrlf                 ErrorKind = "CrOrCrlf"
	ErrFf                       ErrorKind = "Ff"
	ErrNel                      ErrorKind = "Nel"
	ErrLsPs                     ErrorKind = "LsPs"
	ErrUnderlying               ErrorKind = "Underlying"
)

// Action is the tagged-sum-type result of a Pre-NFC or Main table lookup:
// Passthrough, Replace, Error, Variation, Newline, Space, or Strip. Each
// variant is its own type implementing the unexported marker method so
// the set is closed and cannot be conflated with a numeric sentinel.
type Action interface {
	isAction()
}

// Passthrough leaves the scalar(s) unchanged.
type Passthrough struct{}

// Replace substitutes the matched sequence with Seq.
type Replace struct{ Seq []rune }

// Error rejects the matched sequence in Strict mode with the given Kind
// and human-readable diagnostic.
type Error struct {
	Kind    ErrorKind
	Message string
}

// Variation substitutes the matched scalar with a standardized variation
// sequence (base scalar + variation selector).
type Variation struct{ Seq []rune }

// Newline substitutes the matched sequence with U+000A.
type Newline struct{}

// Space substitutes the matched sequence with U+0020.
type Space struct{}

// Strip elides the matched sequence entirely.
type Strip struct{}

func (Passthrough) isAction() {}
func (Replace) isAction()     {}
func (Error) isAction()       {}
func (Variation) isAction()   {}
func (Newline) isAction()     {}
func (Space) isAction()       {}
func (Strip) isAction()       {}
