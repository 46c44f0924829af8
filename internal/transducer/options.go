package transducer

// Options holds the compatibility flags from spec.md §6. All default to
// false.
type Options struct {
	NELCompat    bool
	LSPSCompat   bool
	CRLFCompat   bool
	BOMCompat    bool
	ColorEscapes bool
}

// Option configures an Options value.
type Option func(*Options)

// WithNELCompat maps U+0085 (NEL) to U+000A instead of U+0020 (lossy
// input only).
func WithNELCompat() Option { return func(o *Options) { o.NELCompat = true } }

// WithLSPSCompat maps U+2028/U+2029 (LS/PS) to U+000A instead of U+0020
// (lossy input only).
func WithLSPSCompat() Option { return func(o *Options) { o.LSPSCompat = true } }

// WithCRLFCompat maps every U+000A to U+000D U+000A at the final output
// stage (strict output / writer only).
func WithCRLFCompat() Option { return func(o *Options) { o.CRLFCompat = true } }

// WithBOMCompat prepends U+FEFF at the start of output (strict output /
// writer only).
func WithBOMCompat() Option { return func(o *Options) { o.BOMCompat = true } }

// WithColorEscapes permits SGR escape sequences to pass through instead of
// being elided (lossy) or rejected (strict).
func WithColorEscapes() Option { return func(o *Options) { o.ColorEscapes = true } }

// NewOptions applies opts over the zero-value defaults.
func NewOptions(opts ...Option) Options {
	var o Options
	for _, fn := range opts {
		fn(&o)
	}
	return o
}
