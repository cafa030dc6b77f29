package sqli

// Result is the outcome of a single SQLi detection pass: whether the
// input was classified as injection, and the fingerprint produced by the
// last attempted tokenization/fold.
type Result struct {
	IsInjection bool
	Fingerprint string
}

// Option configures a Detector.
type Option func(*Detector)

// WithLookup overrides the built-in keyword/fingerprint table with a
// caller-supplied lookup function. It exists exclusively to let tests
// inject controlled table behavior; production callers should leave it
// unset and get the default binary-searched table.
func WithLookup(lookup func(upper string) byte) Option {
	return func(d *Detector) {
		d.lookup = lookup
	}
}

// Detector runs SQLi detection over arbitrary input. It holds no
// per-input state between calls and is safe for concurrent use: each
// Detect call constructs its own *Sqli/*State internally.
type Detector struct {
	lookup func(string) byte
}

// NewDetector builds a Detector with the given options applied.
func NewDetector(opts ...Option) *Detector {
	d := &Detector{}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Detect runs the full multi-dialect SQLi detection protocol over input
// and returns whether it looks like SQL injection along with the
// fingerprint of the last attempt made.
func (d *Detector) Detect(input string) Result {
	s := &Sqli{lookup: d.lookup}
	isSqli, fingerprint := s.libinjection_sqli(input)
	return Result{IsInjection: isSqli, Fingerprint: fingerprint}
}

// Detect runs SQLi detection with the default table and no options. It
// is a convenience wrapper around NewDetector().Detect for callers that
// don't need a custom lookup.
func Detect(input string) Result {
	return NewDetector().Detect(input)
}
