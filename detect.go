// Package libinjectionrs detects SQL injection and cross-site scripting
// attempts in arbitrary byte strings. It ports the tokenizer, folder,
// and classifier tables of the libinjection reference implementation:
// a streaming dialect-aware SQL tokenizer feeding a bounded-window
// token folder and fingerprint/blacklist classifier, and an HTML5
// tokenizer driven from five parsing contexts feeding a tag/attribute/
// URL-scheme classifier.
//
// Both detection entry points are pure, deterministic functions of
// their input: no I/O, no shared state between calls, and no
// allocation beyond each call's own tokenizer/folder working set.
package libinjectionrs

import (
	"github.com/saarw/libinjectionrs/internal/sqli"
	"github.com/saarw/libinjectionrs/internal/xss"
)

// SqliResult is the outcome of DetectSQLi: whether the input was
// classified as SQL injection, and the canonical fingerprint produced
// by the last tokenization/fold attempt made (see internal/sqli for the
// multi-dialect detection protocol that fingerprint summarizes).
type SqliResult struct {
	IsInjection bool
	Fingerprint string
}

// XssResult is the outcome of DetectXSS.
type XssResult struct {
	IsInjection bool
}

// DetectSQLi classifies input as a SQL injection attempt or not. It
// tries the input as-is in the ANSI dialect and, if it contains a single
// quote, as if it started inside a single-quoted string; each of these is
// retried in the MySQL dialect when a MySQL-style comment ("--x" or "#")
// was seen. If the input contains a double quote it is also tried as if
// it started inside a double-quoted string, in the MySQL dialect only.
// Detection stops at the first attempt that matches the blacklist and
// isn't whitelisted.
func DetectSQLi(input string) SqliResult {
	r := sqli.Detect(input)
	return SqliResult{IsInjection: r.IsInjection, Fingerprint: r.Fingerprint}
}

// DetectXSS classifies input as a cross-site scripting attempt or not,
// driving the HTML5 tokenizer from each of its five start contexts.
func DetectXSS(input string) XssResult {
	return XssResult{IsInjection: xss.Detect(input)}
}

// SqliOption configures a SqliDetector.
type SqliOption = sqli.Option

// WithSqliLookup overrides the SQLi detector's built-in keyword/
// fingerprint table with a caller-supplied lookup function. It exists
// for tests that need to inject controlled table behavior; production
// callers should leave it unset.
func WithSqliLookup(lookup func(upper string) byte) SqliOption {
	return sqli.WithLookup(lookup)
}

// SqliDetector runs SQLi detection with an overridable keyword lookup.
// It holds no per-input state and is safe for concurrent use.
type SqliDetector struct {
	inner *sqli.Detector
}

// NewSqliDetector builds a SqliDetector with the given options applied.
func NewSqliDetector(opts ...SqliOption) *SqliDetector {
	return &SqliDetector{inner: sqli.NewDetector(opts...)}
}

// Detect runs the full multi-dialect SQLi detection protocol over
// input.
func (d *SqliDetector) Detect(input string) SqliResult {
	r := d.inner.Detect(input)
	return SqliResult{IsInjection: r.IsInjection, Fingerprint: r.Fingerprint}
}
