package libinjectionrs

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectSQLi_Tautology(t *testing.T) {
	res := DetectSQLi("1' OR '1'='1")
	assert.True(t, res.IsInjection)
}

func TestDetectSQLi_OrdinaryQuery(t *testing.T) {
	res := DetectSQLi("SELECT * FROM users WHERE id = 1")
	assert.False(t, res.IsInjection)
}

func TestDetectSQLi_StackedDropTable(t *testing.T) {
	res := DetectSQLi("1; DROP TABLE users--")
	assert.True(t, res.IsInjection)
}

func TestDetectSQLi_EmptyInput(t *testing.T) {
	res := DetectSQLi("")
	assert.False(t, res.IsInjection)
	assert.Empty(t, res.Fingerprint)
}

func TestDetectXSS_ScriptTag(t *testing.T) {
	res := DetectXSS("<script>alert('xss')</script>")
	assert.True(t, res.IsInjection)
}

func TestDetectXSS_BlackAttrEvent(t *testing.T) {
	res := DetectXSS(`<img src=x onerror=alert(1)>`)
	assert.True(t, res.IsInjection)
}

func TestDetectXSS_JavascriptURLScheme(t *testing.T) {
	res := DetectXSS(`<a href="javascript:alert(1)">x</a>`)
	assert.True(t, res.IsInjection)
}

func TestDetectXSS_ConditionalCommentQuirk(t *testing.T) {
	res := DetectXSS(`<!--[if IE]><script>alert(1)</script><![endif]-->`)
	assert.True(t, res.IsInjection)
}

func TestDetectXSS_PlainText(t *testing.T) {
	res := DetectXSS("hello world")
	assert.False(t, res.IsInjection)
}

func TestDetectXSS_EmptyInput(t *testing.T) {
	res := DetectXSS("")
	assert.False(t, res.IsInjection)
}

func TestNewSqliDetector_WithCustomLookup(t *testing.T) {
	invoked := false
	d := NewSqliDetector(WithSqliLookup(func(upper string) byte {
		invoked = true
		return 0
	}))
	d.Detect("SELECT 1")
	assert.True(t, invoked)
}

// TestDetect_TotalAndBounded exercises both detectors against a spread of byte strings,
// including ones with embedded NULs and high bytes, to pin the
// universal invariants from the detection contract: both functions must
// be total (never panic) and must return a fingerprint no longer than
// the maximum folded-token window.
func TestDetect_TotalAndBounded(t *testing.T) {
	inputs := []string{
		"",
		"a",
		"\x00\x00\x00",
		"SELECT/*!50000 1*/",
		"n'#'",
		"<svg/onload=alert(1)>",
		string([]byte{0xff, 0xfe, 0x80, 0x01, '<', '>', '\'', '"'}),
	}
	for _, in := range inputs {
		sqliRes := DetectSQLi(in)
		assert.LessOrEqual(t, len(sqliRes.Fingerprint), 5)
		_ = DetectXSS(in)
	}
}
