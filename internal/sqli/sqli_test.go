package sqli

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetect_ClassicTautology(t *testing.T) {
	res := Detect("1' OR '1'='1")
	assert.True(t, res.IsInjection)
}

func TestDetect_UnionSelect(t *testing.T) {
	res := Detect("1 UNION SELECT username, password FROM users")
	assert.True(t, res.IsInjection)
}

func TestDetect_StackedDropTable(t *testing.T) {
	res := Detect("1; DROP TABLE users--")
	assert.True(t, res.IsInjection)
}

func TestDetect_PlainSelectIsNotFlagged(t *testing.T) {
	res := Detect("SELECT * FROM users WHERE id = 1")
	assert.False(t, res.IsInjection)
}

func TestDetect_EmptyInput(t *testing.T) {
	res := Detect("")
	assert.False(t, res.IsInjection)
	assert.Empty(t, res.Fingerprint)
}

func TestDetect_PlainWordsAreWhitelisted(t *testing.T) {
	res := Detect("hello world")
	assert.False(t, res.IsInjection)
}

func TestDetect_DeterministicAcrossCalls(t *testing.T) {
	const input = "admin'--"
	first := Detect(input)
	second := Detect(input)
	assert.Equal(t, first, second)
}

func TestDetect_FingerprintAtMostMaxTokens(t *testing.T) {
	res := Detect("1 AND 1=1")
	assert.LessOrEqual(t, len(res.Fingerprint), 5)
}

func TestWithLookup_OverridesDefaultTable(t *testing.T) {
	calls := 0
	d := NewDetector(WithLookup(func(upper string) byte {
		calls++
		return lookupKeyword(upper)
	}))
	d.Detect("SELECT 1")
	assert.Greater(t, calls, 0)
}

func TestTokenizer_OffsetNeverExceedsInputLength(t *testing.T) {
	input := "SELECT * FROM t WHERE a = 'x' AND b < 5 OR c /* comment */ -- trailing"
	state := newState(input, len(input), FLAG_QUOTE_NONE|FLAG_SQL_ANSI)
	s := &Sqli{state: state}
	for s.state.pos < len(input) {
		before := s.state.pos
		if !s.libinjection_sqli_tokenize() {
			break
		}
		assert.GreaterOrEqual(t, s.state.pos, before)
		assert.LessOrEqual(t, s.state.pos, len(input))
	}
}
