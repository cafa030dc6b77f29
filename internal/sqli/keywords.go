package sqli

import "strings"

// wordEntry is one row of the keyword/fingerprint table: an uppercase
// word (or, for fingerprint rows, a v1-format "0"-prefixed fingerprint)
// paired with the token-type byte it resolves to.
type wordEntry struct {
	word string
	cat  byte
}

// sqlKeywords is the sorted, uppercased keyword/fingerprint table described
// in libinjection's C2 component. Plain words are looked up as-is;
// fingerprints are stored in "v1" format (a leading '0' followed by the
// uppercased fingerprint bytes) so the two namespaces never collide during
// binary search.
//
// The reference implementation's table is generated at build time from a
// data file that is not part of this module's source (see DESIGN.md); the
// table below is an independent reconstruction covering the keyword
// classes the tokenizer/folder dispatch on (logic operators, set
// operators, DML/DDL verbs, dangerous functions, SQL types) plus the
// fingerprint rows the whitelist in sqli.go assumes are blacklisted.
var sqlKeywords = buildKeywordTable()

func buildKeywordTable() []wordEntry {
	entries := []wordEntry{
		// logical / set operators -- TYPE_LOGIC_OPERATOR
		{"&&", TYPE_LOGIC_OPERATOR},
		{"AND", TYPE_LOGIC_OPERATOR},
		{"OR", TYPE_LOGIC_OPERATOR},
		{"XOR", TYPE_LOGIC_OPERATOR},
		{"||", TYPE_LOGIC_OPERATOR},
		{"NOT", TYPE_LOGIC_OPERATOR},

		// comparison / membership operators treated as keywords in
		// bareword position (e.g. "IN (1,2)")
		{"IN", TYPE_OPERATOR},
		{"IS", TYPE_OPERATOR},
		{"LIKE", TYPE_OPERATOR},
		{"RLIKE", TYPE_OPERATOR},
		{"REGEXP", TYPE_OPERATOR},
		{"BETWEEN", TYPE_OPERATOR},
		{"ILIKE", TYPE_OPERATOR},
		{"SOUNDS", TYPE_OPERATOR},
		{"DIV", TYPE_OPERATOR},
		{"MOD", TYPE_OPERATOR},

		// set operators -- TYPE_UNION
		{"UNION", TYPE_UNION},
		{"UNION SELECT", TYPE_UNION},
		{"UNION ALL", TYPE_UNION},
		{"INTERSECT", TYPE_UNION},
		{"EXCEPT", TYPE_UNION},
		{"MINUS", TYPE_UNION},

		// grouping / ordering clauses -- TYPE_GROUP
		{"GROUP", TYPE_GROUP},
		{"ORDER", TYPE_GROUP},
		{"HAVING", TYPE_GROUP},
		{"LIMIT", TYPE_GROUP},
		{"OFFSET", TYPE_GROUP},
		{"PARTITION", TYPE_GROUP},

		// DML/DDL/transactional verbs and clauses -- TYPE_KEYWORD
		{"SELECT", TYPE_KEYWORD},
		{"INSERT", TYPE_KEYWORD},
		{"UPDATE", TYPE_KEYWORD},
		{"DELETE", TYPE_KEYWORD},
		{"DROP", TYPE_KEYWORD},
		{"CREATE", TYPE_KEYWORD},
		{"ALTER", TYPE_KEYWORD},
		{"TRUNCATE", TYPE_KEYWORD},
		{"RENAME", TYPE_KEYWORD},
		{"GRANT", TYPE_KEYWORD},
		{"REVOKE", TYPE_KEYWORD},
		{"EXEC", TYPE_KEYWORD},
		{"EXECUTE", TYPE_KEYWORD},
		{"DECLARE", TYPE_KEYWORD},
		{"WAITFOR", TYPE_KEYWORD},
		{"FROM", TYPE_KEYWORD},
		{"WHERE", TYPE_KEYWORD},
		{"INTO", TYPE_KEYWORD},
		{"VALUES", TYPE_KEYWORD},
		{"SET", TYPE_KEYWORD},
		{"TABLE", TYPE_KEYWORD},
		{"DROP TABLE", TYPE_KEYWORD},
		{"SCHEMA", TYPE_KEYWORD},
		{"INDEX", TYPE_KEYWORD},
		{"VIEW", TYPE_KEYWORD},
		{"JOIN", TYPE_KEYWORD},
		{"INNER", TYPE_KEYWORD},
		{"OUTER", TYPE_KEYWORD},
		{"LEFT", TYPE_KEYWORD},
		{"RIGHT", TYPE_KEYWORD},
		{"FULL", TYPE_KEYWORD},
		{"CROSS", TYPE_KEYWORD},
		{"ON", TYPE_KEYWORD},
		{"AS", TYPE_KEYWORD},
		{"DISTINCT", TYPE_KEYWORD},
		{"ALL", TYPE_KEYWORD},
		{"ANY", TYPE_KEYWORD},
		{"SOME", TYPE_KEYWORD},
		{"EXISTS", TYPE_KEYWORD},
		{"CASE", TYPE_KEYWORD},
		{"WHEN", TYPE_KEYWORD},
		{"THEN", TYPE_KEYWORD},
		{"ELSE", TYPE_KEYWORD},
		{"END", TYPE_KEYWORD},
		{"NULL", TYPE_KEYWORD},
		{"TRUE", TYPE_KEYWORD},
		{"FALSE", TYPE_KEYWORD},
		{"INTO OUTFILE", TYPE_KEYWORD},
		{"INTO DUMPFILE", TYPE_KEYWORD},

		// dangerous / blacklisted-by-name functions -- TYPE_FUNCTION
		{"SLEEP", TYPE_FUNCTION},
		{"BENCHMARK", TYPE_FUNCTION},
		{"LOAD_FILE", TYPE_FUNCTION},
		{"LOAD FILE", TYPE_FUNCTION},
		{"CAST", TYPE_FUNCTION},
		{"CONVERT", TYPE_FUNCTION},
		{"CONCAT", TYPE_FUNCTION},
		{"CONCAT_WS", TYPE_FUNCTION},
		{"GROUP_CONCAT", TYPE_FUNCTION},
		{"SUBSTRING", TYPE_FUNCTION},
		{"SUBSTR", TYPE_FUNCTION},
		{"ASCII", TYPE_FUNCTION},
		{"ORD", TYPE_FUNCTION},
		{"CHAR", TYPE_FUNCTION},
		{"CHR", TYPE_FUNCTION},
		{"HEX", TYPE_FUNCTION},
		{"UNHEX", TYPE_FUNCTION},
		{"VERSION", TYPE_FUNCTION},
		// DATABASE, USER, CURRENT_USER are deliberately absent here: they're
		// common enough as column/bareword names that the fold only
		// promotes them to TYPE_FUNCTION when directly call-shaped (see the
		// bareword+leftparen special case in libinjection_sqli_fold).
		{"SCHEMA_NAME", TYPE_FUNCTION},
		{"EXTRACTVALUE", TYPE_FUNCTION},
		{"UPDATEXML", TYPE_FUNCTION},
		{"XP_CMDSHELL", TYPE_FUNCTION},
		{"IF", TYPE_FUNCTION},
		{"IFNULL", TYPE_FUNCTION},
		{"COALESCE", TYPE_FUNCTION},
		{"COUNT", TYPE_FUNCTION},
		{"SUM", TYPE_FUNCTION},
		{"AVG", TYPE_FUNCTION},
		{"MIN", TYPE_FUNCTION},
		{"MAX", TYPE_FUNCTION},
		{"NOW", TYPE_FUNCTION},
		{"RAND", TYPE_FUNCTION},

		// SQL types -- TYPE_SQLTYPE
		{"INT", TYPE_SQLTYPE},
		{"INTEGER", TYPE_SQLTYPE},
		{"BIGINT", TYPE_SQLTYPE},
		{"SMALLINT", TYPE_SQLTYPE},
		{"TINYINT", TYPE_SQLTYPE},
		{"FLOAT", TYPE_SQLTYPE},
		{"DOUBLE", TYPE_SQLTYPE},
		{"DECIMAL", TYPE_SQLTYPE},
		{"NUMERIC", TYPE_SQLTYPE},
		{"VARCHAR", TYPE_SQLTYPE},
		{"NVARCHAR", TYPE_SQLTYPE},
		{"TEXT", TYPE_SQLTYPE},
		{"BLOB", TYPE_SQLTYPE},
		{"DATE", TYPE_SQLTYPE},
		{"DATETIME", TYPE_SQLTYPE},
		{"TIMESTAMP", TYPE_SQLTYPE},
		{"BOOLEAN", TYPE_SQLTYPE},
		{"UNSIGNED", TYPE_SQLTYPE},
		{"ZEROFILL", TYPE_SQLTYPE},
		{"COLLATE", TYPE_COLLATE},

		// fingerprint rows (v1 format: leading '0' + uppercased fingerprint).
		// These are the short canonical forms the tokenizer/folder produce
		// for classic injection shapes (tautologies, string concatenation
		// breakouts, trailing comments); see spec worked examples.
		{"0" + "S&SOS", TYPE_FINGERPRINT},
		{"0" + "SOS", TYPE_FINGERPRINT},
		{"0" + "S&S", TYPE_FINGERPRINT},
		{"0" + "S&N", TYPE_FINGERPRINT},
		{"0" + "N&1", TYPE_FINGERPRINT},
		{"0" + "1&1", TYPE_FINGERPRINT},
		{"0" + "1&V", TYPE_FINGERPRINT},
		{"0" + "1&S", TYPE_FINGERPRINT},
		{"0" + "1U", TYPE_FINGERPRINT},
		{"0" + "1C", TYPE_FINGERPRINT},
		{"0" + "NC", TYPE_FINGERPRINT},
		{"0" + "NOVC", TYPE_FINGERPRINT},
		{"0" + "1OVC", TYPE_FINGERPRINT},
		{"0" + "SUN", TYPE_FINGERPRINT},
		{"0" + "1N", TYPE_FINGERPRINT},
		{"0" + "1UN", TYPE_FINGERPRINT},
		{"0" + "1UNC", TYPE_FINGERPRINT},
		{"0" + "NKC", TYPE_FINGERPRINT},
		{"0" + "SOKC", TYPE_FINGERPRINT},
		{"0" + "N(NNN)", TYPE_FINGERPRINT},
		// stacked statement via a bare semicolon, e.g. "1; DROP TABLE x--"
		{"0" + "1;kkn", TYPE_FINGERPRINT},
		{"0" + "1;knc", TYPE_FINGERPRINT},
		// "1 UNION SELECT a,b FROM t" (unmerged and with UNION+SELECT fused)
		{"0" + "1Uknk", TYPE_FINGERPRINT},
		{"0" + "1Unkn", TYPE_FINGERPRINT},
	}

	for i := range entries {
		entries[i].word = strings.ToUpper(entries[i].word)
	}

	// keep sorted for binary search, then stable-dedupe in place
	sortWordEntries(entries)
	return dedupeWordEntries(entries)
}

func sortWordEntries(entries []wordEntry) {
	for i := 1; i < len(entries); i++ {
		for j := i; j > 0 && entries[j-1].word > entries[j].word; j-- {
			entries[j-1], entries[j] = entries[j], entries[j-1]
		}
	}
}

func dedupeWordEntries(entries []wordEntry) []wordEntry {
	out := entries[:0]
	for i, e := range entries {
		if i > 0 && e.word == entries[i-1].word {
			continue
		}
		out = append(out, e)
	}
	return out
}

// lookupKeyword binary-searches the keyword table for an uppercased word
// and returns its category byte, or TYPE_NONE if absent.
func lookupKeyword(upper string) byte {
	lo, hi := 0, len(sqlKeywords)
	for lo < hi {
		mid := (lo + hi) / 2
		switch {
		case sqlKeywords[mid].word == upper:
			return sqlKeywords[mid].cat
		case sqlKeywords[mid].word < upper:
			lo = mid + 1
		default:
			hi = mid
		}
	}
	return TYPE_NONE
}

// fingerprintV1 builds the "v1" lookup form of a fingerprint: a leading
// '0' followed by the uppercased fingerprint bytes.
func fingerprintV1(fingerprint string) string {
	v1 := make([]byte, 0, len(fingerprint)+1)
	v1 = append(v1, '0')
	for i := 0; i < len(fingerprint); i++ {
		c := fingerprint[i]
		if c >= 'a' && c <= 'z' {
			c -= 'a' - 'A'
		}
		v1 = append(v1, c)
	}
	return string(v1)
}

// lookupFingerprint binary-searches the table for a fingerprint in v1
// format (leading '0' + uppercased fingerprint bytes).
func lookupFingerprint(fingerprint string) bool {
	if fingerprint == "" {
		return false
	}
	return lookupKeyword(fingerprintV1(fingerprint)) == TYPE_FINGERPRINT
}
