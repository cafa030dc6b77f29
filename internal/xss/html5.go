// Package xss implements the HTML5-dialect tokenizer and the
// context-sensitive classifier used to detect cross-site scripting
// payloads. The tokenizer is driven from one of five start states and
// never allocates: tokens are (type, start, len) triples into the
// caller's input.
package xss

// TokenType identifies what kind of HTML5 construct a token represents.
type TokenType int

const (
	DataText TokenType = iota
	TagNameOpen
	TagNameClose
	TagNameSelfclose
	TagData
	TagClose
	AttrName
	AttrValue
	TagComment
	Doctype
)

func (t TokenType) String() string {
	switch t {
	case DataText:
		return "DATA_TEXT"
	case TagNameOpen:
		return "TAG_NAME_OPEN"
	case TagNameClose:
		return "TAG_NAME_CLOSE"
	case TagNameSelfclose:
		return "TAG_NAME_SELFCLOSE"
	case TagData:
		return "TAG_DATA"
	case TagClose:
		return "TAG_CLOSE"
	case AttrName:
		return "ATTR_NAME"
	case AttrValue:
		return "ATTR_VALUE"
	case TagComment:
		return "TAG_COMMENT"
	case Doctype:
		return "DOCTYPE"
	default:
		return "UNKNOWN"
	}
}

// StartFlag selects which of the five parsing contexts a State begins
// in. VALUE_* contexts let the classifier re-drive the same tokenizer as
// if the input had landed directly inside an unquoted/single/double/
// backtick-quoted attribute value, without a surrounding tag.
type StartFlag int

const (
	DataState StartFlag = iota
	ValueNoQuote
	ValueSingleQuote
	ValueDoubleQuote
	ValueBackQuote
)

// State is the HTML5 tokenizer's working set: borrowed input, current
// offset, and the token most recently produced. It holds no heap
// allocations and is meant to be constructed fresh per detection call.
type State struct {
	s      string
	length int
	pos    int

	TokenType  TokenType
	TokenStart int
	TokenLen   int

	stateFn func(*State) bool
	isClose bool
}

// New builds a tokenizer over input, starting in the context named by
// flags.
func New(input string, flags StartFlag) *State {
	hs := &State{
		s:      input,
		length: len(input),
	}
	switch flags {
	case DataState:
		hs.stateFn = (*State).stateData
	case ValueNoQuote:
		hs.stateFn = (*State).stateBeforeAttributeName
	case ValueSingleQuote:
		hs.stateFn = (*State).stateAttributeValueSingleQuote
	case ValueDoubleQuote:
		hs.stateFn = (*State).stateAttributeValueDoubleQuote
	case ValueBackQuote:
		hs.stateFn = (*State).stateAttributeValueBackQuote
	default:
		hs.stateFn = (*State).stateData
	}
	return hs
}

// Next advances the tokenizer by one token. It returns false once the
// input is exhausted; the token fields are only meaningful while Next
// returns true.
func (hs *State) Next() bool {
	return hs.stateFn(hs)
}

// Position returns the tokenizer's current byte offset into the input.
func (hs *State) Position() int {
	return hs.pos
}

// Token returns the slice of the original input covered by the most
// recently produced token.
func (hs *State) Token() string {
	if hs.TokenStart < 0 || hs.TokenStart > hs.length {
		return ""
	}
	end := hs.TokenStart + hs.TokenLen
	if end > hs.length {
		end = hs.length
	}
	return hs.s[hs.TokenStart:end]
}

func (hs *State) isEOF() bool {
	return hs.pos >= hs.length
}

func (hs *State) currentChar() (byte, bool) {
	if hs.pos < hs.length {
		return hs.s[hs.pos], true
	}
	return 0, false
}

func (hs *State) advance() (byte, bool) {
	if hs.pos < hs.length {
		ch := hs.s[hs.pos]
		hs.pos++
		return ch, true
	}
	return 0, false
}

func (hs *State) setToken(t TokenType, start, length int) {
	hs.TokenType = t
	hs.TokenStart = start
	hs.TokenLen = length
}

// h5SkipWhite mirrors the reference's h5_skip_white: it treats bytes as
// *signed* chars, so any byte >= 0x80 comes back negative rather than as
// its unsigned value. NUL is whitespace here for IE compatibility, as are
// the vertical-tab/form-feed/CR bytes that only IE treated as such.
// ok is false only at end of input.
func (hs *State) h5SkipWhite() (int8, bool) {
	for hs.pos < hs.length {
		ch := hs.s[hs.pos]
		switch int8(ch) {
		case 0x00, 0x20, 0x09, 0x0A, 0x0B, 0x0C, 0x0D:
			hs.pos++
		default:
			return int8(ch), true
		}
	}
	return -1, false
}

func isWhitespace(ch byte) bool {
	switch ch {
	case 0x20, 0x09, 0x0A, 0x0B, 0x0C, 0x0D:
		return true
	default:
		return false
	}
}

// isAlphaCStyle reproduces the reference's signed-char alphabetic test:
// bytes >= 0x80 become negative and always fail.
func isAlphaCStyle(ch byte) bool {
	c := int8(ch)
	return (c >= int8('a') && c <= int8('z')) || (c >= int8('A') && c <= int8('Z'))
}

func (hs *State) findByte(b byte, start int) (int, bool) {
	if start >= hs.length {
		return 0, false
	}
	for i := start; i < hs.length; i++ {
		if hs.s[i] == b {
			return i, true
		}
	}
	return 0, false
}

// findCommentEnd locates the end of a standard HTML comment: a '-'
// followed by '-' or '!' and then '>', so '-->' and '-!>' both end it
// (and '--!>' ends it at its second dash). NUL bytes between that first
// dash and the byte after it are skipped, an IE quirk. Returns the offset
// of the dash that starts the terminator and the number of bytes the
// terminator occupies.
func (hs *State) findCommentEnd(start int) (dashPos, width int, ok bool) {
	if start+2 >= hs.length {
		return 0, 0, false
	}
	pos := start
	for pos <= hs.length-3 {
		dp, found := hs.findByte('-', pos)
		if !found {
			return 0, 0, false
		}
		if dp+2 >= hs.length {
			return 0, 0, false
		}
		offset := 1
		for dp+offset < hs.length && hs.s[dp+offset] == 0 {
			offset++
		}
		if dp+offset >= hs.length {
			return 0, 0, false
		}
		next := hs.s[dp+offset]
		if next != '-' && next != '!' {
			pos = dp + 1
			continue
		}
		offset++
		if dp+offset >= hs.length {
			return 0, 0, false
		}
		if hs.s[dp+offset] == '>' {
			return dp, offset + 1, true
		}
		pos = dp + 1
	}
	return 0, 0, false
}

func (hs *State) findCDataEnd(start int) (int, bool) {
	if start+2 >= hs.length {
		return 0, false
	}
	for i := start; i < hs.length-2; i++ {
		if hs.s[i] == ']' && hs.s[i+1] == ']' && hs.s[i+2] == '>' {
			return i, true
		}
	}
	return 0, false
}

func (hs *State) stateEOF() bool {
	return false
}

func (hs *State) stateData() bool {
	start := hs.pos
	ltPos, found := hs.findByte('<', hs.pos)
	if found {
		if ltPos > start {
			hs.setToken(DataText, start, ltPos-start)
			hs.pos = ltPos
			return true
		}
		hs.pos = ltPos + 1
		hs.stateFn = (*State).stateTagOpen
		return hs.Next()
	}
	if hs.length > start {
		hs.setToken(DataText, start, hs.length-start)
		hs.pos = hs.length
		hs.stateFn = (*State).stateEOF
		return true
	}
	return false
}

func (hs *State) stateTagOpen() bool {
	if hs.isEOF() {
		return false
	}
	ch, _ := hs.currentChar()
	switch {
	case ch == '!':
		hs.advance()
		hs.stateFn = (*State).stateMarkupDeclarationOpen
		return hs.Next()
	case ch == '/':
		hs.advance()
		hs.isClose = true
		hs.stateFn = (*State).stateEndTagOpen
		return hs.Next()
	case ch == '?':
		hs.advance()
		hs.stateFn = (*State).stateBogusComment
		return hs.Next()
	case ch == '%':
		hs.advance()
		hs.stateFn = (*State).stateBogusComment2
		return hs.Next()
	case isAlphaCStyle(ch):
		hs.stateFn = (*State).stateTagName
		return hs.Next()
	case ch == 0:
		hs.stateFn = (*State).stateTagName
		return hs.Next()
	default:
		if hs.pos == 0 {
			hs.stateFn = (*State).stateData
			return hs.Next()
		}
		hs.setToken(DataText, hs.pos-1, 1)
		hs.stateFn = (*State).stateData
		return true
	}
}

func (hs *State) stateTagName() bool {
	start := hs.pos
	for hs.pos < hs.length {
		ch := hs.s[hs.pos]
		switch {
		case ch == 0:
			hs.pos++
		case isWhitespace(ch):
			hs.setToken(TagNameOpen, start, hs.pos-start)
			hs.advance()
			hs.stateFn = (*State).stateBeforeAttributeName
			return true
		case ch == '/':
			hs.setToken(TagNameOpen, start, hs.pos-start)
			hs.advance()
			hs.stateFn = (*State).stateSelfClosingStartTag
			return true
		case ch == '>':
			hs.setToken(TagNameOpen, start, hs.pos-start)
			if hs.isClose {
				hs.advance()
				hs.isClose = false
				hs.TokenType = TagClose
				hs.stateFn = (*State).stateData
			} else {
				hs.TokenType = TagNameOpen
				hs.stateFn = (*State).stateTagNameClose
			}
			return true
		default:
			hs.pos++
		}
	}
	hs.setToken(TagNameOpen, start, hs.length-start)
	hs.stateFn = (*State).stateEOF
	return true
}

func (hs *State) stateEndTagOpen() bool {
	if hs.isEOF() {
		return false
	}
	ch, _ := hs.currentChar()
	switch {
	case ch == '>':
		hs.stateFn = (*State).stateData
		return hs.Next()
	case isAlphaCStyle(ch):
		hs.stateFn = (*State).stateTagName
		return hs.Next()
	default:
		hs.isClose = false
		hs.stateFn = (*State).stateBogusComment
		return hs.Next()
	}
}

func (hs *State) stateTagNameClose() bool {
	hs.isClose = false
	hs.setToken(TagNameClose, hs.pos, 1)
	hs.advance()
	if hs.pos < hs.length {
		hs.stateFn = (*State).stateData
	} else {
		hs.stateFn = (*State).stateEOF
	}
	return true
}

func (hs *State) stateEmitTagCloseChar() bool {
	hs.isClose = false
	hs.setToken(TagNameClose, hs.pos, 1)
	hs.advance()
	if hs.pos < hs.length {
		hs.stateFn = (*State).stateData
	} else {
		hs.stateFn = (*State).stateEOF
	}
	return true
}

func (hs *State) stateSelfClosingStartTag() bool {
	if hs.isEOF() {
		return false
	}
	if ch, _ := hs.currentChar(); ch == '>' {
		hs.setToken(TagNameSelfclose, hs.pos-1, 2)
		hs.advance()
		hs.stateFn = (*State).stateData
		return true
	}
	hs.stateFn = (*State).stateBeforeAttributeName
	return hs.Next()
}

func (hs *State) stateBeforeAttributeName() bool {
	for {
		ch, _ := hs.h5SkipWhite()
		switch ch {
		case -1:
			return false
		case 0x2f: // '/'
			hs.advance()
			if hs.pos < hs.length && hs.s[hs.pos] != '>' {
				continue
			}
			return hs.stateSelfClosingStartTag()
		case 0x3e: // '>'
			hs.setToken(TagNameClose, hs.pos, 1)
			hs.advance()
			hs.stateFn = (*State).stateData
			return true
		default:
			hs.stateFn = (*State).stateAttributeName
			return hs.Next()
		}
	}
}

func (hs *State) stateAttributeName() bool {
	start := hs.pos
	scan := hs.pos + 1
	for scan < hs.length {
		ch := hs.s[scan]
		switch {
		case isWhitespace(ch):
			hs.setToken(AttrName, start, scan-start)
			hs.stateFn = (*State).stateAfterAttributeName
			hs.pos = scan + 1
			return true
		case ch == '/':
			hs.setToken(AttrName, start, scan-start)
			hs.stateFn = (*State).stateSelfClosingStartTag
			hs.pos = scan + 1
			return true
		case ch == '=':
			hs.setToken(AttrName, start, scan-start)
			hs.stateFn = (*State).stateBeforeAttributeValue
			hs.pos = scan + 1
			return true
		case ch == '>':
			hs.setToken(AttrName, start, scan-start)
			hs.stateFn = (*State).stateTagNameClose
			hs.pos = scan
			return true
		default:
			scan++
		}
	}
	hs.setToken(AttrName, start, hs.length-start)
	hs.stateFn = (*State).stateEOF
	hs.pos = hs.length
	return true
}

func (hs *State) stateAfterAttributeName() bool {
	ch, _ := hs.h5SkipWhite()
	switch ch {
	case -1:
		return false
	case 0x2f:
		hs.pos++
		return hs.stateSelfClosingStartTag()
	case 0x3d:
		hs.pos++
		return hs.stateBeforeAttributeValue()
	case 0x3e:
		return hs.stateTagNameClose()
	default:
		return hs.stateAttributeName()
	}
}

func (hs *State) stateBeforeAttributeValue() bool {
	ch, _ := hs.h5SkipWhite()
	switch ch {
	case -1:
		hs.stateFn = (*State).stateEOF
		return false
	case 0x22:
		return hs.stateAttributeValueDoubleQuote()
	case 0x27:
		return hs.stateAttributeValueSingleQuote()
	case 0x60:
		return hs.stateAttributeValueBackQuote()
	default:
		return hs.stateAttributeValueNoQuote()
	}
}

func (hs *State) quotedValue(quote byte) bool {
	if hs.pos > 0 {
		hs.advance()
	}
	start := hs.pos
	if qp, found := hs.findByte(quote, hs.pos); found {
		hs.setToken(AttrValue, start, qp-start)
		hs.pos = qp + 1
		hs.stateFn = (*State).stateAfterAttributeValueQuoted
	} else {
		hs.setToken(AttrValue, start, hs.length-start)
		hs.pos = hs.length
		hs.stateFn = (*State).stateEOF
	}
	return true
}

func (hs *State) stateAttributeValueDoubleQuote() bool { return hs.quotedValue('"') }
func (hs *State) stateAttributeValueSingleQuote() bool { return hs.quotedValue('\'') }
func (hs *State) stateAttributeValueBackQuote() bool   { return hs.quotedValue('`') }

func (hs *State) stateAttributeValueNoQuote() bool {
	start := hs.pos
	for hs.pos < hs.length {
		ch := hs.s[hs.pos]
		if isWhitespace(ch) {
			hs.setToken(AttrValue, start, hs.pos-start)
			hs.advance()
			hs.stateFn = (*State).stateBeforeAttributeName
			return true
		}
		if ch == '>' {
			hs.setToken(AttrValue, start, hs.pos-start)
			hs.stateFn = (*State).stateEmitTagCloseChar
			return true
		}
		hs.pos++
	}
	hs.setToken(AttrValue, start, hs.length-start)
	hs.stateFn = (*State).stateEOF
	return true
}

func (hs *State) stateAfterAttributeValueQuoted() bool {
	if hs.isEOF() {
		return false
	}
	ch, _ := hs.currentChar()
	switch {
	case isWhitespace(ch):
		hs.advance()
		return hs.stateBeforeAttributeName()
	case ch == '/':
		hs.advance()
		return hs.stateSelfClosingStartTag()
	case ch == '>':
		hs.setToken(TagNameClose, hs.pos, 1)
		hs.advance()
		hs.stateFn = (*State).stateData
		return true
	default:
		return hs.stateBeforeAttributeName()
	}
}

func (hs *State) stateMarkupDeclarationOpen() bool {
	if hs.pos+1 < hs.length && hs.s[hs.pos] == '-' && hs.s[hs.pos+1] == '-' {
		hs.pos += 2
		hs.stateFn = (*State).stateComment
		return hs.Next()
	}
	if hs.pos+7 <= hs.length {
		slice := hs.s[hs.pos : hs.pos+7]
		if equalFoldASCII(slice, "DOCTYPE") {
			hs.stateFn = (*State).stateDoctype
			return hs.Next()
		}
		if slice == "[CDATA[" {
			hs.pos += 7
			hs.stateFn = (*State).stateCData
			return hs.Next()
		}
		hs.stateFn = (*State).stateBogusComment
		return hs.Next()
	}
	hs.stateFn = (*State).stateBogusComment
	return hs.Next()
}

func (hs *State) stateDoctype() bool {
	start := hs.pos
	if gp, found := hs.findByte('>', hs.pos); found {
		hs.setToken(Doctype, start, gp-start)
		hs.pos = gp + 1
		hs.stateFn = (*State).stateData
	} else {
		hs.setToken(Doctype, start, hs.length-start)
		hs.pos = hs.length
		hs.stateFn = (*State).stateEOF
	}
	return true
}

// stateBogusComment2 handles the IE<=9/old-Safari "<%...%>" alternative
// comment syntax.
func (hs *State) stateBogusComment2() bool {
	start := hs.pos
	pos := hs.pos
	for {
		pp, found := hs.findByte('%', pos)
		if !found {
			hs.setToken(TagComment, start, hs.length-start)
			hs.pos = hs.length
			hs.stateFn = (*State).stateEOF
			return true
		}
		if pp+1 >= hs.length {
			hs.setToken(TagComment, start, hs.length-start)
			hs.pos = hs.length
			hs.stateFn = (*State).stateEOF
			return true
		}
		if hs.s[pp+1] == '>' {
			hs.setToken(TagComment, start, pp-start)
			hs.pos = pp + 2
			hs.stateFn = (*State).stateData
			return true
		}
		pos = pp + 1
	}
}

func (hs *State) stateComment() bool {
	start := hs.pos
	if endPos, width, found := hs.findCommentEnd(hs.pos); found {
		hs.setToken(TagComment, start, endPos-start)
		hs.pos = endPos + width
		hs.stateFn = (*State).stateData
	} else {
		hs.setToken(TagComment, start, hs.length-start)
		hs.pos = hs.length
		hs.stateFn = (*State).stateEOF
	}
	return true
}

func (hs *State) stateBogusComment() bool {
	start := hs.pos
	if gp, found := hs.findByte('>', hs.pos); found {
		hs.setToken(TagComment, start, gp-start)
		hs.pos = gp + 1
		hs.stateFn = (*State).stateData
	} else {
		hs.setToken(TagComment, start, hs.length-start)
		hs.pos = hs.length
		hs.stateFn = (*State).stateEOF
	}
	return true
}

func (hs *State) stateCData() bool {
	start := hs.pos
	if endPos, found := hs.findCDataEnd(hs.pos); found {
		hs.setToken(DataText, start, endPos-start)
		hs.pos = endPos + 3
		hs.stateFn = (*State).stateData
	} else {
		hs.setToken(DataText, start, hs.length-start)
		hs.pos = hs.length
		hs.stateFn = (*State).stateEOF
	}
	return true
}

func equalFoldASCII(a, b string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := 0; i < len(a); i++ {
		ca, cb := a[i], b[i]
		if ca >= 'a' && ca <= 'z' {
			ca -= 0x20
		}
		if cb >= 'a' && cb <= 'z' {
			cb -= 0x20
		}
		if ca != cb {
			return false
		}
	}
	return true
}
