package xss

// contexts are the five start states the classifier re-drives the
// tokenizer from: plain document data, and each of the three attribute-
// value quoting styles plus the unquoted case, so that a payload landing
// inside any of those HTML contexts is still caught even though the
// caller never hands us the surrounding tag.
var contexts = [5]StartFlag{
	DataState,
	ValueNoQuote,
	ValueSingleQuote,
	ValueDoubleQuote,
	ValueBackQuote,
}

// Detect runs the five-context XSS classifier over input and reports
// whether any context flags it as an injection attempt. It is
// deterministic, allocates nothing beyond the per-call tokenizer state,
// and performs no I/O.
func Detect(input string) bool {
	for _, ctx := range contexts {
		if isXSS(input, ctx) {
			return true
		}
	}
	return false
}

// isXSS drives the HTML5 tokenizer from a single start context and
// classifies the resulting token stream: dangerous tags, attributes,
// URL schemes, inline styles, and comment quirks each short-circuit to
// true. attr tracks the classification of the attribute name most
// recently seen so the next AttrValue token can be judged against it.
func isXSS(input string, flags StartFlag) bool {
	hs := New(input, flags)
	attr := AttrNone

	for hs.Next() {
		if hs.TokenType != AttrValue {
			attr = AttrNone
		}

		switch hs.TokenType {
		case Doctype:
			return true

		case TagNameOpen:
			if isBlackTag(hs.Token()) {
				return true
			}

		case AttrName:
			attr = isBlackAttr(hs.Token())

		case AttrValue:
			switch attr {
			case AttrNone:
				// safe attribute, continue
			case AttrBlack:
				return true
			case AttrURL:
				if isBlackURL(hs.Token()) {
					return true
				}
			case AttrStyle:
				return true
			case AttrIndirect:
				if isBlackAttr(hs.Token()) != AttrNone {
					return true
				}
			}
			attr = AttrNone

		case TagComment:
			if isDangerousComment(hs.Token()) {
				return true
			}
		}
	}

	return false
}
