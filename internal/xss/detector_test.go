package xss

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetect_ScriptTag(t *testing.T) {
	assert.True(t, Detect("<script>alert('xss')</script>"))
}

func TestDetect_BlackAttrEvent(t *testing.T) {
	assert.True(t, Detect(`<img src=x onerror=alert(1)>`))
}

func TestDetect_JavascriptURLScheme(t *testing.T) {
	assert.True(t, Detect(`<a href="javascript:alert(1)">x</a>`))
}

func TestDetect_DataURLScheme(t *testing.T) {
	assert.True(t, Detect(`<img src="data:text/html,<script>alert(1)</script>">`))
}

func TestDetect_ConditionalCommentQuirk(t *testing.T) {
	assert.True(t, Detect(`<!--[if IE]><script>alert(1)</script><![endif]-->`))
}

func TestDetect_IframeTag(t *testing.T) {
	assert.True(t, Detect(`<iframe src="evil.html"></iframe>`))
}

func TestDetect_SVGPrefixTag(t *testing.T) {
	assert.True(t, Detect(`<svg onload=alert(1)>`))
}

func TestDetect_StyleAttribute(t *testing.T) {
	assert.True(t, Detect(`<div style="background:url(javascript:alert(1))">x</div>`))
}

func TestDetect_Doctype(t *testing.T) {
	assert.True(t, Detect(`<!DOCTYPE html PUBLIC "-//W3C">`))
}

func TestDetect_EmptyInput(t *testing.T) {
	assert.False(t, Detect(""))
}

func TestDetect_PlainText(t *testing.T) {
	assert.False(t, Detect("hello world"))
}

func TestDetect_SafeLink(t *testing.T) {
	assert.False(t, Detect(`<a href="https://example.com">click</a>`))
}

func TestDetect_UnquotedAttributeValueContext(t *testing.T) {
	// Payload landing directly inside an unquoted attribute value, as if
	// injected into <input value=PAYLOAD>.
	assert.True(t, Detect(`onmouseover=alert(1)`))
}

func TestDetect_IndirectSVGAttribute(t *testing.T) {
	assert.True(t, Detect(`<set attributeName="onload">`))
}

func TestIsBlackTag(t *testing.T) {
	assert.True(t, isBlackTag("script"))
	assert.True(t, isBlackTag("SCRIPT"))
	assert.True(t, isBlackTag("svg"))
	assert.True(t, isBlackTag("svganimate"))
	assert.True(t, isBlackTag("xslstylesheet"))
	assert.False(t, isBlackTag("div"))
	assert.False(t, isBlackTag("a"))
}

func TestIsBlackAttr(t *testing.T) {
	assert.Equal(t, AttrBlack, isBlackAttr("onclick"))
	assert.Equal(t, AttrBlack, isBlackAttr("ONERROR"))
	assert.Equal(t, AttrURL, isBlackAttr("href"))
	assert.Equal(t, AttrURL, isBlackAttr("src"))
	assert.Equal(t, AttrStyle, isBlackAttr("style"))
	assert.Equal(t, AttrIndirect, isBlackAttr("attributeName"))
	assert.Equal(t, AttrNone, isBlackAttr("class"))
}

func TestIsBlackURL(t *testing.T) {
	assert.True(t, isBlackURL("javascript:alert(1)"))
	assert.True(t, isBlackURL("  javascript:alert(1)"))
	assert.True(t, isBlackURL("JAVASCRIPT:alert(1)"))
	assert.True(t, isBlackURL("data:text/html,x"))
	assert.True(t, isBlackURL("vbscript:msgbox(1)"))
	assert.True(t, isBlackURL("view-source:http://x"))
	assert.False(t, isBlackURL("https://example.com"))
	assert.False(t, isBlackURL(""))
}

func TestIsBlackURL_EntityEncoded(t *testing.T) {
	// &#106;avascript: decodes to "javascript:" one entity at a time.
	assert.True(t, isBlackURL("&#106;avascript:alert(1)"))
	assert.True(t, isBlackURL("&#x6A;avascript:alert(1)"))
}

func TestIsDangerousComment(t *testing.T) {
	assert.True(t, isDangerousComment("[if IE]"))
	assert.True(t, isDangerousComment("xml version=1.0"))
	assert.True(t, isDangerousComment("foo`bar"))
	assert.True(t, isDangerousComment("IMPORT ns"))
	assert.True(t, isDangerousComment("ENTITY xxe"))
	assert.False(t, isDangerousComment("just a comment"))
}

func TestCstrcasecmpWithNull(t *testing.T) {
	assert.True(t, cstrcasecmpWithNull("HREF", "href"))
	assert.True(t, cstrcasecmpWithNull("HREF", "hr\x00ef"))
	assert.False(t, cstrcasecmpWithNull("HREF", "hre"))
	assert.False(t, cstrcasecmpWithNull("HREF", "hrefx"))
}

func TestHtmlencodeStartswith(t *testing.T) {
	assert.True(t, htmlencodeStartswith("JAVASCRIPT", "javascript:alert(1)"))
	assert.True(t, htmlencodeStartswith("JAVASCRIPT", "  javascript:alert(1)"))
	assert.True(t, htmlencodeStartswith("JAVASCRIPT", "&#106;avascript:alert(1)"))
	assert.False(t, htmlencodeStartswith("JAVASCRIPT", "https://example.com"))
}
