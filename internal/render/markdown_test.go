package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHTMLRendersEmphasis(t *testing.T) {
	r := New()

	out := r.HTML("stay *alert* on the **route**")

	assert.Contains(t, out, "<em>alert</em>")
	assert.Contains(t, out, "<strong>route</strong>")
}

func TestHTMLStripsScript(t *testing.T) {
	r := New()

	out := r.HTML(`hello <script>alert("x")</script> world`)

	assert.NotContains(t, out, "<script>")
	assert.Contains(t, out, "hello")
	assert.Contains(t, out, "world")
}

func TestHTMLLinksGetNoFollow(t *testing.T) {
	r := New()

	out := r.HTML("[helpline](https://example.org/help)")

	assert.Contains(t, out, `href="https://example.org/help"`)
	assert.Contains(t, out, "nofollow")
}

func TestHTMLBlocksJavascriptHref(t *testing.T) {
	r := New()

	out := r.HTML(`[click](javascript:alert(1))`)

	assert.NotContains(t, strings.ToLower(out), "javascript:")
}

func TestHTMLEmptyInput(t *testing.T) {
	r := New()

	assert.Equal(t, "", r.HTML(""))
}
