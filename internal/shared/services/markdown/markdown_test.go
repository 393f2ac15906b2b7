package markdown

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToHTML_RendersTables(t *testing.T) {
	svc := NewMarkdownService()

	out, err := svc.ToHTML("| Nom | Prix |\n|---|---|\n| Café Maure | 25 |\n")
	require.NoError(t, err)
	assert.Contains(t, out, "<table>")
	assert.Contains(t, out, "Café Maure")
}

func TestToHTMLSanitized_StripsScripts(t *testing.T) {
	svc := NewMarkdownService()

	out, err := svc.ToHTMLSanitized("# Titre\n\n<script>alert(1)</script>\n\nParagraphe.")
	require.NoError(t, err)
	assert.Contains(t, out, "Titre")
	assert.Contains(t, out, "Paragraphe.")
	assert.NotContains(t, out, "<script>")
	assert.NotContains(t, out, "alert(1)")
}

func TestSanitize_KeepsHeadingIDsAndDir(t *testing.T) {
	svc := NewMarkdownService()

	out := svc.Sanitize(`<h2 id="finances" dir="rtl">التمويل</h2><a href="javascript:alert(1)">x</a>`)
	assert.Contains(t, out, `id="finances"`)
	assert.Contains(t, out, `dir="rtl"`)
	assert.NotContains(t, out, "javascript:")
}
