package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConvertEditorJSBlocksToMarkdown(t *testing.T) {
	blocksString := `{"time":1731487512437,"blocks":[{"id":"vTlW-R-6WB","type":"paragraph","data":{"text":"Wash day"}},{"id":"0hb_hIwoUD","type":"list","data":{"style":"unordered","items":["Pre-poo with coconut oil","Deep condition for 30 minutes"]}}],"version":"2.30.7"}`

	md, err := ConvertEditorJSBlocksToMarkdown(blocksString)
	if err != nil {
		t.Fatal(err)
	}

	assert.Contains(t, md, "Wash day")
	assert.Contains(t, md, "Deep condition")
}

func TestContentExcerpt(t *testing.T) {
	assert.Equal(t, "plain text", ContentExcerpt("plain   text", 0))
	assert.Equal(t, "Trimmed my ends today", ContentExcerpt("  Trimmed my\nends today ", 100))
	assert.Equal(t, "abc…", ContentExcerpt("abcdef", 3))
	assert.Equal(t, "头发很…", ContentExcerpt("头发很健康", 3))
	// broken editor.js payloads fall back to the raw text
	assert.Equal(t, "{not json", ContentExcerpt("{not json", 50))
}
