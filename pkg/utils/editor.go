package utils

import (
	"strings"
	"unicode/utf8"

	"github.com/davidscottmills/goeditorjs"
)

var editorJSMarkdownEngine *goeditorjs.MarkdownEngine

func init() {
	editorJSMarkdownEngine = goeditorjs.NewMarkdownEngine()
	// Register the handlers you wish to use
	editorJSMarkdownEngine.RegisterBlockHandlers(
		&goeditorjs.HeaderHandler{},
		&goeditorjs.ParagraphHandler{},
		&goeditorjs.ListHandler{},
		&goeditorjs.CodeBoxHandler{},
		&goeditorjs.ImageHandler{},
	)
}

func ConvertEditorJSBlocksToMarkdown(blockString string) (string, error) {
	return editorJSMarkdownEngine.GenerateMarkdown(blockString)
}

// ContentExcerpt returns at most limit runes of a journal body. Editor.js
// documents are converted to markdown first, anything else is used as is.
func ContentExcerpt(content string, limit int) string {
	text := strings.TrimSpace(content)
	if strings.HasPrefix(text, "{") {
		if md, err := ConvertEditorJSBlocksToMarkdown(text); err == nil {
			text = md
		}
	}
	text = strings.Join(strings.Fields(text), " ")

	if limit <= 0 || utf8.RuneCountInString(text) <= limit {
		return text
	}
	runes := []rune(text)
	return strings.TrimSpace(string(runes[:limit])) + "…"
}
