package render

import (
	"bytes"
	"fmt"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

var (
	previewMarkdown = goldmark.New(goldmark.WithExtensions(extension.GFM))
	previewPolicy   = bluemonday.UGCPolicy()
)

// PreviewMarkdown converts a Markdown export to sanitized HTML so it can be
// shown in the browser next to the copy button.
func PreviewMarkdown(md []byte) ([]byte, error) {
	var buf bytes.Buffer
	if err := previewMarkdown.Convert(md, &buf); err != nil {
		return nil, fmt.Errorf("converting markdown: %w", err)
	}
	return previewPolicy.SanitizeBytes(buf.Bytes()), nil
}
