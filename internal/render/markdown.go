// Package render turns note content into HTML.
package render

import (
	"bytes"
	"fmt"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

var md = goldmark.New(goldmark.WithExtensions(extension.Linkify, extension.TaskList))

// NoteHTML renders markdown content as HTML. Raw HTML in the source is
// dropped, so the output is safe to embed.
func NoteHTML(content string) (string, error) {
	var buf bytes.Buffer
	if err := md.Convert([]byte(content), &buf); err != nil {
		return "", fmt.Errorf("render note: %w", err)
	}
	return buf.String(), nil
}
