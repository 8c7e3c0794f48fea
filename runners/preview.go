package runners

import (
	"bytes"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/reusee/cestudio/languages"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
)

const PreviewFileName = "temp_preview.html"

// The buffer is embedded verbatim; escaping it would break the page being previewed.
var previewTemplate = template.Must(template.New("preview").Parse(`
<!DOCTYPE html>
<html>
<head><meta charset="UTF-8"></head>
<body>
{{.Body}}
<script>{{.Script}}</script>
</body>
</html>
`))

func newMarkdown() goldmark.Markdown {
	return goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			extension.Typographer,
			highlighting.NewHighlighting(
				highlighting.WithStyle("github"),
			),
		),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
		),
		goldmark.WithRendererOptions(
			html.WithUnsafe(),
		),
	)
}

type previewData struct {
	Body   string
	Script string
}

func (r *Runner) previewPage(text string, language string) ([]byte, error) {
	var data previewData
	switch language {
	case languages.HTML:
		data.Body = text
	case languages.JavaScript:
		data.Script = text
	}
	// CSS has nothing to show on its own
	return executePreview(data)
}

func (r *Runner) markdownPage(text string) ([]byte, error) {
	buf := new(bytes.Buffer)
	if err := r.markdown.Convert([]byte(text), buf); err != nil {
		return nil, fmt.Errorf("render markdown: %w", err)
	}
	return executePreview(previewData{
		Body: buf.String(),
	})
}

func executePreview(data previewData) ([]byte, error) {
	buf := new(bytes.Buffer)
	if err := previewTemplate.Execute(buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (r *Runner) writePreview(page []byte) (string, error) {
	if err := os.MkdirAll(filepath.Dir(r.PreviewPath), 0755); err != nil {
		return "", err
	}
	if err := os.WriteFile(r.PreviewPath, page, 0644); err != nil {
		return "", err
	}
	return r.PreviewPath, nil
}

func fileURL(path string) string {
	path = filepath.ToSlash(path)
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return (&url.URL{
		Scheme: "file",
		Path:   path,
	}).String()
}
