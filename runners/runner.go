package runners

import (
	"context"

	"github.com/reusee/cestudio/browsers"
	"github.com/reusee/cestudio/languages"
	"github.com/reusee/cestudio/logs"
	"github.com/yuin/goldmark"
)

// Runner dispatches a buffer by language: web languages are previewed in a browser,
// scriptable ones evaluated in-process, others refused.
type Runner struct {
	PreviewPath string
	// Trusted must be set for buffers to be evaluated in this process.
	Trusted bool
	Open    browsers.Open
	Eval    EvalScript
	Logger  logs.Logger

	markdown goldmark.Markdown
}

func NewRunner(previewPath string, trusted bool, open browsers.Open, eval EvalScript, logger logs.Logger) *Runner {
	return &Runner{
		PreviewPath: previewPath,
		Trusted:     trusted,
		Open:        open,
		Eval:        eval,
		Logger:      logger,
		markdown:    newMarkdown(),
	}
}

func (r *Runner) Run(ctx context.Context, text string, language string) Outcome {
	switch {

	case languages.IsWeb(language):
		page, err := r.previewPage(text, language)
		if err != nil {
			r.Logger.ErrorContext(ctx, "render preview", "language", language, "error", err)
			return textOutcome(language, "Failed to write preview: "+err.Error())
		}
		return r.showPreview(ctx, page, language)

	case languages.IsScriptable(language):
		if !r.Trusted {
			return textOutcome(language, Untrusted(language))
		}
		ext := languages.ExtensionOf(language, "")
		r.Logger.InfoContext(ctx, "evaluate buffer", "language", language, "bytes", len(text))
		return textOutcome(language, r.Eval(ctx, "buffer"+ext, text))

	}

	return textOutcome(language, NotSupported(language))
}

// PreviewMarkdown renders text as Markdown into the preview page, whatever the buffer language.
func (r *Runner) PreviewMarkdown(ctx context.Context, text string, language string) Outcome {
	page, err := r.markdownPage(text)
	if err != nil {
		r.Logger.ErrorContext(ctx, "render markdown", "error", err)
		return textOutcome(language, "Failed to write preview: "+err.Error())
	}
	return r.showPreview(ctx, page, language)
}

func (r *Runner) showPreview(ctx context.Context, page []byte, language string) Outcome {
	path, err := r.writePreview(page)
	if err != nil {
		r.Logger.ErrorContext(ctx, "write preview", "language", language, "error", err)
		return textOutcome(language, "Failed to write preview: "+err.Error())
	}
	if r.Open != nil {
		// the browser is on its own from here
		if err := r.Open(fileURL(path)); err != nil {
			r.Logger.WarnContext(ctx, "open preview", "path", path, "error", err)
		}
	}
	r.Logger.InfoContext(ctx, "preview written", "language", language, "path", path)
	return Outcome{
		Kind:        KindPreview,
		Language:    language,
		PreviewPath: path,
	}
}
