package runners

type Kind int

const (
	KindText Kind = iota + 1
	KindPreview
)

// Outcome is what a run produced. Runs never fail: problems are reported in Text.
type Outcome struct {
	Kind     Kind
	Language string
	Text     string
	// PreviewPath is the page written for web languages.
	PreviewPath string
}

func textOutcome(language, text string) Outcome {
	return Outcome{
		Kind:     KindText,
		Language: language,
		Text:     text,
	}
}

func NotSupported(language string) string {
	return "Running " + language + " not supported yet."
}

func Untrusted(language string) string {
	return "Running " + language + " requires trusted execution."
}
