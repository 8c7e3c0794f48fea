package workspaces

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/reusee/cestudio/languages"
	"github.com/reusee/cestudio/logs"
	"github.com/reusee/cestudio/runners"
	"github.com/reusee/cestudio/shells"
	"github.com/reusee/cestudio/trees"
)

// Workspace is the active folder, its explorer tree, and the open buffer with its language.
type Workspace struct {
	Runner      *runners.Runner
	Pane        *shells.Pane
	Logger      logs.Logger
	TreeOptions trees.Options
	// Watch arms a watcher on every new root to report staleness.
	Watch bool

	root       string
	tree       *trees.Node
	watcher    *trees.Watcher
	language   string
	buffer     string
	bufferPath string
}

func New(runner *runners.Runner, pane *shells.Pane, logger logs.Logger) *Workspace {
	return &Workspace{
		Runner:   runner,
		Pane:     pane,
		Logger:   logger,
		language: languages.Default(),
	}
}

type LoadedFile struct {
	Path     string
	Name     string
	Text     string
	Language string
	// LanguageChanged is false when the extension matched no language and the previous one was kept.
	LanguageChanged bool
}

func (w *Workspace) Root() string {
	return w.root
}

func (w *Workspace) HasRoot() bool {
	return w.root != ""
}

func (w *Workspace) Tree() *trees.Node {
	return w.tree
}

func (w *Workspace) Language() string {
	return w.language
}

// SetLanguage accepts any name; names outside the table run as unsupported.
func (w *Workspace) SetLanguage(name string) {
	w.language = strings.TrimSpace(name)
}

func (w *Workspace) Buffer() string {
	return w.buffer
}

func (w *Workspace) SetBuffer(text string) {
	w.buffer = text
}

// BufferPath is the file the buffer was last bound to, loaded from or saved to.
func (w *Workspace) BufferPath() string {
	return w.bufferPath
}

// SetRoot materializes path and makes it the active folder. On error the previous root stays.
func (w *Workspace) SetRoot(path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	tree, err := trees.Materialize(abs, w.TreeOptions)
	if err != nil {
		return err
	}
	w.root = abs
	w.Logger.Info("folder loaded", "root", abs)
	w.replaceTree(tree)
	return nil
}

// Reload rebuilds the tree of the active folder.
func (w *Workspace) Reload() error {
	if !w.HasRoot() {
		return ErrNoFolderLoaded
	}
	tree, err := trees.Materialize(w.root, w.TreeOptions)
	if err != nil {
		return err
	}
	w.replaceTree(tree)
	return nil
}

func (w *Workspace) replaceTree(tree *trees.Node) {
	w.tree = tree
	if !w.Watch {
		return
	}
	if w.watcher != nil {
		w.watcher.Close()
		w.watcher = nil
	}
	watcher, err := trees.NewWatcher(w.root, tree, w.Logger)
	if err != nil {
		w.Logger.Warn("watch folder", "root", w.root, "error", err)
		return
	}
	w.watcher = watcher
}

// Stale reports whether the folder changed since the tree was built. Only known when watching.
func (w *Workspace) Stale() bool {
	return w.watcher != nil && w.watcher.Changed()
}

func (w *Workspace) Close() error {
	if w.watcher == nil {
		return nil
	}
	err := w.watcher.Close()
	w.watcher = nil
	return err
}

func (w *Workspace) addFilePath(name string) (string, error) {
	if !w.HasRoot() {
		return "", ErrNoFolderLoaded
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return "", nil
	}
	return filepath.Join(w.root, name), nil
}

// AddFile creates an empty file in the active folder, truncating any existing file of that name.
// A blank name does nothing.
func (w *Workspace) AddFile(name string) error {
	path, err := w.addFilePath(name)
	if err != nil || path == "" {
		return err
	}
	if err := os.WriteFile(path, nil, 0644); err != nil {
		return err
	}
	w.Logger.Info("file added", "path", path)
	return w.Reload()
}

// AddFileExclusive is AddFile that refuses to replace an existing file.
func (w *Workspace) AddFileExclusive(name string) error {
	path, err := w.addFilePath(name)
	if err != nil || path == "" {
		return err
	}
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if errors.Is(err, fs.ErrExist) {
		return fmt.Errorf("%w: %s", ErrFileExists, path)
	} else if err != nil {
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	w.Logger.Info("file added", "path", path)
	return w.Reload()
}

// OpenNode binds the buffer to the file a node of the current tree stands for.
func (w *Workspace) OpenNode(node *trees.Node) (LoadedFile, error) {
	if !w.HasRoot() {
		return LoadedFile{}, ErrNoFolderLoaded
	}
	if w.tree == nil || !w.tree.Contains(node) {
		return LoadedFile{}, ErrStaleNode
	}
	return w.BindBufferToFile(trees.ResolvePath(w.root, node))
}

// Open binds the buffer to a file given relative to the active folder.
func (w *Workspace) Open(rel string) (LoadedFile, error) {
	if !w.HasRoot() {
		return LoadedFile{}, ErrNoFolderLoaded
	}
	if node := w.tree.Find(rel); node != nil {
		return w.OpenNode(node)
	}
	return w.BindBufferToFile(filepath.Join(w.root, rel))
}

// BindBufferToFile loads a file into the buffer and picks the language from its extension.
// When no language matches, the current one is kept.
func (w *Workspace) BindBufferToFile(path string) (LoadedFile, error) {
	if !w.HasRoot() {
		return LoadedFile{}, ErrNoFolderLoaded
	}
	stat, err := os.Stat(path)
	if err != nil || !stat.Mode().IsRegular() {
		return LoadedFile{}, fmt.Errorf("%w: %s", ErrNotAFile, path)
	}
	text, err := readText(path)
	if err != nil {
		return LoadedFile{}, err
	}

	w.buffer = text
	w.bufferPath = path
	loaded := LoadedFile{
		Path: path,
		Name: filepath.Base(path),
		Text: text,
	}
	if lang, ok := languages.ForPath(path); ok {
		loaded.LanguageChanged = lang.Name != w.language
		w.language = lang.Name
	}
	loaded.Language = w.language

	w.Logger.Info("file loaded", "path", path, "language", w.language)
	return loaded, nil
}

func (w *Workspace) resolve(path string) string {
	if !filepath.IsAbs(path) && w.HasRoot() {
		return filepath.Join(w.root, path)
	}
	return path
}

// SaveBuffer writes the buffer to path, adding the language's extension (".txt" for unknown languages) when missing.
// Relative paths are taken from the active folder when there is one.
func (w *Workspace) SaveBuffer(path string) (string, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return "", nil
	}
	ext := languages.ExtensionOf(w.language, ".txt")
	if !strings.HasSuffix(path, ext) {
		path += ext
	}
	path = w.resolve(path)
	if err := os.WriteFile(path, []byte(w.buffer), 0644); err != nil {
		return "", err
	}
	w.bufferPath = path
	w.Logger.Info("buffer saved", "path", path)
	if w.HasRoot() && strings.HasPrefix(path, w.root+string(filepath.Separator)) {
		if err := w.Reload(); err != nil {
			return path, err
		}
	}
	return path, nil
}

// LoadBuffer replaces the buffer with a file's content. The language is left as is.
func (w *Workspace) LoadBuffer(path string) error {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil
	}
	path = w.resolve(path)
	stat, err := os.Stat(path)
	if err != nil || !stat.Mode().IsRegular() {
		return fmt.Errorf("%w: %s", ErrNotAFile, path)
	}
	text, err := readText(path)
	if err != nil {
		return err
	}
	w.buffer = text
	w.bufferPath = path
	w.Logger.Info("buffer loaded", "path", path)
	return nil
}

// Run runs the buffer as the active language.
func (w *Workspace) Run(ctx context.Context) runners.Outcome {
	return w.Runner.Run(ctx, w.buffer, w.language)
}

// Preview renders the buffer as Markdown and opens the page.
func (w *Workspace) Preview(ctx context.Context) runners.Outcome {
	return w.Runner.PreviewMarkdown(ctx, w.buffer, w.language)
}

// RunCommand runs a shell command in the active folder.
func (w *Workspace) RunCommand(ctx context.Context, command string) (shells.Result, error) {
	if !w.HasRoot() {
		return shells.Result{}, ErrNoFolderLoaded
	}
	return w.Pane.Run(ctx, w.root, command)
}
