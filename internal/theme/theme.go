package theme

import (
	"bytes"
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/jmylchreest/mdblog/internal/fsutil"
)

// Directory names relative to the project root.
const (
	ThemesDirName = "_themes"
	BuildsDirName = "_builds"
)

// Source records where a resolved theme was read from.
type Source string

const (
	SourceNone    Source = ""
	SourceDisk    Source = "disk"
	SourceBuiltin Source = "builtin"
)

// Theme holds the assets of one resolved theme for a project.
//
// A Theme is either unresolved (empty name, all slots empty) or holds every
// slot of exactly one theme. It is not safe for concurrent use; callers must
// serialize Resolve and the Materialize methods.
type Theme struct {
	root   string
	name   string
	source Source
	slots  [assetCount][]byte
	logger *slog.Logger
}

// Option configures a Theme.
type Option func(*Theme)

// WithLogger sets the logger used for debug output.
func WithLogger(logger *slog.Logger) Option {
	return func(t *Theme) {
		if logger != nil {
			t.logger = logger
		}
	}
}

// New creates an unresolved theme bound to the project root.
func New(root string, opts ...Option) *Theme {
	t := &Theme{
		root:   root,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Root returns the project root the theme is bound to.
func (t *Theme) Root() string {
	return t.root
}

// Name returns the resolved theme name, or "" if unresolved.
func (t *Theme) Name() string {
	return t.name
}

// Source returns where the resolved theme came from.
func (t *Theme) Source() Source {
	return t.source
}

// Resolved reports whether Resolve has succeeded.
func (t *Theme) Resolved() bool {
	return t.name != ""
}

// Dir returns the theme's source directory, <root>/_themes/<name>.
func (t *Theme) Dir() string {
	return themeDir(t.root, t.name)
}

// Asset returns a copy of the bytes held in slot a.
// Returns nil for an unknown asset or an unresolved theme.
func (t *Theme) Asset(a Asset) []byte {
	if !a.Valid() || !t.Resolved() {
		return nil
	}
	return bytes.Clone(t.slots[a])
}

func themeDir(root, name string) string {
	return filepath.Join(root, ThemesDirName, name)
}

// ValidateName checks that name can be used as a theme directory name.
func ValidateName(name string) error {
	if name == "" || name == "." || name == ".." || strings.ContainsAny(name, `/\`) {
		return ErrInvalidName
	}
	return nil
}

// Resolve loads the named theme into the slots.
//
// Resolution order:
//  1. <root>/_themes/<name>/ if the directory exists
//  2. the built-in theme, if name is DefaultThemeName
//
// Every file is read before any slot changes, so a failed Resolve leaves the
// previous theme in place. A missing directory for any other name returns a
// *NotFoundError.
func (t *Theme) Resolve(name string) error {
	if err := ValidateName(name); err != nil {
		return err
	}

	dir := themeDir(t.root, name)
	exists, err := fsutil.Exists(dir)
	if err != nil {
		return &IOError{Op: "stat", Path: dir, Err: err}
	}

	if exists {
		slots, err := readSlots(os.DirFS(dir), dir)
		if err != nil {
			return err
		}
		t.fill(name, SourceDisk, slots)
		t.logger.Debug("resolved theme from disk", "theme", name, "path", dir)
		return nil
	}

	if !IsBuiltinTheme(name) {
		return &NotFoundError{Name: name}
	}

	slots, err := readSlots(BuiltinFS(), DefaultThemeName)
	if err != nil {
		return err
	}
	t.fill(name, SourceBuiltin, slots)
	t.logger.Debug("resolved builtin theme", "theme", name)
	return nil
}

// readSlots reads every asset from fsys. base is only used in errors.
func readSlots(fsys fs.FS, base string) ([assetCount][]byte, error) {
	var slots [assetCount][]byte
	for _, a := range AllAssets() {
		data, err := fs.ReadFile(fsys, a.Path())
		if err != nil {
			var pathErr *fs.PathError
			if errors.As(err, &pathErr) {
				err = pathErr.Err
			}
			return slots, &IOError{
				Op:   "read",
				Path: filepath.Join(base, filepath.FromSlash(a.Path())),
				Err:  err,
			}
		}
		slots[a] = data
	}
	return slots, nil
}

// fill replaces the whole theme state at once.
func (t *Theme) fill(name string, source Source, slots [assetCount][]byte) {
	t.clear()
	t.name = name
	t.source = source
	t.slots = slots
}

func (t *Theme) clear() {
	t.name = ""
	t.source = SourceNone
	t.slots = [assetCount][]byte{}
}

// MaterializeAsSource writes all assets to <root>/_themes/<name>/ so the
// theme can be edited. Nothing is written if that directory already exists.
// On failure, files written so far are left in place.
func (t *Theme) MaterializeAsSource() error {
	if !t.Resolved() {
		return ErrNotResolved
	}

	dir := t.Dir()
	exists, err := fsutil.Exists(dir)
	if err != nil {
		return &IOError{Op: "stat", Path: dir, Err: err}
	}
	if exists {
		t.logger.Debug("theme directory exists, skipping init", "theme", t.name, "path", dir)
		return nil
	}

	t.logger.Debug("initializing theme directory", "theme", t.name, "path", dir)
	return t.writeAssets(dir, AllAssets())
}

// MaterializeAsOutput writes the static assets to <root>/_builds/static/,
// overwriting existing files. Templates are never written.
func (t *Theme) MaterializeAsOutput() error {
	if !t.Resolved() {
		return ErrNotResolved
	}

	dir := filepath.Join(t.root, BuildsDirName)
	t.logger.Debug("exporting theme static assets", "theme", t.name, "path", dir)
	return t.writeAssets(dir, StaticAssets())
}

func (t *Theme) writeAssets(dir string, assets []Asset) error {
	for _, a := range assets {
		path := filepath.Join(dir, filepath.FromSlash(a.Path()))
		if err := writeFile(path, t.slots[a]); err != nil {
			return err
		}
	}
	return nil
}

// writeFile writes data through fsutil.CreateFile and always closes the handle.
func writeFile(path string, data []byte) (err error) {
	f, err := fsutil.CreateFile(path)
	if err != nil {
		return &IOError{Op: "create", Path: path, Err: err}
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = &IOError{Op: "close", Path: path, Err: cerr}
		}
	}()

	if _, err := f.Write(data); err != nil {
		return &IOError{Op: "write", Path: path, Err: err}
	}
	return nil
}
