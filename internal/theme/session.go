package theme

import (
	"log/slog"
	"regexp"

	"github.com/thoreinstein/atheme/internal/errors"
)

// themeNamePattern is the shape the active line can hold; see activeThemePattern.
var themeNamePattern = regexp.MustCompile(`^\w+$`)

// ErrUnsupportedThemeName indicates a declared scheme whose name the
// "colors: *<name>" line cannot express.
var ErrUnsupportedThemeName = errors.New("theme name must contain only letters, digits, and underscores")

// ValidName reports whether name can appear on the active-theme line.
func ValidName(name string) bool {
	return themeNamePattern.MatchString(name)
}

// Session is one loaded Alacritty config: its path, its raw text, and the
// catalog derived from that text at load time.
//
// Session is not safe for concurrent use.
type Session struct {
	path    string
	raw     string
	saved   string
	catalog *Catalog
	active  *ActiveLine
	fs      FileSystem
	logger  *slog.Logger
}

type loadOptions struct {
	fs      FileSystem
	locator *Locator
	logger  *slog.Logger
}

// Option configures Load.
type Option func(*loadOptions)

// WithFileSystem sets the file access used for reading, saving, and discovery.
func WithFileSystem(fsys FileSystem) Option {
	return func(o *loadOptions) {
		o.fs = fsys
	}
}

// WithLocator sets the locator used when no explicit path is given.
func WithLocator(l *Locator) Option {
	return func(o *loadOptions) {
		o.locator = l
	}
}

// WithLogger sets the logger for diagnostics and skipped catalog entries.
func WithLogger(logger *slog.Logger) Option {
	return func(o *loadOptions) {
		o.logger = logger
	}
}

// Load locates, reads, and parses the config. An empty explicit path means
// auto-discovery.
func Load(explicit string, opts ...Option) (*Session, error) {
	o := loadOptions{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.fs == nil {
		o.fs = OSFileSystem{}
	}
	if o.logger == nil {
		o.logger = slog.Default()
	}
	if o.locator == nil {
		o.locator = NewLocator(o.fs)
		o.locator.logger = o.logger
	}

	path, err := o.locator.Locate(explicit)
	if err != nil {
		return nil, err
	}

	data, err := o.fs.ReadFile(path)
	if err != nil {
		return nil, errors.Mark(errors.Wrapf(err, "reading %s", path), ErrIO)
	}

	catalog, err := ParseCatalog(data, o.logger.With("path", path))
	if err != nil {
		return nil, errors.Wrapf(err, "loading %s", path)
	}

	raw := string(data)
	o.logger.Debug("loaded config", "path", path, "bytes", len(data), "themes", catalog.Len())

	return &Session{
		path:    path,
		raw:     raw,
		saved:   raw,
		catalog: catalog,
		active:  NewActiveLine(),
		fs:      o.fs,
		logger:  o.logger,
	}, nil
}

// Path returns the location the config was loaded from and will be saved to.
func (s *Session) Path() string {
	return s.path
}

// Text returns the current in-memory config text.
func (s *Session) Text() string {
	return s.raw
}

// Themes returns the declared scheme names in document order.
func (s *Session) Themes() []string {
	return s.catalog.Names()
}

// Current returns the theme name on every "colors: *<name>" line, in order.
// A well-formed config yields exactly one.
func (s *Session) Current() []string {
	return s.active.Find(s.raw)
}

// Change points the active line at name in memory. Unknown names are
// rejected before anything is modified. Call Save to persist.
func (s *Session) Change(name string) error {
	if !s.catalog.Contains(name) {
		return errors.Wrapf(ErrColorSchemeNotAvailable, "%q", name)
	}
	if !ValidName(name) {
		return errors.Wrapf(ErrUnsupportedThemeName, "%q", name)
	}

	text, err := s.active.Replace(s.raw, name)
	if err != nil {
		return errors.Wrapf(err, "changing theme in %s", s.path)
	}

	s.logger.Info("theme changed", "path", s.path, "from", s.Current(), "to", name)
	s.raw = text
	return nil
}

// Modified reports whether the in-memory text differs from the file on disk
// as last loaded or saved.
func (s *Session) Modified() bool {
	return s.raw != s.saved
}

// Save writes the in-memory text back to Path, replacing the file.
func (s *Session) Save() error {
	if err := s.fs.WriteFile(s.path, []byte(s.raw)); err != nil {
		return errors.Mark(errors.Wrapf(err, "writing %s", s.path), ErrIO)
	}
	s.saved = s.raw
	s.logger.Debug("saved config", "path", s.path, "bytes", len(s.raw))
	return nil
}

// Export renders the named scheme as an Alacritty TOML [colors] table.
func (s *Session) Export(name string) ([]byte, error) {
	return s.catalog.ExportTOML(name)
}
