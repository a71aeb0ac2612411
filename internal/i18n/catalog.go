// Package i18n resolves flat translation keys against per-language catalogs.
package i18n

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/alexisbeaulieu97/packdeck/internal/logger"
	packdeckerrors "github.com/alexisbeaulieu97/packdeck/pkg/errors"
)

// DefaultLanguage is loaded whenever the requested language cannot be.
const DefaultLanguage = "en"

const missingPrefix = "MISSING_TEXT:"

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

//go:embed catalogs/*.yaml
var embedded embed.FS

// Catalog holds the texts of one language.
type Catalog struct {
	language string
	texts    map[string]string
	dir      string
	log      *logger.Logger
}

// Option customises a Catalog.
type Option func(*Catalog)

// WithDir adds a directory searched before the built-in catalogs. Files are
// named <lang>.yaml or <lang>.json.
func WithDir(dir string) Option {
	return func(c *Catalog) {
		c.dir = dir
	}
}

// WithLogger attaches a logger for load failures.
func WithLogger(log *logger.Logger) Option {
	return func(c *Catalog) {
		c.log = log
	}
}

// New returns a catalog with lang loaded.
func New(lang string, opts ...Option) *Catalog {
	c := &Catalog{texts: map[string]string{}}
	for _, opt := range opts {
		opt(c)
	}
	_ = c.Load(lang)
	return c
}

// Load switches to lang. A missing or malformed catalog falls back to the
// default language; the returned error describes why, and is nil when lang
// itself loaded.
func (c *Catalog) Load(lang string) error {
	texts, err := c.read(lang)
	if err == nil {
		c.language = lang
		c.texts = texts
		c.log.With("language", lang).Debug("catalog loaded")
		return nil
	}

	c.log.With("language", lang).Error(err, "catalog load failed, using default")
	if lang != DefaultLanguage {
		if fallback, ferr := c.read(DefaultLanguage); ferr == nil {
			c.language = DefaultLanguage
			c.texts = fallback
		}
	}
	return err
}

func (c *Catalog) read(lang string) (map[string]string, error) {
	if c.dir != "" {
		for _, ext := range []string{".yaml", ".json"} {
			path := filepath.Join(c.dir, lang+ext)
			data, err := os.ReadFile(path)
			if err == nil {
				return decode(path, data)
			}
			if !errors.Is(err, os.ErrNotExist) {
				return nil, fmt.Errorf("read catalog %s: %w", path, err)
			}
		}
	}

	path := "catalogs/" + lang + ".yaml"
	data, err := embedded.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, packdeckerrors.NewNotFoundError("language", lang)
		}
		return nil, err
	}
	return decode(path, data)
}

func decode(path string, data []byte) (map[string]string, error) {
	texts := map[string]string{}
	if err := yaml.Unmarshal(data, &texts); err != nil {
		return nil, packdeckerrors.NewParseError(path, extractLine(err), err)
	}
	return texts, nil
}

func extractLine(err error) int {
	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}
	line, convErr := strconv.Atoi(matches[1])
	if convErr != nil {
		return 0
	}
	return line
}

// Language returns the loaded language code.
func (c *Catalog) Language() string {
	return c.language
}

// Text returns the text for key with positional {} placeholders filled from
// args. Unknown keys render as MISSING_TEXT:<key>.
func (c *Catalog) Text(key string, args ...any) string {
	text, ok := c.texts[key]
	if !ok {
		return missingPrefix + key
	}
	if len(args) == 0 {
		return text
	}
	return format(text, args)
}

// Has reports whether key is translated.
func (c *Catalog) Has(key string) bool {
	_, ok := c.texts[key]
	return ok
}

// format replaces {} with successive args and {N} with args[N]. Placeholders
// without a matching argument are left as written.
func format(text string, args []any) string {
	var b strings.Builder
	next := 0
	for i := 0; i < len(text); i++ {
		if text[i] != '{' {
			b.WriteByte(text[i])
			continue
		}
		end := strings.IndexByte(text[i:], '}')
		if end == -1 {
			b.WriteString(text[i:])
			break
		}
		inner := text[i+1 : i+end]
		idx := next
		if inner != "" {
			n, err := strconv.Atoi(inner)
			if err != nil {
				b.WriteByte('{')
				continue
			}
			idx = n
		} else {
			next++
		}
		if idx < 0 || idx >= len(args) {
			b.WriteString(text[i : i+end+1])
		} else {
			fmt.Fprint(&b, args[idx])
		}
		i += end
	}
	return b.String()
}

// Languages lists the built-in languages plus any in the override directory.
func (c *Catalog) Languages() []string {
	seen := map[string]struct{}{}
	if entries, err := embedded.ReadDir("catalogs"); err == nil {
		for _, e := range entries {
			seen[strings.TrimSuffix(e.Name(), ".yaml")] = struct{}{}
		}
	}
	if c.dir != "" {
		if entries, err := os.ReadDir(c.dir); err == nil {
			for _, e := range entries {
				ext := filepath.Ext(e.Name())
				if e.IsDir() || (ext != ".yaml" && ext != ".json") {
					continue
				}
				seen[strings.TrimSuffix(e.Name(), ext)] = struct{}{}
			}
		}
	}

	langs := make([]string, 0, len(seen))
	for lang := range seen {
		langs = append(langs, lang)
	}
	sort.Strings(langs)
	return langs
}
