// Package catalog loads the site's copy from embedded YAML files and
// registers it with golang.org/x/text/message.
//
// Files live at locales/<locale>/<namespace>.yaml. Keys are unique per
// locale across namespaces, and en-US is the source every other locale
// translates.
package catalog

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"path"
	"regexp"
	"sort"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"gopkg.in/yaml.v3"
)

// BaseLocale is the locale every other locale translates.
const BaseLocale = "en-US"

//go:embed locales/*/*.yaml
var embeddedFS embed.FS

var defaultBundle = mustLoadEmbedded()

// file is the on-disk shape of one catalog file.
type file struct {
	Locale    string            `yaml:"locale"`
	Namespace string            `yaml:"namespace"`
	Messages  map[string]string `yaml:"messages"`
}

// Bundle holds the messages of every locale.
type Bundle struct {
	// messages maps locale to key to text.
	messages map[string]map[string]string
	// origin maps locale to key to the file that defined it.
	origin map[string]map[string]string
}

// Default returns the embedded bundle, already registered with x/text.
func Default() *Bundle {
	return defaultBundle
}

// LoadEmbedded loads the catalogs compiled into the binary.
func LoadEmbedded() (*Bundle, error) {
	return LoadFromFS(embeddedFS)
}

// LoadFromFS loads every locales/*/*.yaml file from fsys.
func LoadFromFS(fsys fs.FS) (*Bundle, error) {
	paths, err := fs.Glob(fsys, "locales/*/*.yaml")
	if err != nil {
		return nil, fmt.Errorf("glob catalogs: %w", err)
	}
	if len(paths) == 0 {
		return nil, errors.New("no catalog files found")
	}
	sort.Strings(paths)

	b := &Bundle{
		messages: map[string]map[string]string{},
		origin:   map[string]map[string]string{},
	}
	for _, p := range paths {
		data, err := fs.ReadFile(fsys, p)
		if err != nil {
			return nil, fmt.Errorf("read catalog %s: %w", p, err)
		}
		f, err := decode(p, data)
		if err != nil {
			return nil, fmt.Errorf("catalog %s: %w", p, err)
		}
		if err := b.add(p, f); err != nil {
			return nil, fmt.Errorf("catalog %s: %w", p, err)
		}
	}
	if _, ok := b.messages[BaseLocale]; !ok {
		return nil, fmt.Errorf("base locale %s is not defined in catalogs", BaseLocale)
	}
	return b, nil
}

// decode parses data and checks it against the locale and namespace its
// path declares.
func decode(p string, data []byte) (file, error) {
	var f file
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return file{}, errors.New("empty catalog")
		}
		return file{}, err
	}

	wantLocale := path.Base(path.Dir(p))
	wantNamespace := strings.TrimSuffix(path.Base(p), path.Ext(p))
	switch locale, namespace := strings.TrimSpace(f.Locale), strings.TrimSpace(f.Namespace); {
	case locale == "":
		return file{}, errors.New("locale is required")
	case locale != wantLocale:
		return file{}, fmt.Errorf("locale %q must match path locale %q", locale, wantLocale)
	case namespace == "":
		return file{}, errors.New("namespace is required")
	case namespace != wantNamespace:
		return file{}, fmt.Errorf("namespace %q must match filename namespace %q", namespace, wantNamespace)
	case len(f.Messages) == 0:
		return file{}, errors.New("messages map is required")
	}
	f.Locale = wantLocale
	return f, nil
}

func (b *Bundle) add(p string, f file) error {
	messages, ok := b.messages[f.Locale]
	if !ok {
		messages = map[string]string{}
		b.messages[f.Locale] = messages
		b.origin[f.Locale] = map[string]string{}
	}
	origin := b.origin[f.Locale]
	for key, text := range f.Messages {
		key = strings.TrimSpace(key)
		if key == "" {
			return errors.New("message key cannot be blank")
		}
		if previous, exists := origin[key]; exists {
			return fmt.Errorf("duplicate key %q in locale %q, first defined in %s", key, f.Locale, previous)
		}
		messages[key] = text
		origin[key] = p
	}
	return nil
}

// Register installs every message with x/text/message. A regional locale is
// also installed under its bare language, so "pt" resolves like "pt-BR".
func (b *Bundle) Register() error {
	for _, locale := range b.Locales() {
		tag, err := language.Parse(locale)
		if err != nil {
			return fmt.Errorf("parse locale tag %q: %w", locale, err)
		}
		tags := []language.Tag{tag}
		if base, confidence := tag.Base(); confidence != language.No {
			if bare := language.Make(base.String()); bare != tag {
				tags = append(tags, bare)
			}
		}
		for _, key := range sortedKeys(b.messages[locale]) {
			for _, t := range tags {
				if err := message.SetString(t, key, b.messages[locale][key]); err != nil {
					return fmt.Errorf("register %s %q: %w", locale, key, err)
				}
			}
		}
	}
	return nil
}

// Locales returns the loaded locales, sorted.
func (b *Bundle) Locales() []string {
	if b == nil {
		return nil
	}
	return sortedKeys(b.messages)
}

// LocaleMessages returns a copy of the messages of locale.
func (b *Bundle) LocaleMessages(locale string) map[string]string {
	out := map[string]string{}
	if b == nil {
		return out
	}
	for key, text := range b.messages[strings.TrimSpace(locale)] {
		out[key] = text
	}
	return out
}

// Message returns the message for key in locale, falling back to the base
// locale. ok is false when neither locale defines key.
func (b *Bundle) Message(locale string, key string) (string, bool) {
	if b == nil {
		return "", false
	}
	key = strings.TrimSpace(key)
	for _, candidate := range []string{strings.TrimSpace(locale), BaseLocale} {
		if text, ok := b.messages[candidate][key]; ok {
			return text, true
		}
	}
	return "", false
}

// MissingKeys lists base-locale keys that locale does not translate, sorted.
func (b *Bundle) MissingKeys(locale string) []string {
	if b == nil {
		return nil
	}
	translated := b.messages[strings.TrimSpace(locale)]
	var missing []string
	for _, key := range sortedKeys(b.messages[BaseLocale]) {
		if _, ok := translated[key]; !ok {
			missing = append(missing, key)
		}
	}
	return missing
}

var verbPattern = regexp.MustCompile(`%[-+# 0]*[0-9]*(?:\.[0-9]+)?[a-zA-Z]`)

// Validate checks that the base locale defines every required key with
// non-blank text, that every locale translates every base key, and that each
// translation uses the same format verbs as its source. All problems are
// reported together.
func (b *Bundle) Validate(required []string) error {
	if b == nil {
		return errors.New("catalog bundle is nil")
	}
	base := b.messages[BaseLocale]
	var problems []error
	for _, key := range required {
		if strings.TrimSpace(base[key]) == "" {
			problems = append(problems, fmt.Errorf("%s: required key %q is missing or blank", BaseLocale, key))
		}
	}
	for _, locale := range b.Locales() {
		if locale == BaseLocale {
			continue
		}
		for _, key := range b.MissingKeys(locale) {
			problems = append(problems, fmt.Errorf("%s: missing translation for %q", locale, key))
		}
		for key, text := range b.messages[locale] {
			source, ok := base[key]
			if !ok {
				problems = append(problems, fmt.Errorf("%s: key %q is not in %s", locale, key, BaseLocale))
				continue
			}
			if want, got := formatVerbs(source), formatVerbs(text); want != got {
				problems = append(problems, fmt.Errorf("%s: %q uses verbs %q, want %q", locale, key, got, want))
			}
		}
	}
	return errors.Join(problems...)
}

func formatVerbs(text string) string {
	return strings.Join(verbPattern.FindAllString(strings.ReplaceAll(text, "%%", ""), -1), " ")
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

func mustLoadEmbedded() *Bundle {
	b, err := LoadEmbedded()
	if err != nil {
		panic(err)
	}
	if err := b.Register(); err != nil {
		panic(err)
	}
	return b
}
