// Package i18n loads the embedded message catalogs used for prompts and
// labels, and registers them with golang.org/x/text/message.
package i18n

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"
	"sync"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"gopkg.in/yaml.v3"
)

// BaseLocale is the locale every other catalog falls back to.
const BaseLocale = "en-US"

type catalogFile struct {
	Locale    string            `yaml:"locale"`
	Namespace string            `yaml:"namespace"`
	Messages  map[string]string `yaml:"messages"`
}

// Bundle holds the messages of every loaded locale.
type Bundle struct {
	locales map[string]map[string]string
}

//go:embed locales/*/*.yaml
var embeddedFS embed.FS

var (
	defaultOnce   sync.Once
	defaultBundle *Bundle
)

// Default returns the embedded bundle, registered with x/text on first use.
func Default() *Bundle {
	defaultOnce.Do(func() {
		b, err := LoadFromFS(embeddedFS)
		if err != nil {
			panic(fmt.Sprintf("i18n: load embedded catalogs: %v", err))
		}
		if err := b.Register(); err != nil {
			panic(fmt.Sprintf("i18n: register embedded catalogs: %v", err))
		}
		defaultBundle = b
	})
	return defaultBundle
}

// LoadFromFS loads every locales/<locale>/<namespace>.yaml file in fsys.
func LoadFromFS(fsys fs.FS) (*Bundle, error) {
	paths, err := fs.Glob(fsys, "locales/*/*.yaml")
	if err != nil {
		return nil, fmt.Errorf("glob locale catalogs: %w", err)
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no catalog files found")
	}
	sort.Strings(paths)

	b := &Bundle{locales: map[string]map[string]string{}}
	for _, name := range paths {
		data, err := fs.ReadFile(fsys, name)
		if err != nil {
			return nil, fmt.Errorf("read catalog %s: %w", name, err)
		}
		var file catalogFile
		if err := yaml.Unmarshal(data, &file); err != nil {
			return nil, fmt.Errorf("parse catalog %s: %w", name, err)
		}
		if err := b.addFile(name, file); err != nil {
			return nil, err
		}
	}

	if !b.HasLocale(BaseLocale) {
		return nil, fmt.Errorf("base locale %s is not defined in catalogs", BaseLocale)
	}
	return b, nil
}

func (b *Bundle) addFile(name string, file catalogFile) error {
	localeFromPath := path.Base(path.Dir(name))
	namespaceFromPath := strings.TrimSuffix(path.Base(name), path.Ext(name))

	locale := strings.TrimSpace(file.Locale)
	if locale == "" {
		return fmt.Errorf("catalog %s: locale is required", name)
	}
	if locale != localeFromPath {
		return fmt.Errorf("catalog %s: locale %q must match path locale %q", name, locale, localeFromPath)
	}
	if ns := strings.TrimSpace(file.Namespace); ns != namespaceFromPath {
		return fmt.Errorf("catalog %s: namespace %q must match filename namespace %q", name, ns, namespaceFromPath)
	}
	if file.Messages == nil {
		return fmt.Errorf("catalog %s: messages map is required", name)
	}

	messages, ok := b.locales[locale]
	if !ok {
		messages = map[string]string{}
		b.locales[locale] = messages
	}
	for key, value := range file.Messages {
		key = strings.TrimSpace(key)
		if key == "" {
			return fmt.Errorf("catalog %s: message key cannot be blank", name)
		}
		if !strings.HasPrefix(key, namespaceFromPath+".") {
			return fmt.Errorf("catalog %s: key %q must start with %q", name, key, namespaceFromPath+".")
		}
		if _, exists := messages[key]; exists {
			return fmt.Errorf("catalog %s: duplicate key %q in locale %q", name, key, locale)
		}
		messages[key] = value
	}
	return nil
}

// Register registers all messages with x/text/message for the exact locale
// tag and its base language.
func (b *Bundle) Register() error {
	for _, locale := range b.Locales() {
		tag, err := language.Parse(locale)
		if err != nil {
			return fmt.Errorf("parse locale tag %q: %w", locale, err)
		}
		tags := []language.Tag{tag}
		if base, conf := tag.Base(); conf != language.No {
			if baseTag, err := language.Parse(base.String()); err == nil && baseTag.String() != tag.String() {
				tags = append(tags, baseTag)
			}
		}
		for key, msg := range b.locales[locale] {
			for _, t := range tags {
				if err := message.SetString(t, key, msg); err != nil {
					return fmt.Errorf("register %s/%s: %w", t, key, err)
				}
			}
		}
	}
	return nil
}

// HasLocale reports whether the locale exists in this bundle.
func (b *Bundle) HasLocale(locale string) bool {
	_, ok := b.locales[strings.TrimSpace(locale)]
	return ok
}

// Locales returns the loaded locale identifiers, sorted.
func (b *Bundle) Locales() []string {
	out := make([]string, 0, len(b.locales))
	for locale := range b.locales {
		out = append(out, locale)
	}
	sort.Strings(out)
	return out
}

// Keys returns the sorted message keys of a locale.
func (b *Bundle) Keys(locale string) []string {
	messages := b.locales[strings.TrimSpace(locale)]
	out := make([]string, 0, len(messages))
	for key := range messages {
		out = append(out, key)
	}
	sort.Strings(out)
	return out
}

// Message returns one message, falling back to the base locale.
func (b *Bundle) Message(locale, key string) (string, bool) {
	if msg, ok := b.locales[strings.TrimSpace(locale)][key]; ok {
		return msg, true
	}
	msg, ok := b.locales[BaseLocale][key]
	return msg, ok
}

// Resolve maps a requested locale onto one the bundle carries. Unknown or
// unparsable locales resolve to BaseLocale.
func (b *Bundle) Resolve(locale string) string {
	locale = strings.TrimSpace(locale)
	if b.HasLocale(locale) {
		return locale
	}
	tag, err := language.Parse(locale)
	if err != nil {
		return BaseLocale
	}
	base, _ := tag.Base()
	for _, candidate := range b.Locales() {
		ct, err := language.Parse(candidate)
		if err != nil {
			continue
		}
		if cb, _ := ct.Base(); cb == base {
			return candidate
		}
	}
	return BaseLocale
}

// NewPrinter returns a printer for locale backed by the default bundle.
func NewPrinter(locale string) *message.Printer {
	b := Default()
	return message.NewPrinter(language.MustParse(b.Resolve(locale)))
}
