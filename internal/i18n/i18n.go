// Package i18n localizes user-facing captions using go-i18n bundles loaded
// from embedded TOML message files.
package i18n

import (
	"embed"
	"fmt"
	"io/fs"
	"sort"

	"github.com/BurntSushi/toml"
	goi18n "github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

// Message IDs known to the embedded catalogs.
const (
	MsgMenuTitle   = "MenuTitle"
	MsgMenuQuit    = "MenuQuit"
	MsgMenuGoto    = "MenuGoto"
	MsgMenuCurrent = "MenuCurrent"
)

// DefaultLanguage is used when no requested locale matches.
var DefaultLanguage = language.English

//go:embed locales/*.toml
var embedded embed.FS

// NewBundle loads every embedded message file.
func NewBundle() (*goi18n.Bundle, error) {
	return LoadFS(embedded, "locales/*.toml")
}

// LoadFS loads message files matching pattern from fsys.
func LoadFS(fsys fs.FS, pattern string) (*goi18n.Bundle, error) {
	paths, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, fmt.Errorf("glob message files: %w", err)
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no message files match %q", pattern)
	}
	sort.Strings(paths)

	bundle := goi18n.NewBundle(DefaultLanguage)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)
	for _, path := range paths {
		if _, err := bundle.LoadMessageFileFS(fsys, path); err != nil {
			return nil, fmt.Errorf("load %s: %w", path, err)
		}
	}
	return bundle, nil
}

// Localizer resolves message IDs for a preferred locale.
type Localizer struct {
	loc  *goi18n.Localizer
	lang language.Tag
}

// NewLocalizer builds a localizer for the given locales, most preferred first.
// Unknown or empty locales fall back to DefaultLanguage.
func NewLocalizer(bundle *goi18n.Bundle, locales ...string) *Localizer {
	matcher := language.NewMatcher(bundle.LanguageTags())
	tag, _, _ := matcher.Match(parseTags(locales)...)
	base, _ := tag.Base()
	prefs := append(append([]string{}, locales...), DefaultLanguage.String())
	return &Localizer{
		loc:  goi18n.NewLocalizer(bundle, prefs...),
		lang: language.Make(base.String()),
	}
}

// Default returns a localizer over the embedded catalogs for locale.
// It panics only if the embedded files are broken.
func Default(locale string) *Localizer {
	bundle, err := NewBundle()
	if err != nil {
		panic(err)
	}
	return NewLocalizer(bundle, locale)
}

// Language reports the matched language.
func (l *Localizer) Language() language.Tag {
	return l.lang
}

// T returns the localized message. A missing ID yields the ID itself.
func (l *Localizer) T(id string, data map[string]any) string {
	msg, err := l.loc.Localize(&goi18n.LocalizeConfig{
		MessageID:    id,
		TemplateData: data,
	})
	if err != nil {
		return id
	}
	return msg
}

func parseTags(locales []string) []language.Tag {
	tags := make([]language.Tag, 0, len(locales))
	for _, raw := range locales {
		if tag, err := language.Parse(raw); err == nil {
			tags = append(tags, tag)
		}
	}
	return tags
}
