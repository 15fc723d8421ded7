// Package i18n holds the bilingual (EN/PT) translation table for every
// document name and label the checklist generator emits.
package i18n

import (
	"strings"

	"github.com/rotisserie/eris"
	"golang.org/x/text/language"
)

// Language identifies a supported output language.
type Language string

const (
	LanguageEN Language = "EN"
	LanguagePT Language = "PT"
)

// Languages returns all supported output languages.
func Languages() []Language {
	return []Language{LanguageEN, LanguagePT}
}

// Valid reports whether the language is one of the supported values.
func (l Language) Valid() bool {
	return l == LanguageEN || l == LanguagePT
}

// ErrMissingTranslation indicates the rule base and the translation table
// have drifted out of sync. It is an internal consistency bug, never a
// recoverable runtime condition.
var ErrMissingTranslation = eris.New("missing translation")

var matcher = language.NewMatcher([]language.Tag{
	language.English,
	language.Portuguese,
})

// ParseLanguage normalizes user-supplied language input ("en", "EN",
// "en-US", "pt-PT", ...) into a supported Language.
func ParseLanguage(s string) (Language, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "EN":
		return LanguageEN, nil
	case "PT":
		return LanguagePT, nil
	}

	tag, err := language.Parse(s)
	if err != nil {
		return "", eris.Wrapf(err, "i18n: parse language %q", s)
	}
	_, idx, conf := matcher.Match(tag)
	if conf < language.High {
		return "", eris.Errorf("i18n: unsupported language %q (supported: EN, PT)", s)
	}
	if idx == 1 {
		return LanguagePT, nil
	}
	return LanguageEN, nil
}

// text is one bilingual table entry.
type text struct {
	en string
	pt string
}

// Table maps translation keys to their EN/PT text. It is read-only after
// construction and safe for concurrent use.
type Table struct {
	entries map[string]text
}

// NewTable builds the full translation table covering every rule-base
// document key and every presentation label.
func NewTable() *Table {
	entries := make(map[string]text, len(documentTexts)+len(labelTexts))
	for k, v := range documentTexts {
		entries[k] = v
	}
	for k, v := range labelTexts {
		entries[k] = v
	}
	return &Table{entries: entries}
}

// Translate returns the text for key in the requested language.
func (t *Table) Translate(key string, lang Language) (string, error) {
	entry, ok := t.entries[key]
	if !ok {
		return "", eris.Wrapf(ErrMissingTranslation, "i18n: no entry for key %q", key)
	}
	switch lang {
	case LanguageEN:
		return entry.en, nil
	case LanguagePT:
		return entry.pt, nil
	}
	return "", eris.Wrapf(ErrMissingTranslation, "i18n: key %q has no %s text", key, lang)
}

// Has reports whether the table carries an entry for key.
func (t *Table) Has(key string) bool {
	_, ok := t.entries[key]
	return ok
}
