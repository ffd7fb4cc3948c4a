// Package i18n resolves dot-delimited keys against nested per-language
// string tables, falling back to a second language and then to the key itself.
package i18n

import (
	"regexp"
	"sort"
	"strings"

	"golang.org/x/text/language"
)

// Table is a nested translation table; leaves are strings.
type Table map[string]interface{}

var placeholder = regexp.MustCompile(`\{\{\s*(\w+)\s*\}\}`)

var builtin = map[string]Table{
	"en": en,
	"es": es,
}

type Translator struct {
	tables   map[string]Table
	def      string
	fallback string
	codes    []string
	matcher  language.Matcher
}

// New builds a translator over the built-in English and Spanish tables.
func New(defaultLang, fallbackLang string) *Translator {
	return NewWithTables(builtin, defaultLang, fallbackLang)
}

func NewWithTables(tables map[string]Table, defaultLang, fallbackLang string) *Translator {
	codes := make([]string, 0, len(tables))
	for code := range tables {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	// the default language goes first so the matcher falls back to it
	sort.SliceStable(codes, func(i, j int) bool { return codes[i] == defaultLang && codes[j] != defaultLang })

	tags := make([]language.Tag, 0, len(codes))
	for _, code := range codes {
		tags = append(tags, language.Make(code))
	}

	return &Translator{
		tables:   tables,
		def:      defaultLang,
		fallback: fallbackLang,
		codes:    codes,
		matcher:  language.NewMatcher(tags),
	}
}

func (t *Translator) Default() string { return t.def }

func (t *Translator) Supported(lang string) bool {
	_, ok := t.tables[lang]
	return ok
}

// Languages lists the supported codes, default first.
func (t *Translator) Languages() []string {
	return append([]string(nil), t.codes...)
}

func (t *Translator) Table(lang string) (Table, bool) {
	table, ok := t.tables[lang]
	return table, ok
}

// Resolve returns the first candidate that is an exactly supported code,
// otherwise the best match of any candidate read as an Accept-Language
// value, otherwise the default language.
func (t *Translator) Resolve(candidates ...string) string {
	var prefs []string
	for _, c := range candidates {
		c = strings.TrimSpace(c)
		if c == "" {
			continue
		}
		if t.Supported(strings.ToLower(c)) {
			return strings.ToLower(c)
		}
		prefs = append(prefs, c)
	}
	if len(prefs) == 0 {
		return t.def
	}
	_, index := language.MatchStrings(t.matcher, prefs...)
	return t.codes[index]
}

// T translates key for lang. Unsupported languages use the default.
// A key missing from lang is looked up in the fallback language; a key that
// names a subtree instead of a string renders as the key itself.
// Placeholders like {{name}} are replaced from params; unknown ones stay.
func (t *Translator) T(lang, key string, params map[string]string) string {
	if !t.Supported(lang) {
		lang = t.def
	}

	node, ok := lookup(t.tables[lang], key)
	if !ok {
		node, ok = lookup(t.tables[t.fallback], key)
	}
	text, isText := node.(string)
	if !ok || !isText {
		return key
	}
	return interpolate(text, params)
}

// lookup walks key through table. It fails on a missing or empty segment.
func lookup(table Table, key string) (interface{}, bool) {
	if table == nil || key == "" {
		return nil, false
	}
	var node interface{} = table
	for _, part := range strings.Split(key, ".") {
		m, ok := node.(Table)
		if !ok {
			return nil, false
		}
		node, ok = m[part]
		if !ok || node == nil || node == "" {
			return nil, false
		}
	}
	return node, true
}

func interpolate(text string, params map[string]string) string {
	if len(params) == 0 {
		return text
	}
	return placeholder.ReplaceAllStringFunc(text, func(m string) string {
		name := placeholder.FindStringSubmatch(m)[1]
		if v, ok := params[name]; ok {
			return v
		}
		return m
	})
}
