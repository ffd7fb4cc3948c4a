package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestT(t *testing.T) {
	tr := New("es", "en")

	tests := []struct {
		name   string
		lang   string
		key    string
		params map[string]string
		want   string
	}{
		{name: "known key in spanish", lang: "es", key: "sidebar.clients", want: "Clientes"},
		{name: "known key in english", lang: "en", key: "sidebar.items", want: "Items"},
		{name: "unsupported language uses default", lang: "fr", key: "common.logout", want: "Cerrar sesión"},
		{name: "missing key returns key", lang: "es", key: "sidebar.nope", want: "sidebar.nope"},
		{name: "non-leaf returns key", lang: "en", key: "sidebar", want: "sidebar"},
		{name: "too deep returns key", lang: "en", key: "sidebar.clients.extra", want: "sidebar.clients.extra"},
		{name: "empty key", lang: "en", key: "", want: ""},
		{name: "placeholder", lang: "en", key: "auth.loggedIn", params: map[string]string{"name": "Ana"}, want: "Welcome, Ana"},
		{name: "unknown placeholder kept", lang: "en", key: "auth.loggedIn", params: map[string]string{"other": "x"}, want: "Welcome, {{name}}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tr.T(tt.lang, tt.key, tt.params))
		})
	}
}

func TestFallbackLanguage(t *testing.T) {
	tables := map[string]Table{
		"en": {"greeting": Table{"hello": "Hello {{name}}", "bye": "Bye"}},
		"es": {"greeting": Table{"hello": "Hola {{name}}"}},
	}
	tr := NewWithTables(tables, "es", "en")

	assert.Equal(t, "Hola Ana", tr.T("es", "greeting.hello", map[string]string{"name": "Ana"}))
	assert.Equal(t, "Bye", tr.T("es", "greeting.bye", nil))
	assert.Equal(t, "greeting.missing", tr.T("es", "greeting.missing", nil))
}

func TestSubtreeDoesNotFallBack(t *testing.T) {
	tables := map[string]Table{
		"en": {"menu": Table{"title": "Menu"}, "blank": Table{"x": "X"}},
		"es": {"menu": Table{"title": Table{"short": "Menú"}}, "blank": Table{"x": ""}},
	}
	tr := NewWithTables(tables, "es", "en")

	assert.Equal(t, "menu.title", tr.T("es", "menu.title", nil))
	assert.Equal(t, "Menu", tr.T("en", "menu.title", nil))
	assert.Equal(t, "X", tr.T("es", "blank.x", nil))
}

func TestTablesHaveSameKeys(t *testing.T) {
	var walk func(prefix string, table Table, out map[string]bool)
	walk = func(prefix string, table Table, out map[string]bool) {
		for k, v := range table {
			if sub, ok := v.(Table); ok {
				walk(prefix+k+".", sub, out)
				continue
			}
			out[prefix+k] = true
		}
	}
	enKeys, esKeys := map[string]bool{}, map[string]bool{}
	walk("", en, enKeys)
	walk("", es, esKeys)
	assert.Equal(t, enKeys, esKeys)
}

func TestResolve(t *testing.T) {
	tr := New("es", "en")

	assert.Equal(t, "es", tr.Languages()[0])
	assert.Equal(t, "en", tr.Resolve("en"))
	assert.Equal(t, "en", tr.Resolve("", "EN"))
	assert.Equal(t, "es", tr.Resolve())
	assert.Equal(t, "en", tr.Resolve("en-US,en;q=0.9"))
	assert.Equal(t, "es", tr.Resolve("es-MX,es;q=0.8,en;q=0.5"))
	assert.Equal(t, "es", tr.Resolve("de-DE"))
}
