package i18n

import (
	"testing"
	"testing/fstest"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultBundle(t *testing.T) {
	b := Default()
	require.NotNil(t, b)
	assert.Equal(t, []string{"en-US", "uk-UA"}, b.Locales())
}

func TestLocalesShareKeys(t *testing.T) {
	b := Default()
	base := b.Keys(BaseLocale)
	require.NotEmpty(t, base)
	for _, locale := range b.Locales() {
		if diff := cmp.Diff(base, b.Keys(locale)); diff != "" {
			t.Errorf("keys of %s differ from %s (-base +locale):\n%s", locale, BaseLocale, diff)
		}
	}
}

func TestResolve(t *testing.T) {
	b := Default()
	tests := []struct {
		in   string
		want string
	}{
		{"en-US", "en-US"},
		{"uk-UA", "uk-UA"},
		{"uk", "uk-UA"},
		{"en-GB", "en-US"},
		{"fr-FR", BaseLocale},
		{"", BaseLocale},
		{"not a locale", BaseLocale},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, b.Resolve(tt.in))
		})
	}
}

func TestNewPrinter(t *testing.T) {
	en := NewPrinter("en-US")
	assert.Equal(t, "A[0,2] = ", en.Sprintf("grid.input.cell2d", 0, 2))
	assert.Equal(t, "Invalid value. Try again.", en.Sprintf("grid.input.invalid"))

	uk := NewPrinter("uk-UA")
	assert.Equal(t, "Невірне значення. Спробуйте знову.", uk.Sprintf("grid.input.invalid"))
	assert.Equal(t, "Шар 1:", uk.Sprintf("grid.print.layer", 1))

	fallback := NewPrinter("de-DE")
	assert.Equal(t, "Layer 2:", fallback.Sprintf("grid.print.layer", 2))
}

func TestMessageFallback(t *testing.T) {
	b := Default()
	msg, ok := b.Message("fr-FR", "grid.input.invalid")
	require.True(t, ok)
	assert.Equal(t, "Invalid value. Try again.", msg)

	_, ok = b.Message(BaseLocale, "grid.missing")
	assert.False(t, ok)
}

func TestLoadFromFS_Errors(t *testing.T) {
	tests := []struct {
		name string
		fs   fstest.MapFS
	}{
		{
			name: "empty",
			fs:   fstest.MapFS{},
		},
		{
			name: "locale mismatch",
			fs: fstest.MapFS{
				"locales/en-US/grid.yaml": {Data: []byte("locale: uk-UA\nnamespace: grid\nmessages:\n  grid.a: x\n")},
			},
		},
		{
			name: "namespace mismatch",
			fs: fstest.MapFS{
				"locales/en-US/grid.yaml": {Data: []byte("locale: en-US\nnamespace: demo\nmessages:\n  grid.a: x\n")},
			},
		},
		{
			name: "key outside namespace",
			fs: fstest.MapFS{
				"locales/en-US/grid.yaml": {Data: []byte("locale: en-US\nnamespace: grid\nmessages:\n  demo.a: x\n")},
			},
		},
		{
			name: "missing messages",
			fs: fstest.MapFS{
				"locales/en-US/grid.yaml": {Data: []byte("locale: en-US\nnamespace: grid\n")},
			},
		},
		{
			name: "no base locale",
			fs: fstest.MapFS{
				"locales/uk-UA/grid.yaml": {Data: []byte("locale: uk-UA\nnamespace: grid\nmessages:\n  grid.a: x\n")},
			},
		},
		{
			name: "bad yaml",
			fs: fstest.MapFS{
				"locales/en-US/grid.yaml": {Data: []byte("locale: [\n")},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadFromFS(tt.fs)
			assert.Error(t, err)
		})
	}
}

func TestLoadFromFS(t *testing.T) {
	b, err := LoadFromFS(fstest.MapFS{
		"locales/en-US/grid.yaml": {Data: []byte("locale: en-US\nnamespace: grid\nmessages:\n  grid.a: alpha\n")},
		"locales/en-US/demo.yaml": {Data: []byte("locale: en-US\nnamespace: demo\nmessages:\n  demo.b: beta\n")},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"demo.b", "grid.a"}, b.Keys("en-US"))
}
