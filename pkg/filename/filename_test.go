package filename

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTransliterate(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"russian lowercase", "привет мир", "privet mir"},
		{"russian capitalized", "Чайковский", "Chaykovskiy"},
		{"ukrainian letters", "Київ їжак", "Kiyiv yizhak"},
		{"hard and soft signs dropped", "объявление день", "obyavlenie den"},
		{"latin passthrough", "Hello World", "Hello World"},
		{"mixed scripts", "Любэ - Конь (Live)", "Lyube - Kon (Live)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, Transliterate(tt.input))
		})
	}
}

func TestTransliterateDeterministic(t *testing.T) {
	input := "Вечерний звон"
	first := Transliterate(input)
	for i := 0; i < 10; i++ {
		require.Equal(t, first, Transliterate(input))
	}
}

func TestSanitize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"spaces to underscores", "My Cool Song", "My_Cool_Song"},
		{"invalid chars removed", `a<b>c:d"e/f\g|h?i*j`, "abcdefghij"},
		{"cyrillic title", "Песня года", "Pesnya_goda"},
		{"diacritics folded", "Beyoncé Café", "Beyonce_Cafe"},
		{"underscore runs collapsed", "a  b   c", "a_b_c"},
		{"edge underscores trimmed", "  hello  ", "hello"},
		{"empty falls back", "", "audio"},
		{"only invalid falls back", `???***///`, "audio"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, Sanitize(tt.input))
		})
	}
}

func TestSanitizeIdempotent(t *testing.T) {
	inputs := []string{
		"Обычное видео с музыкой",
		"Some | weird <title> with / slashes",
		strings.Repeat("я", 500),
		strings.Repeat("a", 300) + ".opus",
		"",
	}

	for _, in := range inputs {
		once := Sanitize(in)
		require.Equal(t, once, Sanitize(once), "input %q", in)
	}
}

func TestSanitizeLengthBound(t *testing.T) {
	long := strings.Repeat("x", 1000)
	out := Sanitize(long)
	require.LessOrEqual(t, len([]rune(out)), MaxLength)

	withExt := strings.Repeat("x", 1000) + ".opus"
	out = Sanitize(withExt)
	require.LessOrEqual(t, len([]rune(out)), MaxLength)
	require.True(t, strings.HasSuffix(out, ".opus"))
}

func TestSanitizeNeverEmpty(t *testing.T) {
	for _, in := range []string{"", "   ", "___", "***", "ъь"} {
		require.NotEmpty(t, Sanitize(in), "input %q", in)
	}
}
