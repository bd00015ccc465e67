package ytdlp

import (
	"testing"

	"github.com/stretchr/testify/require"

	boterrors "github.com/yourusername/audio-drop-bot/internal/domain/bot/errors"
)

func TestClassify(t *testing.T) {
	e := newTestExtractor("", "")

	tests := []struct {
		name     string
		stderr   string
		category boterrors.Category
	}{
		{"private video", "ERROR: [youtube] abc: Private video. Sign in if you've been granted access", boterrors.CategoryPrivate},
		{"age restricted", "ERROR: Sign in to confirm your age. This video may be inappropriate", boterrors.CategoryAgeRestricted},
		{"unavailable", "ERROR: [youtube] abc: Video not available", boterrors.CategoryUnavailable},
		{"copyright", "ERROR: Video blocked on copyright grounds", boterrors.CategoryCopyright},
		{"sign in required", "ERROR: Sign in to confirm you're not a bot", boterrors.CategorySignInRequired},
		{"unknown", "ERROR: something completely different", boterrors.CategoryUnknown},
		{"empty stderr", "", boterrors.CategoryUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := e.classify(tt.stderr)
			require.Equal(t, tt.category, err.Category)
			require.NotEmpty(t, err.Message)
		})
	}
}

func TestClassifyOrderMatters(t *testing.T) {
	e := newTestExtractor("", "")

	// "Private video" wins over the "Sign in" hint in the same line
	err := e.classify("Private video. Sign in if you've been granted access")
	require.Equal(t, boterrors.CategoryPrivate, err.Category)

	// the lowercase "age" check precedes "Sign in"
	err = e.classify("Sign in to confirm your age")
	require.Equal(t, boterrors.CategoryAgeRestricted, err.Category)
}

func TestClassifyIsCaseSensitive(t *testing.T) {
	e := newTestExtractor("", "")

	err := e.classify("ERROR: private video")
	require.Equal(t, boterrors.CategoryUnknown, err.Category)
}

func TestAgeRestrictedMessageDependsOnCookieAuth(t *testing.T) {
	withCookies := newTestExtractor("", "/tmp/cookies.txt").classify("age")
	withoutCookies := newTestExtractor("", "").classify("age")

	require.Equal(t, boterrors.CategoryAgeRestricted, withCookies.Category)
	require.Equal(t, boterrors.CategoryAgeRestricted, withoutCookies.Category)
	require.NotEqual(t, withCookies.Message, withoutCookies.Message)
}

func TestParseFormats(t *testing.T) {
	output := `[youtube] Extracting URL: https://youtu.be/dQw4w9WgXcQ
ID      EXT   RESOLUTION FPS CH |   FILESIZE   TBR PROTO | VCODEC          VBR ACODEC      ABR ASR MORE INFO
---------------------------------------------------------------------------------------------------------
sb2     mhtml 48x27        0    |                  mhtml | images                                  storyboard
249     webm  audio only      2 |    1.71MiB   56k https | audio only          opus        56k 48k low, webm_dash
250     webm  audio only      2 |    2.26MiB   74k https | audio only          opus        74k 48k low, webm_dash
140     m4a   audio only      2 |    3.95MiB  130k https | audio only          mp4a.40.2  130k 44k medium, m4a_dash
251     webm  audio only      2 |    4.28MiB  141k https | audio only          opus       141k 48k medium, webm_dash
394     mp4   256x144     25    |    1.38MiB   45k https | av01.0.00M.08   45k video only          144p, mp4_dash
248     webm  1920x1080   25    |   75.53MiB 2477k https | vp9           2477k video only          1080p, webm_dash
`

	formats := parseFormats(output)
	require.Len(t, formats, 4)

	require.Equal(t, "249", formats[0].ID)
	require.Equal(t, "webm", formats[0].Ext)
	require.Equal(t, "audio only", formats[0].Quality)
	require.Equal(t, "1.71MiB", formats[0].Size)
	require.Equal(t, "56k", formats[0].Bitrate)

	require.Equal(t, "140", formats[2].ID)
	require.Equal(t, "m4a", formats[2].Ext)
}

func TestParseFormatsIsBounded(t *testing.T) {
	line := "251 webm audio only 2 | 4.28MiB 141k https | audio only opus 141k 48k\n"
	var output string
	for i := 0; i < 30; i++ {
		output += line
	}

	formats := parseFormats(output)
	require.Len(t, formats, maxListedFormats)
}

func TestParseFormatsEmptyOutput(t *testing.T) {
	require.Empty(t, parseFormats(""))
	require.Empty(t, parseFormats("no audio rows here\njust noise\n"))
}
