package discord

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/require"
)

func TestTruncateContent_ShortTextUntouched(t *testing.T) {
	require.Equal(t, "bonjour", TruncateContent("bonjour", MaxContentLength))
}

func TestTruncateContent_LongTextCapped(t *testing.T) {
	long := strings.Repeat("é", MaxContentLength+50)

	got := TruncateContent(long, MaxContentLength)
	require.Equal(t, MaxContentLength, utf8.RuneCountInString(got))
	require.True(t, strings.HasSuffix(got, "…"))
}

func TestTruncateContent_CountsRunesNotBytes(t *testing.T) {
	// Five runes, ten bytes: must pass untouched at max 5.
	require.Equal(t, "ééééé", TruncateContent("ééééé", 5))
}

func TestTruncateContent_ZeroMax(t *testing.T) {
	require.Empty(t, TruncateContent("bonjour", 0))
}
