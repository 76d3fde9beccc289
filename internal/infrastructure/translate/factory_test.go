package translate

import (
	"context"
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func TestParseEngineType(t *testing.T) {
	cases := []struct {
		in   string
		want EngineType
	}{
		{"google", EngineGoogle},
		{"GOOGLE", EngineGoogle},
		{"lingua", EngineLingua},
		{"Lingua", EngineLingua},
		{"echo", EngineEcho},
		{"Echo", EngineEcho},
	}
	for _, tc := range cases {
		got, err := ParseEngineType(tc.in)
		require.NoError(t, err, tc.in)
		require.Equal(t, tc.want, got)
	}
}

func TestParseEngineType_UnknownEngine(t *testing.T) {
	_, err := ParseEngineType("deepl")
	require.ErrorContains(t, err, "moteur de traduction inconnu")
}

func TestNewEngine_EchoNeedsNoCredentials(t *testing.T) {
	tr, closeFn, err := NewEngine(context.Background(), Config{Engine: EngineEcho, Logger: quietLogger()})
	require.NoError(t, err)
	require.NotNil(t, tr)

	out, err := tr.Translate(context.Background(), "bonjour", "en")
	require.NoError(t, err)
	require.Equal(t, "[en] bonjour", out)

	require.NoError(t, closeFn())
}

func TestNewEngine_UnknownEngine(t *testing.T) {
	_, _, err := NewEngine(context.Background(), Config{Engine: EngineType("deepl"), Logger: quietLogger()})
	require.ErrorContains(t, err, "moteur de traduction inconnu")
}
