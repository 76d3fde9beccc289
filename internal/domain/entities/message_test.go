package entities

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMessage_IsEmpty(t *testing.T) {
	require.True(t, (&Message{Text: ""}).IsEmpty())
	require.True(t, (&Message{Text: "   \n\t "}).IsEmpty())
	require.False(t, (&Message{Text: "bonjour"}).IsEmpty())
}

func TestMessage_IsCommand(t *testing.T) {
	require.True(t, (&Message{Text: "/stats"}).IsCommand())
	require.True(t, (&Message{Text: "  /stats"}).IsCommand())
	require.True(t, (&Message{Text: "!ping"}).IsCommand())
	require.False(t, (&Message{Text: "bonjour / bonsoir"}).IsCommand())
	require.False(t, (&Message{Text: "salut !"}).IsCommand())
}
