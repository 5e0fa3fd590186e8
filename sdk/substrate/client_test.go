package substrate

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDial_Unreachable(t *testing.T) {
	t.Parallel()

	_, err := Dial(context.Background(), "ws://127.0.0.1:1")
	require.ErrorContains(t, err, "failed to connect to ws://127.0.0.1:1")
}

func TestNewDialer_Unreachable(t *testing.T) {
	t.Parallel()

	c, err := NewDialer().Dial(context.Background(), "ws://127.0.0.1:1")
	require.Error(t, err)
	require.Nil(t, c)
}
