package logging

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		level     string
		wantDebug bool
		wantErr   string
	}{
		{name: "default level", level: ""},
		{name: "debug level", level: "debug", wantDebug: true},
		{name: "upper case level", level: "WARN"},
		{name: "invalid level", level: "verbose", wantErr: `invalid log level "verbose"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			lggr, err := New(&buf, tt.level)
			if tt.wantErr != "" {
				require.ErrorContains(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)

			lggr.Debugf("debug %d", 1)
			lggr.Warnf("connecting to %s", "ws://localhost:9944")
			require.NoError(t, lggr.Sync())

			out := buf.String()
			assert.Contains(t, out, "WARN\tconnecting to ws://localhost:9944")
			assert.Equal(t, tt.wantDebug, bytes.Contains(buf.Bytes(), []byte("debug 1")))
		})
	}
}
