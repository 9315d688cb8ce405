package logutils_test

import (
	"testing"

	logutils "github.com/10Narratives/workflows/pkg/logging"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNewLogger(t *testing.T) {
	tests := []struct {
		env          string
		debugEnabled bool
		infoEnabled  bool
	}{
		{env: "prod", debugEnabled: false, infoEnabled: true},
		{env: "quiet", debugEnabled: false, infoEnabled: false},
		{env: "none", debugEnabled: false, infoEnabled: false},
		{env: "", debugEnabled: true, infoEnabled: true},
	}

	for _, tt := range tests {
		t.Run(tt.env, func(t *testing.T) {
			log, err := logutils.NewLogger(tt.env)
			require.NoError(t, err)
			require.Equal(t, tt.debugEnabled, log.Core().Enabled(zap.DebugLevel))
			require.Equal(t, tt.infoEnabled, log.Core().Enabled(zap.InfoLevel))
		})
	}
}
