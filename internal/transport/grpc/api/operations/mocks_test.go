package opapi_test

import (
	"go/format"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMocks_Gofmt(t *testing.T) {
	src, err := os.ReadFile(filepath.Join("mocks", "operation_service.go"))
	require.NoError(t, err)

	formatted, err := format.Source(src)
	require.NoError(t, err)
	require.Equal(t, string(formatted), string(src))
}
