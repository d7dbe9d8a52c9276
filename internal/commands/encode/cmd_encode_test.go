package encode

import (
	"bytes"
	"github.com/stretchr/testify/require"
	"strings"
	"testing"
)

func Test_WriteWrapped(t *testing.T) {
	var out bytes.Buffer
	err := writeWrapped(&out, strings.Repeat("A", 10), 4)
	require.NoError(t, err)
	require.Equal(t, "AAAA\nAAAA\nAA\n", out.String())
}

func Test_WriteWrapped_NoWrap(t *testing.T) {
	var out bytes.Buffer
	err := writeWrapped(&out, "Zm9vYmFy", 0)
	require.NoError(t, err)
	require.Equal(t, "Zm9vYmFy\n", out.String())
}

func Test_WriteWrapped_Empty(t *testing.T) {
	var out bytes.Buffer
	err := writeWrapped(&out, "", 76)
	require.NoError(t, err)
	require.Equal(t, "", out.String())
}
