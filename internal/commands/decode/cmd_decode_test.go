package decode

import (
	"github.com/stretchr/testify/require"
	"testing"
)

func Test_StripNewlines(t *testing.T) {
	require.Equal(t, []byte("Zm9vYmFy"), stripNewlines([]byte("Zm9v\r\nYmFy\n")))
	require.Equal(t, []byte("Zm9v"), stripNewlines([]byte("Zm9v")))
	require.Equal(t, []byte{}, stripNewlines([]byte("\n\n")))
}
