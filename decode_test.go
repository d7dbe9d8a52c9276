package anybase

import (
	"github.com/stretchr/testify/require"
	"math/rand"
	"testing"
)

func Test_Decode_RFC4648Vectors(t *testing.T) {
	for _, v := range rfc4648Vectors {
		decoded, err := v.enc.DecodeString(v.encoded)
		require.NoError(t, err, "%v of %q", v.enc, v.encoded)
		require.Equal(t, []byte(v.plain), decoded, "%v of %q", v.enc, v.encoded)
	}
}

func Test_Decode_Empty(t *testing.T) {
	for _, e := range allPredefined() {
		decoded, err := e.DecodeString("")
		require.NoError(t, err)
		require.Len(t, decoded, 0)
	}
}

func Test_Decode_InvalidLength(t *testing.T) {
	// Padded bases require whole blocks.
	_, err := Base64.DecodeString("Zg=")
	requireDecodeError(t, err, DecodeInvalidLength, -1)
	_, err = Base32.DecodeString("MZXW6")
	requireDecodeError(t, err, DecodeInvalidLength, -1)

	// Unpadded bases reject trailing symbol groups no byte count produces.
	_, err = Base64URL.DecodeString("Z")
	requireDecodeError(t, err, DecodeInvalidLength, -1)
	_, err = Base64URL.DecodeString("Zm9vZ")
	requireDecodeError(t, err, DecodeInvalidLength, -1)
	_, err = Base16.DecodeString("6")
	requireDecodeError(t, err, DecodeInvalidLength, -1)

	// The length check fires before any symbol is looked at.
	_, err = Base64.DecodeString("!!!")
	requireDecodeError(t, err, DecodeInvalidLength, -1)
}

func Test_Decode_PaddingPlacement(t *testing.T) {
	// A padding character anywhere but the canonical trailing run of the
	// final block is rejected at its own position.
	for i := 0; i < 7; i++ {
		in := []byte("Zm9vYmFy")
		in[i] = '='
		_, err := Base64.DecodeString(string(in))
		requireDecodeError(t, err, DecodeInvalidPadding, i)
	}

	// Too many trailing pads for the bit width.
	_, err := Base64.DecodeString("Z===")
	requireDecodeError(t, err, DecodeInvalidPadding, 1)
	_, err = Base64.DecodeString("====")
	requireDecodeError(t, err, DecodeInvalidPadding, 0)
	_, err = Base32.DecodeString("M=======")
	requireDecodeError(t, err, DecodeInvalidPadding, 1)

	// Padding in an earlier block.
	_, err = Base64.DecodeString("Zg==Zm9v")
	requireDecodeError(t, err, DecodeInvalidPadding, 2)

	// The padding pass runs before the symbol pass: the misplaced pad wins
	// even though an unknown symbol sits in front of it.
	_, err = Base64.DecodeString("!===")
	requireDecodeError(t, err, DecodeInvalidPadding, 1)
}

func Test_Decode_InvalidSymbol(t *testing.T) {
	for i := 0; i < 8; i++ {
		in := []byte("Zm9vYmFy")
		in[i] = '!'
		_, err := Base64.DecodeString(string(in))
		requireDecodeError(t, err, DecodeInvalidSymbol, i)
	}

	// An unknown symbol in front of valid padding.
	_, err := Base64.DecodeString("Z!==")
	requireDecodeError(t, err, DecodeInvalidSymbol, 1)

	// Unpadded bases know no padding character at all.
	_, err = Base64URL.DecodeString("Zg==")
	requireDecodeError(t, err, DecodeInvalidSymbol, 2)
}

func Test_Decode_TrailingBits(t *testing.T) {
	// "Zg==" carries 'f'; 'h' differs from 'g' only in the don't-care bits.
	_, err := Base64.DecodeString("Zh==")
	requireDecodeError(t, err, DecodeInvalidTrailingBits, 1)

	_, err = Base64.DecodeString("Zm9")
	requireDecodeError(t, err, DecodeInvalidLength, -1)

	// "Zm9vYmF=" is "Zm9vYmFy" cut short: 'F' keeps two leftover bits set.
	_, err = Base64.DecodeString("Zm9vYmF=")
	requireDecodeError(t, err, DecodeInvalidTrailingBits, 6)

	_, err = Base32.DecodeString("MZ======")
	requireDecodeError(t, err, DecodeInvalidTrailingBits, 1)
}

// Test_Decode_CanonicalRejection flips every don't-care bit of the final
// symbol of a valid encoding and expects the decoder to reject the result:
// each byte sequence must have exactly one accepted encoding.
func Test_Decode_CanonicalRejection(t *testing.T) {
	rnd := rand.New(rand.NewSource(3))
	for _, e := range allRoundTrip() {
		for n := 1; n <= 30; n++ {
			data := make([]byte, n)
			rnd.Read(data)
			encoded := []byte(e.EncodeToString(data))

			dataSyms := divCeil(8*n, e.Bits())
			rem := dataSyms % blockSymbols(e)
			if rem == 0 {
				continue // block-aligned, no don't-care bits
			}
			extra := rem*e.Bits() - 8*(rem*e.Bits()/8)
			last := dataSyms - 1
			val := e.decodeMap[encoded[last]]
			for bit := 0; bit < extra; bit++ {
				mutated := make([]byte, len(encoded))
				copy(mutated, encoded)
				mutated[last] = e.symbols[val^byte(1<<uint(bit))]
				_, err := e.DecodeString(string(mutated))
				requireDecodeError(t, err, DecodeInvalidTrailingBits, last)
			}
		}
	}
}

func Test_Decode_Validate(t *testing.T) {
	n, err := Base64.Validate([]byte("Zg=="))
	require.NoError(t, err)
	require.Equal(t, 1, n)

	n, err = Base64.Validate([]byte("Zm8="))
	require.NoError(t, err)
	require.Equal(t, 2, n)

	n, err = Base64.Validate([]byte("Zm9v"))
	require.NoError(t, err)
	require.Equal(t, 3, n)

	n, err = Base64URL.Validate([]byte("Zm9vYg"))
	require.NoError(t, err)
	require.Equal(t, 4, n)

	_, err = Base64.Validate([]byte("Zh=="))
	requireDecodeError(t, err, DecodeInvalidTrailingBits, 1)
}

func Test_Decode_IntoCallerBuffer(t *testing.T) {
	src := []byte("Zm9vYmFy")
	n, err := Base64.Validate(src)
	require.NoError(t, err)

	dst := make([]byte, n)
	written, err := Base64.Decode(dst, src)
	require.NoError(t, err)
	require.Equal(t, n, written)
	require.Equal(t, []byte("foobar"), dst)
}

func Test_Decode_LeavesBufferUntouchedOnError(t *testing.T) {
	dst := []byte{0xAA, 0xAA, 0xAA}
	_, err := Base64.Decode(dst, []byte("Zh=="))
	require.Error(t, err)
	require.Equal(t, []byte{0xAA, 0xAA, 0xAA}, dst)
}

func Test_Decode_ShortDestinationPanics(t *testing.T) {
	require.Panics(t, func() {
		dst := make([]byte, 2)
		_, _ = Base64.Decode(dst, []byte("Zm9v"))
	})
}

func Test_DecodedLen(t *testing.T) {
	// Padded: upper bound per whole block.
	n, err := Base64.DecodedLen(8)
	require.NoError(t, err)
	require.Equal(t, 6, n)
	_, err = Base64.DecodedLen(7)
	requireDecodeError(t, err, DecodeInvalidLength, -1)

	// Unpadded: exact.
	n, err = Base64URL.DecodedLen(6)
	require.NoError(t, err)
	require.Equal(t, 4, n)
	n, err = Base64URL.DecodedLen(3)
	require.NoError(t, err)
	require.Equal(t, 2, n)
	_, err = Base64URL.DecodedLen(5)
	requireDecodeError(t, err, DecodeInvalidLength, -1)
}

func requireDecodeError(t *testing.T, err error, kind DecodeErrorKind, pos int) {
	t.Helper()
	require.Error(t, err)
	decodeErr, ok := err.(*DecodeError)
	require.True(t, ok, "expected a *DecodeError, got %T: %v", err, err)
	require.Equal(t, kind, decodeErr.Kind, "wrong error kind: %v", err)
	require.Equal(t, pos, decodeErr.Pos, "wrong error position: %v", err)
}

func blockSymbols(e *Encoding) int {
	_, symbols := e.BlockSize()
	return symbols
}
