package anybase

// EncodedLen returns the number of symbols Encode produces for n input
// bytes. For a padded encoding this includes the padding characters that
// fill the final block; for an unpadded encoding it is the exact number of
// symbols needed to carry all bits.
func (e *Encoding) EncodedLen(n int) int {
	if e.padChar != NoPadding {
		return divCeil(n, e.blockBytes) * e.blockSyms
	}
	return divCeil(8*n, e.bits)
}

// Encode encodes src into dst. The input is treated as a bitstream, most
// significant bit first, regrouped into bit-width groups and mapped through
// the alphabet. When the input does not fill the final block, the remaining
// bits are left-aligned and the unused low bits are zero; a padded encoding
// then fills the leftover symbol positions with the padding character.
//
// Encoding cannot fail: every byte sequence has exactly one encoding under a
// fixed Encoding. dst must have length exactly EncodedLen(len(src)) --
// anything else is a programmer error and panics. src and dst must not
// overlap.
func (e *Encoding) Encode(dst, src []byte) {
	if len(dst) != e.EncodedLen(len(src)) {
		panic("anybase: Encode destination has the wrong length")
	}
	n := len(src) / e.blockBytes
	for i := 0; i < n; i++ {
		e.encodeBlock(dst[i*e.blockSyms:(i+1)*e.blockSyms], src[i*e.blockBytes:(i+1)*e.blockBytes])
	}
	rest := src[n*e.blockBytes:]
	if len(rest) == 0 {
		return
	}
	out := dst[n*e.blockSyms:]
	syms := divCeil(8*len(rest), e.bits)
	e.encodeBlock(out[:syms], rest)
	for j := syms; j < len(out); j++ {
		out[j] = byte(e.padChar)
	}
}

// EncodeToString returns the encoding of src as a string.
func (e *Encoding) EncodeToString(src []byte) string {
	dst := make([]byte, e.EncodedLen(len(src)))
	e.Encode(dst, src)
	return string(dst)
}
