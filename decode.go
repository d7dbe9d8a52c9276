package anybase

// DecodedLen returns the size of the destination buffer needed to decode n
// symbols, checking only what the length alone can tell. For a padded
// encoding n must be a multiple of the block symbol count and the result is
// an upper bound: the exact count depends on how many trailing padding
// characters the input carries and is returned by Validate and Decode. For
// an unpadded encoding the trailing symbol group must be a length some whole
// number of bytes actually produces, and the result is exact.
func (e *Encoding) DecodedLen(n int) (int, error) {
	if e.padChar != NoPadding {
		if n%e.blockSyms != 0 {
			return 0, &DecodeError{Kind: DecodeInvalidLength, Pos: -1}
		}
		return n / e.blockSyms * e.blockBytes, nil
	}
	rem := n % e.blockSyms
	b := rem * e.bits / 8
	if divCeil(8*b, e.bits) != rem {
		return 0, &DecodeError{Kind: DecodeInvalidLength, Pos: -1}
	}
	return n/e.blockSyms*e.blockBytes + b, nil
}

// Validate runs the complete decoder validation over src without writing
// any output and returns the exact number of bytes Decode would produce.
// Callers use it to size a destination buffer before decoding in place.
func (e *Encoding) Validate(src []byte) (int, error) {
	decoded, _, err := e.validate(src)
	return decoded, err
}

// Decode decodes src into dst and returns the number of bytes written. The
// input is validated completely before anything is written, so dst is left
// untouched on error. dst must have room for the decoded output; DecodedLen
// gives a sufficient size, Validate the exact one. src and dst must not
// overlap.
//
// Decode accepts exactly the strings Encode produces: padding must sit in
// its canonical trailing position and the unused bits of the final symbol
// must be zero. Anything else is rejected, which keeps encoded strings
// usable as canonical identifiers.
func (e *Encoding) Decode(dst, src []byte) (int, error) {
	decoded, dataSyms, err := e.validate(src)
	if err != nil {
		return 0, err
	}
	if len(dst) < decoded {
		panic("anybase: Decode destination is too short")
	}
	e.decodeTo(dst[:decoded], src, dataSyms)
	return decoded, nil
}

// DecodeString decodes the symbol string s and returns the bytes it
// represents.
func (e *Encoding) DecodeString(s string) ([]byte, error) {
	src := []byte(s)
	decoded, dataSyms, err := e.validate(src)
	if err != nil {
		return nil, err
	}
	dst := make([]byte, decoded)
	e.decodeTo(dst, src, dataSyms)
	return dst, nil
}

// validate runs the ordered checks -- structural length, padding placement,
// symbol validity, trailing bits -- and stops at the first violation. It
// returns the exact decoded length and the number of data (non-padding)
// symbols at the front of src.
func (e *Encoding) validate(src []byte) (decoded, dataSyms int, err error) {
	if _, err := e.DecodedLen(len(src)); err != nil {
		return 0, 0, err
	}
	dataSyms = len(src)
	if e.padChar != NoPadding {
		if dataSyms, err = e.checkPadding(src); err != nil {
			return 0, 0, err
		}
	}
	for i := 0; i < dataSyms; i++ {
		if e.decodeMap[src[i]] == invalidByte {
			return 0, 0, &DecodeError{Kind: DecodeInvalidSymbol, Pos: i}
		}
	}
	decoded = dataSyms / e.blockSyms * e.blockBytes
	if rem := dataSyms % e.blockSyms; rem > 0 {
		b := rem * e.bits / 8
		decoded += b
		if extra := uint(rem*e.bits - 8*b); extra > 0 {
			if v := e.decodeMap[src[dataSyms-1]]; v&(1<<extra-1) != 0 {
				return 0, 0, &DecodeError{Kind: DecodeInvalidTrailingBits, Pos: dataSyms - 1}
			}
		}
	}
	return decoded, dataSyms, nil
}

// checkPadding verifies that padding characters, if any, form a contiguous
// suffix of the final block whose length the encoding recognizes. It returns
// the number of data symbols preceding the padding. The reported position is
// always that of the first padding character of the offending run.
func (e *Encoding) checkPadding(src []byte) (int, error) {
	pad := byte(e.padChar)
	i := 0
	for i < len(src) && src[i] != pad {
		i++
	}
	if i == len(src) {
		return i, nil
	}
	if i < len(src)-e.blockSyms {
		return 0, &DecodeError{Kind: DecodeInvalidPadding, Pos: i}
	}
	for j := i + 1; j < len(src); j++ {
		if src[j] != pad {
			return 0, &DecodeError{Kind: DecodeInvalidPadding, Pos: i}
		}
	}
	if e.padBytes[len(src)-i] == -1 {
		return 0, &DecodeError{Kind: DecodeInvalidPadding, Pos: i}
	}
	return i, nil
}

// decodeTo regroups the already validated data symbols into whole bytes.
// len(dst) must be the exact decoded length.
func (e *Encoding) decodeTo(dst, src []byte, dataSyms int) {
	n := dataSyms / e.blockSyms
	for i := 0; i < n; i++ {
		e.decodeBlock(dst[i*e.blockBytes:(i+1)*e.blockBytes], src[i*e.blockSyms:(i+1)*e.blockSyms])
	}
	if rest := src[n*e.blockSyms : dataSyms]; len(rest) > 0 {
		e.decodeBlock(dst[n*e.blockBytes:], rest)
	}
}
