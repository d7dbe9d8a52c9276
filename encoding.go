// Package anybase encodes binary data to text and back for any power-of-two
// base from base2 to base64. A base is described by the number of bits one
// symbol carries, an ordered alphabet and an optional padding character.
// The RFC 4648 bases are available as predefined encodings; everything else
// can be built with NewEncoding.
package anybase

import (
	"fmt"
)

// NoPadding disables the padding character of an Encoding.
const NoPadding rune = -1

// invalidByte marks decode table entries that are not part of the alphabet.
const invalidByte = 0xFF

// Encoding is the immutable description of one base: the bit width, the
// alphabet in value order, the derived 256-entry inverse table and the
// optional padding character. Once built, an Encoding is never mutated and
// may be shared between any number of goroutines without synchronization.
type Encoding struct {
	bits       int
	blockBytes int // bytes per aligned block, lcm(bits, 8) / 8
	blockSyms  int // symbols per aligned block, lcm(bits, 8) / bits
	symbols    [64]byte
	decodeMap  [256]byte
	padChar    rune
	// padBytes[p] is the number of bytes carried by a final block ending in
	// p padding characters, or -1 when no input length produces p of them.
	padBytes [9]int8
}

// NewEncoding builds an Encoding from a bit width (1 to 6, giving base2 to
// base64), an alphabet of exactly 2^bits distinct printable ASCII characters
// listed in value order, and a padding character. Pass NoPadding to disable
// padding. The padding character must be printable ASCII and must not appear
// in the alphabet.
//
// The checks run in a fixed order and the first violation is returned as a
// *SpecificationError: bit width, alphabet length, duplicate symbols,
// non-printable characters, padding collision.
func NewEncoding(bits int, alphabet string, padding rune) (*Encoding, error) {
	if bits < 1 || bits > 6 {
		return nil, &SpecificationError{Kind: SpecInvalidBitWidth}
	}
	if len(alphabet) != 1<<uint(bits) {
		return nil, &SpecificationError{Kind: SpecInvalidLength}
	}

	e := &Encoding{
		bits:    bits,
		padChar: NoPadding,
	}
	for i := range e.decodeMap {
		e.decodeMap[i] = invalidByte
	}
	for i := 0; i < len(alphabet); i++ {
		c := alphabet[i]
		if prev := e.decodeMap[c]; prev != invalidByte {
			return nil, &SpecificationError{Kind: SpecDuplicateSymbol, Char: c, First: int(prev), Second: i}
		}
		e.symbols[i] = c
		e.decodeMap[c] = byte(i)
	}
	for i := 0; i < len(alphabet); i++ {
		if !printable(alphabet[i]) {
			return nil, &SpecificationError{Kind: SpecInvalidSymbol, Char: alphabet[i]}
		}
	}
	if padding != NoPadding {
		if padding < 0 || padding > 127 || !printable(byte(padding)) {
			return nil, &SpecificationError{Kind: SpecInvalidSymbol, Char: byte(padding)}
		}
		if e.decodeMap[byte(padding)] != invalidByte {
			return nil, &SpecificationError{Kind: SpecPaddingCollision, Char: byte(padding)}
		}
		e.padChar = padding
	}

	g := gcd(bits, 8)
	e.blockBytes = bits / g
	e.blockSyms = 8 / g

	for i := range e.padBytes {
		e.padBytes[i] = -1
	}
	for nb := 1; nb <= e.blockBytes; nb++ {
		ns := divCeil(8*nb, bits)
		e.padBytes[e.blockSyms-ns] = int8(nb)
	}

	return e, nil
}

// printable reports whether c is in the printable ASCII range. Space and
// control characters are excluded because they cannot survive the usual
// text transports unharmed.
func printable(c byte) bool {
	return c >= '!' && c <= '~'
}

// -------------------------------------------------------

// Bits returns the number of bits carried by one symbol.
func (e *Encoding) Bits() int {
	return e.bits
}

// Base returns the number of symbols in the alphabet, 2^bits.
func (e *Encoding) Base() int {
	return 1 << uint(e.bits)
}

// Alphabet returns the alphabet in value order.
func (e *Encoding) Alphabet() string {
	return string(e.symbols[:e.Base()])
}

// Padding returns the padding character, or NoPadding when the encoding is
// unpadded.
func (e *Encoding) Padding() rune {
	return e.padChar
}

// BlockSize returns the smallest (bytes, symbols) pair that aligns on both
// byte and symbol boundaries, e.g. (3, 4) for base64.
func (e *Encoding) BlockSize() (bytes, symbols int) {
	return e.blockBytes, e.blockSyms
}

func (e *Encoding) String() string {
	return fmt.Sprintf("base%d", e.Base())
}

// -------------------------------------------------------

// Predefined encodings. The RFC 4648 bases use the exact alphabets and
// padding conventions of the RFC; base16 and the sub-byte bases need no
// padding where every symbol count maps to a whole number of bytes.
var (
	// Base2 writes one bit per symbol, most significant bit first.
	Base2 = mustEncoding(1, "01", NoPadding)

	// Base4 writes two bits per symbol.
	Base4 = mustEncoding(2, "0123", NoPadding)

	// Base8 is the octal encoding. Blocks align only every 3 bytes, so the
	// output is padded the same way base32 pads, with '='.
	Base8 = mustEncoding(3, "01234567", '=')

	// Base16 is the uppercase hexadecimal encoding of RFC 4648.
	Base16 = mustEncoding(4, "0123456789ABCDEF", NoPadding)

	// Base16Lower is the lowercase variant of Base16.
	Base16Lower = mustEncoding(4, "0123456789abcdef", NoPadding)

	// Base32 is the standard, padded base32 encoding of RFC 4648.
	Base32 = mustEncoding(5, "ABCDEFGHIJKLMNOPQRSTUVWXYZ234567", '=')

	// Base32Hex is the padded "extended hex" base32 encoding of RFC 4648,
	// which preserves the sort order of the encoded data.
	Base32Hex = mustEncoding(5, "0123456789ABCDEFGHIJKLMNOPQRSTUV", '=')

	// Base64 is the standard, padded base64 encoding of RFC 4648.
	Base64 = mustEncoding(6, "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789+/", '=')

	// Base64URL is the URL and filename safe base64 variant of RFC 4648.
	// As is conventional for this variant, padding is omitted.
	Base64URL = mustEncoding(6, "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789-_", NoPadding)
)

func mustEncoding(bits int, alphabet string, padding rune) *Encoding {
	e, err := NewEncoding(bits, alphabet, padding)
	if err != nil {
		panic(err)
	}
	return e
}
