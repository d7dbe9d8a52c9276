package anybase

import (
	"fmt"
)

// SpecificationErrorKind names the reason NewEncoding rejected a base
// description.
type SpecificationErrorKind int

const (
	// SpecInvalidBitWidth is reported for a bit width outside 1..6.
	SpecInvalidBitWidth SpecificationErrorKind = iota + 1
	// SpecInvalidLength is reported when the alphabet does not hold exactly
	// 2^bits characters.
	SpecInvalidLength
	// SpecDuplicateSymbol is reported when a character appears twice in the
	// alphabet.
	SpecDuplicateSymbol
	// SpecInvalidSymbol is reported for an alphabet or padding character
	// outside the printable ASCII range.
	SpecInvalidSymbol
	// SpecPaddingCollision is reported when the padding character is itself
	// part of the alphabet.
	SpecPaddingCollision
)

func (k SpecificationErrorKind) String() string {
	switch k {
	case SpecInvalidBitWidth:
		return "invalid bit width"
	case SpecInvalidLength:
		return "invalid alphabet length"
	case SpecDuplicateSymbol:
		return "duplicate symbol"
	case SpecInvalidSymbol:
		return "invalid symbol"
	case SpecPaddingCollision:
		return "padding collision"
	default:
		return fmt.Sprintf("specification error %d", int(k))
	}
}

// SpecificationError is returned by NewEncoding when the base description is
// invalid. There is no partial result: the caller must fix the description
// and build again.
type SpecificationError struct {
	Kind SpecificationErrorKind
	// Char is the offending character for SpecDuplicateSymbol,
	// SpecInvalidSymbol and SpecPaddingCollision.
	Char byte
	// First and Second are the two alphabet positions of Char for
	// SpecDuplicateSymbol.
	First  int
	Second int
}

func (e *SpecificationError) Error() string {
	switch e.Kind {
	case SpecInvalidBitWidth:
		return "anybase: bit width must be between 1 and 6"
	case SpecInvalidLength:
		return "anybase: alphabet must hold exactly 2^bits symbols"
	case SpecDuplicateSymbol:
		return fmt.Sprintf("anybase: duplicate symbol %q at positions %d and %d", e.Char, e.First, e.Second)
	case SpecInvalidSymbol:
		return fmt.Sprintf("anybase: symbol %q is not printable ASCII", e.Char)
	case SpecPaddingCollision:
		return fmt.Sprintf("anybase: padding character %q is part of the alphabet", e.Char)
	default:
		return fmt.Sprintf("anybase: %v", e.Kind)
	}
}

// -------------------------------------------------------

// DecodeErrorKind names the first violation the decoder found in its input.
type DecodeErrorKind int

const (
	// DecodeInvalidLength is reported when the input length alone rules out
	// a valid decoding, before any symbol is inspected.
	DecodeInvalidLength DecodeErrorKind = iota + 1
	// DecodeInvalidPadding is reported for a padding character anywhere but
	// the canonical trailing positions of the final block, or for a trailing
	// padding run of unrecognized length.
	DecodeInvalidPadding
	// DecodeInvalidSymbol is reported for a character that is neither part
	// of the alphabet nor the padding character.
	DecodeInvalidSymbol
	// DecodeInvalidTrailingBits is reported when the unused low-order bits
	// of the last data symbol are not zero, i.e. the input is not the
	// canonical encoding of any byte sequence.
	DecodeInvalidTrailingBits
)

func (k DecodeErrorKind) String() string {
	switch k {
	case DecodeInvalidLength:
		return "invalid length"
	case DecodeInvalidPadding:
		return "invalid padding"
	case DecodeInvalidSymbol:
		return "invalid symbol"
	case DecodeInvalidTrailingBits:
		return "invalid trailing bits"
	default:
		return fmt.Sprintf("decode error %d", int(k))
	}
}

// DecodeError is returned by Decode, DecodeString, Validate and DecodedLen.
// Exactly one error is reported per failed call: the first violation found
// by the ordered checks (length, padding placement, symbol validity,
// trailing bits).
type DecodeError struct {
	Kind DecodeErrorKind
	// Pos is the 0-based offset of the offending symbol in the input, or -1
	// when the defect is the input length itself.
	Pos int
}

func (e *DecodeError) Error() string {
	if e.Pos < 0 {
		return fmt.Sprintf("anybase: %v", e.Kind)
	}
	return fmt.Sprintf("anybase: %v at offset %d", e.Kind, e.Pos)
}
