package args

import (
	"github.com/bokysan/anybase"
	"github.com/pkg/errors"
)

// NamedEncoding pairs a predefined encoding with the name it is selected by
// on the command line.
type NamedEncoding struct {
	Name     string
	Encoding *anybase.Encoding
}

// PredefinedBases lists the built-in encodings in ascending base order. The
// `bases` command prints this list and BaseOptions resolves names against it.
var PredefinedBases = []NamedEncoding{
	{"base2", anybase.Base2},
	{"base4", anybase.Base4},
	{"base8", anybase.Base8},
	{"base16", anybase.Base16},
	{"base16lower", anybase.Base16Lower},
	{"base32", anybase.Base32},
	{"base32hex", anybase.Base32Hex},
	{"base64", anybase.Base64},
	{"base64url", anybase.Base64URL},
}

// BaseOptions selects the encoding a command operates with: one of the
// predefined bases by name, or a fully custom base given as a bit width, an
// alphabet and an optional padding character. The options are shared by the
// `encode` and `decode` commands.
type BaseOptions struct {
	Base      string `short:"b" long:"base"       env:"BASE"     description:"Predefined base to use" choice:"base2" choice:"base4" choice:"base8" choice:"base16" choice:"base16lower" choice:"base32" choice:"base32hex" choice:"base64" choice:"base64url" default:"base64"`
	Bits      int    `          long:"bits"       env:"BITS"     description:"Bit width of a custom base (1-6); used together with --alphabet"`
	Alphabet  string `short:"a" long:"alphabet"   env:"ALPHABET" description:"Alphabet of a custom base, in value order; overrides --base"`
	Padding   string `short:"p" long:"padding"    env:"PADDING"  description:"Padding character of a custom base (single character)"`
	NoPadding bool   `short:"P" long:"no-padding"                description:"Produce (and require) unpadded output for the selected base"`
}

// Encoding resolves the options into a concrete encoding. A custom alphabet
// takes precedence over the predefined base name.
func (o *BaseOptions) Encoding() (*anybase.Encoding, error) {
	if o.Alphabet != "" {
		return o.custom()
	}
	for _, b := range PredefinedBases {
		if b.Name != o.Base {
			continue
		}
		if o.NoPadding && b.Encoding.Padding() != anybase.NoPadding {
			e, err := anybase.NewEncoding(b.Encoding.Bits(), b.Encoding.Alphabet(), anybase.NoPadding)
			return e, errors.WithStack(err)
		}
		return b.Encoding, nil
	}
	return nil, errors.Errorf("unknown base %q", o.Base)
}

func (o *BaseOptions) custom() (*anybase.Encoding, error) {
	padding := anybase.NoPadding
	if o.Padding != "" {
		if o.NoPadding {
			return nil, errors.New("--padding and --no-padding are mutually exclusive")
		}
		if len(o.Padding) != 1 {
			return nil, errors.Errorf("padding must be a single character, got %q", o.Padding)
		}
		padding = rune(o.Padding[0])
	}
	e, err := anybase.NewEncoding(o.Bits, o.Alphabet, padding)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid base specification (bits=%d, alphabet=%q)", o.Bits, o.Alphabet)
	}
	return e, nil
}
