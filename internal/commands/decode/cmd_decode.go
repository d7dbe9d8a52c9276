package decode

import (
	"github.com/bokysan/anybase"
	"github.com/bokysan/anybase/internal/args"
	"github.com/bokysan/anybase/internal/logging"
	"github.com/bokysan/anybase/internal/util"
	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"io"
)

// Command decodes files (or standard input) from the selected base. Input is
// validated strictly: misplaced padding, unknown symbols and non-zero
// trailing bits are reported with their offset and fail the command.
type Command struct {
	args.BaseOptions
	Output string `short:"o" long:"output" env:"OUTPUT" default:"-" description:"Write the result to this file instead of standard output"`
	Strict bool   `short:"s" long:"strict"                          description:"Do not strip newlines from the input before decoding"`
	Args   struct {
		Files []string `positional-arg-name:"FILE" description:"Files to decode; none (or '-') reads standard input"`
	} `positional-args:"yes"`
}

func NewCommand() *Command {
	return &Command{}
}

func (c *Command) String() string {
	return "Decode data"
}

func (c *Command) Execute(cmdArgs []string) error {
	logging.SetupLogging()

	enc, err := c.Encoding()
	if err != nil {
		return err
	}
	log.Debugf("Decoding with %v", enc)

	out, err := util.OpenOutput(c.Output)
	if err != nil {
		return err
	}
	defer func() {
		if err := out.Close(); err != nil {
			log.Errorf("Could not close %s: %v", c.Output, err)
		}
	}()

	files := c.Args.Files
	if len(files) == 0 {
		files = []string{util.Stdio}
	}

	var errs error
	for _, file := range files {
		if err := c.decodeFile(enc, file, out); err != nil {
			errs = multierror.Append(errs, errors.Wrapf(err, "could not decode %s", file))
		}
	}
	return errs
}

func (c *Command) decodeFile(enc *anybase.Encoding, file string, out io.Writer) error {
	data, err := util.ReadInput(file)
	if err != nil {
		return err
	}
	if !c.Strict {
		data = stripNewlines(data)
	}

	decoded, err := enc.DecodeString(string(data))
	if err != nil {
		// The engine error already carries kind and offset; just pass it up.
		return err
	}
	if _, err := out.Write(decoded); err != nil {
		return errors.WithStack(err)
	}
	return nil
}

// stripNewlines drops LF and CR bytes so that wrapped encoder output (ours
// or anyone else's) decodes without fuss, the way coreutils accepts it.
func stripNewlines(data []byte) []byte {
	out := data[:0]
	for _, c := range data {
		if c == '\n' || c == '\r' {
			continue
		}
		out = append(out, c)
	}
	return out
}
