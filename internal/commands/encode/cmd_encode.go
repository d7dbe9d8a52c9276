package encode

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

// Command encodes files (or standard input) into the selected base, the way
// the coreutils base64 tool does.
type Command struct {
	args.BaseOptions
	Wrap   int    `short:"w" long:"wrap"   env:"WRAP"   default:"76" description:"Wrap encoded lines after this many characters (0 disables wrapping)"`
	Output string `short:"o" long:"output" env:"OUTPUT" default:"-"  description:"Write the result to this file instead of standard output"`
	Args   struct {
		Files []string `positional-arg-name:"FILE" description:"Files to encode; none (or '-') reads standard input"`
	} `positional-args:"yes"`
}

func NewCommand() *Command {
	return &Command{}
}

func (c *Command) String() string {
	return "Encode data"
}

func (c *Command) Execute(cmdArgs []string) error {
	logging.SetupLogging()

	enc, err := c.Encoding()
	if err != nil {
		return err
	}
	blockBytes, blockSyms := enc.BlockSize()
	log.Debugf("Encoding with %v, block %d bytes / %d symbols", enc, blockBytes, blockSyms)

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
		if err := c.encodeFile(enc, file, out); err != nil {
			errs = multierror.Append(errs, errors.Wrapf(err, "could not encode %s", file))
		}
	}
	return errs
}

func (c *Command) encodeFile(enc *anybase.Encoding, file string, out io.Writer) error {
	data, err := util.ReadInput(file)
	if err != nil {
		return err
	}
	return writeWrapped(out, enc.EncodeToString(data), c.Wrap)
}

// writeWrapped writes s broken into lines of at most wrap characters, each
// terminated by a newline. A wrap of 0 writes one single line. Empty input
// writes nothing, matching coreutils behaviour.
func writeWrapped(out io.Writer, s string, wrap int) error {
	if wrap <= 0 {
		wrap = len(s)
	}
	for len(s) > 0 {
		line := s
		if len(line) > wrap {
			line = line[:wrap]
		}
		s = s[len(line):]
		if _, err := io.WriteString(out, line+"\n"); err != nil {
			return errors.WithStack(err)
		}
	}
	return nil
}
