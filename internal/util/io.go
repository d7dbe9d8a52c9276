package util

import (
	"github.com/pkg/errors"
	"io"
	"io/ioutil"
	"os"
)

// Stdio is the conventional file name for standard input / standard output.
const Stdio = "-"

// ReadInput returns the complete contents of the named file, or of standard
// input when the name is "-". The codec engine works on whole buffers, so
// commands slurp their input up front.
func ReadInput(name string) ([]byte, error) {
	if name == Stdio {
		data, err := ioutil.ReadAll(os.Stdin)
		return data, errors.WithStack(err)
	}
	data, err := ioutil.ReadFile(name)
	return data, errors.WithStack(err)
}

// nopWriteCloser keeps standard output from being closed by commands that
// close their output when it is a real file.
type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error {
	return nil
}

// OpenOutput opens the named file for writing, truncating it, or returns
// standard output (behind a no-op closer) when the name is "-".
func OpenOutput(name string) (io.WriteCloser, error) {
	if name == Stdio {
		return nopWriteCloser{os.Stdout}, nil
	}
	f, err := os.Create(name)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return f, nil
}
