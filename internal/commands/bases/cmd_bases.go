package bases

import (
	"fmt"
	"github.com/bokysan/anybase"
	"github.com/bokysan/anybase/internal/args"
	"github.com/bokysan/anybase/internal/logging"
	"github.com/k0kubun/go-ansi"
)

const (
	Reset    = "\x1b[0m"
	DarkGray = "\x1b[90m"
	White    = "\x1b[97m"
)

// Command lists the predefined bases with their alphabets, padding and
// block geometry.
type Command struct {
}

func (c *Command) String() string {
	return "List predefined bases"
}

//goland:noinspection GoUnhandledErrorResult
func (c *Command) Execute(cmdArgs []string) error {
	logging.SetupLogging()

	for _, b := range args.PredefinedBases {
		e := b.Encoding
		blockBytes, blockSyms := e.BlockSize()

		padding := "none"
		if e.Padding() != anybase.NoPadding {
			padding = fmt.Sprintf("%q", e.Padding())
		}

		ansi.Printf(White+" %-12s"+Reset+DarkGray+" bits=%d block=%d/%d padding=%-4s "+Reset+"%s\n",
			b.Name, e.Bits(), blockBytes, blockSyms, padding, e.Alphabet())
	}
	return nil
}
