package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"geotask/internal/config"
	"geotask/internal/exitcode"
	"geotask/internal/service"
)

func init() {
	Register(&HelpCmd{})
}

// HelpCmd implements the help command.
type HelpCmd struct{}

func (c *HelpCmd) Name() string      { return "help" }
func (c *HelpCmd) Aliases() []string { return nil }
func (c *HelpCmd) Synopsis() string  { return "Print usage" }
func (c *HelpCmd) Usage() string     { return "geotask help" }
func (c *HelpCmd) NeedsAuth() bool   { return false }

func (c *HelpCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *HelpCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	fmt.Fprint(out, helpText)
	return exitcode.Success
}

const helpText = `Usage:
  geotask                                            List tasks
  geotask list [common flags]                        List tasks
  geotask add [common flags] --lat <deg> --lon <deg> [--photo <path>] <title...>
  geotask done [common flags] <n>
  geotask undone [common flags] <n>
  geotask rm [common flags] <n>
  geotask upload [common flags] <path>
  geotask login [common flags] <email> <password>
  geotask register [common flags] <email> <password>
  geotask logout [common flags]
  geotask whoami [common flags]
  geotask help
  geotask version

Common flags:
  --config <dir>   Override config directory
  --quiet          Suppress informational output
  --debug          Print debug logs to stderr

Environment:
  API_URL          Task API base URL (default http://localhost:3000),
                   also read from a .env file in the working directory
`
