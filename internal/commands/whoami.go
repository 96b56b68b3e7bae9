package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"geotask/internal/config"
	"geotask/internal/exitcode"
	"geotask/internal/output"
	"geotask/internal/service"
	"geotask/internal/session"
)

func init() {
	Register(&WhoamiCmd{})
}

// WhoamiCmd prints the active session's identity. It reads the session store
// directly and never touches the network.
type WhoamiCmd struct{}

func (c *WhoamiCmd) Name() string      { return "whoami" }
func (c *WhoamiCmd) Aliases() []string { return []string{"profile"} }
func (c *WhoamiCmd) Synopsis() string  { return "Show the logged-in user" }
func (c *WhoamiCmd) Usage() string     { return "geotask whoami [common flags]" }
func (c *WhoamiCmd) NeedsAuth() bool   { return false }

func (c *WhoamiCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *WhoamiCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	sess, err := session.NewStore(cfg.SessionPath()).Load()
	if err != nil {
		fmt.Fprintln(errOut, "error: not logged in (run: geotask login)")
		return exitcode.AuthError
	}

	output.FormatSession(out, sess.Email, sess.UserID)
	return exitcode.Success
}
