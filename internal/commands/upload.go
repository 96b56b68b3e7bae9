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
	Register(&UploadCmd{})
}

// UploadCmd uploads a photo and prints its remote URL. Task creation submits
// local URIs directly; this is the explicit path for hosting a photo on the
// API first.
type UploadCmd struct{}

func (c *UploadCmd) Name() string      { return "upload" }
func (c *UploadCmd) Aliases() []string { return nil }
func (c *UploadCmd) Synopsis() string  { return "Upload a photo, print its URL" }
func (c *UploadCmd) Usage() string     { return "geotask upload [common flags] <path>" }
func (c *UploadCmd) NeedsAuth() bool   { return true }

func (c *UploadCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *UploadCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	if len(args) != 1 {
		fmt.Fprintln(errOut, "error: file path required")
		return exitcode.UserError
	}

	url, err := svc.UploadImage(ctx, args[0])
	if err != nil {
		fmt.Fprintf(errOut, "error: backend error: %v\n", err)
		return exitcode.BackendError
	}

	fmt.Fprintln(out, url)
	return exitcode.Success
}
