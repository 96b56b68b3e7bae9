package commands

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strconv"
	"strings"

	"geotask/internal/config"
	"geotask/internal/device"
	"geotask/internal/exitcode"
	"geotask/internal/service"
)

func init() {
	Register(&AddCmd{})
}

// AddCmd implements the add command. A task cannot be created without
// coordinates; the photo falls back to the placeholder URL and is submitted
// as-is, with no upload beforehand.
type AddCmd struct {
	lat   string
	lon   string
	photo string
}

// SetFlags sets the flag values directly (for testing).
func (c *AddCmd) SetFlags(lat, lon, photo string) {
	c.lat = lat
	c.lon = lon
	c.photo = photo
}

func (c *AddCmd) Name() string      { return "add" }
func (c *AddCmd) Aliases() []string { return []string{"create"} }
func (c *AddCmd) Synopsis() string  { return "Create a task" }
func (c *AddCmd) Usage() string {
	return "geotask add [common flags] --lat <deg> --lon <deg> [--photo <path>] <title...>"
}
func (c *AddCmd) NeedsAuth() bool { return true }

func (c *AddCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.lat, "lat", "", "")
	fs.StringVar(&c.lon, "lon", "", "")
	fs.StringVar(&c.photo, "photo", "", "")
}

func (c *AddCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	// Check for title
	if len(args) == 0 {
		fmt.Fprintln(errOut, "error: title required")
		return exitcode.UserError
	}
	title := strings.Join(args, " ")
	if strings.TrimSpace(title) == "" {
		fmt.Fprintln(errOut, "error: title required")
		return exitcode.UserError
	}

	locator, err := c.locator()
	if err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.UserError
	}

	loc, err := locator.Current(ctx)
	if err != nil {
		fmt.Fprintln(errOut, "error: location required (--lat and --lon)")
		return exitcode.UserError
	}

	camera := &device.FileCamera{Path: c.photo}
	photoURI, err := camera.Capture(ctx)
	if err != nil {
		fmt.Fprintf(errOut, "error: photo not found: %s\n", c.photo)
		return exitcode.UserError
	}
	if photoURI == "" {
		photoURI = service.DefaultPhotoURI
	}

	task := service.NewTask{
		Title:     title,
		Completed: false,
		Location:  loc,
		PhotoURI:  photoURI,
	}

	if err := svc.CreateTask(ctx, task); err != nil {
		fmt.Fprintf(errOut, "error: backend error: %v\n", err)
		return exitcode.BackendError
	}

	if !cfg.Quiet {
		fmt.Fprintln(out, "ok")
	}
	return exitcode.Success
}

// locator converts the --lat/--lon flags into a location provider.
// Both flags must be given together.
func (c *AddCmd) locator() (device.Locator, error) {
	if c.lat == "" && c.lon == "" {
		return &device.StaticLocator{}, nil
	}
	if c.lat == "" || c.lon == "" {
		return nil, fmt.Errorf("location requires both --lat and --lon")
	}

	lat, err := strconv.ParseFloat(c.lat, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid latitude: %s", c.lat)
	}
	lon, err := strconv.ParseFloat(c.lon, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid longitude: %s", c.lon)
	}

	return &device.StaticLocator{
		Location: service.Location{Latitude: lat, Longitude: lon},
		Set:      true,
	}, nil
}
