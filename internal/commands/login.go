package commands

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"geotask/internal/backend/todoapi"
	"geotask/internal/config"
	"geotask/internal/exitcode"
	"geotask/internal/service"
	"geotask/internal/session"
	"geotask/internal/token"
)

func init() {
	Register(&LoginCmd{})
	Register(&RegisterCmd{})
}

// LoginCmd implements the login command.
type LoginCmd struct{}

func (c *LoginCmd) Name() string      { return "login" }
func (c *LoginCmd) Aliases() []string { return nil }
func (c *LoginCmd) Synopsis() string  { return "Authenticate and store a session" }
func (c *LoginCmd) Usage() string     { return "geotask login [common flags] <email> <password>" }
func (c *LoginCmd) NeedsAuth() bool   { return false }

func (c *LoginCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *LoginCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	auth := todoapi.NewAuth(cfg)
	return runAuth(ctx, cfg, auth.Login, args, out, errOut)
}

// RegisterCmd implements the register command. On success it behaves like
// login: the returned token immediately becomes the active session.
type RegisterCmd struct{}

func (c *RegisterCmd) Name() string      { return "register" }
func (c *RegisterCmd) Aliases() []string { return nil }
func (c *RegisterCmd) Synopsis() string  { return "Create an account and store a session" }
func (c *RegisterCmd) Usage() string     { return "geotask register [common flags] <email> <password>" }
func (c *RegisterCmd) NeedsAuth() bool   { return false }

func (c *RegisterCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *RegisterCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	auth := todoapi.NewAuth(cfg)
	return runAuth(ctx, cfg, auth.Register, args, out, errOut)
}

// authFunc is the shape shared by Login and Register.
type authFunc func(ctx context.Context, creds service.Credentials) (string, error)

// runAuth is the shared implementation for login and register: call the auth
// endpoint, decode the token's identity claims, persist the session.
func runAuth(ctx context.Context, cfg *config.Config, fn authFunc, args []string, out, errOut io.Writer) int {
	if len(args) != 2 {
		fmt.Fprintln(errOut, "error: email and password required")
		return exitcode.UserError
	}

	creds := service.Credentials{Email: args[0], Password: args[1]}

	bearer, err := fn(ctx, creds)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			fmt.Fprintln(errOut, "error: invalid credentials")
			return exitcode.AuthError
		}
		fmt.Fprintf(errOut, "error: auth error: %v\n", err)
		return exitcode.BackendError
	}

	claims, err := token.Decode(bearer)
	if err != nil {
		fmt.Fprintf(errOut, "error: auth error: %v\n", err)
		return exitcode.AuthError
	}

	if err := cfg.EnsureDir(); err != nil {
		fmt.Fprintf(errOut, "error: failed to create config directory: %v\n", err)
		return exitcode.AuthError
	}

	store := session.NewStore(cfg.SessionPath())
	sess := session.Session{
		Email:  claims.Email,
		UserID: claims.UserID,
		Token:  bearer,
	}
	if err := store.Save(sess); err != nil {
		fmt.Fprintf(errOut, "error: failed to save session: %v\n", err)
		return exitcode.AuthError
	}

	if !cfg.Quiet {
		fmt.Fprintln(out, "ok")
	}
	return exitcode.Success
}
