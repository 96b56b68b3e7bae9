package commands_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang-jwt/jwt/v5"

	"geotask/internal/commands"
	"geotask/internal/config"
	"geotask/internal/exitcode"
	"geotask/internal/session"
)

// signTestToken builds an HS256 token carrying the given identity claims.
func signTestToken(t *testing.T, userID, email string) string {
	t.Helper()
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":   userID,
		"email": email,
	}).SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}
	return signed
}

// authTestServer serves /auth/login and /auth/register returning the token,
// or 401 when the password is "wrong".
func authTestServer(t *testing.T, tok string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var creds struct {
			Email    string `json:"email"`
			Password string `json:"password"`
		}
		if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		if creds.Password == "wrong" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		w.Write([]byte(`{"success":true,"data":{"token":"` + tok + `"}}`))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestLoginCommand_Success(t *testing.T) {
	tok := signTestToken(t, "user-7", "a@b.com")
	srv := authTestServer(t, tok)

	cfg := &config.Config{Dir: t.TempDir(), BaseURL: srv.URL}

	var outBuf, errBuf bytes.Buffer
	cmd := &commands.LoginCmd{}
	code := cmd.Run(context.Background(), cfg, nil, []string{"a@b.com", "secret"}, &outBuf, &errBuf)

	if code != exitcode.Success {
		t.Fatalf("expected exit code %d, got %d (stderr: %s)", exitcode.Success, code, errBuf.String())
	}
	if outBuf.String() != "ok\n" {
		t.Errorf("expected ok, got %q", outBuf.String())
	}

	// Token claims round-trip into the stored session
	sess, err := session.NewStore(cfg.SessionPath()).Load()
	if err != nil {
		t.Fatalf("expected stored session, got %v", err)
	}
	if sess.UserID != "user-7" {
		t.Errorf("expected userId %q, got %q", "user-7", sess.UserID)
	}
	if sess.Email != "a@b.com" {
		t.Errorf("expected email %q, got %q", "a@b.com", sess.Email)
	}
	if sess.Token != tok {
		t.Errorf("stored token does not match issued token")
	}
}

func TestLoginCommand_InvalidCredentials(t *testing.T) {
	srv := authTestServer(t, signTestToken(t, "user-7", "a@b.com"))

	cfg := &config.Config{Dir: t.TempDir(), BaseURL: srv.URL}

	var outBuf, errBuf bytes.Buffer
	cmd := &commands.LoginCmd{}
	code := cmd.Run(context.Background(), cfg, nil, []string{"a@b.com", "wrong"}, &outBuf, &errBuf)

	if code != exitcode.AuthError {
		t.Errorf("expected exit code %d, got %d", exitcode.AuthError, code)
	}
	if !bytes.Contains(errBuf.Bytes(), []byte("invalid credentials")) {
		t.Errorf("expected invalid credentials message, got %q", errBuf.String())
	}

	// The session store stays empty
	if _, err := session.NewStore(cfg.SessionPath()).Load(); !errors.Is(err, session.ErrNoSession) {
		t.Errorf("expected no stored session, got %v", err)
	}
}

func TestLoginCommand_MissingArgs(t *testing.T) {
	cfg := &config.Config{Dir: t.TempDir()}

	var outBuf, errBuf bytes.Buffer
	cmd := &commands.LoginCmd{}
	code := cmd.Run(context.Background(), cfg, nil, []string{"a@b.com"}, &outBuf, &errBuf)

	if code != exitcode.UserError {
		t.Errorf("expected exit code %d, got %d", exitcode.UserError, code)
	}
}

func TestRegisterCommand_Success(t *testing.T) {
	tok := signTestToken(t, "user-9", "new@b.com")
	srv := authTestServer(t, tok)

	cfg := &config.Config{Dir: t.TempDir(), BaseURL: srv.URL}

	var outBuf, errBuf bytes.Buffer
	cmd := &commands.RegisterCmd{}
	code := cmd.Run(context.Background(), cfg, nil, []string{"new@b.com", "secret"}, &outBuf, &errBuf)

	if code != exitcode.Success {
		t.Fatalf("expected exit code %d, got %d (stderr: %s)", exitcode.Success, code, errBuf.String())
	}

	sess, err := session.NewStore(cfg.SessionPath()).Load()
	if err != nil {
		t.Fatalf("expected stored session, got %v", err)
	}
	if sess.UserID != "user-9" || sess.Email != "new@b.com" {
		t.Errorf("unexpected session: %+v", sess)
	}
}

func TestLogoutCommand(t *testing.T) {
	cfg := &config.Config{Dir: t.TempDir()}
	store := session.NewStore(cfg.SessionPath())
	if err := store.Save(session.Session{Email: "a@b.com", UserID: "u1", Token: "t"}); err != nil {
		t.Fatalf("failed to seed session: %v", err)
	}

	var outBuf, errBuf bytes.Buffer
	cmd := &commands.LogoutCmd{}
	code := cmd.Run(context.Background(), cfg, nil, nil, &outBuf, &errBuf)

	if code != exitcode.Success {
		t.Fatalf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if outBuf.String() != "ok\n" {
		t.Errorf("expected ok, got %q", outBuf.String())
	}
	if _, err := store.Load(); !errors.Is(err, session.ErrNoSession) {
		t.Errorf("expected session to be cleared, got %v", err)
	}
}

func TestLogoutCommand_NotLoggedIn(t *testing.T) {
	cfg := &config.Config{Dir: t.TempDir()}

	var outBuf, errBuf bytes.Buffer
	cmd := &commands.LogoutCmd{}
	code := cmd.Run(context.Background(), cfg, nil, nil, &outBuf, &errBuf)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if outBuf.String() != "not logged in\n" {
		t.Errorf("expected 'not logged in', got %q", outBuf.String())
	}
}

func TestWhoamiCommand(t *testing.T) {
	cfg := &config.Config{Dir: t.TempDir()}
	store := session.NewStore(cfg.SessionPath())
	if err := store.Save(session.Session{Email: "a@b.com", UserID: "user-7", Token: "t"}); err != nil {
		t.Fatalf("failed to seed session: %v", err)
	}

	var outBuf, errBuf bytes.Buffer
	cmd := &commands.WhoamiCmd{}
	code := cmd.Run(context.Background(), cfg, nil, nil, &outBuf, &errBuf)

	if code != exitcode.Success {
		t.Fatalf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if outBuf.String() != "a@b.com (user-7)\n" {
		t.Errorf("unexpected whoami output: %q", outBuf.String())
	}
}

func TestWhoamiCommand_NoSession(t *testing.T) {
	cfg := &config.Config{Dir: t.TempDir()}

	var outBuf, errBuf bytes.Buffer
	cmd := &commands.WhoamiCmd{}
	code := cmd.Run(context.Background(), cfg, nil, nil, &outBuf, &errBuf)

	if code != exitcode.AuthError {
		t.Errorf("expected exit code %d, got %d", exitcode.AuthError, code)
	}
	if !bytes.Contains(errBuf.Bytes(), []byte("not logged in")) {
		t.Errorf("expected not-logged-in message, got %q", errBuf.String())
	}
}
