package agriclient

import (
	"context"
	"net/http"
)

// AuthService covers login, identity, and logout.
type AuthService struct {
	c *Client
}

type loginData struct {
	User  User   `json:"user"`
	Token string `json:"token"`
}

// Login authenticates and, when a session store is attached, persists the
// resulting session.
func (s *AuthService) Login(ctx context.Context, email, password string) (User, string, error) {
	body := map[string]string{"email": email, "password": password}

	var data loginData
	if err := s.c.do(ctx, http.MethodPost, "/api/auth/login", body, &data); err != nil {
		return User{}, "", err
	}

	if s.c.Session != nil {
		if err := s.c.Session.SetAuth(data.User, data.Token); err != nil {
			return User{}, "", err
		}
	}
	return data.User, data.Token, nil
}

type RegisterRequest struct {
	FullName    string `json:"full_name"`
	Email       string `json:"email"`
	Password    string `json:"password"`
	PhoneNumber string `json:"phone_number,omitempty"`
}

// Register creates a volunteer account. The server logs the new account in,
// so the session is persisted the same way Login does.
func (s *AuthService) Register(ctx context.Context, req RegisterRequest) (User, string, error) {
	var data loginData
	if err := s.c.do(ctx, http.MethodPost, "/api/auth/register", req, &data); err != nil {
		return User{}, "", err
	}
	if s.c.Session != nil {
		if err := s.c.Session.SetAuth(data.User, data.Token); err != nil {
			return User{}, "", err
		}
	}
	return data.User, data.Token, nil
}

// Me returns the identity behind the current token.
func (s *AuthService) Me(ctx context.Context) (User, error) {
	var data struct {
		User User `json:"user"`
	}
	if err := s.c.do(ctx, http.MethodGet, "/api/auth/me", nil, &data); err != nil {
		return User{}, err
	}
	return data.User, nil
}

// Logout revokes the token server-side, then clears the local session. The
// local session is cleared even if revocation fails, so a dead backend cannot
// pin a client to a stale login.
func (s *AuthService) Logout(ctx context.Context) error {
	err := s.c.do(ctx, http.MethodPost, "/api/auth/logout", nil, nil)
	if s.c.Session != nil {
		_ = s.c.Session.ClearAuth()
	}
	return err
}

type CreateAdminRequest struct {
	FullName    string `json:"full_name"`
	Email       string `json:"email"`
	Password    string `json:"password"`
	PhoneNumber string `json:"phone_number,omitempty"`
}

func (s *AuthService) CreateAdmin(ctx context.Context, req CreateAdminRequest) (User, error) {
	var data struct {
		User User `json:"user"`
	}
	if err := s.c.do(ctx, http.MethodPost, "/api/auth/create-admin", req, &data); err != nil {
		return User{}, err
	}
	return data.User, nil
}
