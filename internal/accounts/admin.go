package accounts

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"net/http"

	"auction-client/internal/auctionerrors"
	"auction-client/internal/config"
	"auction-client/internal/models"
)

// AdminVerifier checks admin credentials and returns the admin token, if any.
type AdminVerifier interface {
	VerifyAdmin(ctx context.Context, email, password string) (string, error)
}

// AdminLoginer is the backend call used by BackendAdminVerifier.
type AdminLoginer interface {
	LoginAdmin(ctx context.Context, creds models.AdminCredentials) (models.AdminAuthResponse, error)
}

// BackendAdminVerifier asks the backend to verify the admin.
type BackendAdminVerifier struct {
	client AdminLoginer
}

func NewBackendAdminVerifier(client AdminLoginer) *BackendAdminVerifier {
	return &BackendAdminVerifier{client: client}
}

func (v *BackendAdminVerifier) VerifyAdmin(ctx context.Context, email, password string) (string, error) {
	resp, err := v.client.LoginAdmin(ctx, models.AdminCredentials{Username: email, Password: password})
	if err != nil {
		var apiErr *auctionerrors.APIError
		if errors.As(err, &apiErr) && (apiErr.StatusCode == http.StatusUnauthorized || apiErr.StatusCode == http.StatusBadRequest) {
			return "", fmt.Errorf("accounts: admin login: %w", auctionerrors.ErrInvalidAdminCredentials)
		}
		return "", fmt.Errorf("accounts: admin login: %w", err)
	}
	return resp.Token, nil
}

// StaticAdminVerifier accepts one configured email/password pair. It
// issues no token.
type StaticAdminVerifier struct {
	email    string
	password string
}

func NewStaticAdminVerifier(email, password string) *StaticAdminVerifier {
	return &StaticAdminVerifier{email: email, password: password}
}

func (v *StaticAdminVerifier) VerifyAdmin(_ context.Context, email, password string) (string, error) {
	emailOK := subtle.ConstantTimeCompare([]byte(email), []byte(v.email)) == 1
	passwordOK := subtle.ConstantTimeCompare([]byte(password), []byte(v.password)) == 1
	if !emailOK || !passwordOK {
		return "", fmt.Errorf("accounts: admin login: %w", auctionerrors.ErrInvalidAdminCredentials)
	}
	return "", nil
}

// NewAdminVerifier picks the verifier for the configured mode. Static is
// the default; backend mode needs an admin account on the backend.
func NewAdminVerifier(cfg config.AdminConfig, client AdminLoginer) AdminVerifier {
	if cfg.Auth == config.AdminAuthBackend {
		return NewBackendAdminVerifier(client)
	}
	return NewStaticAdminVerifier(cfg.Email, cfg.Password)
}
