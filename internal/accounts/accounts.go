package accounts

import (
	"context"
	"errors"
	"fmt"

	"auction-client/internal/auctionerrors"
	"auction-client/internal/forms"
	"auction-client/internal/models"
	"auction-client/internal/session"
	"auction-client/utils"

	"github.com/golang-jwt/jwt/v5"
)

// Screens the operator is sent to after an account action.
const (
	RouteLogin           = "/login"
	RouteUserDashboard   = "/dashboard"
	RouteSellerDashboard = "/seller-dashboard"
	RouteAdminDashboard  = "/admin/dashboard"
)

//go:generate mockgen -source=accounts.go -destination=mock_accounts.go -package=accounts
//go:generate mockgen -source=admin.go -destination=mock_admin.go -package=accounts

// Gateway is the account part of the backend API.
type Gateway interface {
	RegisterUser(ctx context.Context, reg models.Registration) (models.MessageResponse, error)
	LoginUser(ctx context.Context, creds models.Credentials) (models.TokenResponse, error)
	RegisterSeller(ctx context.Context, reg models.Registration) (models.SellerAuthResponse, error)
	LoginSeller(ctx context.Context, creds models.Credentials) (models.SellerAuthResponse, error)
}

// Result tells the caller where to go next.
type Result struct {
	Redirect string `json:"redirect"`
	Message  string `json:"message,omitempty"`
}

// Service runs the login, registration and logout flows.
type Service struct {
	gateway  Gateway
	sessions *session.Store
	admin    AdminVerifier
}

func NewService(gateway Gateway, sessions *session.Store, admin AdminVerifier) *Service {
	return &Service{gateway: gateway, sessions: sessions, admin: admin}
}

// RegisterUser creates a bidder account. The user logs in afterwards.
func (s *Service) RegisterUser(ctx context.Context, form forms.RegistrationForm) (Result, error) {
	if err := form.Validate(); err != nil {
		return Result{}, err
	}
	resp, err := s.gateway.RegisterUser(ctx, form.Registration())
	if err != nil {
		return Result{}, fmt.Errorf("accounts: register user: %w", err)
	}
	utils.Info("accounts: user registered", map[string]any{"email": form.Email})
	return Result{Redirect: RouteLogin, Message: resp.Message}, nil
}

// LoginUser stores the user token and the identity carried in it.
func (s *Service) LoginUser(ctx context.Context, form forms.LoginForm) (Result, error) {
	if err := form.Validate(); err != nil {
		return Result{}, err
	}
	resp, err := s.gateway.LoginUser(ctx, form.Credentials())
	if err != nil {
		return Result{}, fmt.Errorf("accounts: login user: %w", err)
	}

	user, err := UserFromToken(resp.Token)
	if err != nil {
		utils.Warn("accounts: token carries no readable identity", map[string]any{"error": err.Error()})
		user = nil
	}
	if err := s.sessions.SaveUserSession(resp.Token, user); err != nil {
		return Result{}, fmt.Errorf("accounts: login user: %w", err)
	}
	utils.Info("accounts: user logged in", map[string]any{"email": form.Email})
	return Result{Redirect: RouteUserDashboard}, nil
}

// RegisterSeller creates a seller account and logs the seller in.
func (s *Service) RegisterSeller(ctx context.Context, form forms.RegistrationForm) (Result, error) {
	if err := form.Validate(); err != nil {
		return Result{}, err
	}
	resp, err := s.gateway.RegisterSeller(ctx, form.Registration())
	if err != nil {
		return Result{}, fmt.Errorf("accounts: register seller: %w", err)
	}
	return s.saveSeller(resp)
}

// LoginSeller logs an existing seller in.
func (s *Service) LoginSeller(ctx context.Context, form forms.LoginForm) (Result, error) {
	if err := form.Validate(); err != nil {
		return Result{}, err
	}
	resp, err := s.gateway.LoginSeller(ctx, form.Credentials())
	if err != nil {
		return Result{}, fmt.Errorf("accounts: login seller: %w", err)
	}
	return s.saveSeller(resp)
}

func (s *Service) saveSeller(resp models.SellerAuthResponse) (Result, error) {
	if resp.Seller == nil {
		return Result{}, &auctionerrors.MalformedResponseError{Reason: "seller missing"}
	}
	seller := models.Seller{ID: resp.Seller.ID, Name: resp.Seller.Name, Email: resp.Seller.Email}
	if err := s.sessions.SaveSellerSession(resp.Token, seller); err != nil {
		return Result{}, fmt.Errorf("accounts: save seller: %w", err)
	}
	utils.Info("accounts: seller logged in", map[string]any{"sellerID": seller.ID.String()})
	return Result{Redirect: RouteSellerDashboard, Message: resp.Message}, nil
}

// LoginAdmin verifies the admin and sets adminAuth. On failure adminAuth
// is left unset.
func (s *Service) LoginAdmin(ctx context.Context, form forms.AdminLoginForm) (Result, error) {
	if err := form.Validate(); err != nil {
		return Result{}, err
	}
	token, err := s.admin.VerifyAdmin(ctx, form.Email, form.Password)
	if err != nil {
		if errors.Is(err, auctionerrors.ErrInvalidAdminCredentials) {
			utils.Warn("accounts: invalid admin credentials", map[string]any{"email": form.Email})
		}
		return Result{}, err
	}
	if err := s.sessions.SaveAdminSession(token); err != nil {
		return Result{}, fmt.Errorf("accounts: save admin: %w", err)
	}
	utils.Info("accounts: admin logged in", nil)
	return Result{Redirect: RouteAdminDashboard}, nil
}

// Logout forgets every stored session.
func (s *Service) Logout() (Result, error) {
	if err := s.sessions.ClearAll(); err != nil {
		return Result{}, fmt.Errorf("accounts: logout: %w", err)
	}
	return Result{Redirect: RouteLogin}, nil
}

// identityClaims are the claims the backend puts in a user token.
type identityClaims struct {
	UserID models.ID `json:"user_id"`
	Name   string    `json:"name"`
	Email  string    `json:"email"`
	jwt.RegisteredClaims
}

// UserFromToken reads the identity claims of a user token without
// verifying its signature; the backend verifies tokens on every call.
func UserFromToken(token string) (*models.User, error) {
	var claims identityClaims
	if _, _, err := jwt.NewParser().ParseUnverified(token, &claims); err != nil {
		return nil, fmt.Errorf("accounts: parse token: %w", err)
	}
	if claims.UserID == "" && claims.Name == "" && claims.Email == "" {
		return nil, errors.New("accounts: token has no identity claims")
	}
	return &models.User{ID: claims.UserID, Name: claims.Name, Email: claims.Email}, nil
}
