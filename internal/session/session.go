package session

import (
	"encoding/json"
	"errors"
	"fmt"

	"auction-client/internal/auctionerrors"
	"auction-client/internal/models"
	"auction-client/internal/storage"
	"auction-client/utils"
)

// Storage keys
const (
	KeyUserToken   = "token"
	KeySellerToken = "sellerToken"
	KeySellerData  = "sellerData"
	KeyUserData    = "userData"
	KeyAdminAuth   = "adminAuth"
	KeyAdminToken  = "adminToken"
)

const adminFlag = "true"

// UserSession is a logged-in plain user. User is nil when the token
// carried no identity claims.
type UserSession struct {
	Token string
	User  *models.User
}

// SellerSession is a logged-in seller.
type SellerSession struct {
	Token  string
	Seller models.Seller
}

// AdminSession is a logged-in admin. Token is empty when the admin was
// verified locally.
type AdminSession struct {
	Token string
}

// Store reads and writes the identities of the current operator.
type Store struct {
	storage storage.Storage
}

// NewStore creates a session store on top of s
func NewStore(s storage.Storage) *Store {
	return &Store{storage: s}
}

// SaveUserSession stores the user token and, when known, the user identity.
func (s *Store) SaveUserSession(token string, user *models.User) error {
	if err := s.storage.Set(KeyUserToken, token); err != nil {
		return fmt.Errorf("session: save user token: %w", err)
	}
	if user == nil {
		return s.remove(KeyUserData)
	}
	data, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("session: encode user: %w", err)
	}
	if err := s.storage.Set(KeyUserData, string(data)); err != nil {
		return fmt.Errorf("session: save user: %w", err)
	}
	return nil
}

// UserSession returns the stored user session.
func (s *Store) UserSession() (UserSession, error) {
	token, ok := s.storage.Get(KeyUserToken)
	if !ok || token == "" {
		return UserSession{}, auctionerrors.ErrNoSession
	}

	raw, ok := s.storage.Get(KeyUserData)
	if !ok {
		return UserSession{Token: token}, nil
	}
	var user models.User
	if err := decode(KeyUserData, raw, &user); err != nil {
		return UserSession{}, err
	}
	if user.ID == "" && user.Name == "" && user.Email == "" {
		return UserSession{}, corrupt(KeyUserData, errors.New("empty identity"))
	}
	return UserSession{Token: token, User: &user}, nil
}

// ClearUserSession forgets the user token and identity
func (s *Store) ClearUserSession() error {
	return s.remove(KeyUserToken, KeyUserData)
}

// SaveSellerSession stores the seller token and identity.
func (s *Store) SaveSellerSession(token string, seller models.Seller) error {
	data, err := json.Marshal(seller)
	if err != nil {
		return fmt.Errorf("session: encode seller: %w", err)
	}
	if err := s.storage.Set(KeySellerData, string(data)); err != nil {
		return fmt.Errorf("session: save seller: %w", err)
	}
	if err := s.storage.Set(KeySellerToken, token); err != nil {
		return fmt.Errorf("session: save seller token: %w", err)
	}
	return nil
}

// SellerSession returns the stored seller session. A seller record
// missing id, name or email is reported as corrupted.
func (s *Store) SellerSession() (SellerSession, error) {
	seller, err := s.sellerData()
	if err != nil {
		return SellerSession{}, err
	}
	token, ok := s.storage.Get(KeySellerToken)
	if !ok || token == "" {
		return SellerSession{}, auctionerrors.ErrNoSession
	}
	return SellerSession{Token: token, Seller: seller}, nil
}

func (s *Store) sellerData() (models.Seller, error) {
	raw, ok := s.storage.Get(KeySellerData)
	if !ok || raw == "" {
		return models.Seller{}, auctionerrors.ErrNoSession
	}
	var seller models.Seller
	if err := decode(KeySellerData, raw, &seller); err != nil {
		return models.Seller{}, err
	}
	if seller.ID == "" || seller.Name == "" || seller.Email == "" {
		return models.Seller{}, corrupt(KeySellerData, errors.New("missing seller fields"))
	}
	return seller, nil
}

// ClearSellerSession forgets the seller token and identity
func (s *Store) ClearSellerSession() error {
	return s.remove(KeySellerToken, KeySellerData)
}

// SaveAdminSession marks the operator as admin. token may be empty.
func (s *Store) SaveAdminSession(token string) error {
	if err := s.storage.Set(KeyAdminAuth, adminFlag); err != nil {
		return fmt.Errorf("session: save admin flag: %w", err)
	}
	if token == "" {
		return s.remove(KeyAdminToken)
	}
	if err := s.storage.Set(KeyAdminToken, token); err != nil {
		return fmt.Errorf("session: save admin token: %w", err)
	}
	return nil
}

// AdminSession returns the admin session when adminAuth is set.
func (s *Store) AdminSession() (AdminSession, error) {
	if !s.IsAdmin() {
		return AdminSession{}, auctionerrors.ErrNoSession
	}
	token, _ := s.storage.Get(KeyAdminToken)
	return AdminSession{Token: token}, nil
}

// IsAdmin reports whether adminAuth is exactly "true".
func (s *Store) IsAdmin() bool {
	v, ok := s.storage.Get(KeyAdminAuth)
	return ok && v == adminFlag
}

// ClearAdminSession forgets the admin flag and token
func (s *Store) ClearAdminSession() error {
	return s.remove(KeyAdminAuth, KeyAdminToken)
}

// ClearAll forgets every kind of session.
func (s *Store) ClearAll() error {
	return s.remove(KeyUserToken, KeyUserData, KeySellerToken, KeySellerData, KeyAdminAuth, KeyAdminToken)
}

// UserToken returns the plain-user token or "".
func (s *Store) UserToken() string {
	token, _ := s.storage.Get(KeyUserToken)
	return token
}

// SellerToken returns the seller token or "".
func (s *Store) SellerToken() string {
	token, _ := s.storage.Get(KeySellerToken)
	return token
}

// NotificationToken picks the token used for notification calls: the
// user token, then the seller token, then the admin token.
func (s *Store) NotificationToken() string {
	for _, key := range []string{KeyUserToken, KeySellerToken, KeyAdminToken} {
		if token, ok := s.storage.Get(key); ok && token != "" {
			return token
		}
	}
	return ""
}

// CurrentSellerID returns the stored seller's id, if a valid seller record exists.
func (s *Store) CurrentSellerID() (models.ID, bool) {
	seller, err := s.sellerData()
	if err != nil {
		return "", false
	}
	return seller.ID, true
}

// CurrentUserName names whoever is acting: the user, then the seller, then "Anonymous".
func (s *Store) CurrentUserName() string {
	if us, err := s.UserSession(); err == nil && us.User != nil && us.User.Name != "" {
		return us.User.Name
	}
	if seller, err := s.sellerData(); err == nil {
		return seller.Name
	}
	return "Anonymous"
}

func (s *Store) remove(keys ...string) error {
	if err := s.storage.Remove(keys...); err != nil {
		return fmt.Errorf("session: remove %v: %w", keys, err)
	}
	return nil
}

func decode(key, raw string, out any) error {
	if err := json.Unmarshal([]byte(raw), out); err != nil {
		return corrupt(key, err)
	}
	return nil
}

func corrupt(key string, cause error) error {
	utils.Warn("session: corrupted stored value", map[string]any{"key": key, "error": cause.Error()})
	return fmt.Errorf("session: %s: %w: %v", key, auctionerrors.ErrCorruptSession, cause)
}
