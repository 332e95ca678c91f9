package session

import (
	"errors"
	"testing"

	"auction-client/internal/auctionerrors"
	"auction-client/internal/models"
	"auction-client/internal/storage"

	"github.com/stretchr/testify/require"
)

func newTestStore() (*Store, *storage.MemoryStorage) {
	mem := storage.NewMemoryStorage()
	return NewStore(mem), mem
}

func TestStore_SellerSession(t *testing.T) {
	t.Parallel()

	s, mem := newTestStore()
	_, err := s.SellerSession()
	require.ErrorIs(t, err, auctionerrors.ErrNoSession)

	require.NoError(t, s.SaveSellerSession("t", models.Seller{ID: "1", Name: "A", Email: "a@x.com"}))

	raw, ok := mem.Get(KeySellerData)
	require.True(t, ok)
	require.JSONEq(t, `{"id":1,"name":"A","email":"a@x.com"}`, raw)
	token, _ := mem.Get(KeySellerToken)
	require.Equal(t, "t", token)

	got, err := s.SellerSession()
	require.NoError(t, err)
	require.Equal(t, SellerSession{Token: "t", Seller: models.Seller{ID: "1", Name: "A", Email: "a@x.com"}}, got)

	id, ok := s.CurrentSellerID()
	require.True(t, ok)
	require.Equal(t, models.ID("1"), id)
	require.Equal(t, "A", s.CurrentUserName())

	require.NoError(t, s.ClearSellerSession())
	_, ok = s.CurrentSellerID()
	require.False(t, ok)
}

func TestStore_CorruptedValues(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		key   string
		value string
		read  func(s *Store) error
	}{
		{
			name: "seller_not_json", key: KeySellerData, value: "{oops",
			read: func(s *Store) error { _, err := s.SellerSession(); return err },
		},
		{
			name: "seller_missing_email", key: KeySellerData, value: `{"id":1,"name":"A"}`,
			read: func(s *Store) error { _, err := s.SellerSession(); return err },
		},
		{
			name: "seller_wrong_shape", key: KeySellerData, value: `[1,2,3]`,
			read: func(s *Store) error { _, err := s.SellerSession(); return err },
		},
		{
			name: "user_not_json", key: KeyUserData, value: "undefined",
			read: func(s *Store) error { _, err := s.UserSession(); return err },
		},
		{
			name: "user_empty_object", key: KeyUserData, value: `{}`,
			read: func(s *Store) error { _, err := s.UserSession(); return err },
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			s, mem := newTestStore()
			require.NoError(t, mem.Set(KeyUserToken, "u"))
			require.NoError(t, mem.Set(KeySellerToken, "t"))
			require.NoError(t, mem.Set(tc.key, tc.value))

			var err error
			require.NotPanics(t, func() { err = tc.read(s) })
			require.True(t, errors.Is(err, auctionerrors.ErrCorruptSession), err)
		})
	}
}

func TestStore_AdminFlag(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		value string
		set   bool
		want  bool
	}{
		{name: "unset", want: false},
		{name: "true", value: "true", set: true, want: true},
		{name: "false", value: "false", set: true, want: false},
		{name: "capitalised", value: "True", set: true, want: false},
		{name: "one", value: "1", set: true, want: false},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			s, mem := newTestStore()
			if tc.set {
				require.NoError(t, mem.Set(KeyAdminAuth, tc.value))
			}
			require.Equal(t, tc.want, s.IsAdmin())
			_, err := s.AdminSession()
			if tc.want {
				require.NoError(t, err)
			} else {
				require.ErrorIs(t, err, auctionerrors.ErrNoSession)
			}
		})
	}
}

func TestStore_AdminSessionToken(t *testing.T) {
	t.Parallel()

	s, mem := newTestStore()
	require.NoError(t, s.SaveAdminSession("adm"))
	got, err := s.AdminSession()
	require.NoError(t, err)
	require.Equal(t, "adm", got.Token)

	require.NoError(t, s.SaveAdminSession(""))
	_, ok := mem.Get(KeyAdminToken)
	require.False(t, ok)
	require.True(t, s.IsAdmin())

	require.NoError(t, s.ClearAdminSession())
	require.False(t, s.IsAdmin())
}

func TestStore_UserSession(t *testing.T) {
	t.Parallel()

	s, _ := newTestStore()
	_, err := s.UserSession()
	require.ErrorIs(t, err, auctionerrors.ErrNoSession)

	require.NoError(t, s.SaveUserSession("u", nil))
	got, err := s.UserSession()
	require.NoError(t, err)
	require.Equal(t, "u", got.Token)
	require.Nil(t, got.User)
	require.Equal(t, "Anonymous", s.CurrentUserName())

	require.NoError(t, s.SaveUserSession("u2", &models.User{ID: "5", Name: "Demo User", Email: "u@x.com"}))
	got, err = s.UserSession()
	require.NoError(t, err)
	require.Equal(t, "Demo User", got.User.Name)
	require.Equal(t, "Demo User", s.CurrentUserName())
}

func TestStore_NotificationTokenOrder(t *testing.T) {
	t.Parallel()

	s, _ := newTestStore()
	require.Equal(t, "", s.NotificationToken())

	require.NoError(t, s.SaveAdminSession("adm"))
	require.Equal(t, "adm", s.NotificationToken())

	require.NoError(t, s.SaveSellerSession("sel", models.Seller{ID: "1", Name: "A", Email: "a@x.com"}))
	require.Equal(t, "sel", s.NotificationToken())

	require.NoError(t, s.SaveUserSession("usr", nil))
	require.Equal(t, "usr", s.NotificationToken())
	require.Equal(t, "usr", s.UserToken())
	require.Equal(t, "sel", s.SellerToken())
}

func TestStore_ClearAll(t *testing.T) {
	t.Parallel()

	s, mem := newTestStore()
	require.NoError(t, s.SaveUserSession("usr", &models.User{Name: "U"}))
	require.NoError(t, s.SaveSellerSession("sel", models.Seller{ID: "1", Name: "A", Email: "a@x.com"}))
	require.NoError(t, s.SaveAdminSession("adm"))

	require.NoError(t, s.ClearAll())
	for _, k := range []string{KeyUserToken, KeyUserData, KeySellerToken, KeySellerData, KeyAdminAuth, KeyAdminToken} {
		_, ok := mem.Get(k)
		require.False(t, ok, k)
	}
}
