package services

import (
	"testing"
	"time"

	"github.com/nbui/fitstore-api/apperrors"
	"github.com/nbui/fitstore-api/auth"
	"github.com/nbui/fitstore-api/models"
	"github.com/stretchr/testify/require"
)

func newAccountFixture() (*AccountService, *fakeUserStore, *fakeMailer, *fakeTokenIssuer) {
	users := newFakeUserStore()
	mail := &fakeMailer{}
	tokens := &fakeTokenIssuer{}
	svc := NewAccountService(users, mail, tokens, "http://localhost:7777")
	return svc, users, mail, tokens
}

func seedUser(t *testing.T, users *fakeUserStore, email, password string, perms ...string) *models.User {
	t.Helper()
	hash, err := auth.HashPassword(password)
	require.NoError(t, err)
	if perms == nil {
		perms = []string{auth.PermUser}
	}
	return users.add(&models.User{
		Name:        "Seed User",
		Email:       email,
		Password:    hash,
		Permissions: models.PermissionsJSON(perms),
	})
}

func TestSignupNormalizesEmailAndGrantsUser(t *testing.T) {
	svc, _, _, _ := newAccountFixture()

	user, token, err := svc.Signup("Alice", "Alice@Example.COM", "correct horse")
	require.NoError(t, err)
	require.Equal(t, "alice@example.com", user.Email)
	require.Equal(t, []string{auth.PermUser}, user.PermissionList())
	require.NotEmpty(t, token)

	// The stored password is a hash, never the plaintext.
	require.NotEqual(t, "correct horse", user.Password)
	require.NoError(t, auth.ComparePasswords(user.Password, "correct horse"))
}

func TestSignupDuplicateEmail(t *testing.T) {
	svc, users, _, _ := newAccountFixture()
	seedUser(t, users, "alice@example.com", "whatever1")

	_, _, err := svc.Signup("Alice Again", "ALICE@example.com", "whatever2")
	require.ErrorIs(t, err, apperrors.ErrEmailTaken)
}

func TestSigninSuccess(t *testing.T) {
	svc, users, _, tokens := newAccountFixture()
	seedUser(t, users, "alice@example.com", "correct horse")

	user, token, err := svc.Signin("Alice@Example.com", "correct horse")
	require.NoError(t, err)
	require.Equal(t, "alice@example.com", user.Email)
	require.NotEmpty(t, token)
	require.Equal(t, 1, tokens.issued)
}

func TestSigninWrongPassword(t *testing.T) {
	svc, users, _, tokens := newAccountFixture()
	seedUser(t, users, "alice@example.com", "correct horse")

	_, token, err := svc.Signin("alice@example.com", "wrong horse")
	require.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
	require.Empty(t, token)
	require.Zero(t, tokens.issued)
}

func TestSigninUnknownEmailIndistinguishable(t *testing.T) {
	svc, _, _, _ := newAccountFixture()

	_, _, err := svc.Signin("nobody@example.com", "whatever1")
	require.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestRequestResetUnknownEmail(t *testing.T) {
	svc, users, mail, _ := newAccountFixture()

	err := svc.RequestReset("nobody@example.com")
	require.ErrorIs(t, err, apperrors.ErrNotFound)
	require.Empty(t, mail.sent)
	require.Zero(t, users.saves)
}

func TestRequestResetStoresTokenAndSendsMail(t *testing.T) {
	svc, users, mail, _ := newAccountFixture()
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }
	seedUser(t, users, "alice@example.com", "correct horse")

	require.NoError(t, svc.RequestReset("alice@example.com"))

	stored, _ := users.ByEmail("alice@example.com")
	require.NotNil(t, stored.ResetToken)
	// 20 random bytes, hex-encoded.
	require.Len(t, *stored.ResetToken, 40)
	require.Equal(t, now.Add(time.Hour), *stored.ResetTokenExpiry)

	require.Len(t, mail.sent, 1)
	require.Equal(t, "alice@example.com", mail.sent[0].to)
	require.Contains(t, mail.sent[0].resetURL, *stored.ResetToken)
}

func TestResetPasswordMismatch(t *testing.T) {
	svc, _, _, _ := newAccountFixture()

	_, _, err := svc.ResetPassword("sometoken", "new-password", "different-password")
	require.ErrorIs(t, err, apperrors.ErrPasswordMismatch)
}

func TestResetPasswordExpiredToken(t *testing.T) {
	svc, users, _, _ := newAccountFixture()
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	user := seedUser(t, users, "alice@example.com", "correct horse")
	token := "deadbeef"
	expiry := now.Add(-2 * time.Hour)
	user.ResetToken = &token
	user.ResetTokenExpiry = &expiry

	_, _, err := svc.ResetPassword("deadbeef", "new-password", "new-password")
	require.ErrorIs(t, err, apperrors.ErrInvalidResetToken)
}

func TestResetPasswordSuccess(t *testing.T) {
	svc, users, _, tokens := newAccountFixture()
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	user := seedUser(t, users, "alice@example.com", "old-password")
	token := "deadbeef"
	expiry := now.Add(30 * time.Minute)
	user.ResetToken = &token
	user.ResetTokenExpiry = &expiry

	updated, session, err := svc.ResetPassword("deadbeef", "new-password", "new-password")
	require.NoError(t, err)
	require.NotEmpty(t, session)
	require.Equal(t, 1, tokens.issued)

	require.Nil(t, updated.ResetToken)
	require.Nil(t, updated.ResetTokenExpiry)
	require.NoError(t, auth.ComparePasswords(updated.Password, "new-password"))
	require.Error(t, auth.ComparePasswords(updated.Password, "old-password"))
}

func TestUpdatePermissions(t *testing.T) {
	svc, users, _, _ := newAccountFixture()
	admin := seedUser(t, users, "admin@example.com", "whatever1", auth.PermUser, auth.PermAdmin)
	target := seedUser(t, users, "bob@example.com", "whatever2")

	updated, err := svc.UpdatePermissions(admin, target.ID, []string{auth.PermUser, auth.PermItemDelete})
	require.NoError(t, err)
	// Wholesale overwrite, not a merge.
	require.Equal(t, []string{auth.PermUser, auth.PermItemDelete}, updated.PermissionList())
}

func TestUpdatePermissionsRequiresAuthz(t *testing.T) {
	svc, users, _, _ := newAccountFixture()
	plain := seedUser(t, users, "plain@example.com", "whatever1")
	target := seedUser(t, users, "bob@example.com", "whatever2")

	_, err := svc.UpdatePermissions(nil, target.ID, []string{auth.PermAdmin})
	require.ErrorIs(t, err, apperrors.ErrUnauthenticated)

	_, err = svc.UpdatePermissions(plain, target.ID, []string{auth.PermAdmin})
	require.ErrorIs(t, err, apperrors.ErrForbidden)
}

func TestUsersListGated(t *testing.T) {
	svc, users, _, _ := newAccountFixture()
	admin := seedUser(t, users, "admin@example.com", "whatever1", auth.PermAdmin)
	plain := seedUser(t, users, "plain@example.com", "whatever2")

	list, err := svc.Users(admin)
	require.NoError(t, err)
	require.Len(t, list, 2)

	_, err = svc.Users(plain)
	require.ErrorIs(t, err, apperrors.ErrForbidden)

	_, err = svc.Users(nil)
	require.ErrorIs(t, err, apperrors.ErrUnauthenticated)
}
