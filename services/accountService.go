package services

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"log"
	"net/url"
	"strings"
	"time"

	"github.com/nbui/fitstore-api/apperrors"
	"github.com/nbui/fitstore-api/auth"
	"github.com/nbui/fitstore-api/models"
)

const (
	resetTokenBytes = 20
	resetTokenTTL   = time.Hour
)

// AccountService owns the credential lifecycle: signup, signin, password
// reset and permission administration.
type AccountService struct {
	users       UserStore
	mail        Mailer
	tokens      TokenIssuer
	frontendURL string
	now         func() time.Time
}

func NewAccountService(users UserStore, mail Mailer, tokens TokenIssuer, frontendURL string) *AccountService {
	return &AccountService{
		users:       users,
		mail:        mail,
		tokens:      tokens,
		frontendURL: frontendURL,
		now:         time.Now,
	}
}

// Signup registers a new user with the default USER permission and returns
// the user along with a fresh session token.
func (s *AccountService) Signup(name, email, password string) (*models.User, string, error) {
	email = strings.ToLower(email)

	existing, err := s.users.ByEmail(email)
	if err != nil {
		return nil, "", err
	}
	if existing != nil {
		return nil, "", apperrors.ErrEmailTaken
	}

	hashed, err := auth.HashPassword(password)
	if err != nil {
		return nil, "", fmt.Errorf("hash password: %w", err)
	}

	user := &models.User{
		Name:        name,
		Email:       email,
		Password:    hashed,
		Permissions: models.PermissionsJSON([]string{auth.PermUser}),
	}
	if err := s.users.Create(user); err != nil {
		return nil, "", err
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return nil, "", fmt.Errorf("issue session token: %w", err)
	}
	return user, token, nil
}

// Signin verifies credentials and returns the user and a session token. The
// unknown-email and wrong-password cases are indistinguishable to callers.
func (s *AccountService) Signin(email, password string) (*models.User, string, error) {
	user, err := s.users.ByEmail(strings.ToLower(email))
	if err != nil {
		return nil, "", err
	}
	if user == nil {
		return nil, "", apperrors.ErrInvalidCredentials
	}
	if err := auth.ComparePasswords(user.Password, password); err != nil {
		return nil, "", apperrors.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return nil, "", fmt.Errorf("issue session token: %w", err)
	}
	return user, token, nil
}

// RequestReset stores a one-hour reset token on the user and emails the
// reset link. Unknown emails fail without mutating anything or sending mail.
func (s *AccountService) RequestReset(email string) error {
	email = strings.ToLower(email)
	user, err := s.users.ByEmail(email)
	if err != nil {
		return err
	}
	if user == nil {
		return fmt.Errorf("no user registered with this email: %w", apperrors.ErrNotFound)
	}

	tokenBytes := make([]byte, resetTokenBytes)
	if _, err := rand.Read(tokenBytes); err != nil {
		return fmt.Errorf("generate reset token: %w", err)
	}
	resetToken := hex.EncodeToString(tokenBytes)
	expiry := s.now().Add(resetTokenTTL)

	user.ResetToken = &resetToken
	user.ResetTokenExpiry = &expiry
	if err := s.users.Save(user); err != nil {
		return err
	}

	resetURL := s.frontendURL + "/reset?resetToken=" + url.QueryEscape(resetToken)
	if err := s.mail.SendPasswordReset(user.Email, user.Name, resetURL); err != nil {
		// The token is already persisted; a mail hiccup should not fail the
		// request.
		log.Println("Error sending password reset email:", err)
	}
	return nil
}

// ResetPassword consumes a reset token, sets the new password and returns
// the user with a fresh session token.
func (s *AccountService) ResetPassword(resetToken, password, confirmPassword string) (*models.User, string, error) {
	if password != confirmPassword {
		return nil, "", apperrors.ErrPasswordMismatch
	}

	user, err := s.users.ByResetToken(resetToken, s.now().Add(-resetTokenTTL))
	if err != nil {
		return nil, "", err
	}
	if user == nil {
		return nil, "", apperrors.ErrInvalidResetToken
	}

	hashed, err := auth.HashPassword(password)
	if err != nil {
		return nil, "", fmt.Errorf("hash password: %w", err)
	}
	user.Password = hashed
	user.ResetToken = nil
	user.ResetTokenExpiry = nil
	if err := s.users.Save(user); err != nil {
		return nil, "", err
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return nil, "", fmt.Errorf("issue session token: %w", err)
	}
	return user, token, nil
}

// UpdatePermissions overwrites the target user's permission set wholesale.
func (s *AccountService) UpdatePermissions(actor *models.User, targetID uint, permissions []string) (*models.User, error) {
	if actor == nil {
		return nil, apperrors.ErrUnauthenticated
	}
	if err := auth.Authorize(actor.PermissionList(), auth.PermAdmin, auth.PermPermissionUpdate); err != nil {
		return nil, err
	}

	target, err := s.users.ByID(targetID)
	if err != nil {
		return nil, err
	}
	if target == nil {
		return nil, fmt.Errorf("no such user: %w", apperrors.ErrNotFound)
	}

	target.Permissions = models.PermissionsJSON(permissions)
	if err := s.users.Save(target); err != nil {
		return nil, err
	}
	return target, nil
}

// Users lists all users for permission administration.
func (s *AccountService) Users(actor *models.User) ([]models.User, error) {
	if actor == nil {
		return nil, apperrors.ErrUnauthenticated
	}
	if err := auth.Authorize(actor.PermissionList(), auth.PermAdmin, auth.PermPermissionUpdate); err != nil {
		return nil, err
	}
	return s.users.List()
}
