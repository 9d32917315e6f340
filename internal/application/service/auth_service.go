package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/StephenEkwedike/FunRobin/internal/domain/entity"
	"github.com/StephenEkwedike/FunRobin/internal/domain/repository"
	"github.com/StephenEkwedike/FunRobin/pkg/apperror"
	"github.com/StephenEkwedike/FunRobin/pkg/email"
	"github.com/StephenEkwedike/FunRobin/pkg/oauth"
	"github.com/StephenEkwedike/FunRobin/pkg/utils"
)

// TokenPair bundles the access and refresh tokens returned on sign-in
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// AuthService handles authentication and account management
type AuthService struct {
	userRepo     repository.UserRepository
	resetRepo    repository.PasswordResetTokenRepository
	settingsRepo repository.SettingsRepository
	jwtManager   *utils.JWTManager
	emailService *email.EmailService
	oauthService *oauth.GoogleOAuthService
}

// NewAuthService creates a new auth service
func NewAuthService(
	userRepo repository.UserRepository,
	resetRepo repository.PasswordResetTokenRepository,
	settingsRepo repository.SettingsRepository,
	jwtManager *utils.JWTManager,
	emailService *email.EmailService,
	oauthService *oauth.GoogleOAuthService,
) *AuthService {
	return &AuthService{
		userRepo:     userRepo,
		resetRepo:    resetRepo,
		settingsRepo: settingsRepo,
		jwtManager:   jwtManager,
		emailService: emailService,
		oauthService: oauthService,
	}
}

// Register creates a new local account and signs it in
func (s *AuthService) Register(ctx context.Context, emailAddr, username, password string) (*entity.User, *TokenPair, error) {
	emailAddr = strings.ToLower(strings.TrimSpace(emailAddr))
	username = strings.TrimSpace(username)

	existing, err := s.userRepo.GetByEmail(ctx, emailAddr)
	if err != nil {
		return nil, nil, err
	}
	if existing != nil {
		return nil, nil, apperror.NewConflictError("An account with this email already exists")
	}

	if username != "" {
		taken, err := s.userRepo.GetByUsername(ctx, username)
		if err != nil {
			return nil, nil, err
		}
		if taken != nil {
			return nil, nil, apperror.NewConflictError("Username is already taken")
		}
	}

	hashed, err := utils.HashPassword(password)
	if err != nil {
		return nil, nil, err
	}

	user := &entity.User{
		Email:    emailAddr,
		Username: username,
		Password: hashed,
		Provider: "local",
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, nil, err
	}

	if err := s.settingsRepo.Create(ctx, &entity.UserSettings{UserID: user.ID}); err != nil {
		log.Printf("failed to create default settings for user %s: %v", user.ID, err)
	}

	tokens, err := s.issueTokens(user)
	if err != nil {
		return nil, nil, err
	}
	return user, tokens, nil
}

// Login authenticates with email or username plus password
func (s *AuthService) Login(ctx context.Context, identifier, password string) (*entity.User, *TokenPair, error) {
	identifier = strings.TrimSpace(identifier)

	var user *entity.User
	var err error
	if strings.Contains(identifier, "@") {
		user, err = s.userRepo.GetByEmail(ctx, identifier)
	} else {
		user, err = s.userRepo.GetByUsername(ctx, identifier)
	}
	if err != nil {
		return nil, nil, err
	}
	if user == nil || user.Password == "" {
		return nil, nil, apperror.ErrInvalidCredentials
	}

	if !utils.CheckPasswordHash(password, user.Password) {
		return nil, nil, apperror.ErrInvalidCredentials
	}

	tokens, err := s.issueTokens(user)
	if err != nil {
		return nil, nil, err
	}
	return user, tokens, nil
}

// RefreshToken exchanges a valid refresh token for a fresh token pair. The
// plan claim is re-read from the database here, so an upgrade becomes visible
// to clients on refresh.
func (s *AuthService) RefreshToken(ctx context.Context, refreshToken string) (*TokenPair, error) {
	userID, err := s.jwtManager.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, apperror.ErrInvalidToken
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.ErrInvalidToken
	}

	return s.issueTokens(user)
}

// GetProfile returns the account for userID
func (s *AuthService) GetProfile(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.NewNotFoundError("User")
	}
	return user, nil
}

// UpdateProfile changes the mutable account fields
func (s *AuthService) UpdateProfile(ctx context.Context, userID uuid.UUID, username *string, avatarURL *string) (*entity.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.NewNotFoundError("User")
	}

	if username != nil && *username != user.Username {
		taken, err := s.userRepo.GetByUsername(ctx, *username)
		if err != nil {
			return nil, err
		}
		if taken != nil && taken.ID != user.ID {
			return nil, apperror.NewConflictError("Username is already taken")
		}
		user.Username = strings.TrimSpace(*username)
	}
	if avatarURL != nil {
		user.AvatarURL = avatarURL
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// ChangePassword updates the password after verifying the current one
func (s *AuthService) ChangePassword(ctx context.Context, userID uuid.UUID, currentPassword, newPassword string) error {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if user == nil {
		return apperror.NewNotFoundError("User")
	}
	if user.Password == "" {
		return apperror.NewBadRequestError("This account signs in with Google and has no password")
	}

	if !utils.CheckPasswordHash(currentPassword, user.Password) {
		return apperror.NewBadRequestError("Current password is incorrect")
	}

	hashed, err := utils.HashPassword(newPassword)
	if err != nil {
		return err
	}
	user.Password = hashed
	return s.userRepo.Update(ctx, user)
}

// ForgotPassword issues a reset token and emails it. Always succeeds from the
// caller's perspective so the endpoint cannot be used to probe for accounts.
func (s *AuthService) ForgotPassword(ctx context.Context, emailAddr string) error {
	emailAddr = strings.ToLower(strings.TrimSpace(emailAddr))

	user, err := s.userRepo.GetByEmail(ctx, emailAddr)
	if err != nil {
		return err
	}
	if user == nil || user.Password == "" {
		return nil
	}

	if err := s.resetRepo.DeleteByEmail(ctx, emailAddr); err != nil {
		return err
	}

	token, err := generateResetToken()
	if err != nil {
		return err
	}

	resetToken := &entity.PasswordResetToken{
		Email:     emailAddr,
		Token:     token,
		ExpiresAt: time.Now().Add(time.Hour),
	}
	if err := s.resetRepo.Create(ctx, resetToken); err != nil {
		return err
	}

	if s.emailService != nil {
		if err := s.emailService.SendPasswordResetEmail(emailAddr, token); err != nil {
			log.Printf("failed to send password reset email to %s: %v", emailAddr, err)
		}
	}
	return nil
}

// ResetPassword sets a new password using a valid reset token
func (s *AuthService) ResetPassword(ctx context.Context, token, newPassword string) error {
	resetToken, err := s.resetRepo.GetByToken(ctx, token)
	if err != nil {
		return err
	}
	if resetToken == nil || !resetToken.IsValid() {
		return apperror.NewBadRequestError("Reset link is invalid or has expired")
	}

	user, err := s.userRepo.GetByEmail(ctx, resetToken.Email)
	if err != nil {
		return err
	}
	if user == nil {
		return apperror.NewBadRequestError("Reset link is invalid or has expired")
	}

	hashed, err := utils.HashPassword(newPassword)
	if err != nil {
		return err
	}
	user.Password = hashed
	if err := s.userRepo.Update(ctx, user); err != nil {
		return err
	}

	return s.resetRepo.MarkAsUsed(ctx, token)
}

// GetGoogleAuthURL returns the Google consent URL for the OAuth flow
func (s *AuthService) GetGoogleAuthURL(state string) (string, error) {
	if s.oauthService == nil || !s.oauthService.IsConfigured() {
		return "", apperror.NewBadRequestError("Google sign-in is not configured")
	}
	return s.oauthService.GetAuthURL(state), nil
}

// HandleGoogleCallback finishes the OAuth flow: exchanges the code, finds or
// creates the account, and signs it in.
func (s *AuthService) HandleGoogleCallback(ctx context.Context, code string) (*entity.User, *TokenPair, error) {
	if s.oauthService == nil || !s.oauthService.IsConfigured() {
		return nil, nil, apperror.NewBadRequestError("Google sign-in is not configured")
	}

	info, err := s.oauthService.Authenticate(ctx, code)
	if err != nil {
		return nil, nil, apperror.NewBadRequestError("Google sign-in failed")
	}
	if !info.VerifiedEmail {
		return nil, nil, apperror.NewBadRequestError("Google account email is not verified")
	}

	user, err := s.userRepo.GetByEmail(ctx, strings.ToLower(info.Email))
	if err != nil {
		return nil, nil, err
	}

	if user == nil {
		var avatar *string
		if info.Picture != "" {
			avatar = &info.Picture
		}
		user = &entity.User{
			Email:      strings.ToLower(info.Email),
			Provider:   "google",
			ProviderID: &info.ID,
			AvatarURL:  avatar,
		}
		if err := s.userRepo.Create(ctx, user); err != nil {
			return nil, nil, err
		}
		if err := s.settingsRepo.Create(ctx, &entity.UserSettings{UserID: user.ID}); err != nil {
			log.Printf("failed to create default settings for user %s: %v", user.ID, err)
		}
	} else if user.ProviderID == nil {
		// Existing local account signing in with Google for the first time
		user.Provider = "google"
		user.ProviderID = &info.ID
		if user.AvatarURL == nil && info.Picture != "" {
			user.AvatarURL = &info.Picture
		}
		if err := s.userRepo.Update(ctx, user); err != nil {
			return nil, nil, err
		}
	}

	tokens, err := s.issueTokens(user)
	if err != nil {
		return nil, nil, err
	}
	return user, tokens, nil
}

// FrontendSuccessURL returns the post-OAuth success redirect target
func (s *AuthService) FrontendSuccessURL() string {
	if s.oauthService == nil {
		return ""
	}
	return s.oauthService.FrontendSuccessURL()
}

// FrontendErrorURL returns the post-OAuth failure redirect target
func (s *AuthService) FrontendErrorURL() string {
	if s.oauthService == nil {
		return ""
	}
	return s.oauthService.FrontendErrorURL()
}

func (s *AuthService) issueTokens(user *entity.User) (*TokenPair, error) {
	accessToken, err := s.jwtManager.GenerateAccessToken(user.ID, user.Email, user.Plan)
	if err != nil {
		return nil, err
	}
	refreshToken, err := s.jwtManager.GenerateRefreshToken(user.ID)
	if err != nil {
		return nil, err
	}
	return &TokenPair{AccessToken: accessToken, RefreshToken: refreshToken}, nil
}

func generateResetToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
