package services

import (
	"strings"

	"mentorhub_backend/internal/auth"
	"mentorhub_backend/internal/email"
	"mentorhub_backend/internal/logger"
	"mentorhub_backend/internal/models"
	"mentorhub_backend/internal/repositories"
	"mentorhub_backend/internal/services/dto"
	"mentorhub_backend/pkg/apperrors"
)

type AuthService interface {
	Signup(req *dto.SignupRequest) (*dto.UserResponse, error)
	Login(req *dto.LoginRequest) (*dto.LoginResponse, error)
	Logout(userID string) error
	GetIdentity(userID string) (*dto.UserResponse, error)
}

type AuthServiceImpl struct {
	userRepo      repositories.UserRepository
	tokens        *auth.TokenManager
	emailProvider email.Provider
}

func NewAuthService(
	userRepo repositories.UserRepository,
	tokens *auth.TokenManager,
	emailProvider email.Provider,
) AuthService {
	return &AuthServiceImpl{
		userRepo:      userRepo,
		tokens:        tokens,
		emailProvider: emailProvider,
	}
}

// Signup registers a new user. Every field must be non-blank after
// trimming; a duplicate email is a conflict.
func (s *AuthServiceImpl) Signup(req *dto.SignupRequest) (*dto.UserResponse, error) {
	fullName := strings.TrimSpace(req.FullName)
	emailAddr := strings.TrimSpace(req.Email)
	password := strings.TrimSpace(req.Password)
	profession := models.Profession(strings.TrimSpace(string(req.Profession)))

	if fullName == "" || emailAddr == "" || password == "" || profession == "" {
		return nil, apperrors.NewBadRequestError("All fields are required")
	}

	hashedPassword, err := auth.HashPassword(password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	user := &models.User{
		FullName:     fullName,
		Email:        emailAddr,
		PasswordHash: hashedPassword,
		Profession:   profession,
	}

	if err := s.userRepo.Create(user); err != nil {
		if apperrors.Is(err, repositories.ErrUserAlreadyExists) {
			return nil, apperrors.ErrEmailAlreadyExists
		}
		return nil, apperrors.InternalError(err)
	}

	s.sendWelcomeEmail(user)

	return dto.NewUserResponse(user), nil
}

// Login verifies credentials, issues both tokens and persists the refresh
// token on the user record.
func (s *AuthServiceImpl) Login(req *dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := s.userRepo.FindByEmail(req.Email)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, apperrors.InternalError(err)
	}

	if !auth.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, apperrors.ErrInvalidCredentials
	}

	accessToken, err := s.tokens.GenerateAccessToken(user.ID, user.Email, string(user.Profession))
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	refreshToken, err := s.tokens.GenerateRefreshToken(user.ID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	if err := s.userRepo.UpdateRefreshToken(user.ID, refreshToken); err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.LoginResponse{
		User:         dto.NewUserResponse(user),
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

// Logout clears the stored refresh token for the authenticated caller.
func (s *AuthServiceImpl) Logout(userID string) error {
	if err := s.userRepo.ClearRefreshToken(userID); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

// GetIdentity returns the identity for an authenticated check-auth call.
func (s *AuthServiceImpl) GetIdentity(userID string) (*dto.UserResponse, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.NewUnauthorizedError("User not authenticated")
		}
		return nil, apperrors.InternalError(err)
	}
	return dto.NewUserResponse(user), nil
}

func (s *AuthServiceImpl) sendWelcomeEmail(user *models.User) {
	if err := s.emailProvider.Send(email.WelcomeMessage(user.Email, user.FullName)); err != nil {
		logger.Warn("Failed to send welcome email", "user_id", user.ID, "error", err)
	}
}
