package services

import (
	"RealEstateAPI/config/database"
	"RealEstateAPI/models"
	"RealEstateAPI/utils"
	"context"
	"errors"
	"net/http"
	"os"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"
)

var logger = zerolog.New(os.Stdout).With().Timestamp().Logger()

// Mailer sends the registration greeting; failures never fail the
// primary operation.
type Mailer interface {
	SendWelcomeEmail(to, userName string) error
}

type AuthService struct {
	Store        UserStore
	TokenService *TokenService
	MailService  Mailer
}

// NewAuthService initializes AuthService against Firestore
func NewAuthService() *AuthService {
	return &AuthService{
		Store:        NewFirestoreUserStore(database.GetFirestoreClient()),
		TokenService: NewTokenService(),
		MailService:  NewMailService(),
	}
}

// Register creates a new user. Email uniqueness is enforced by the
// store's constraint, so two concurrent registrations with the same
// email cannot both commit.
func (s *AuthService) Register(ctx context.Context, req models.RegisterRequest) (*models.AuthResponse, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		logger.Error().Err(err).Msg("Error hashing password")
		return nil, utils.NewCustomError(http.StatusInternalServerError, "Failed to register user")
	}

	now := time.Now()
	user := models.User{
		Name:         req.Name,
		Email:        req.Email,
		Password:     string(hashed),
		ProfileImage: models.DefaultProfileImage,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	userID, err := s.Store.Create(ctx, user)
	if errors.Is(err, ErrEmailTaken) {
		return nil, utils.NewCustomError(http.StatusBadRequest, "User already exists")
	}
	if err != nil {
		return nil, utils.NewCustomError(http.StatusInternalServerError, "Failed to register user")
	}
	user.ID = userID

	// Welcome email is best effort; registration already committed.
	go func(email, name string) {
		if err := s.MailService.SendWelcomeEmail(email, name); err != nil {
			logger.Error().Err(err).Str("email", email).Msg("Failed to send welcome email")
		} else {
			logger.Info().Str("email", email).Msg("Welcome email sent")
		}
	}(user.Email, user.Name)

	token, err := s.TokenService.Issue(user.ID)
	if err != nil {
		logger.Error().Err(err).Msg("Error issuing token")
		return nil, utils.NewCustomError(http.StatusInternalServerError, "Failed to register user")
	}

	return &models.AuthResponse{
		ID:           user.ID,
		Name:         user.Name,
		Email:        user.Email,
		ProfileImage: user.ProfileImage,
		Token:        token,
	}, nil
}

// Login authenticates by email and password. Unknown email and wrong
// password produce the same error so callers cannot tell which failed.
func (s *AuthService) Login(ctx context.Context, req models.LoginRequest) (*models.AuthResponse, error) {
	user, err := s.Store.FindByEmail(ctx, req.Email)
	if errors.Is(err, ErrUserNotFound) {
		return nil, utils.NewCustomError(http.StatusUnauthorized, "Invalid email or password")
	}
	if err != nil {
		return nil, utils.NewCustomError(http.StatusInternalServerError, "Failed to log in")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, utils.NewCustomError(http.StatusUnauthorized, "Invalid email or password")
	}

	token, err := s.TokenService.Issue(user.ID)
	if err != nil {
		logger.Error().Err(err).Msg("Error issuing token")
		return nil, utils.NewCustomError(http.StatusInternalServerError, "Failed to log in")
	}

	return &models.AuthResponse{
		ID:           user.ID,
		Name:         user.Name,
		Email:        user.Email,
		ProfileImage: user.ProfileImage,
		Token:        token,
	}, nil
}

// GetUserByID loads a user record by document id
func (s *AuthService) GetUserByID(ctx context.Context, userID string) (*models.User, error) {
	user, err := s.Store.Get(ctx, userID)
	if errors.Is(err, ErrUserNotFound) {
		return nil, utils.NewCustomError(http.StatusNotFound, "User not found")
	}
	if err != nil {
		return nil, utils.NewCustomError(http.StatusInternalServerError, "Failed to fetch user")
	}
	return user, nil
}

// UpdateProfile applies a partial patch. The password is re-hashed
// only when a new plaintext value is supplied. A fresh token is issued
// because identity-relevant fields may have changed.
func (s *AuthService) UpdateProfile(ctx context.Context, userID string, req models.UpdateProfileRequest, profileImageURL string) (*models.AuthResponse, error) {
	user, err := s.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.Name != "" {
		user.Name = req.Name
	}
	if req.Email != "" {
		user.Email = req.Email
	}
	if profileImageURL != "" {
		user.ProfileImage = profileImageURL
	}
	if req.Password != "" {
		hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			logger.Error().Err(err).Msg("Error hashing password")
			return nil, utils.NewCustomError(http.StatusInternalServerError, "Failed to update profile")
		}
		user.Password = string(hashed)
	}
	user.UpdatedAt = time.Now()

	if err := s.Store.Update(ctx, userID, *user); err != nil {
		return nil, utils.NewCustomError(http.StatusInternalServerError, "Failed to update profile")
	}

	token, err := s.TokenService.Issue(user.ID)
	if err != nil {
		logger.Error().Err(err).Msg("Error issuing token")
		return nil, utils.NewCustomError(http.StatusInternalServerError, "Failed to update profile")
	}

	return &models.AuthResponse{
		ID:           user.ID,
		Name:         user.Name,
		Email:        user.Email,
		ProfileImage: user.ProfileImage,
		Token:        token,
	}, nil
}
