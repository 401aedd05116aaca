package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/ahmetcoskunkizilkaya/idcaller/internal/config"
	"github.com/ahmetcoskunkizilkaya/idcaller/internal/dto"
	"github.com/ahmetcoskunkizilkaya/idcaller/internal/models"
	"github.com/ahmetcoskunkizilkaya/idcaller/internal/store"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// AuthService creates accounts and issues the tokens the identity
// middleware later verifies.
type AuthService struct {
	store store.Store
	cfg   *config.Config
}

func NewAuthService(st store.Store, cfg *config.Config) *AuthService {
	return &AuthService{store: st, cfg: cfg}
}

func (s *AuthService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, error) {
	name := strings.TrimSpace(req.Name)
	number := strings.TrimSpace(req.Number)
	if name == "" || number == "" || req.Password == "" {
		return nil, required("credentials", "Username, number, and password are required.")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	account := models.Account{
		ID:       uuid.New(),
		Name:     name,
		Number:   number,
		Password: string(hash),
	}
	if email := strings.TrimSpace(req.Email); email != "" {
		account.Email = &email
	}

	if err := s.store.CreateAccount(ctx, &account); err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			return nil, ErrNumberTaken
		}
		return nil, resolutionError("create account", err)
	}

	token, err := s.generateAccessToken(&account)
	if err != nil {
		return nil, err
	}

	return &dto.AuthResponse{
		Message:     "User registered successfully!",
		AccessToken: token,
		User: &dto.UserResponse{
			ID:     account.ID,
			Name:   account.Name,
			Number: account.Number,
			Email:  account.Email,
		},
	}, nil
}

func (s *AuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	number := strings.TrimSpace(req.Number)
	if number == "" || req.Password == "" {
		return nil, required("credentials", "User number and password are required.")
	}

	account, err := s.store.FindAccountByNumber(ctx, number)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, resolutionError("find account by number", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.Password), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := s.generateAccessToken(account)
	if err != nil {
		return nil, err
	}

	return &dto.AuthResponse{
		Message:     "Logged in successfully!",
		AccessToken: token,
	}, nil
}

func (s *AuthService) generateAccessToken(account *models.Account) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":    account.ID.String(),
		"number": account.Number,
		"iat":    now.Unix(),
		"exp":    now.Add(s.cfg.JWTExpiry).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.cfg.JWTSecret))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}
