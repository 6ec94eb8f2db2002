package service

import (
	"dmv/internal/repository"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

const adminTokenTTL = time.Hour

type AdminAuthService interface {
	Login(email, password string) (string, error)
	CreateAdmin(email, password string) error
	ValidateToken(token string) (jwt.MapClaims, error)
}

type adminAuthService struct {
	repo   repository.AdminAuthRepository
	secret []byte
}

func NewAdminAuthService(repo repository.AdminAuthRepository, jwtSecret string) AdminAuthService {
	return &adminAuthService{repo: repo, secret: []byte(jwtSecret)}
}

func (s *adminAuthService) Login(email, password string) (string, error) {
	admin, err := s.repo.GetByEmail(email)
	if err != nil {
		return "", err
	}
	if admin == nil {
		return "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}

	claims := jwt.MapClaims{
		"admin_id": admin.ID,
		"email":    admin.Email,
		"exp":      time.Now().Add(adminTokenTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

func (s *adminAuthService) CreateAdmin(email, password string) error {
	if email == "" || password == "" {
		return errors.New("email and password cannot be empty")
	}
	existing, err := s.repo.GetByEmail(email)
	if err != nil {
		return err
	}
	if existing != nil {
		return fmt.Errorf("admin %s already exists", email)
	}
	return s.repo.CreateNewUser(email, password)
}

// ValidateToken checks the signature and expiry of an admin token.
func (s *adminAuthService) ValidateToken(tokenString string) (jwt.MapClaims, error) {
	claims := jwt.MapClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired())
	if err != nil {
		return nil, fmt.Errorf("parse admin token: %w", err)
	}
	if !token.Valid {
		return nil, errors.New("invalid admin token")
	}
	return claims, nil
}
