package repository

import (
	"strings"
	"sync"

	"golang.org/x/crypto/bcrypt"
)

type Admin struct {
	ID           int
	Email        string
	PasswordHash string
}

type AdminAuthRepository interface {
	GetByEmail(email string) (*Admin, error)
	CreateNewUser(email, password string) error
}

type adminAuthRepository struct {
	mu     sync.RWMutex
	nextID int
	admins map[string]*Admin
}

func NewAdminAuthRepository() AdminAuthRepository {
	return &adminAuthRepository{admins: make(map[string]*Admin)}
}

// GetByEmail returns nil, nil when no admin has that email.
func (r *adminAuthRepository) GetByEmail(email string) (*Admin, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	admin, ok := r.admins[strings.ToLower(email)]
	if !ok {
		return nil, nil
	}
	copied := *admin
	return &copied, nil
}

func (r *adminAuthRepository) CreateNewUser(email, password string) error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	r.admins[strings.ToLower(email)] = &Admin{
		ID:           r.nextID,
		Email:        email,
		PasswordHash: string(hashedPassword),
	}
	return nil
}
