package repositories

import (
	"fmt"
	"strings"
	"sync"

	"shopit/internal/models"
)

// UserDirectory is the credential directory sign-in resolves against. It
// stands in for a real user database; sign-up adds new accounts so they can
// authenticate again later.
type UserDirectory interface {
	GetByEmail(email string) (*models.Credential, error)
	Create(credential *models.Credential) error
}

// MemoryUserDirectory is an in-memory implementation of UserDirectory keyed
// by lowercased email.
type MemoryUserDirectory struct {
	mu          sync.RWMutex
	credentials map[string]models.Credential
}

// NewMemoryUserDirectory creates an empty MemoryUserDirectory.
func NewMemoryUserDirectory() *MemoryUserDirectory {
	return &MemoryUserDirectory{
		credentials: make(map[string]models.Credential),
	}
}

func directoryKey(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// GetByEmail returns the credential record for an email.
func (d *MemoryUserDirectory) GetByEmail(email string) (*models.Credential, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	credential, ok := d.credentials[directoryKey(email)]
	if !ok {
		return nil, fmt.Errorf("user with email %s not found", email)
	}
	return &credential, nil
}

// Create adds a new credential record. The email must not already exist.
func (d *MemoryUserDirectory) Create(credential *models.Credential) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	key := directoryKey(credential.Email)
	if _, ok := d.credentials[key]; ok {
		return fmt.Errorf("email '%s' already registered", credential.Email)
	}
	d.credentials[key] = *credential
	return nil
}
