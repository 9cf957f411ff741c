// Copyright (c) 2025 s1fetch
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package keychain provides centralized, thread-safe keychain operations for s1fetch.
// This module manages all interactions with the OS keychain/credential store,
// providing a unified interface for storing and retrieving the catalog
// username and password saved by the login command.
//
// The package supports the macOS Keychain, the Windows Credential Manager and
// the freedesktop Secret Service, with thread-safe operations and proper
// error handling.
package keychain

import (
	"errors"
	"runtime"
	"sync"

	"github.com/99designs/keyring"
)

// Global keychain manager instance
var (
	globalManager *Manager
	globalError   error
	mu            sync.Mutex
)

// Manager provides centralized, thread-safe operations for the OS keychain.
type Manager struct {
	mu   sync.RWMutex
	ring keyring.Keyring
}

// ServiceName identifies our keychain/credential store namespace.
const ServiceName = "s1fetch"

// Keys used for storing secrets in the OS keychain.
const (
	KeyCatalogUser     = "catalog_user"
	KeyCatalogPassword = "catalog_password"
)

// NewManager creates a new keychain manager with the OS keyring initialized.
func NewManager() (*Manager, error) {
	ring, err := openRing()
	if err != nil {
		return nil, err
	}
	return &Manager{ring: ring}, nil
}

// GetManager returns the global keychain manager instance.
// If not initialized, it will be created on first call.
// If initialization fails, it will retry on subsequent calls.
func GetManager() (*Manager, error) {
	mu.Lock()
	defer mu.Unlock()

	if globalManager != nil {
		return globalManager, nil
	}

	globalManager, globalError = NewManager()
	if globalError != nil {
		return nil, globalError
	}

	return globalManager, nil
}

// MustGetManager returns the global keychain manager instance.
// Panics if initialization fails. Use only when you're sure initialization will succeed.
func MustGetManager() *Manager {
	manager, err := GetManager()
	if err != nil {
		panic(err)
	}
	return manager
}

// openRing opens the OS keyring using native platform backends only.
func openRing() (keyring.Keyring, error) {
	var allowedBackends []keyring.BackendType
	switch runtime.GOOS {
	case "darwin":
		// Try macOS Keychain first, then pass (password store) as fallback.
		// Pass requires the 'pass' utility installed: brew install pass
		allowedBackends = []keyring.BackendType{
			keyring.KeychainBackend,
			keyring.PassBackend,
		}
	case "windows":
		allowedBackends = []keyring.BackendType{keyring.WinCredBackend}
	default:
		allowedBackends = []keyring.BackendType{
			keyring.SecretServiceBackend,
			keyring.PassBackend,
		}
	}

	cfg := keyring.Config{
		ServiceName:     ServiceName,
		AllowedBackends: allowedBackends,
		PassPrefix:      ServiceName,
	}
	if runtime.GOOS == "windows" {
		cfg.WinCredPrefix = ServiceName
	}

	ring, err := keyring.Open(cfg)
	if err != nil {
		return nil, err
	}
	return ring, nil
}

// SaveCredentials stores the catalog username and password in the OS keychain.
// This method is thread-safe.
func (m *Manager) SaveCredentials(user, password string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if user == "" || password == "" {
		return errors.New("username and password are required")
	}
	if err := m.ring.Set(keyring.Item{Key: KeyCatalogUser, Data: []byte(user)}); err != nil {
		return err
	}
	return m.ring.Set(keyring.Item{Key: KeyCatalogPassword, Data: []byte(password)})
}

// LoadCredentials retrieves the catalog username and password from the keychain.
// This method is thread-safe.
func (m *Manager) LoadCredentials() (user, password string, err error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	u, err := m.ring.Get(KeyCatalogUser)
	if err != nil {
		return "", "", err
	}
	p, err := m.ring.Get(KeyCatalogPassword)
	if err != nil {
		return "", "", err
	}
	if len(u.Data) == 0 || len(p.Data) == 0 {
		return "", "", errors.New("stored credentials are empty")
	}
	return string(u.Data), string(p.Data), nil
}

// ClearCredentials removes the stored catalog credentials from the keychain.
// Missing keys are not treated as errors. This method is thread-safe.
func (m *Manager) ClearCredentials() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	_ = m.ring.Remove(KeyCatalogUser)
	_ = m.ring.Remove(KeyCatalogPassword)
	return nil
}
