// Package config stores API credentials in the system keyring, with an
// encrypted-file fallback for headless environments.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/99designs/keyring"
)

const (
	serviceName       = "birdsong-cli"
	defaultProfile    = "default"
	profilePrefix     = "profile:"
	currentProfileKey = "current_profile"

	envKeyringBackend  = "BIRDSONG_KEYRING_BACKEND"
	envKeyringPassword = "BIRDSONG_KEYRING_PASSWORD"
	envCredentialsDir  = "BIRDSONG_CREDENTIALS_DIR"

	keyringBackendAuto   = "auto"
	keyringBackendFile   = "file"
	keyringBackendSystem = "system"
)

// Account holds the connection details for one profile.
type Account struct {
	BaseURL  string `json:"base_url"`
	Username string `json:"username"`
	Password string `json:"password"`
	Source   string `json:"source,omitempty"`
}

// ErrNotConfigured is returned when no account is configured.
var ErrNotConfigured = errors.New("birdsong not configured - run 'bird auth login' first")

// openKeyring is a package-level function for opening keyrings.
// It can be replaced in tests to use a mock keyring.
var openKeyring = func(cfg keyring.Config) (keyring.Keyring, error) {
	return keyring.Open(cfg)
}

// SetOpenKeyring allows replacing the keyring opener for testing.
// Returns a cleanup function that restores the original.
func SetOpenKeyring(fn func(keyring.Config) (keyring.Keyring, error)) func() {
	original := openKeyring
	openKeyring = fn
	return func() { openKeyring = original }
}

func keyringBackendMode() string {
	switch strings.ToLower(strings.TrimSpace(os.Getenv(envKeyringBackend))) {
	case keyringBackendFile:
		return keyringBackendFile
	case keyringBackendSystem:
		return keyringBackendSystem
	default:
		return keyringBackendAuto
	}
}

func credentialsDir() string {
	if dir := strings.TrimSpace(os.Getenv(envCredentialsDir)); dir != "" {
		return dir
	}
	base, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(base, "birdsong")
}

func filePassword(_ string) (string, error) {
	if pw := os.Getenv(envKeyringPassword); pw != "" {
		return pw, nil
	}
	// Non-interactive default: an empty passphrase still gets an encrypted
	// file on disk, which beats plaintext.
	return "", nil
}

func keyringConfig() keyring.Config {
	cfg := keyring.Config{
		ServiceName: serviceName,
	}

	backend := keyringBackendMode()
	if backend == keyringBackendSystem {
		return cfg
	}

	cfg.FileDir = credentialsDir()
	cfg.FilePasswordFunc = filePassword
	if backend == keyringBackendFile {
		cfg.AllowedBackends = []keyring.BackendType{keyring.FileBackend}
	}
	return cfg
}

func open() (keyring.Keyring, error) {
	ring, err := openKeyring(keyringConfig())
	if err != nil {
		return nil, fmt.Errorf("failed to open keyring: %w", err)
	}
	return ring, nil
}

func profileKey(name string) string {
	return profilePrefix + name
}

// Save stores the account under the named profile ("" means default) and
// makes it the current profile.
func Save(profile string, account Account) error {
	if profile == "" {
		profile = defaultProfile
	}
	if account.BaseURL == "" {
		return errors.New("base URL must not be empty")
	}
	if account.Username == "" || account.Password == "" {
		return errors.New("username and password must not be empty")
	}

	ring, err := open()
	if err != nil {
		return err
	}
	data, err := json.Marshal(account)
	if err != nil {
		return fmt.Errorf("failed to encode account: %w", err)
	}
	if err := ring.Set(keyring.Item{Key: profileKey(profile), Data: data}); err != nil {
		return fmt.Errorf("failed to store credentials: %w", err)
	}
	if err := ring.Set(keyring.Item{Key: currentProfileKey, Data: []byte(profile)}); err != nil {
		return fmt.Errorf("failed to set current profile: %w", err)
	}
	return nil
}

// Load reads the named profile, or the current profile when name is empty.
func Load(profile string) (Account, error) {
	ring, err := open()
	if err != nil {
		return Account{}, err
	}

	if profile == "" {
		profile = currentProfile(ring)
	}

	item, err := ring.Get(profileKey(profile))
	if err != nil {
		if errors.Is(err, keyring.ErrKeyNotFound) {
			return Account{}, ErrNotConfigured
		}
		return Account{}, fmt.Errorf("failed to read credentials: %w", err)
	}

	var account Account
	if err := json.Unmarshal(item.Data, &account); err != nil {
		return Account{}, fmt.Errorf("stored credentials are corrupt: %w", err)
	}
	return account, nil
}

// Delete removes the named profile ("" means current). Deleting the current
// profile clears the current-profile marker.
func Delete(profile string) error {
	ring, err := open()
	if err != nil {
		return err
	}
	current := currentProfile(ring)
	if profile == "" {
		profile = current
	}

	if err := ring.Remove(profileKey(profile)); err != nil && !errors.Is(err, keyring.ErrKeyNotFound) {
		return fmt.Errorf("failed to remove credentials: %w", err)
	}
	if profile == current {
		_ = ring.Remove(currentProfileKey)
	}
	return nil
}

// List returns the stored profile names, sorted.
func List() ([]string, error) {
	ring, err := open()
	if err != nil {
		return nil, err
	}
	keys, err := ring.Keys()
	if err != nil {
		return nil, fmt.Errorf("failed to list profiles: %w", err)
	}
	var profiles []string
	for _, key := range keys {
		if strings.HasPrefix(key, profilePrefix) {
			profiles = append(profiles, strings.TrimPrefix(key, profilePrefix))
		}
	}
	sort.Strings(profiles)
	return profiles, nil
}

func currentProfile(ring keyring.Keyring) string {
	item, err := ring.Get(currentProfileKey)
	if err != nil || len(item.Data) == 0 {
		return defaultProfile
	}
	return string(item.Data)
}
