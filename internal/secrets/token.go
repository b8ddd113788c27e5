package secrets

import (
	"errors"
	"os"
	"strings"

	"vacancy-finder/internal/config"

	"github.com/zalando/go-keyring"
)

const (
	// "Service" groups the app's secrets in the OS keychain.
	KeyringService = "vacancy-finder"

	// EnvToken, when set, is used instead of the keychain.
	EnvToken = "VACFINDER_HH_TOKEN"
)

var ErrNoToken = errors.New("hh.ru API token not found")

// GetAPIToken looks in the environment first, then in the keychain entry for
// keyringAccount. ErrNoToken means neither has one; the API works without it.
func GetAPIToken(keyringAccount string) (string, error) {
	if tok := strings.TrimSpace(os.Getenv(EnvToken)); tok != "" {
		return tok, nil
	}

	if strings.TrimSpace(keyringAccount) == "" {
		return "", ErrNoToken
	}
	tok, err := keyring.Get(KeyringService, keyringAccount)
	if errors.Is(err, keyring.ErrNotFound) {
		return "", ErrNoToken
	}
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(tok) == "" {
		return "", ErrNoToken
	}
	return tok, nil
}

func SetAPIToken(keyringAccount string, token string) error {
	if strings.TrimSpace(keyringAccount) == "" {
		return errors.New("keyring account name is empty")
	}
	if strings.TrimSpace(token) == "" {
		return errors.New("token is empty")
	}
	return keyring.Set(KeyringService, keyringAccount, token)
}

func DeleteAPIToken(keyringAccount string) error {
	if strings.TrimSpace(keyringAccount) == "" {
		return errors.New("keyring account name is empty")
	}
	return keyring.Delete(KeyringService, keyringAccount)
}

// TokenFor resolves the token configured for cfg, treating "no token" as "".
func TokenFor(cfg config.Config) (string, error) {
	tok, err := GetAPIToken(cfg.Secrets.KeyringAccount)
	if errors.Is(err, ErrNoToken) {
		return "", nil
	}
	return tok, err
}
