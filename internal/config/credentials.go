package config

import (
	"errors"
	"io/fs"
	"os"
	"strings"

	"okxpos/internal/okx"

	"github.com/joho/godotenv"
)

// Environment variables holding the OKX API credentials.
const (
	EnvAPIKey     = "OKX_API_KEY"
	EnvSecret     = "OKX_SECRET"
	EnvPassphrase = "OKX_PASSPHRASE"
)

// LoadDotEnv copies variables from a dotenv file into the process environment
// without overriding variables that are already set. A missing file is fine.
func LoadDotEnv(path string) error {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return err
	}
	return nil
}

// EnvCredentials reads the three OKX variables on every call so that a change
// in the environment is picked up by the next refresh.
type EnvCredentials struct {
	Lookup func(string) string
}

func (e EnvCredentials) Credentials() okx.Credentials {
	lookup := e.Lookup
	if lookup == nil {
		lookup = os.Getenv
	}
	return okx.Credentials{
		APIKey:     lookup(EnvAPIKey),
		Secret:     lookup(EnvSecret),
		Passphrase: lookup(EnvPassphrase),
	}
}
