// Package env resolves configuration values from the process
// environment with a .env file fallback.
package env

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"
)

// Get retrieves a configuration value from environment or a .env file
// next to the compass config. It checks the system environment variable
// first, then ~/.config/compass/.env.
func Get(key string) string {
	// 1. Check system environment variable first
	if v := os.Getenv(key); v != "" {
		return v
	}

	// 2. Check the config-dir .env file
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return LoadKeyFromEnvFile(filepath.Join(home, ".config", "compass", ".env"), key)
}

// LoadKeyFromEnvFile reads a specific key from a .env file
func LoadKeyFromEnvFile(envPath, key string) string {
	file, err := os.Open(envPath)
	if err != nil {
		return ""
	}
	defer func() {
		_ = file.Close()
	}()

	scanner := bufio.NewScanner(file)
	prefix := key + "="

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		// Skip comments and empty lines
		if len(line) == 0 || line[0] == '#' {
			continue
		}
		// Check if line starts with our key
		if strings.HasPrefix(line, prefix) {
			return strings.TrimSpace(line[len(prefix):])
		}
	}

	return ""
}
