// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package secrets locates the service-account credential for the log store.
// The credential is read from the FIREBASE_SERVICE_ACCOUNT environment
// variable, or from a directory of plain-text secret files where each
// filename is the key and the trimmed contents are the value.
//
// Supported key files: firebase-service-account.
package secrets

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ServiceAccountEnv is the environment variable holding the credential JSON.
const ServiceAccountEnv = "FIREBASE_SERVICE_ACCOUNT"

// ServiceAccountKey is the secret file name holding the credential JSON.
const ServiceAccountKey = "firebase-service-account"

// ErrNoCredential is returned when neither the environment nor the secrets
// directory provides a service account.
var ErrNoCredential = errors.New("no service account credential: set " + ServiceAccountEnv)

// Load reads all files in dir and returns a map of filename to trimmed contents.
// A missing directory is not an error; Load returns an empty map.
// Dotfiles, subdirectories, and empty files are skipped. Unreadable files
// produce a warning on stderr but do not abort.
func Load(dir string) (map[string]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]string{}, nil
		}
		return nil, fmt.Errorf("reading secrets directory %s: %w", dir, err)
	}

	out := make(map[string]string)
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || strings.HasPrefix(name, ".") {
			continue
		}

		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: could not read secret %s: %v\n", name, err)
			continue
		}

		if value := strings.TrimSpace(string(data)); value != "" {
			out[name] = value
		}
	}

	return out, nil
}

// ServiceAccount is the subset of a Google service-account key we inspect.
type ServiceAccount struct {
	Type        string `json:"type"`
	ProjectID   string `json:"project_id"`
	ClientEmail string `json:"client_email"`
}

// Credential is a validated service-account blob.
type Credential struct {
	// JSON is the raw key, passed unchanged to the database client.
	JSON []byte

	ServiceAccount
}

// ResolveCredential picks the credential blob: envValue wins over the
// ServiceAccountKey entry in loaded. The blob must be a JSON object with a
// project_id.
func ResolveCredential(envValue string, loaded map[string]string) (*Credential, error) {
	raw := strings.TrimSpace(envValue)
	if raw == "" {
		raw = loaded[ServiceAccountKey]
	}
	if raw == "" {
		return nil, ErrNoCredential
	}
	return ParseCredential([]byte(raw))
}

// ParseCredential validates a service-account JSON blob.
func ParseCredential(data []byte) (*Credential, error) {
	var sa ServiceAccount
	if err := json.Unmarshal(data, &sa); err != nil {
		return nil, fmt.Errorf("parsing service account: %w", err)
	}
	if sa.ProjectID == "" {
		return nil, fmt.Errorf("service account has no project_id")
	}
	return &Credential{JSON: data, ServiceAccount: sa}, nil
}
