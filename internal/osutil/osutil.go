// Package osutil wraps the OS lookups the journal depends on so tests can fake them.
package osutil

import "os"

// PathProvider abstracts OS-level lookups used to locate the config file and
// read environment overrides.
type PathProvider interface {
	UserConfigDir() (string, error)
	MkdirAll(path string, perm os.FileMode) error
	LookupEnv(key string) (string, bool)
}

// DefaultPathProvider uses real OS functions.
type DefaultPathProvider struct{}

// UserConfigDir returns the default root directory for user-specific configuration data.
func (DefaultPathProvider) UserConfigDir() (string, error) {
	return os.UserConfigDir()
}

// MkdirAll creates a directory named path, along with any necessary parents.
func (DefaultPathProvider) MkdirAll(path string, perm os.FileMode) error {
	return os.MkdirAll(path, perm)
}

// LookupEnv reads an environment variable.
func (DefaultPathProvider) LookupEnv(key string) (string, bool) {
	return os.LookupEnv(key)
}

// Provider is the package-level provider. Tests can replace it.
var Provider PathProvider = DefaultPathProvider{}

// SetProvider sets a custom provider (for testing).
func SetProvider(p PathProvider) {
	Provider = p
}

// ResetProvider resets to the default provider.
func ResetProvider() {
	Provider = DefaultPathProvider{}
}
