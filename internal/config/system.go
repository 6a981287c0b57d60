package config

import "os"

// System abstracts the environment and filesystem reads used by Load.
type System interface {
	Getenv(key string) string
	ReadFile(name string) ([]byte, error)
}

// RealSystem implements System using the os package.
type RealSystem struct{}

// Getenv returns the value of the environment variable named by key.
func (RealSystem) Getenv(key string) string {
	return os.Getenv(key)
}

// ReadFile reads the named file and returns the contents.
func (RealSystem) ReadFile(name string) ([]byte, error) {
	return os.ReadFile(name)
}
