package config

// testSystem provides a mock System for unit tests.
// Unset funcs fall back to RealSystem so tests can use t.TempDir and t.Setenv.
type testSystem struct {
	RealSystem

	GetenvFunc   func(key string) string
	ReadFileFunc func(name string) ([]byte, error)
}

func (s *testSystem) Getenv(key string) string {
	if s.GetenvFunc != nil {
		return s.GetenvFunc(key)
	}
	return s.RealSystem.Getenv(key)
}

func (s *testSystem) ReadFile(name string) ([]byte, error) {
	if s.ReadFileFunc != nil {
		return s.ReadFileFunc(name)
	}
	return s.RealSystem.ReadFile(name)
}

func envMap(values map[string]string) func(string) string {
	return func(key string) string {
		return values[key]
	}
}
