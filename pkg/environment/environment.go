// Package environment provides implementations of types.Environment: the
// process environment and an isolated in-memory copy.
package environment

import (
	"os"
	"runtime"
	"sort"
	"strings"
	"sync"

	"github.com/arthur-debert/npmpath/pkg/types"
)

// osEnv implements types.Environment over the process environment
type osEnv struct{}

// OS returns the process environment
func OS() types.Environment {
	return osEnv{}
}

func (osEnv) Getenv(key string) string { return os.Getenv(key) }
func (osEnv) LookupEnv(key string) (string, bool) { return os.LookupEnv(key) }
func (osEnv) Setenv(key, value string) error { return os.Setenv(key, value) }
func (osEnv) Unsetenv(key string) error { return os.Unsetenv(key) }
func (osEnv) Environ() []string { return os.Environ() }

// Map is an in-memory environment. It is safe for concurrent use.
// On Windows keys are matched case-insensitively, like the process
// environment there.
type Map struct {
	mu   sync.RWMutex
	vars map[string]string
	fold bool
}

// NewMap creates an environment holding a copy of vars
func NewMap(vars map[string]string) *Map {
	m := &Map{
		vars: make(map[string]string, len(vars)),
		fold: runtime.GOOS == "windows",
	}
	for k, v := range vars {
		m.vars[k] = v
	}
	return m
}

// FromEnviron creates an environment from "key=value" pairs, as returned by
// os.Environ. Later duplicates win.
func FromEnviron(environ []string) *Map {
	m := NewMap(nil)
	for _, kv := range environ {
		key, value, ok := strings.Cut(kv, "=")
		if !ok || key == "" {
			continue
		}
		_ = m.Setenv(key, value)
	}
	return m
}

// Snapshot copies the process environment into a new Map
func Snapshot() *Map {
	return FromEnviron(os.Environ())
}

// find returns the stored spelling of key
func (m *Map) find(key string) (string, bool) {
	if _, ok := m.vars[key]; ok {
		return key, true
	}
	if m.fold {
		for k := range m.vars {
			if strings.EqualFold(k, key) {
				return k, true
			}
		}
	}
	return "", false
}

func (m *Map) Getenv(key string) string {
	v, _ := m.LookupEnv(key)
	return v
}

func (m *Map) LookupEnv(key string) (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	k, ok := m.find(key)
	if !ok {
		return "", false
	}
	return m.vars[k], true
}

func (m *Map) Setenv(key, value string) error {
	if key == "" || strings.ContainsAny(key, "=\x00") {
		return &os.SyscallError{Syscall: "setenv", Err: os.ErrInvalid}
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if k, ok := m.find(key); ok {
		key = k
	}
	m.vars[key] = value
	return nil
}

func (m *Map) Unsetenv(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if k, ok := m.find(key); ok {
		delete(m.vars, k)
	}
	return nil
}

// Environ returns the variables sorted by key
func (m *Map) Environ() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]string, 0, len(m.vars))
	for k, v := range m.vars {
		out = append(out, k+"="+v)
	}
	sort.Strings(out)
	return out
}
