package npmpath

import (
	"path/filepath"
	"runtime"
	"strings"
)

// Source records why an entry is part of a composition
type Source string

const (
	// SourceLocalBin is a node_modules/.bin directory found during ascent
	SourceLocalBin Source = "local-bin"

	// SourceExecutable is the directory of the running executable
	SourceExecutable Source = "executable"

	// SourceAuxiliary is the node-gyp-bin directory bundled with npm
	SourceAuxiliary Source = "auxiliary"

	// SourceInherited comes from the search path already in the environment
	SourceInherited Source = "inherited"
)

// Entry is one directory of a search path
type Entry struct {
	Dir    string `json:"dir" yaml:"dir"`
	Source Source `json:"source" yaml:"source"`
}

// SearchPath is an ordered set of directories. Entries are compared by
// their cleaned form (case-folded on Windows); the first spelling wins.
type SearchPath struct {
	entries []Entry
	index   map[string]int
}

// NewSearchPath creates an empty search path
func NewSearchPath() *SearchPath {
	return &SearchPath{index: make(map[string]int)}
}

// ParseSearchPath splits a separator-joined list into a search path
func ParseSearchPath(list string, source Source) *SearchPath {
	s := NewSearchPath()
	s.AddList(list, source)
	return s
}

// normalize returns the key used for duplicate detection
func normalize(dir string) string {
	key := filepath.Clean(dir)
	if runtime.GOOS == "windows" {
		key = strings.ToLower(key)
	}
	return key
}

// Add appends dir unless it is empty or already present. It reports
// whether dir was added.
func (s *SearchPath) Add(dir string, source Source) bool {
	if dir == "" {
		return false
	}
	key := normalize(dir)
	if _, ok := s.index[key]; ok {
		return false
	}
	s.index[key] = len(s.entries)
	s.entries = append(s.entries, Entry{Dir: dir, Source: source})
	return true
}

// AddList adds every element of a separator-joined list and returns how
// many were new
func (s *SearchPath) AddList(list string, source Source) int {
	added := 0
	for _, dir := range filepath.SplitList(list) {
		if s.Add(dir, source) {
			added++
		}
	}
	return added
}

// Contains reports whether dir, or an equivalent spelling, is present
func (s *SearchPath) Contains(dir string) bool {
	_, ok := s.index[normalize(dir)]
	return ok
}

// Index returns the position of dir, or -1
func (s *SearchPath) Index(dir string) int {
	if i, ok := s.index[normalize(dir)]; ok {
		return i
	}
	return -1
}

// Len returns the number of entries
func (s *SearchPath) Len() int {
	return len(s.entries)
}

// Entries returns a copy of the entries in order
func (s *SearchPath) Entries() []Entry {
	out := make([]Entry, len(s.entries))
	copy(out, s.entries)
	return out
}

// Dirs returns the directories in order
func (s *SearchPath) Dirs() []string {
	out := make([]string, len(s.entries))
	for i, e := range s.entries {
		out[i] = e.Dir
	}
	return out
}

// String joins the directories with Separator
func (s *SearchPath) String() string {
	return strings.Join(s.Dirs(), Separator)
}
