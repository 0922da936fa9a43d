package npmpath

import "strings"

// Composition is the outcome of one compose call
type Composition struct {
	Cwd     string  `json:"cwd" yaml:"cwd"`
	Root    string  `json:"root,omitempty" yaml:"root,omitempty"`
	PathKey string  `json:"path_key" yaml:"path_key"`
	Entries []Entry `json:"entries" yaml:"entries"`
}

// Dirs returns the directories in search order
func (c *Composition) Dirs() []string {
	dirs := make([]string, len(c.Entries))
	for i, e := range c.Entries {
		dirs[i] = e.Dir
	}
	return dirs
}

// BySource returns the directories contributed by source, in order
func (c *Composition) BySource(source Source) []string {
	var dirs []string
	for _, e := range c.Entries {
		if e.Source == source {
			dirs = append(dirs, e.Dir)
		}
	}
	return dirs
}

// String joins the directories with Separator
func (c *Composition) String() string {
	return strings.Join(c.Dirs(), Separator)
}
