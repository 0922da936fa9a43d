// Package shell renders snippets that export a composed search path into a
// running shell, and the one-line hooks that evaluate them from an rc file.
package shell
