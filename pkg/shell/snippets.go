package shell

import (
	"fmt"
	"path"
	"strings"

	"github.com/arthur-debert/npmpath/pkg/errors"
	"github.com/arthur-debert/npmpath/pkg/types"
)

// Shell names a supported shell dialect
type Shell string

const (
	Bash       Shell = "bash"
	Zsh        Shell = "zsh"
	Fish       Shell = "fish"
	PowerShell Shell = "powershell"
)

// Supported lists the dialects in help order
var Supported = []Shell{Bash, Zsh, Fish, PowerShell}

// Parse maps a shell name, or the path of a shell binary, to a dialect
func Parse(name string) (Shell, error) {
	slashed := strings.ReplaceAll(strings.TrimSpace(name), `\`, "/")
	base := strings.ToLower(path.Base(slashed))
	base = strings.TrimSuffix(base, ".exe")
	switch base {
	case "bash", "sh":
		return Bash, nil
	case "zsh":
		return Zsh, nil
	case "fish":
		return Fish, nil
	case "powershell", "pwsh":
		return PowerShell, nil
	}
	return "", errors.Newf(errors.ErrInvalidInput, "unsupported shell %q", name).
		WithDetail("shell", name)
}

// Detect picks the dialect from $SHELL, falling back to fallback
func Detect(env types.Environment, fallback Shell) Shell {
	if sh, err := Parse(env.Getenv("SHELL")); err == nil {
		return sh
	}
	return fallback
}

// Snippet returns code that sets key to value in sh. separator splits
// value into the list fish expects.
func Snippet(sh Shell, key, value, separator string) (string, error) {
	switch sh {
	case Bash, Zsh:
		return fmt.Sprintf("export %s=%s\n", key, posixQuote(value)), nil
	case Fish:
		var parts []string
		for _, dir := range strings.Split(value, separator) {
			if dir != "" {
				parts = append(parts, fishQuote(dir))
			}
		}
		return fmt.Sprintf("set -gx %s %s\n", key, strings.Join(parts, " ")), nil
	case PowerShell:
		return fmt.Sprintf("$env:%s = %s\n", key, powershellQuote(value)), nil
	}
	return "", errors.Newf(errors.ErrInvalidInput, "unsupported shell %q", string(sh))
}

// Hook returns the rc-file line that evaluates the snippet printed by
// binary on every shell start
func Hook(sh Shell, binary string) (string, error) {
	switch sh {
	case Bash, Zsh:
		return fmt.Sprintf(`eval "$(%s shell %s)"`, binary, sh), nil
	case Fish:
		return fmt.Sprintf("%s shell fish | source", binary), nil
	case PowerShell:
		return fmt.Sprintf("%s shell powershell | Out-String | Invoke-Expression", binary), nil
	}
	return "", errors.Newf(errors.ErrInvalidInput, "unsupported shell %q", string(sh))
}

func posixQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}

func fishQuote(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	return "'" + strings.ReplaceAll(s, "'", `\'`) + "'"
}

func powershellQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}
