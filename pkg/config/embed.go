package config

import (
	_ "embed"
	"strings"
)

//go:embed embedded/defaults.toml
var defaultConfig []byte

// GetDefaultsContent returns the embedded defaults file
func GetDefaultsContent() string {
	return string(defaultConfig)
}

// GenerateConfigContent returns the defaults with every value commented
// out, suitable as a starting user configuration file
func GenerateConfigContent() string {
	return commentOutConfigValues(GetDefaultsContent())
}

// commentOutConfigValues comments out all non-comment, non-blank lines that
// are not section headers
func commentOutConfigValues(content string) string {
	lines := strings.Split(content, "\n")
	result := make([]string, 0, len(lines))

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)

		switch {
		case trimmed == "":
		case strings.HasPrefix(trimmed, "#"):
		case strings.HasPrefix(trimmed, "[") && strings.HasSuffix(trimmed, "]"):
		default:
			line = "# " + line
		}
		result = append(result, line)
	}

	return strings.Join(result, "\n")
}
