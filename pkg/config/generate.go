package config

import (
	"strings"

	"github.com/arthur-debert/csvmv/pkg/errors"
	"github.com/pelletier/go-toml/v2"
)

const generatedHeader = `# csvmv configuration
#
# Uncomment and edit the values you want to change.
`

// GenerateConfigContent renders cfg as TOML with every value commented out
func GenerateConfigContent(cfg *Config) (string, error) {
	data, err := toml.Marshal(cfg)
	if err != nil {
		return "", errors.Wrap(err, errors.ErrInternal, "failed to render configuration")
	}
	return generatedHeader + "\n" + commentOutConfigValues(string(data)), nil
}

// commentOutConfigValues prefixes every key/value line with "# ". Blank
// lines, comments and [section] headers are left alone so the file still
// parses and shows its structure.
func commentOutConfigValues(content string) string {
	lines := strings.Split(content, "\n")
	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		isHeader := strings.HasPrefix(trimmed, "[") && strings.HasSuffix(trimmed, "]")
		if trimmed == "" || strings.HasPrefix(trimmed, "#") || isHeader {
			continue
		}
		lines[i] = "# " + line
	}
	return strings.Join(lines, "\n")
}
