package config

import (
	"strings"

	gotoml "github.com/pelletier/go-toml/v2"

	"github.com/arthur-debert/sdcops/pkg/errors"
)

const generatedHeader = "# sdcops configuration, generated by sdcops gen-config\n\n"

// GenerateTemplate returns the defaults file with every value commented out,
// ready to be saved as the user configuration file.
func GenerateTemplate() string {
	return commentOutConfigValues(DefaultsContent())
}

// Generate renders cfg as TOML. The password is replaced unless
// withSecrets is set.
func Generate(cfg *Config, withSecrets bool) (string, error) {
	out := *cfg
	if !withSecrets && out.Connection.Password != "" {
		out.Connection.Password = "********"
	}

	data, err := gotoml.Marshal(out)
	if err != nil {
		return "", errors.Wrap(err, errors.ErrInternal, "cannot render configuration")
	}
	return generatedHeader + string(data), nil
}

// commentOutConfigValues takes the TOML content and comments out all non-comment, non-blank lines
// that contain configuration values (assignments)
func commentOutConfigValues(content string) string {
	lines := strings.Split(content, "\n")
	result := make([]string, 0, len(lines))

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)

		switch {
		case trimmed == "", strings.HasPrefix(trimmed, "#"):
			result = append(result, line)
		case strings.HasPrefix(trimmed, "[") && strings.HasSuffix(trimmed, "]"):
			// Section headers stay active so uncommented values nest correctly.
			result = append(result, line)
		default:
			result = append(result, "# "+line)
		}
	}

	return strings.Join(result, "\n")
}
