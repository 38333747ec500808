package config

import (
	"fmt"
	"os"
	"strings"
)

// Template returns a commented default config in format "toml" or "yaml".
func Template(format string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "toml":
		return tomlTemplate, nil
	case "yaml", "yml":
		return yamlTemplate, nil
	default:
		return "", fmt.Errorf("unknown config format: %s", format)
	}
}

func WriteTemplate(path, format string, overwrite bool) error {
	template, err := Template(format)
	if err != nil {
		return err
	}
	if !overwrite {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("config already exists: %s", path)
		}
	}
	return os.WriteFile(path, []byte(template), 0o600)
}

const tomlTemplate = `[info]
# 1024 matches MAX_INFO_STRING; 0 disables the cap.
max_bytes = 1024
strict = false

[arena]
bot_separator = " "
type_separator = " "

[log]
level = "info"
timestamp = true
no_color = false
`

const yamlTemplate = `info:
  # 1024 matches MAX_INFO_STRING; 0 disables the cap.
  max_bytes: 1024
  strict: false
arena:
  bot_separator: " "
  type_separator: " "
log:
  level: info
  timestamp: true
  no_color: false
`
