package config

import (
	"encoding/json"
	"fmt"

	"github.com/pelletier/go-toml/v2"
)

// Supported formats for Marshal.
const (
	FormatTOML = "toml"
	FormatJSON = "json"
)

// Marshal renders the effective configuration in the given format.
func Marshal(cfg *Config, format string) ([]byte, error) {
	switch format {
	case "", FormatTOML:
		data, err := toml.Marshal(cfg)
		if err != nil {
			return nil, NewConfigErrorWithCause(ConfigInvalid, "", "failed to encode TOML", err)
		}
		return data, nil
	case FormatJSON:
		data, err := json.MarshalIndent(cfg, "", "  ")
		if err != nil {
			return nil, NewConfigErrorWithCause(ConfigInvalid, "", "failed to encode JSON", err)
		}
		return append(data, '\n'), nil
	default:
		return nil, NewConfigErrorWithField(
			ConfigInvalid,
			"",
			"format",
			fmt.Sprintf("unsupported format %q (expected toml or json)", format),
		)
	}
}
