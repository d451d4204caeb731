package scenario

import (
	"bytes"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/conn-castle/install-layer/internal/messages"
)

// Load reads and validates the scenario definition at path.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf(messages.ScenarioMissingFileFmt, path, err)
	}
	return Parse(data, path)
}

// Parse parses and validates scenario TOML data.
// data is the TOML content; source is used in error messages.
func Parse(data []byte, source string) (*Scenario, error) {
	var s Scenario
	if err := toml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf(messages.ScenarioInvalidFmt, source, err)
	}
	if err := decodeStrict(data); err != nil {
		return nil, fmt.Errorf(messages.ScenarioUnrecognizedKeysFmt, source, err)
	}
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf(messages.ScenarioInvalidFmt, source, err)
	}
	return &s, nil
}

// decodeStrict re-decodes the TOML data rejecting unknown fields, catching
// keys toml.Unmarshal silently ignores (typically typos in param attributes).
func decodeStrict(data []byte) error {
	var s Scenario
	decoder := toml.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()
	return decoder.Decode(&s)
}
