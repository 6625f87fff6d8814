package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Top-level YAML config key names used for shallow merge.
const (
	keyLook    = "look"
	keyFormat  = "format"
	keyColor   = "color"
	keyLogging = "logging"
	keyOptions = "options"
)

// knownTopLevelKeys lists the YAML keys that correspond to exported Config fields.
// Keys not in this list are silently ignored during merge.
//
//nolint:gochecknoglobals // Compile-time constant lookup table.
var knownTopLevelKeys = map[string]bool{
	keyLook:    true,
	keyFormat:  true,
	keyColor:   true,
	keyLogging: true,
	keyOptions: true,
}

// ShallowMergeYAML loads a YAML file and merges its top-level keys onto
// the target Config. Keys present in the overlay replace entire sections
// in the target. Keys absent in the overlay are left unchanged.
func ShallowMergeYAML(target *Config, overlayPath string) error {
	if target == nil {
		return errors.New("nil target *Config in ShallowMergeYAML")
	}

	data, err := os.ReadFile(overlayPath)
	if err != nil {
		return fmt.Errorf("reading overlay file %s: %w", overlayPath, err)
	}

	var overlay map[string]any
	if err = yaml.Unmarshal(data, &overlay); err != nil {
		return fmt.Errorf("parsing overlay YAML from %s: %w", overlayPath, err)
	}

	// Empty or comment-only file: nothing to merge.
	if len(overlay) == 0 {
		return nil
	}

	for key, value := range overlay {
		if !knownTopLevelKeys[key] {
			continue
		}

		sectionBytes, marshalErr := yaml.Marshal(value)
		if marshalErr != nil {
			return fmt.Errorf("re-marshalling overlay section %q: %w", key, marshalErr)
		}

		if err = unmarshalSection(target, key, sectionBytes); err != nil {
			return fmt.Errorf("applying overlay section %q: %w", key, err)
		}
	}

	return nil
}

// unmarshalSection unmarshals one section into a fresh value, so that the
// section replaces the target field instead of merging into its maps.
func unmarshalSection(target *Config, key string, data []byte) error {
	switch key {
	case keyLook:
		var v LookConfig
		if err := yaml.Unmarshal(data, &v); err != nil {
			return err
		}
		target.Look = v
	case keyFormat:
		var v FormatConfig
		if err := yaml.Unmarshal(data, &v); err != nil {
			return err
		}
		target.Format = v
	case keyColor:
		var v ColorConfig
		if err := yaml.Unmarshal(data, &v); err != nil {
			return err
		}
		target.Color = v
	case keyLogging:
		var v LoggingConfig
		if err := yaml.Unmarshal(data, &v); err != nil {
			return err
		}
		target.Logging = v
	case keyOptions:
		var v OptionsConfig
		if err := yaml.Unmarshal(data, &v); err != nil {
			return err
		}
		target.Options = v
	default:
		return fmt.Errorf("unknown config key: %s", key)
	}
	return nil
}
