package importer

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/lmercer/shiftdoc/internal/domain"
)

// ConfigExport is the portable "golden config" snapshot: settings plus the
// associate roster, never incidents.
type ConfigExport struct {
	Settings   domain.Settings    `json:"settings"`
	Associates []domain.Associate `json:"associates"`
}

// SaveConfig writes the snapshot as JSON to path.
func SaveConfig(path string, cfg ConfigExport) error {
	if cfg.Associates == nil {
		cfg.Associates = []domain.Associate{}
	}
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}

// LoadConfig reads and parses a golden-config JSON file. A corrupt file
// returns an error; the caller leaves current data untouched.
func LoadConfig(path string) (*ConfigExport, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cfg ConfigExport
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}
	cfg.Settings.Normalize()
	return &cfg, nil
}
