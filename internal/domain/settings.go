package domain

const (
	DefaultShiftStart  = "21:00"
	DefaultShiftEnd    = "07:30"
	DefaultStoreNumber = "318"
)

// Settings is the singleton configuration object. It is mutated
// field-by-field from the settings commands and persisted wholesale after
// each change.
type Settings struct {
	ShiftStart        string    `json:"shiftStart"`
	ShiftEnd          string    `json:"shiftEnd"`
	StoreNumber       string    `json:"storeNumber"`
	ThemeMode         ThemeMode `json:"themeMode,omitempty"`
	ManagerName       string    `json:"managerName,omitempty"`
	CameraPresets     []Camera  `json:"cameraPresets,omitempty"`
	LocationPresets   []string  `json:"locationPresets,omitempty"`
	BypassShiftWindow bool      `json:"debugBypassShiftTime,omitempty"`
}

// DefaultSettings returns the configuration used before the supervisor has
// saved anything.
func DefaultSettings() Settings {
	return Settings{
		ShiftStart:  DefaultShiftStart,
		ShiftEnd:    DefaultShiftEnd,
		StoreNumber: DefaultStoreNumber,
		ThemeMode:   ThemeSystem,
	}
}

// Normalize fills zero-valued fields with defaults. Settings decoded from
// older stored JSON may be missing fields added since.
func (s *Settings) Normalize() {
	if s.ShiftStart == "" {
		s.ShiftStart = DefaultShiftStart
	}
	if s.ShiftEnd == "" {
		s.ShiftEnd = DefaultShiftEnd
	}
	if s.StoreNumber == "" {
		s.StoreNumber = DefaultStoreNumber
	}
	if s.ThemeMode == "" {
		s.ThemeMode = ThemeSystem
	}
}
