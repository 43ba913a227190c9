package domain

// Camera is a descriptive location preset selectable when logging an
// incident. Purely metadata; only ID uniqueness matters.
type Camera struct {
	ID              string `json:"id"`
	FriendlyName    string `json:"friendlyName"`
	LiteralPosition string `json:"literalPosition,omitempty"`
	ViewName        string `json:"cameraViewName,omitempty"`
}
