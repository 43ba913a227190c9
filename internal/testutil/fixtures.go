package testutil

import (
	"time"

	"github.com/google/uuid"

	"github.com/lmercer/shiftdoc/internal/domain"
)

// NewAssociate returns a roster entry with a fresh UUID.
func NewAssociate(name, employeeID string) domain.Associate {
	return domain.Associate{
		ID:         uuid.New().String(),
		Name:       name,
		EmployeeID: employeeID,
	}
}

// NewIncident returns a minimal incident for the given associate, stamped at
// the given time.
func NewIncident(associateID string, vtype domain.ViolationType, action domain.Action, at time.Time) domain.Incident {
	return domain.Incident{
		ID:          uuid.New().String(),
		AssociateID: associateID,
		Type:        vtype,
		Details:     "fixture incident",
		Timestamp:   domain.FormatTimestamp(at),
		Action:      action,
	}
}
