// Package discipline implements the progressive discipline policy: given an
// associate's incident history inside the current shift window and a new
// violation, decide the required corrective action. The policy is a pure
// function of re-counted history; nothing here reads a clock or a store.
package discipline

import (
	"fmt"

	"github.com/lmercer/shiftdoc/internal/domain"
	"github.com/lmercer/shiftdoc/internal/shift"
)

// Decision is the outcome of evaluating the policy for a candidate incident.
type Decision struct {
	Action          domain.Action
	ManagerNotified bool
	// Note carries the fixed manager-notification text appended to the
	// action notes on the escalated hostility warn.
	Note string
}

// Terminal reports whether the decided action ends the associate's shift.
func (d Decision) Terminal() bool { return d.Action.Terminal() }

// PriorCount counts incidents for the same associate and violation type
// whose timestamp falls within the current shift window. Unwitnessed logs
// (action Logged) never count toward escalation, and malformed timestamps
// are treated as outside the window.
func PriorCount(incidents []domain.Incident, associateID string, vtype domain.ViolationType, w shift.Window) int {
	n := 0
	for _, inc := range incidents {
		if inc.AssociateID != associateID || inc.Type != vtype {
			continue
		}
		if inc.Action == domain.ActionLogged {
			continue
		}
		t, ok := inc.Time()
		if !ok || !w.Contains(t) {
			continue
		}
		n++
	}
	return n
}

// Decide applies the policy.
//
// OSHA grants at most one non-terminal occurrence per shift: a first offense
// with compliance (or compliance untracked) is coached, anything further, or
// an explicitly recorded refusal to comply, is a dismissal.
//
// Hostility runs a three-strike ladder: warn, warn with the manager
// notified, dismissal.
//
// A purely second-hand report (mode Reported) is only logged; no corrective
// action is issued for unconfirmed reports.
func Decide(vtype domain.ViolationType, priorCount int, complied *bool, mode domain.ReportMode, managerName string) Decision {
	if mode == domain.ReportReported {
		return Decision{Action: domain.ActionLogged}
	}

	switch vtype {
	case domain.ViolationOSHA:
		if priorCount == 0 && (complied == nil || *complied) {
			return Decision{Action: domain.ActionCoached}
		}
		return Decision{Action: domain.ActionDismissal}

	case domain.ViolationHostility:
		switch {
		case priorCount == 0:
			return Decision{Action: domain.ActionWarn}
		case priorCount == 1:
			return Decision{
				Action:          domain.ActionWarnMgr,
				ManagerNotified: true,
				Note:            managerNote(managerName),
			}
		default:
			return Decision{Action: domain.ActionDismissal}
		}
	}

	// Unknown violation types fall back to a plain warn rather than failing;
	// the caller validates the type before persisting.
	return Decision{Action: domain.ActionWarn}
}

func managerNote(managerName string) string {
	if managerName == "" {
		managerName = "the on-duty manager"
	}
	return fmt.Sprintf("Second hostility occurrence this shift; %s was notified per policy.", managerName)
}

// ActiveAssociates filters the roster to associates who may still be the
// subject of a new incident: blank names are dropped, as is anyone dismissed
// within the current shift window.
func ActiveAssociates(associates []domain.Associate, incidents []domain.Incident, w shift.Window) []domain.Associate {
	dismissed := make(map[string]bool)
	for _, inc := range incidents {
		if inc.Action != domain.ActionDismissal {
			continue
		}
		t, ok := inc.Time()
		if !ok || !w.Contains(t) {
			continue
		}
		dismissed[inc.AssociateID] = true
	}

	active := make([]domain.Associate, 0, len(associates))
	for _, a := range associates {
		if a.Name == "" || dismissed[a.ID] {
			continue
		}
		active = append(active, a)
	}
	return active
}
