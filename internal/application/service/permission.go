package service

import (
	"sync"

	"studysync/internal/domain/constant"
)

// PermissionStatus is the status contract shared by the notification
// scheduler and the calendar provider. Permission queries never fail;
// denial is communicated through the fields, not an error.
type PermissionStatus struct {
	Granted     bool
	CanAskAgain bool
	Status      constant.PermissionState
}

// permissionGate emulates the platform permission grant for a single
// capability. The state starts undetermined; the first request resolves
// it according to the allow policy the wrapper was constructed with.
type permissionGate struct {
	mu          sync.Mutex
	status      constant.PermissionState
	canAskAgain bool
	allow       bool
}

func newPermissionGate(allow bool) *permissionGate {
	return &permissionGate{
		status:      constant.PermissionUndetermined,
		canAskAgain: true,
		allow:       allow,
	}
}

// current returns the status without prompting.
func (g *permissionGate) current() PermissionStatus {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.snapshot()
}

// request prompts for the capability. An undetermined state resolves to
// granted or denied; a denied state stays denied and cannot be asked
// again. Never returns an error.
func (g *permissionGate) request() PermissionStatus {
	g.mu.Lock()
	defer g.mu.Unlock()

	switch g.status {
	case constant.PermissionGranted:
		// Already granted, nothing to ask.
	case constant.PermissionDenied:
		g.canAskAgain = false
	default:
		if g.allow {
			g.status = constant.PermissionGranted
		} else {
			g.status = constant.PermissionDenied
			g.canAskAgain = false
		}
	}
	return g.snapshot()
}

func (g *permissionGate) snapshot() PermissionStatus {
	return PermissionStatus{
		Granted:     g.status == constant.PermissionGranted,
		CanAskAgain: g.canAskAgain,
		Status:      g.status,
	}
}
