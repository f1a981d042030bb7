// Package access restricts list responses to what the viewer may see.
package access

import "github.com/ashkanv/shopdesk/internal/domain"

// Owned is any record that knows which external identity it belongs to.
type Owned interface {
	OwnerID() string
}

// ForViewer returns records unchanged for a privileged viewer; otherwise
// only records owned by the viewer's external identity.
func ForViewer[T Owned](records []T, viewer domain.Viewer) []T {
	if viewer.Privileged() {
		return records
	}
	own := make([]T, 0)
	for _, r := range records {
		if r.OwnerID() == viewer.ExternalID {
			own = append(own, r)
		}
	}
	return own
}
