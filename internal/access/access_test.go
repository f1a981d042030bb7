package access

import (
	"testing"

	"github.com/ashkanv/shopdesk/internal/domain"
	"github.com/stretchr/testify/assert"
)

var records = []domain.Payment{
	{ID: "p1", ExternalID: "100"},
	{ID: "p2", ExternalID: "200"},
	{ID: "p3", ExternalID: "100"},
}

func TestForViewerPrivilegedSeesEverything(t *testing.T) {
	viewer := domain.Viewer{ExternalID: "999", Role: domain.RoleSupport}
	assert.Equal(t, records, ForViewer(records, viewer))
}

func TestForViewerMemberSeesOnlyOwn(t *testing.T) {
	viewer := domain.Viewer{ExternalID: "100", Role: domain.RoleMember}
	got := ForViewer(records, viewer)
	assert.Len(t, got, 2)
	for _, r := range got {
		assert.Equal(t, "100", r.ExternalID)
	}
}

func TestForViewerMemberWithNoRecords(t *testing.T) {
	viewer := domain.Viewer{ExternalID: "300", Role: domain.RoleMember}
	assert.Empty(t, ForViewer(records, viewer))
}
