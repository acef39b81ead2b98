package portalmem

import (
	"time"

	"github.com/meridian-tui/meridian/internal/domain"
)

// Demo content shown when the panel runs without a configured portal.

func seedItems() []domain.Item {
	base := time.Date(2026, time.March, 2, 9, 30, 0, 0, time.UTC)
	return []domain.Item{
		{ID: "itm-001", Title: "City Parcels", Type: domain.ItemTypeLayer, Owner: "gis_admin", Sharing: domain.SharingOrg, SizeKB: 18240, Modified: base},
		{ID: "itm-002", Title: "Flood Zones 2026", Type: domain.ItemTypeMap, Owner: "hydrology", Sharing: domain.SharingPublic, SizeKB: 2048, Modified: base.AddDate(0, 0, 3)},
		{ID: "itm-003", Title: "Transit Stops", Type: domain.ItemTypeDataset, Owner: "transit_ops", Sharing: domain.SharingOrg, SizeKB: 640, Modified: base.AddDate(0, 0, 7)},
		{ID: "itm-004", Title: "Permit Tracker", Type: domain.ItemTypeApp, Owner: "gis_admin", Sharing: domain.SharingPrivate, SizeKB: 120, Modified: base.AddDate(0, 0, 10)},
		{ID: "itm-005", Title: "Zoning Overlay", Type: domain.ItemTypeLayer, Owner: "planning", Sharing: domain.SharingOrg, SizeKB: 9216, Modified: base.AddDate(0, 0, 12)},
		{ID: "itm-006", Title: "Street Trees", Type: domain.ItemTypeDataset, Owner: "parks", Sharing: domain.SharingPublic, SizeKB: 3072, Modified: base.AddDate(0, 0, 15)},
	}
}

func seedUsers() []domain.User {
	login := time.Date(2026, time.March, 20, 14, 0, 0, 0, time.UTC)
	return []domain.User{
		{Username: "gis_admin", FullName: "Rita Alves", Email: "rita@example.org", Role: domain.RoleAdmin, LastLogin: login},
		{Username: "hydrology", FullName: "Marco Jensen", Email: "marco@example.org", Role: domain.RolePublisher, LastLogin: login.AddDate(0, 0, -2)},
		{Username: "transit_ops", FullName: "Ana Duarte", Email: "ana@example.org", Role: domain.RolePublisher, LastLogin: login.AddDate(0, 0, -5)},
		{Username: "planning", FullName: "Sam Ortiz", Email: "sam@example.org", Role: domain.RoleViewer, LastLogin: login.AddDate(0, 0, -9)},
		{Username: "parks", FullName: "Lena Fischer", Email: "lena@example.org", Role: domain.RoleViewer, Disabled: true, LastLogin: login.AddDate(0, -1, 0)},
	}
}

func seedGroups() []domain.Group {
	return []domain.Group{
		{ID: "grp-001", Title: "Public Works", Owner: "gis_admin", MemberCount: 14, Access: domain.GroupAccessInvite},
		{ID: "grp-002", Title: "Open Data", Owner: "planning", MemberCount: 32, Access: domain.GroupAccessOpen},
		{ID: "grp-003", Title: "Emergency Response", Owner: "hydrology", MemberCount: 8, Access: domain.GroupAccessInvite},
	}
}
