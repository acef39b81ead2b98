package domain

import "time"

// ItemType classifies a portal item
type ItemType string

const (
	ItemTypeApp     ItemType = "app"
	ItemTypeDataset ItemType = "dataset"
	ItemTypeLayer   ItemType = "layer"
	ItemTypeMap     ItemType = "map"
)

// SharingLevel represents who can see a portal item
type SharingLevel string

const (
	SharingOrg     SharingLevel = "org"
	SharingPrivate SharingLevel = "private"
	SharingPublic  SharingLevel = "public"
)

// Item represents a portal item (domain entity)
type Item struct {
	ID       string
	Modified time.Time
	Owner    string
	Sharing  SharingLevel
	SizeKB   int64
	Title    string
	Type     ItemType
}
