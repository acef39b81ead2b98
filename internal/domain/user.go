package domain

import "time"

// Role represents a portal user role
type Role string

const (
	RoleAdmin     Role = "admin"
	RolePublisher Role = "publisher"
	RoleViewer    Role = "viewer"
)

// User represents a portal member (domain entity)
type User struct {
	Disabled  bool
	Email     string
	FullName  string
	LastLogin time.Time
	Role      Role
	Username  string
}

// GroupAccess represents who can join a group
type GroupAccess string

const (
	GroupAccessInvite GroupAccess = "invite"
	GroupAccessOpen   GroupAccess = "open"
)

// Group represents a portal group (domain entity)
type Group struct {
	Access      GroupAccess
	ID          string
	MemberCount int
	Owner       string
	Title       string
}
