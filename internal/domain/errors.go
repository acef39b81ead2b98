package domain

import "errors"

var (
	ErrGroupNotFound = errors.New("group not found")
	ErrItemNotFound  = errors.New("item not found")
	ErrUserNotFound  = errors.New("user not found")
)
