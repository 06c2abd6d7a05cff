package domain

import "errors"

var (
	ErrInvalidInviteCode  = errors.New("invalid or inactive invite code")
	ErrInvalidCredentials = errors.New("incorrect email or password")
	ErrAccountNotFound    = errors.New("account not found")
	ErrEmailTaken         = errors.New("email already registered")
	ErrNotAuthorized      = errors.New("not authorized for the admin console")
	ErrPasswordTooShort   = errors.New("password must be at least 6 characters")
	ErrPasswordMismatch   = errors.New("passwords do not match")
	ErrClientNotFound     = errors.New("client not found")
	ErrClientExists       = errors.New("client with this email or invite code already exists")
	ErrActionNotFound     = errors.New("action item not found")
	ErrKPINotFound        = errors.New("kpi snapshot not found")
	ErrEngagementNotFound = errors.New("engagement not found")
	ErrForbidden          = errors.New("access forbidden")
)
