package rbac

import "go-writeup/internal/domain"

type (
	EnforceRequest     = domain.EnforceRequest
	EnforceResponse    = domain.EnforceResponse
	PermissionResponse = domain.PermissionResponse
)
