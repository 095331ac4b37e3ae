package usecase

import "sebetamart/internal/domain/model"

// Actor is the authenticated caller of a use case.
type Actor struct {
	UserID int64
	Role   model.Role
}

func (a Actor) IsAdmin() bool { return a.Role == model.RoleAdmin }
