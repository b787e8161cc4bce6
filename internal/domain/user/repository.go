package user

import "context"

type Repository interface {
	Save(ctx context.Context, u *User) error
	Update(ctx context.Context, u *User) error
	GetByID(ctx context.Context, id uint) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	// GetByIDForUpdate loads the user row under an exclusive lock. Used by the
	// area responsibility guard to serialize assignment per user.
	GetByIDForUpdate(ctx context.Context, id uint) (*User, error)
	List(ctx context.Context, includeInactive bool) ([]*User, error)
}
