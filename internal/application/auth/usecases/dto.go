package usecases

import (
	"time"

	"helpdesk/internal/domain/user"
)

type UserDTO struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

// AuthResult carries the authenticated user and the session token the
// handler turns into a cookie.
type AuthResult struct {
	User  UserDTO
	Token string
}

func ToUserDTO(u *user.User) UserDTO {
	return UserDTO{
		ID:        u.ID(),
		Name:      u.Name(),
		Email:     u.Email(),
		Role:      u.Role().String(),
		CreatedAt: u.CreatedAt(),
	}
}
