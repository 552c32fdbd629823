package response

import (
	"rentigo/internal/domain/user"
	"rentigo/internal/usecase/queries"

	"github.com/google/uuid"
)

type UserResponse struct {
	ID    uuid.UUID `json:"id"`
	Email string    `json:"email"`
	Role  string    `json:"role"`
}

type AuthResponse struct {
	AccessToken string       `json:"access_token"`
	User        UserResponse `json:"user"`
}

func FromUserEntity(u *user.User, token string) *AuthResponse {
	return &AuthResponse{
		AccessToken: token,
		User: UserResponse{
			ID:    u.ID(),
			Email: u.Email().Value(),
			Role:  u.Role().String(),
		},
	}
}

func FromAuthorizedUserView(view *queries.AuthorizedUserView) *UserResponse {
	return &UserResponse{
		ID:    view.ID,
		Email: view.Email,
		Role:  view.Role,
	}
}
