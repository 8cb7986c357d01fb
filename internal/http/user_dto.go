package httpapi

import "studentportal-backend-go/internal/models"

// UserDTO is a user record with the credential stripped. Nothing that
// leaves the API ever carries the password hash.
type UserDTO struct {
	ID         string `json:"id"`
	Email      string `json:"email"`
	Username   string `json:"username"`
	FirstName  string `json:"firstName"`
	LastName   string `json:"lastName"`
	Department string `json:"department"`
	CreatedAt  string `json:"createdAt"`
	UpdatedAt  string `json:"updatedAt,omitempty"`
}

type UserResponse struct {
	Success bool    `json:"success"`
	Message string  `json:"message,omitempty"`
	User    UserDTO `json:"user"`
}

func buildUserDTO(user *models.User) UserDTO {
	return UserDTO{
		ID:         user.ID,
		Email:      user.Email,
		Username:   user.Username,
		FirstName:  user.FirstName,
		LastName:   user.LastName,
		Department: user.Department,
		CreatedAt:  user.CreatedAt,
		UpdatedAt:  user.UpdatedAt,
	}
}
