package services

import (
	"strings"
	"time"

	"studentportal-backend-go/internal/models"
	"studentportal-backend-go/internal/store"

	"github.com/google/uuid"
)

const minPasswordLength = 8

// Accounts implements signup, login and profile maintenance over the
// flat user file. EmailPrefix/EmailDomain hold the institution pattern
// student emails must match.
type Accounts struct {
	Users       *store.UserStore
	EmailPrefix string
	EmailDomain string
}

type SignupInput struct {
	Email           string
	Username        string
	Password        string
	ConfirmPassword string
	Department      string
	FirstName       string
	LastName        string
}

type ProfileInput struct {
	Username   string
	FirstName  string
	LastName   string
	Department string
}

// Signup validates the registration form and appends the new record.
// The uniqueness checks and the append run inside one Update so two
// racing signups with the same username end with exactly one success.
func (a Accounts) Signup(in SignupInput) (*models.User, error) {
	if in.Email == "" || in.Username == "" || in.Password == "" || in.Department == "" {
		return nil, ErrBadRequest("Missing required fields")
	}
	if len(in.Password) < minPasswordLength {
		return nil, ErrBadRequest("Password must be at least 8 characters long")
	}
	if in.Password != in.ConfirmPassword {
		return nil, ErrBadRequest("Passwords do not match")
	}
	if !strings.HasPrefix(in.Email, a.EmailPrefix) || !strings.HasSuffix(in.Email, a.EmailDomain) {
		return nil, ErrBadRequest("Email must start with '" + a.EmailPrefix + "' and end with '" + a.EmailDomain + "'")
	}
	hash, err := HashPassword(in.Password)
	if err != nil {
		return nil, WrapError(err, "hash password")
	}
	user := models.User{
		ID:           uuid.NewString(),
		Email:        in.Email,
		Username:     in.Username,
		PasswordHash: hash,
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		Department:   in.Department,
		CreatedAt:    time.Now().UTC().Format(time.RFC3339),
	}
	err = a.Users.Update(func(users []models.User) ([]models.User, error) {
		for _, existing := range users {
			if existing.Email == in.Email {
				return nil, ErrBadRequest("Email already registered")
			}
			if existing.Username == in.Username {
				return nil, ErrBadRequest("Username already taken")
			}
		}
		return append(users, user), nil
	})
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// Login resolves the identifier and verifies the password. Unknown
// identifier and wrong password yield the same generic error, so the
// response never leaks whether an account exists.
func (a Accounts) Login(identifier, password string) (*models.User, error) {
	if identifier == "" || password == "" {
		return nil, ErrBadRequest("Email/username and password are required")
	}
	user, err := a.Users.FindByEmailOrUsername(identifier)
	if err != nil {
		return nil, WrapError(err, "load users")
	}
	if user == nil || !VerifyPassword(password, user.PasswordHash) {
		return nil, ErrUnauthorized("Invalid credentials")
	}
	return user, nil
}

// UpdateProfile merges the submitted fields over the stored record.
// Optional fields keep their previous values when omitted.
func (a Accounts) UpdateProfile(userID string, in ProfileInput) (*models.User, error) {
	if in.Username == "" {
		return nil, ErrBadRequest("Username is required")
	}
	var updated models.User
	err := a.Users.Update(func(users []models.User) ([]models.User, error) {
		index := -1
		for i := range users {
			if users[i].ID == userID {
				index = i
				continue
			}
			if users[i].Username == in.Username {
				return nil, ErrBadRequest("Username already taken")
			}
		}
		if index == -1 {
			return nil, ErrNotFound("User not found")
		}
		user := users[index]
		user.Username = in.Username
		if in.FirstName != "" {
			user.FirstName = in.FirstName
		}
		if in.LastName != "" {
			user.LastName = in.LastName
		}
		if in.Department != "" {
			user.Department = in.Department
		}
		user.UpdatedAt = time.Now().UTC().Format(time.RFC3339)
		users[index] = user
		updated = user
		return users, nil
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// ChangePassword verifies the current password and stores a fresh
// hash for the new one.
func (a Accounts) ChangePassword(userID, currentPassword, newPassword string) error {
	if currentPassword == "" || newPassword == "" {
		return ErrBadRequest("Current password and new password are required")
	}
	if len(newPassword) < minPasswordLength {
		return ErrBadRequest("New password must be at least 8 characters long")
	}
	return a.Users.Update(func(users []models.User) ([]models.User, error) {
		index := -1
		for i := range users {
			if users[i].ID == userID {
				index = i
				break
			}
		}
		if index == -1 {
			return nil, ErrNotFound("User not found")
		}
		if !VerifyPassword(currentPassword, users[index].PasswordHash) {
			return nil, ErrBadRequest("Current password is incorrect")
		}
		hash, err := HashPassword(newPassword)
		if err != nil {
			return nil, WrapError(err, "hash password")
		}
		users[index].PasswordHash = hash
		users[index].UpdatedAt = time.Now().UTC().Format(time.RFC3339)
		return users, nil
	})
}
