package store

import "studentportal-backend-go/internal/models"

const usersKey = "users"

// UserStore keeps every account in one users.json array, in signup
// order. All mutations go through Update so two concurrent writers
// cannot silently drop each other's records.
type UserStore struct {
	store *Store
}

func NewUserStore(s *Store) *UserStore {
	return &UserStore{store: s}
}

// LoadAll returns all user records, oldest first. A missing backing
// file yields an empty slice.
func (u *UserStore) LoadAll() ([]models.User, error) {
	users := []models.User{}
	if _, err := u.store.ReadJSON(&users, usersKey); err != nil {
		return nil, err
	}
	return users, nil
}

// SaveAll atomically replaces the whole user file.
func (u *UserStore) SaveAll(users []models.User) error {
	return u.store.WriteJSON(users, usersKey)
}

// Update applies fn to the current records under the user-file lock
// and writes the result back. fn may return a ServiceError-compatible
// error to abort without touching the file.
func (u *UserStore) Update(fn func(users []models.User) ([]models.User, error)) error {
	users := []models.User{}
	return u.store.UpdateJSON(&users, func(bool) error {
		updated, err := fn(users)
		if err != nil {
			return err
		}
		users = updated
		return nil
	}, usersKey)
}

// FindByID resolves a session token to its user record by linear scan.
// Returns nil when no record matches.
func (u *UserStore) FindByID(id string) (*models.User, error) {
	users, err := u.LoadAll()
	if err != nil {
		return nil, err
	}
	for i := range users {
		if users[i].ID == id {
			return &users[i], nil
		}
	}
	return nil, nil
}

// FindByEmailOrUsername looks a user up by exact email or username
// equality, the way the login form submits either.
func (u *UserStore) FindByEmailOrUsername(identifier string) (*models.User, error) {
	users, err := u.LoadAll()
	if err != nil {
		return nil, err
	}
	for i := range users {
		if users[i].Email == identifier || users[i].Username == identifier {
			return &users[i], nil
		}
	}
	return nil, nil
}
