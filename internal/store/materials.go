package store

import "studentportal-backend-go/internal/models"

const materialsKind = "materials"

// MaterialsStore keeps one category array per (user, course) pair at
// materials/{userId}/{courseId}.json.
type MaterialsStore struct {
	store *Store
}

func NewMaterialsStore(s *Store) *MaterialsStore {
	return &MaterialsStore{store: s}
}

func (m *MaterialsStore) Load(userID, courseID string) ([]models.MaterialCategory, error) {
	categories := []models.MaterialCategory{}
	if _, err := m.store.ReadJSON(&categories, materialsKind, userID, courseID); err != nil {
		return nil, err
	}
	return categories, nil
}

func (m *MaterialsStore) Save(userID, courseID string, categories []models.MaterialCategory) error {
	return m.store.WriteJSON(categories, materialsKind, userID, courseID)
}

// AppendFile adds file metadata to the given category under the
// document lock, creating the category with placeholder text when it
// does not exist yet.
func (m *MaterialsStore) AppendFile(userID, courseID, categoryID string, file models.FileMeta) error {
	categories := []models.MaterialCategory{}
	return m.store.UpdateJSON(&categories, func(bool) error {
		for i := range categories {
			if categories[i].ID == categoryID {
				categories[i].Files = append(categories[i].Files, file)
				return nil
			}
		}
		categories = append(categories, models.MaterialCategory{
			ID:          categoryID,
			Title:       "New Category",
			Description: "Automatically created category",
			Files:       []models.FileMeta{file},
		})
		return nil
	}, materialsKind, userID, courseID)
}
