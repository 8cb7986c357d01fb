package store

import "studentportal-backend-go/internal/models"

// Collection is one per-user document family: {kind}/{userId}.json.
// Load never fails on a missing file; it hands back the kind's default
// document instead. Save fully replaces the stored document.
type Collection[T any] struct {
	store      *Store
	kind       string
	defaultDoc func() T
}

func NewCollection[T any](s *Store, kind string, defaultDoc func() T) Collection[T] {
	return Collection[T]{store: s, kind: kind, defaultDoc: defaultDoc}
}

func (c Collection[T]) Load(userID string) (T, error) {
	doc := c.defaultDoc()
	loaded, err := c.store.ReadJSON(&doc, c.kind, userID)
	if err != nil {
		var zero T
		return zero, err
	}
	if !loaded {
		return c.defaultDoc(), nil
	}
	return doc, nil
}

func (c Collection[T]) Save(userID string, doc T) error {
	return c.store.WriteJSON(doc, c.kind, userID)
}

// Documents bundles every per-user resource kind the portal persists.
type Documents struct {
	Courses   Collection[models.CoursesData]
	GPA       Collection[models.GpaData]
	Notes     Collection[[]models.Note]
	Tasks     Collection[[]models.Task]
	Schedules Collection[models.ScheduleData]
}

// DefaultPeriods are the class periods a fresh schedule starts with.
var DefaultPeriods = []string{"8:30 - 10:15", "10:30 - 12:15", "12:30 - 2:15", "2:30 - 4:15"}

func NewDocuments(s *Store) Documents {
	return Documents{
		Courses: NewCollection(s, "courses", func() models.CoursesData {
			return models.CoursesData{MyCourses: []string{}, CompletedCourses: []string{}}
		}),
		GPA: NewCollection(s, "gpa", func() models.GpaData {
			return models.GpaData{Courses: []models.GpaCourse{}}
		}),
		Notes: NewCollection(s, "notes", func() []models.Note {
			return []models.Note{}
		}),
		Tasks: NewCollection(s, "tasks", func() []models.Task {
			return []models.Task{}
		}),
		Schedules: NewCollection(s, "schedules", func() models.ScheduleData {
			periods := make([]string, len(DefaultPeriods))
			copy(periods, DefaultPeriods)
			return models.ScheduleData{
				Schedule: map[string]map[string]string{},
				Periods:  periods,
			}
		}),
	}
}
