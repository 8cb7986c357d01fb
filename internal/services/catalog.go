package services

import "studentportal-backend-go/internal/models"

// The course catalog is the single source of course metadata. Per-user
// enrollment documents store only the ids below.

var generalCourses = []models.CatalogCourse{
	{ID: "scientific-thinking", Name: "Scientific Thinking", Department: "general"},
	{ID: "technical-reports", Name: "Technical Reports", Department: "general"},
	{ID: "laws-ethics", Name: "Laws and Ethics", Department: "general"},
}

var specializedCourses = []models.CatalogCourse{
	{ID: "data-structures", Name: "Data Structures", Department: "computer-engineering"},
	{ID: "databases", Name: "Databases", Department: "computer-engineering"},
	{ID: "software-engineering", Name: "Software Engineering", Department: "computer-engineering"},
	{ID: "artificial-intelligence", Name: "Artificial Intelligence", Department: "computer-engineering"},
	{ID: "power-electronics", Name: "Power Electronics", Department: "electrical-power"},
	{ID: "electrical-circuits", Name: "Electrical Circuits", Department: "electrical-power"},
	{ID: "physics-1", Name: "Physics 1", Department: "physics-mathematics"},
	{ID: "math-1", Name: "Math 1", Department: "physics-mathematics"},
	{ID: "drawing-1", Name: "Drawing 1", Department: "physics-mathematics"},
}

// CatalogCourses lists the catalog, optionally filtered to one
// department. General courses are always included.
func CatalogCourses(department string) []models.CatalogCourse {
	courses := make([]models.CatalogCourse, 0, len(generalCourses)+len(specializedCourses))
	courses = append(courses, generalCourses...)
	for _, course := range specializedCourses {
		if department == "" || course.Department == department {
			courses = append(courses, course)
		}
	}
	return courses
}

// ValidateCourseIDs rejects enrollment lists that reference ids the
// catalog does not carry.
func ValidateCourseIDs(ids []string) error {
	for _, id := range ids {
		if LookupCourse(id) == nil {
			return ErrBadRequest("Unknown course: " + id)
		}
	}
	return nil
}

// LookupCourse resolves one course id. Returns nil for unknown ids.
func LookupCourse(id string) *models.CatalogCourse {
	for _, course := range generalCourses {
		if course.ID == id {
			return &course
		}
	}
	for _, course := range specializedCourses {
		if course.ID == id {
			return &course
		}
	}
	return nil
}
