package services

import (
	"testing"

	"studentportal-backend-go/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeGPA(t *testing.T) {
	tests := []struct {
		name    string
		courses []models.GpaCourse
		want    float64
	}{
		{name: "no courses", courses: nil, want: 0},
		{
			name: "single A",
			courses: []models.GpaCourse{
				{Name: "Physics 1", CreditHours: 3, Grade: "A"},
			},
			want: 4.0,
		},
		{
			name: "credit weighted",
			courses: []models.GpaCourse{
				{Name: "Math 1", CreditHours: 4, Grade: "A"},
				{Name: "Drawing 1", CreditHours: 2, Grade: "C"},
			},
			want: 3.33,
		},
		{
			name: "failure drags average",
			courses: []models.GpaCourse{
				{Name: "Math 1", CreditHours: 3, Grade: "F"},
				{Name: "Physics 1", CreditHours: 3, Grade: "B+"},
			},
			want: 1.65,
		},
		{
			name: "unknown grade counts as zero",
			courses: []models.GpaCourse{
				{Name: "Mystery", CreditHours: 3, Grade: "Z"},
			},
			want: 0,
		},
		{
			name: "zero credit hours",
			courses: []models.GpaCourse{
				{Name: "Seminar", CreditHours: 0, Grade: "A"},
			},
			want: 0,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, ComputeGPA(tt.courses), 0.0001)
		})
	}
}

func TestNormalizeGpaDataIgnoresClientValue(t *testing.T) {
	data := models.GpaData{
		Courses: []models.GpaCourse{{Name: "Math 1", CreditHours: 3, Grade: "B"}},
		GPA:     4.0,
	}
	normalized := NormalizeGpaData(data)
	assert.InDelta(t, 3.0, normalized.GPA, 0.0001)
}

func TestNormalizeGpaDataNilCourses(t *testing.T) {
	normalized := NormalizeGpaData(models.GpaData{GPA: 2.5})
	assert.NotNil(t, normalized.Courses)
	assert.Zero(t, normalized.GPA)
}

func TestCatalogCourses(t *testing.T) {
	all := CatalogCourses("")
	assert.Len(t, all, 12)

	filtered := CatalogCourses("computer-engineering")
	assert.Len(t, filtered, 7) // 3 general + 4 specialized
	for _, course := range filtered {
		assert.Contains(t, []string{"general", "computer-engineering"}, course.Department)
	}

	course := LookupCourse("databases")
	if assert.NotNil(t, course) {
		assert.Equal(t, "Databases", course.Name)
	}
	assert.Nil(t, LookupCourse("nope"))
}

func TestValidateCourseIDs(t *testing.T) {
	assert.NoError(t, ValidateCourseIDs(nil))
	assert.NoError(t, ValidateCourseIDs([]string{"physics-1", "laws-ethics"}))

	err := ValidateCourseIDs([]string{"physics-1", "nope"})
	require.Error(t, err)
	serr, ok := err.(ServiceError)
	require.True(t, ok)
	assert.Equal(t, 400, serr.Status)
	assert.Equal(t, "Unknown course: nope", serr.Message)
}
