package services

import (
	"math"

	"studentportal-backend-go/internal/models"
)

// GradePoints maps letter grades to their 4.0-scale points.
var GradePoints = map[string]float64{
	"A+": 4.0,
	"A":  4.0,
	"A-": 3.7,
	"B+": 3.3,
	"B":  3.0,
	"B-": 2.7,
	"C+": 2.3,
	"C":  2.0,
	"C-": 1.7,
	"D+": 1.3,
	"D":  1.0,
	"F":  0.0,
}

// ComputeGPA returns the credit-weighted average of the course grades,
// rounded to two decimals. Unknown grades count as zero points, and an
// empty course list yields zero.
func ComputeGPA(courses []models.GpaCourse) float64 {
	var totalPoints, totalCredits float64
	for _, course := range courses {
		totalPoints += GradePoints[course.Grade] * course.CreditHours
		totalCredits += course.CreditHours
	}
	if totalCredits == 0 {
		return 0
	}
	return math.Round(totalPoints/totalCredits*100) / 100
}

// NormalizeGpaData recomputes the stored GPA from the submitted course
// list. The persisted value is always derived, never trusted from the
// client.
func NormalizeGpaData(data models.GpaData) models.GpaData {
	if data.Courses == nil {
		data.Courses = []models.GpaCourse{}
	}
	data.GPA = ComputeGPA(data.Courses)
	return data
}
