package httpapi

import (
	"encoding/json"
	"log"
	"net/http"

	"studentportal-backend-go/internal/models"
	"studentportal-backend-go/internal/services"
	"studentportal-backend-go/internal/store"
)

// DataResponse wraps a loaded per-user document.
type DataResponse struct {
	Success bool `json:"success"`
	Data    any  `json:"data"`
}

type CatalogResponse struct {
	Success bool                   `json:"success"`
	Courses []models.CatalogCourse `json:"courses"`
}

// Notes and tasks travel wrapped under their kind key in both
// directions, unlike the other per-user documents. A missing or null
// list is rejected rather than treated as empty.

type SaveNotesRequest struct {
	Notes *[]models.Note `json:"notes"`
}

type NotesResponse struct {
	Success bool          `json:"success"`
	Message string        `json:"message,omitempty"`
	Notes   []models.Note `json:"notes"`
}

type SaveTasksRequest struct {
	Tasks *[]models.Task `json:"tasks"`
}

type TasksResponse struct {
	Success bool          `json:"success"`
	Message string        `json:"message,omitempty"`
	Tasks   []models.Task `json:"tasks"`
}

// Per-user document endpoints are GET/POST pairs: load with a
// default, or validate the body shape and replace the document
// wholesale. Removing an item means posting the document with that
// item filtered out; there are no partial updates. Courses, notes and
// tasks carry extra validation and keep their own handlers below.

func loadDocument[T any](s *Server, w http.ResponseWriter, r *http.Request, col store.Collection[T]) {
	user := CurrentUser(r)
	doc, err := col.Load(user.ID)
	if err != nil {
		log.Printf("load %T for %s: %v", doc, user.ID, err)
		WriteError(w, http.StatusInternalServerError, "Server error")
		return
	}
	WriteJSON(w, http.StatusOK, DataResponse{Success: true, Data: doc})
}

func saveDocument[T any](s *Server, w http.ResponseWriter, r *http.Request, col store.Collection[T], message string) {
	user := CurrentUser(r)
	var doc T
	if err := json.NewDecoder(r.Body).Decode(&doc); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid data format")
		return
	}
	if err := col.Save(user.ID, doc); err != nil {
		log.Printf("save %T for %s: %v", doc, user.ID, err)
		WriteError(w, http.StatusInternalServerError, "Server error")
		return
	}
	WriteMessage(w, http.StatusOK, message)
}

func (s *Server) GetCourses(w http.ResponseWriter, r *http.Request) {
	loadDocument(s, w, r, s.Docs.Courses)
}

// SaveCourses replaces the enrollment document. Every submitted id
// must exist in the catalog, keeping the catalog the single source of
// course metadata.
func (s *Server) SaveCourses(w http.ResponseWriter, r *http.Request) {
	user := CurrentUser(r)
	var doc models.CoursesData
	if err := json.NewDecoder(r.Body).Decode(&doc); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid data format")
		return
	}
	if doc.MyCourses == nil {
		doc.MyCourses = []string{}
	}
	if doc.CompletedCourses == nil {
		doc.CompletedCourses = []string{}
	}
	if err := services.ValidateCourseIDs(doc.MyCourses); err != nil {
		s.writeServiceError(w, err, "save courses")
		return
	}
	if err := services.ValidateCourseIDs(doc.CompletedCourses); err != nil {
		s.writeServiceError(w, err, "save courses")
		return
	}
	if err := s.Docs.Courses.Save(user.ID, doc); err != nil {
		log.Printf("save courses for %s: %v", user.ID, err)
		WriteError(w, http.StatusInternalServerError, "Server error")
		return
	}
	WriteMessage(w, http.StatusOK, "Courses data saved successfully")
}

func (s *Server) GetGpa(w http.ResponseWriter, r *http.Request) {
	loadDocument(s, w, r, s.Docs.GPA)
}

// SaveGpa recomputes the stored GPA from the submitted course list;
// the client-side value is ignored so the persisted figure can never
// drift from its courses.
func (s *Server) SaveGpa(w http.ResponseWriter, r *http.Request) {
	user := CurrentUser(r)
	var doc models.GpaData
	if err := json.NewDecoder(r.Body).Decode(&doc); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid data format")
		return
	}
	doc = services.NormalizeGpaData(doc)
	if err := s.Docs.GPA.Save(user.ID, doc); err != nil {
		log.Printf("save gpa for %s: %v", user.ID, err)
		WriteError(w, http.StatusInternalServerError, "Server error")
		return
	}
	WriteJSON(w, http.StatusOK, struct {
		Success bool    `json:"success"`
		Message string  `json:"message"`
		GPA     float64 `json:"gpa"`
	}{true, "GPA data saved successfully", doc.GPA})
}

func (s *Server) GetNotes(w http.ResponseWriter, r *http.Request) {
	user := CurrentUser(r)
	notes, err := s.Docs.Notes.Load(user.ID)
	if err != nil {
		log.Printf("load notes for %s: %v", user.ID, err)
		WriteError(w, http.StatusInternalServerError, "Server error")
		return
	}
	WriteJSON(w, http.StatusOK, NotesResponse{Success: true, Notes: notes})
}

func (s *Server) SaveNotes(w http.ResponseWriter, r *http.Request) {
	user := CurrentUser(r)
	var req SaveNotesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid data format")
		return
	}
	if req.Notes == nil {
		WriteError(w, http.StatusBadRequest, "Invalid notes format")
		return
	}
	if err := s.Docs.Notes.Save(user.ID, *req.Notes); err != nil {
		log.Printf("save notes for %s: %v", user.ID, err)
		WriteError(w, http.StatusInternalServerError, "Server error")
		return
	}
	WriteJSON(w, http.StatusOK, NotesResponse{
		Success: true,
		Message: "Notes saved successfully",
		Notes:   *req.Notes,
	})
}

func (s *Server) GetTasks(w http.ResponseWriter, r *http.Request) {
	user := CurrentUser(r)
	tasks, err := s.Docs.Tasks.Load(user.ID)
	if err != nil {
		log.Printf("load tasks for %s: %v", user.ID, err)
		WriteError(w, http.StatusInternalServerError, "Server error")
		return
	}
	WriteJSON(w, http.StatusOK, TasksResponse{Success: true, Tasks: tasks})
}

func (s *Server) SaveTasks(w http.ResponseWriter, r *http.Request) {
	user := CurrentUser(r)
	var req SaveTasksRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid data format")
		return
	}
	if req.Tasks == nil {
		WriteError(w, http.StatusBadRequest, "Invalid tasks format")
		return
	}
	if err := s.Docs.Tasks.Save(user.ID, *req.Tasks); err != nil {
		log.Printf("save tasks for %s: %v", user.ID, err)
		WriteError(w, http.StatusInternalServerError, "Server error")
		return
	}
	WriteJSON(w, http.StatusOK, TasksResponse{
		Success: true,
		Message: "Tasks saved successfully",
		Tasks:   *req.Tasks,
	})
}

func (s *Server) GetSchedule(w http.ResponseWriter, r *http.Request) {
	loadDocument(s, w, r, s.Docs.Schedules)
}

func (s *Server) SaveSchedule(w http.ResponseWriter, r *http.Request) {
	saveDocument(s, w, r, s.Docs.Schedules, "Schedule saved successfully")
}

// Catalog serves the shared course list; per-user course documents
// reference these ids instead of duplicating names.
func (s *Server) Catalog(w http.ResponseWriter, r *http.Request) {
	department := r.URL.Query().Get("department")
	WriteJSON(w, http.StatusOK, CatalogResponse{
		Success: true,
		Courses: services.CatalogCourses(department),
	})
}
