package httpapi

import (
	"encoding/json"
	"log"
	"net/http"

	"studentportal-backend-go/internal/models"
	"studentportal-backend-go/internal/services"
	"studentportal-backend-go/internal/store"
)

const uploadLimit = 50 << 20

type MaterialsResponse struct {
	Success   bool                      `json:"success"`
	Materials []models.MaterialCategory `json:"materials"`
}

type SaveMaterialsRequest struct {
	CourseID  string                     `json:"courseId"`
	Materials *[]models.MaterialCategory `json:"materials"`
}

type UploadResponse struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	File    models.FileMeta `json:"file"`
}

func (s *Server) GetMaterials(w http.ResponseWriter, r *http.Request) {
	user := CurrentUser(r)
	courseID := r.URL.Query().Get("courseId")
	if courseID == "" {
		WriteError(w, http.StatusBadRequest, "Course ID is required")
		return
	}
	materials, err := s.Materials.Load(user.ID, courseID)
	if err != nil {
		if err == store.ErrBadKey {
			WriteError(w, http.StatusBadRequest, "Invalid course ID")
			return
		}
		log.Printf("load materials for %s/%s: %v", user.ID, courseID, err)
		WriteError(w, http.StatusInternalServerError, "Server error")
		return
	}
	WriteJSON(w, http.StatusOK, MaterialsResponse{Success: true, Materials: materials})
}

func (s *Server) SaveMaterials(w http.ResponseWriter, r *http.Request) {
	user := CurrentUser(r)
	var req SaveMaterialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid data format")
		return
	}
	if req.CourseID == "" {
		WriteError(w, http.StatusBadRequest, "Course ID is required")
		return
	}
	if req.Materials == nil {
		WriteError(w, http.StatusBadRequest, "Invalid materials format")
		return
	}
	if err := s.Materials.Save(user.ID, req.CourseID, *req.Materials); err != nil {
		if err == store.ErrBadKey {
			WriteError(w, http.StatusBadRequest, "Invalid course ID")
			return
		}
		log.Printf("save materials for %s/%s: %v", user.ID, req.CourseID, err)
		WriteError(w, http.StatusInternalServerError, "Server error")
		return
	}
	WriteMessage(w, http.StatusOK, "Course materials saved successfully")
}

func (s *Server) UploadFile(w http.ResponseWriter, r *http.Request) {
	user := CurrentUser(r)
	if err := r.ParseMultipartForm(uploadLimit); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid upload")
		return
	}
	file, header, err := r.FormFile("file")
	if err != nil {
		WriteError(w, http.StatusBadRequest, "Missing required fields")
		return
	}
	defer file.Close()

	courseID := r.FormValue("courseId")
	categoryID := r.FormValue("categoryId")
	fileName := r.FormValue("fileName")
	if fileName == "" {
		fileName = header.Filename
	}
	meta, err := s.Files.SaveUpload(user.ID, courseID, categoryID, fileName, header.Header.Get("Content-Type"), file)
	if err != nil {
		s.writeServiceError(w, err, "file upload")
		return
	}
	WriteJSON(w, http.StatusCreated, UploadResponse{
		Success: true,
		Message: "File uploaded successfully",
		File:    *meta,
	})
}

func (s *Server) DownloadFile(w http.ResponseWriter, r *http.Request) {
	user := CurrentUser(r)
	query := r.URL.Query()
	path, name, err := s.Files.ResolveDownload(user.ID, query.Get("courseId"), query.Get("categoryId"), query.Get("fileName"))
	if err != nil {
		s.writeServiceError(w, err, "file download")
		return
	}
	w.Header().Set("Content-Type", services.ContentTypeFor(name))
	w.Header().Set("Content-Disposition", `attachment; filename="`+name+`"`)
	http.ServeFile(w, r, path)
}
