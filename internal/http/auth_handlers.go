package httpapi

import (
	"encoding/json"
	"log"
	"net/http"

	"studentportal-backend-go/internal/services"
)

type SignupRequest struct {
	Email           string `json:"email"`
	Username        string `json:"username"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
	Department      string `json:"department"`
	FirstName       string `json:"firstName"`
	LastName        string `json:"lastName"`
}

type LoginRequest struct {
	EmailOrUsername string `json:"emailOrUsername"`
	Password        string `json:"password"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

type ProfileUpdateRequest struct {
	Username   string `json:"username"`
	FirstName  string `json:"firstName"`
	LastName   string `json:"lastName"`
	Department string `json:"department"`
}

func (s *Server) Signup(w http.ResponseWriter, r *http.Request) {
	var req SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid payload")
		return
	}
	user, err := s.Accounts.Signup(services.SignupInput{
		Email:           req.Email,
		Username:        req.Username,
		Password:        req.Password,
		ConfirmPassword: req.ConfirmPassword,
		Department:      req.Department,
		FirstName:       req.FirstName,
		LastName:        req.LastName,
	})
	if err != nil {
		s.writeServiceError(w, err, "signup")
		return
	}
	s.setSessionCookie(w, user.ID)
	WriteJSON(w, http.StatusCreated, UserResponse{
		Success: true,
		Message: "User registered successfully",
		User:    buildUserDTO(user),
	})
}

func (s *Server) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid payload")
		return
	}
	user, err := s.Accounts.Login(req.EmailOrUsername, req.Password)
	if err != nil {
		s.writeServiceError(w, err, "login")
		return
	}
	s.setSessionCookie(w, user.ID)
	WriteJSON(w, http.StatusOK, UserResponse{
		Success: true,
		Message: "Login successful",
		User:    buildUserDTO(user),
	})
}

func (s *Server) Logout(w http.ResponseWriter, r *http.Request) {
	s.clearSessionCookie(w)
	WriteMessage(w, http.StatusOK, "Logged out successfully")
}

func (s *Server) Me(w http.ResponseWriter, r *http.Request) {
	user := CurrentUser(r)
	WriteJSON(w, http.StatusOK, UserResponse{Success: true, User: buildUserDTO(user)})
}

func (s *Server) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	user := CurrentUser(r)
	var req ProfileUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid payload")
		return
	}
	updated, err := s.Accounts.UpdateProfile(user.ID, services.ProfileInput{
		Username:   req.Username,
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		Department: req.Department,
	})
	if err != nil {
		s.writeServiceError(w, err, "profile update")
		return
	}
	WriteJSON(w, http.StatusOK, UserResponse{
		Success: true,
		Message: "Profile updated successfully",
		User:    buildUserDTO(updated),
	})
}

func (s *Server) ChangePassword(w http.ResponseWriter, r *http.Request) {
	user := CurrentUser(r)
	var req ChangePasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid payload")
		return
	}
	if err := s.Accounts.ChangePassword(user.ID, req.CurrentPassword, req.NewPassword); err != nil {
		s.writeServiceError(w, err, "change password")
		return
	}
	WriteMessage(w, http.StatusOK, "Password updated successfully")
}

// writeServiceError maps a ServiceError to its envelope; anything
// unclassified is logged and surfaced as a generic 500.
func (s *Server) writeServiceError(w http.ResponseWriter, err error, op string) {
	if serr, ok := err.(services.ServiceError); ok {
		WriteError(w, serr.Status, serr.Message)
		return
	}
	log.Printf("%s: %v", op, err)
	WriteError(w, http.StatusInternalServerError, "Server error")
}
