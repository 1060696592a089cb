package handler

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"mmgp/internal/model"
	"mmgp/internal/service"
	"mmgp/internal/transport/rest/middleware"
)

// AuthHandler handles authentication endpoints
type AuthHandler struct {
	authSvc *service.AuthService
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authSvc *service.AuthService) *AuthHandler {
	return &AuthHandler{authSvc: authSvc}
}

// SignUp handles POST /v1/auth/signup
//
// @Summary Create an account
// @Tags auth
// @Accept json
// @Produce json
// @Param body body model.CredentialsRequest true "credentials"
// @Success 201 {object} model.LoginResponse
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /auth/signup [post]
func (h *AuthHandler) SignUp(w http.ResponseWriter, r *http.Request) {
	var req model.CredentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	resp, err := h.authSvc.SignUp(r.Context(), req.Email, req.Password)
	switch {
	case errors.Is(err, service.ErrEmailTaken):
		writeError(w, http.StatusConflict, "Este email já está cadastrado")
		return
	case errors.Is(err, service.ErrWeakPassword):
		writeError(w, http.StatusBadRequest, "A senha deve ter pelo menos 6 caracteres")
		return
	case errors.Is(err, service.ErrInvalidEmail):
		writeError(w, http.StatusBadRequest, "Email inválido")
		return
	case err != nil:
		log.Printf("signup failed: %v", err)
		writeError(w, http.StatusInternalServerError, "Erro ao criar conta")
		return
	}

	writeJSON(w, http.StatusCreated, resp)
}

// Login handles POST /v1/auth/login
//
// @Summary Sign in
// @Tags auth
// @Accept json
// @Produce json
// @Param body body model.CredentialsRequest true "credentials"
// @Success 200 {object} model.LoginResponse
// @Failure 401 {object} map[string]string
// @Router /auth/login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req model.CredentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	resp, err := h.authSvc.Login(r.Context(), req.Email, req.Password)
	if errors.Is(err, service.ErrInvalidCredentials) {
		writeError(w, http.StatusUnauthorized, "Email ou senha incorretos")
		return
	}
	if err != nil {
		log.Printf("login failed: %v", err)
		writeError(w, http.StatusInternalServerError, "Erro ao fazer login")
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// SessionUser is the public view of the signed-in user.
type SessionUser struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// CheckResponse reports whether the caller is signed in.
type CheckResponse struct {
	Authenticated bool         `json:"authenticated"`
	User          *SessionUser `json:"user"`
}

// Check handles GET /v1/auth/check
//
// @Summary Report the current session
// @Tags auth
// @Produce json
// @Success 200 {object} CheckResponse
// @Router /auth/check [get]
func (h *AuthHandler) Check(w http.ResponseWriter, r *http.Request) {
	actor := middleware.GetActor(r.Context())
	resp := CheckResponse{Authenticated: actor.Authenticated()}
	if resp.Authenticated {
		resp.User = &SessionUser{ID: actor.UserID, Email: actor.Email}
	}
	writeJSON(w, http.StatusOK, resp)
}

// Helper functions
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}
