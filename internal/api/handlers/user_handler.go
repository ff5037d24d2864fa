package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/isandoval/staffdesk-be/internal/api/respond"
	"github.com/isandoval/staffdesk-be/internal/auth"
	"github.com/isandoval/staffdesk-be/internal/services"
	"github.com/isandoval/staffdesk-be/internal/validation"
)

// UserHandler handles HTTP requests for user accounts.
type UserHandler struct {
	service services.UserServiceProvider
	tokens  *auth.Manager
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(service services.UserServiceProvider, tokens *auth.Manager) *UserHandler {
	return &UserHandler{service: service, tokens: tokens}
}

// SignupPayload defines the structure for signup requests.
type SignupPayload struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginPayload defines the structure for login requests. Either email or
// username must be supplied alongside the password.
type LoginPayload struct {
	Email    string `json:"email"`
	Username string `json:"username"`
	Password string `json:"password"`
}

var signupRules = validation.Chain{
	validation.Field{Name: "username", Rules: []validation.Rule{
		validation.Required("username is required"),
	}},
	validation.Field{Name: "email", Rules: []validation.Rule{
		validation.Email("valid email is required"),
	}},
	validation.Field{Name: "password", Rules: []validation.Rule{
		validation.MinLen(6, "password must be at least 6 chars"),
	}},
}

var loginRules = validation.Chain{
	validation.Field{Name: "password", Rules: []validation.Rule{
		validation.Required("password is required"),
	}},
	validation.RequireAnyOf("email or username is required", "email", "username"),
	validation.Field{Name: "email", Optional: true, Rules: []validation.Rule{
		validation.Email("invalid email"),
	}},
}

// Signup handles new account registration.
func (h *UserHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var payload SignupPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respond.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	values := validation.MapValues{
		"username": payload.Username,
		"email":    payload.Email,
		"password": payload.Password,
	}
	if verr := signupRules.Validate(values); verr != nil {
		respond.Error(w, http.StatusBadRequest, verr.Message)
		return
	}

	user, err := h.service.CreateUser(r.Context(), payload.Username, payload.Email, payload.Password)
	if err != nil {
		if errors.Is(err, services.ErrUserDuplicate) {
			respond.Error(w, http.StatusConflict, "Username or email already exists.")
			return
		}
		log.Error().Err(err).Str("email", payload.Email).Msg("Failed to create user")
		respond.Error(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	respond.JSON(w, http.StatusCreated, map[string]string{
		"message": "User created successfully.",
		"user_id": user.ID.Hex(),
	})
}

// Login handles authentication and token issuance.
func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	var payload LoginPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respond.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	values := validation.MapValues{
		"email":    payload.Email,
		"username": payload.Username,
		"password": payload.Password,
	}
	if verr := loginRules.Validate(values); verr != nil {
		respond.Error(w, http.StatusBadRequest, verr.Message)
		return
	}

	user, err := h.service.Authenticate(r.Context(), payload.Email, payload.Username, payload.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			// Identical body for unknown accounts and wrong passwords.
			respond.Error(w, http.StatusUnauthorized, "Invalid Username and password")
			return
		}
		log.Error().Err(err).Msg("Failed to authenticate user")
		respond.Error(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	token, err := h.tokens.IssueToken(user)
	if err != nil {
		log.Error().Err(err).Str("user_id", user.ID.Hex()).Msg("Failed to issue token")
		respond.Error(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	respond.JSON(w, http.StatusOK, map[string]string{
		"message":   "Login successful.",
		"jwt_token": token,
	})
}
