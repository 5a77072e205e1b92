package v1

import (
	"net/http"

	"hometex-storefront/internal/domain"
	"hometex-storefront/internal/usecase"
	"hometex-storefront/pkg/logger"
	"hometex-storefront/pkg/utils"
)

type AuthHandler struct {
	authUC *usecase.AuthUsecase
}

func NewAuthHandler(authUC *usecase.AuthUsecase) *AuthHandler {
	return &AuthHandler{authUC: authUC}
}

// Login stores the API token in the visitor's cookie; it is never returned in
// the body.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var creds domain.Credentials
	if !decodeJSON(w, r, &creds) {
		return
	}
	if creds.Email == "" || creds.Password == "" {
		utils.WriteError(w, http.StatusBadRequest, "Email and password are required")
		return
	}

	user, err := h.authUC.Login(r.Context(), creds)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	logger.WithContext(r.Context()).Info().Str("user_id", user.ID.String()).Msg("User signed in")
	h.writeSignedIn(w, r, http.StatusOK, user)
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var reg domain.Registration
	if !decodeJSON(w, r, &reg) {
		return
	}
	if reg.Name == "" || reg.Email == "" || reg.Password == "" {
		utils.WriteError(w, http.StatusBadRequest, "Name, email and password are required")
		return
	}
	if reg.PasswordConfirmation == "" {
		reg.PasswordConfirmation = reg.Password
	}

	user, err := h.authUC.Register(r.Context(), reg)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	h.writeSignedIn(w, r, http.StatusCreated, user)
}

func (h *AuthHandler) VerifyOTP(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email string `json:"email"`
		OTP   string `json:"otp"`
	}
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.Email == "" || req.OTP == "" {
		utils.WriteError(w, http.StatusBadRequest, "Email and OTP are required")
		return
	}

	user, err := h.authUC.VerifyOTP(r.Context(), req.Email, req.OTP)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	h.writeSignedIn(w, r, http.StatusOK, user)
}

func (h *AuthHandler) writeSignedIn(w http.ResponseWriter, r *http.Request, status int, user *domain.User) {
	utils.WriteData(w, status, map[string]any{
		"user":    user,
		"session": h.authUC.Session(r.Context()),
	})
}

// Logout signs the visitor out locally even when the API call fails.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.authUC.Logout(r.Context()); err != nil {
		logger.WithContext(r.Context()).Warn().Err(err).Msg("Remote logout failed")
	}
	utils.WriteMessage(w, http.StatusOK, "Logged out")
}

func (h *AuthHandler) Session(w http.ResponseWriter, r *http.Request) {
	utils.WriteData(w, http.StatusOK, h.authUC.Session(r.Context()))
}
