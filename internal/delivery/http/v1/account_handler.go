package v1

import (
	"net/http"

	"hometex-storefront/internal/domain"
	"hometex-storefront/internal/service"
	"hometex-storefront/pkg/utils"
)

// AccountHandler serves the signed-in user's account pages and the public
// password recovery flow.
type AccountHandler struct {
	users *service.UserService
	auth  *service.AuthService
}

func NewAccountHandler(users *service.UserService, auth *service.AuthService) *AccountHandler {
	return &AccountHandler{users: users, auth: auth}
}

func (h *AccountHandler) Me(w http.ResponseWriter, r *http.Request) {
	resp, err := h.auth.Me(r.Context())
	relay(w, r, http.StatusOK, resp, err)
}

func (h *AccountHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	resp, err := h.users.Dashboard(r.Context())
	relay(w, r, http.StatusOK, resp, err)
}

func (h *AccountHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	resp, err := h.users.Profile(r.Context())
	relay(w, r, http.StatusOK, resp, err)
}

func (h *AccountHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	var update domain.ProfileUpdate
	if !decodeJSON(w, r, &update) {
		return
	}
	resp, err := h.users.UpdateProfile(r.Context(), update)
	relay(w, r, http.StatusOK, resp, err)
}

func (h *AccountHandler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	var change domain.PasswordChange
	if !decodeJSON(w, r, &change) {
		return
	}
	if change.CurrentPassword == "" || change.Password == "" {
		utils.WriteError(w, http.StatusBadRequest, "Current and new password are required")
		return
	}
	if change.PasswordConfirmation == "" {
		change.PasswordConfirmation = change.Password
	}
	msg, err := h.users.ChangePassword(r.Context(), change)
	relayMessage(w, r, msg, err)
}

func (h *AccountHandler) ListAddresses(w http.ResponseWriter, r *http.Request) {
	resp, err := h.users.Addresses(r.Context())
	relay(w, r, http.StatusOK, resp, err)
}

func (h *AccountHandler) AddAddress(w http.ResponseWriter, r *http.Request) {
	var addr domain.Address
	if !decodeJSON(w, r, &addr) {
		return
	}
	resp, err := h.users.AddAddress(r.Context(), addr)
	relay(w, r, http.StatusCreated, resp, err)
}

func (h *AccountHandler) UpdateAddress(w http.ResponseWriter, r *http.Request) {
	var addr domain.Address
	if !decodeJSON(w, r, &addr) {
		return
	}
	resp, err := h.users.UpdateAddress(r.Context(), r.PathValue("id"), addr)
	relay(w, r, http.StatusOK, resp, err)
}

func (h *AccountHandler) DeleteAddress(w http.ResponseWriter, r *http.Request) {
	msg, err := h.users.DeleteAddress(r.Context(), r.PathValue("id"))
	relayMessage(w, r, msg, err)
}

func (h *AccountHandler) ForgotPassword(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email string `json:"email"`
	}
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.Email == "" {
		utils.WriteError(w, http.StatusBadRequest, "Email is required")
		return
	}
	msg, err := h.auth.ForgotPassword(r.Context(), req.Email)
	relayMessage(w, r, msg, err)
}

func (h *AccountHandler) ResetPassword(w http.ResponseWriter, r *http.Request) {
	var reset domain.PasswordReset
	if !decodeJSON(w, r, &reset) {
		return
	}
	if reset.Email == "" || reset.Token == "" || reset.Password == "" {
		utils.WriteError(w, http.StatusBadRequest, "Email, token and password are required")
		return
	}
	if reset.PasswordConfirmation == "" {
		reset.PasswordConfirmation = reset.Password
	}
	msg, err := h.auth.ResetPassword(r.Context(), reset)
	relayMessage(w, r, msg, err)
}
