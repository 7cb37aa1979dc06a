package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/MKhiriev/resume-shortlister/internal/app"
	"github.com/MKhiriev/resume-shortlister/internal/logger"
	"github.com/MKhiriev/resume-shortlister/internal/utils"
	"github.com/MKhiriev/resume-shortlister/internal/validators"
	"github.com/MKhiriev/resume-shortlister/models"
)

func (h *Handler) signupInit(w http.ResponseWriter, r *http.Request) {
	var req models.SignupInitRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if err := h.services.IdentityService.SignupInit(r.Context(), req); err != nil {
		writeServiceError(w, r, err)
		return
	}

	message := fmt.Sprintf(app.MsgOTPSentFormat, validators.NormalizeEmail(req.Email))
	utils.WriteJSON(w, models.MessageResponse{Message: message}, http.StatusOK)
}

func (h *Handler) signupVerify(w http.ResponseWriter, r *http.Request) {
	var req models.SignupVerifyRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if err := h.services.IdentityService.SignupVerify(r.Context(), req); err != nil {
		writeServiceError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.MessageResponse{Message: app.MsgSignupVerified}, http.StatusOK)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	resp, err := h.services.IdentityService.Login(r.Context(), req)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	logger.FromRequest(r).Debug().Str("user_id", resp.UserID).Msg("user successfully logged in")
	utils.WriteJSON(w, resp, http.StatusOK)
}

func (h *Handler) me(w http.ResponseWriter, r *http.Request) {
	userID, _ := utils.GetUserIDFromContext(r.Context())

	profile, err := h.services.IdentityService.CurrentUser(r.Context(), userID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	utils.WriteJSON(w, profile, http.StatusOK)
}

// decodeJSON reads the request body into dst. On failure it answers 400 and
// reports false.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		logger.FromRequest(r).Debug().Err(err).Msg("invalid JSON was passed")
		detail := app.DetailInvalidJSON
		if errors.Is(err, models.ErrInvalidSkillWeight) {
			detail = app.DetailInvalidSkillWeight
		}
		utils.WriteError(w, detail, http.StatusBadRequest)
		return false
	}
	return true
}
