package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/resume-shortlister/internal/app"
	"github.com/MKhiriev/resume-shortlister/internal/utils"
	"github.com/MKhiriev/resume-shortlister/models"
)

func (h *Handler) submitJD(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, _ := utils.GetUserIDFromContext(ctx)
	token, _ := utils.GetTokenFromContext(ctx)

	var in models.JobDescriptionInput
	if !decodeJSON(w, r, &in) {
		return
	}

	jd, err := h.services.JobDescriptionService.Submit(ctx, userID, token, in)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.JobDescriptionResponse{Message: app.MsgJDSubmitted, JDID: jd.JDID}, http.StatusOK)
}

func (h *Handler) updateJD(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, _ := utils.GetUserIDFromContext(ctx)
	token, _ := utils.GetTokenFromContext(ctx)
	jdID := chi.URLParam(r, "jd_id")

	var in models.JobDescriptionInput
	if !decodeJSON(w, r, &in) {
		return
	}

	if err := h.services.JobDescriptionService.Update(ctx, userID, token, jdID, in); err != nil {
		writeServiceError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.JobDescriptionResponse{Message: app.MsgJDUpdated, JDID: jdID}, http.StatusOK)
}

func (h *Handler) deleteJD(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, _ := utils.GetUserIDFromContext(ctx)

	if err := h.services.JobDescriptionService.Delete(ctx, userID, chi.URLParam(r, "jd_id")); err != nil {
		writeServiceError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.MessageResponse{Message: app.MsgJDDeleted}, http.StatusOK)
}

func (h *Handler) jdHistory(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, _ := utils.GetUserIDFromContext(ctx)

	history, err := h.services.JobDescriptionService.History(ctx, userID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	if history == nil {
		history = []models.JobDescription{}
	}

	utils.WriteJSON(w, models.HistoryResponse{History: history}, http.StatusOK)
}
