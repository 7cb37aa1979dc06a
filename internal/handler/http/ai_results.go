package http

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/resume-shortlister/internal/app"
	"github.com/MKhiriev/resume-shortlister/internal/utils"
	"github.com/MKhiriev/resume-shortlister/models"
)

// storeResults accepts the JSON array of scores posted back by the scorer.
func (h *Handler) storeResults(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, _ := utils.GetUserIDFromContext(ctx)

	var in []models.AIResultInput
	if !decodeJSON(w, r, &in) {
		return
	}

	count, err := h.services.ScoreService.StoreBulk(ctx, userID, in)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.StoreResultsResponse{
		Message: fmt.Sprintf(app.MsgResultsStoredFormat, count),
		Count:   count,
	}, http.StatusOK)
}

func (h *Handler) results(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, _ := utils.GetUserIDFromContext(ctx)

	results, err := h.services.ScoreService.Results(ctx, userID, chi.URLParam(r, "jd_id"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	if results == nil {
		results = []models.AIResult{}
	}

	utils.WriteJSON(w, models.ResultsResponse{Results: results}, http.StatusOK)
}

func (h *Handler) candidateCount(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, _ := utils.GetUserIDFromContext(ctx)

	count, err := h.services.ScoreService.Count(ctx, userID, chi.URLParam(r, "jd_id"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.CountResponse{Count: count}, http.StatusOK)
}
