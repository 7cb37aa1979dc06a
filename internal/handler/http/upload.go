package http

import (
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/resume-shortlister/internal/app"
	"github.com/MKhiriev/resume-shortlister/internal/logger"
	"github.com/MKhiriev/resume-shortlister/internal/utils"
	"github.com/MKhiriev/resume-shortlister/models"
)

const uploadFormField = "files"

// uploadFiles streams every part of the "files" field to the file service.
// The whole request body is capped at maxUploadSize.
func (h *Handler) uploadFiles(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadSize)
	if err := r.ParseMultipartForm(h.maxUploadSize); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			utils.WriteError(w, http.StatusText(http.StatusRequestEntityTooLarge), http.StatusRequestEntityTooLarge)
			return
		}
		if !errors.Is(err, http.ErrNotMultipart) {
			log.Debug().Err(err).Msg("invalid multipart form")
			utils.WriteError(w, app.DetailInvalidForm, http.StatusBadRequest)
			return
		}
	}

	var headers []*multipart.FileHeader
	if r.MultipartForm != nil {
		defer r.MultipartForm.RemoveAll()
		headers = r.MultipartForm.File[uploadFormField]
	}

	files := make([]models.UploadFile, 0, len(headers))
	for _, header := range headers {
		f, err := header.Open()
		if err != nil {
			log.Err(err).Str("filename", header.Filename).Msg("multipart file cannot be opened")
			utils.WriteError(w, app.DetailInvalidForm, http.StatusBadRequest)
			return
		}
		defer f.Close()

		files = append(files, models.UploadFile{
			Filename:    header.Filename,
			ContentType: header.Header.Get("Content-Type"),
			Size:        header.Size,
			Body:        f,
		})
	}

	results, err := h.services.FileService.Upload(ctx, files)
	if err != nil {
		if len(results) > 0 {
			log.Err(err).Int("files", len(results)).Msg("no file was uploaded")
			utils.WriteError(w, app.DetailAllUploadsFailed, http.StatusInternalServerError)
			return
		}
		writeServiceError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.UploadResponse{Message: app.MsgUploadCompleted, Results: results}, http.StatusOK)
}

// deleteFile takes the rest of the path as the file id. S3 keys contain
// slashes, sent either raw or escaped as %2F.
func (h *Handler) deleteFile(w http.ResponseWriter, r *http.Request) {
	fileID, err := url.PathUnescape(chi.URLParam(r, "*"))
	if err != nil || fileID == "" {
		utils.WriteError(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)
		return
	}

	if err := h.services.FileService.Delete(r.Context(), fileID); err != nil {
		writeServiceError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.MessageResponse{Message: fmt.Sprintf(app.MsgFileDeletedFormat, fileID)}, http.StatusOK)
}
