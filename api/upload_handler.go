package api

import (
	"net/http"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/overtone-studio/site-backend/errs"
	"github.com/overtone-studio/site-backend/storage"
)

const maxUploadBytes = 64 << 20

type uploadHandler struct {
	responder Responder
	logger    zerolog.Logger
	uploader  *storage.Uploader
}

func newUploadHandler(uploader *storage.Uploader) uploadHandler {
	logger := log.With().Str("handlerName", "uploadHandler").Logger()

	return uploadHandler{
		responder: NewResponder(logger),
		logger:    logger,
		uploader:  uploader,
	}
}

// UploadResponse carries the public URLs of a stored batch, in the order
// the files were submitted.
type UploadResponse struct {
	URLs []string `json:"urls"`
}

// uploadImages stores a multipart batch of gallery images. Files upload in
// parallel; the batch succeeds or fails as a whole. Objects stored before
// a sibling failure are not cleaned up.
// @Summary Upload images (admin)
// @Tags Uploads
// @Accept multipart/form-data
// @Param files formData file true "Image files"
// @Success 200 {object} UploadResponse
// @Failure 400 {object} ErrorResponse
// @Router /uploads [post]
func (h uploadHandler) uploadImages() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if h.uploader == nil {
			h.responder.WriteError(w, errs.NewInternalError("object storage is not configured"))
			return
		}

		if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("malformed multipart payload"))
			return
		}

		fileHeaders := r.MultipartForm.File["files"]
		if len(fileHeaders) == 0 {
			h.responder.WriteError(w, errs.NewValidationError("files", "at least one file is required"))
			return
		}

		files := make([]storage.File, 0, len(fileHeaders))
		for _, header := range fileHeaders {
			f, err := header.Open()
			if err != nil {
				h.responder.WriteError(w, errs.NewBadRequestError("unreadable upload: "+header.Filename))
				return
			}
			defer f.Close()

			files = append(files, storage.File{
				Name:        header.Filename,
				ContentType: header.Header.Get("Content-Type"),
				Data:        f,
			})
		}

		urls, err := h.uploader.UploadAll(r.Context(), files)
		if err != nil {
			h.logger.Error().Err(err).Int("fileCount", len(files)).Msg("upload batch failed")
			h.responder.WriteError(w, errs.NewInternalError("upload failed"))
			return
		}

		h.responder.WriteJSON(w, UploadResponse{URLs: urls})
	}
}
