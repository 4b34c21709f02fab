package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	internal_errors "github.com/goodways/goodways/shared/errors"
	"github.com/goodways/goodways/shared/utils"
	"github.com/goodways/goodways/shared/validation"
)

// parseIdParam reads a positive integer URL parameter.
func parseIdParam(r *http.Request, name string) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil || id <= 0 {
		return 0, &internal_errors.ErrorWithStatusCode{
			Message:    fmt.Sprintf("Invalid %s: must be a positive integer.", name),
			StatusCode: http.StatusBadRequest,
		}
	}
	return id, nil
}

// decodeBody caps the body size and decodes JSON into body.
func (h *Handler) decodeBody(w http.ResponseWriter, r *http.Request, body any) error {
	validation.LimitBody(w, r, h.cfg.Public.MaxBodyBytes)
	return utils.Decode(r.Body, body)
}
