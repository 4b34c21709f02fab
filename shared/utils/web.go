package utils

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	internal_errors "github.com/goodways/goodways/shared/errors"
	"github.com/goodways/goodways/shared/logger"
	"github.com/goodways/goodways/shared/validation"
)

type errorBody struct {
	Error string `json:"error"`
}

type validationErrorBody struct {
	Errors []string `json:"errors"`
}

// WriteJSON encodes v with the given status. Encoding is done up front so an
// unencodable value still produces a clean 500.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		logger.Log.Error("failed to encode response", "error", err)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"error":"Internal error"}` + "\n"))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(append(data, '\n'))
}

// WriteErrorAndStatusCode renders err as JSON. Validation failures carry the
// full message list; server errors are logged and replaced by a generic text.
func WriteErrorAndStatusCode(w http.ResponseWriter, err error) {
	status := internal_errors.StatusCode(err)

	var validationErr *internal_errors.ValidationError
	if errors.As(err, &validationErr) {
		WriteJSON(w, status, validationErrorBody{Errors: validationErr.Messages})
		return
	}

	if status >= http.StatusInternalServerError {
		logger.Log.Error("internal error", "error", err)
		WriteJSON(w, status, errorBody{Error: "An unexpected error occurred."})
		return
	}
	WriteJSON(w, status, errorBody{Error: err.Error()})
}

// Decode reads a JSON body into body. An empty body decodes as an empty
// object; oversized and unparsable bodies map to 413 and 400.
func Decode(r io.ReadCloser, body any) error {
	err := json.NewDecoder(r).Decode(body)
	if err == nil || errors.Is(err, io.EOF) {
		return nil
	}

	var maxBytesErr *http.MaxBytesError
	if errors.As(err, &maxBytesErr) {
		return &internal_errors.ErrorWithStatusCode{Message: validation.MsgPayloadTooLarge, StatusCode: http.StatusRequestEntityTooLarge}
	}
	logger.Log.Debug("request body is not valid json", "error", err)
	return &internal_errors.MalformedInputError{Message: validation.MsgMalformedBody}
}
