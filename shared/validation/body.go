package validation

import (
	"net/http"
)

// LimitBody caps how much of the request body handlers may read.
// Reading past the limit fails, and the JSON decoder reports it as
// *http.MaxBytesError.
func LimitBody(w http.ResponseWriter, r *http.Request, maxSize int64) {
	r.Body = http.MaxBytesReader(w, r.Body, maxSize)
}
