package transport

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/petlove/backend/constant"
	cerr "github.com/petlove/backend/utils/errors"
)

// ErrorResponse is the wire shape of every failed request.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

func writeSuccess(w http.ResponseWriter, data interface{}) {
	writeJSON(w, http.StatusOK, data)
}

func writeCreated(w http.ResponseWriter, data interface{}) {
	writeJSON(w, http.StatusCreated, data)
}

// writeError maps a CustomError to its HTTP status and wire code. Anything
// else is reported as a server error without leaking its message.
func writeError(w http.ResponseWriter, err error) {
	var ce cerr.CustomError
	if !errors.As(err, &ce) {
		ce = cerr.SetCustomError(constant.ErrInternal)
	}
	writeJSON(w, ce.ErrorHTTPCode(), ErrorResponse{
		Code:    ce.ErrorCode(),
		Message: ce.Error(),
	})
}
