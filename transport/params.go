package transport

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
)

// parseIDParam reads the {id} path variable as an unsigned integer.
func parseIDParam(r *http.Request) (uint64, bool) {
	id, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return id, true
}

// parseQueryUint reads an optional numeric query parameter, zero when absent.
func parseQueryUint(r *http.Request, name string) (uint64, bool) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, true
	}
	v, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
