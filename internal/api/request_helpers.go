package api

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

// getPathID extracts the {id} path parameter and parses it as an int64.
// User IDs are positive integers assigned by the database.
func getPathID(r *http.Request) (int64, bool) {
	param := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(param, 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
