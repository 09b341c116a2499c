package handlers

import (
	"net/http"

	"lingo/internal/version"
)

// Version reports build version information.
func Version(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, version.Info())
}
