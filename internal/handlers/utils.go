package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
)

// MessageResponse is the body of write endpoints that have nothing else to return.
type MessageResponse struct {
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// decodeInput fills v from a JSON or form-encoded request body.
// Bodies without a Content-Type are read as JSON.
func decodeInput(r *http.Request, v interface{}) error {
	if render.GetRequestContentType(r) == render.ContentTypeForm {
		return render.DecodeForm(r.Body, v)
	}
	return render.DecodeJSON(r.Body, v)
}

// idParam parses the {id} URL parameter.
func idParam(r *http.Request) (int, error) {
	return strconv.Atoi(chi.URLParam(r, "id"))
}
