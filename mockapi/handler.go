package mockapi

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/maelvls/dungeonname/logutil"
)

// Routes registers the API's endpoints on r. Paths r does not know are
// answered with the API's 404 response.
func (a *API) Routes(r chi.Router) {
	for _, ep := range a.endpoints {
		r.Method(ep.Method, ep.Path, http.HandlerFunc(a.ServeHTTP))
	}
	r.NotFound(a.NotFound)
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		WriteResponse(w, errorResponse(http.StatusMethodNotAllowed, "Method not allowed"))
	})
}

// Handler returns a router serving only the API.
func (a *API) Handler() http.Handler {
	r := chi.NewRouter()
	a.Routes(r)
	return r
}

// ServeHTTP answers with Get(r.URL.Path), whatever the method.
func (a *API) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	WriteResponse(w, a.Get(r.URL.Path))
}

// NotFound answers with the API's 404 response.
func (a *API) NotFound(w http.ResponseWriter, r *http.Request) {
	logutil.Debugf("API %s %s: %d", r.Method, r.URL.Path, http.StatusNotFound)
	WriteResponse(w, errorResponse(http.StatusNotFound, "Endpoint not found"))
}

// WriteResponse writes resp as JSON using resp.Status as the HTTP status.
func WriteResponse(w http.ResponseWriter, resp Response) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(resp.Status)
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		logutil.Errorf("while writing response: %v", err)
	}
}
