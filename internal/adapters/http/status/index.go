package status

import "net/http"

// indexHandler serves the embedded progress page.
type indexHandler struct{}

func newIndexHandler() *indexHandler {
	return &indexHandler{}
}

// HandleIndex handles GET / requests. Anything other than the root
// path is a 404 so the mux's catch-all stays honest.
func (h *indexHandler) HandleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	http.ServeFileFS(w, r, indexFS, "index.html")
}
