package status

import "net/http"

// ProgressHandler serves the run snapshot.
type ProgressHandler struct {
	provider ProgressProvider
}

// NewProgressHandler creates a new progress handler.
func NewProgressHandler(provider ProgressProvider) *ProgressHandler {
	return &ProgressHandler{provider: provider}
}

// HandleProgress handles GET /progress requests.
func (h *ProgressHandler) HandleProgress(w http.ResponseWriter, r *http.Request) {
	if h.provider == nil {
		writeError(w, http.StatusServiceUnavailable, "no_run", nil)
		return
	}

	writeJSON(w, http.StatusOK, h.provider.Progress())
}
