package summarize

import (
	"net/http"

	sumUC "ai-toolkit/internal/usecase/summarize"
)

// Register registers the summarization endpoints with the given mux.
func Register(mux *http.ServeMux, svc *sumUC.Service, runner *sumUC.Runner) {
	mux.Handle("POST /api/summarize", SummarizeHandler{Runner: runner})
	mux.Handle("POST /api/summarize/export", ExportHandler{Runner: runner})
	mux.Handle("POST /api/summarize/batch", BatchHandler{Svc: svc})
}
