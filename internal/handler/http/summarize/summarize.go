package summarize

import (
	"net/http"

	"ai-toolkit/internal/domain/entity"
	"ai-toolkit/internal/handler/http/respond"
	sumUC "ai-toolkit/internal/usecase/summarize"
)

// SummarizeHandler serves POST /api/summarize.
type SummarizeHandler struct{ Runner *sumUC.Runner }

// ServeHTTP summarizes text or the article behind a URL
// @Summary      Summarize text
// @Description  Extracts the most relevant sentences of the text (or of the article at url) and detects key points. Text takes precedence over url.
// @Tags         summarize
// @Accept       json
// @Produce      json
// @Param        X-Session-ID header string false "Latest-request-wins session key"
// @Param        request body Request true "Text or URL to summarize"
// @Success      200 {object} entity.SummaryResult
// @Failure      400 {object} map[string]string "Invalid input (missing, too short or too long text)"
// @Failure      409 {object} map[string]string "Superseded by a newer request of the same session"
// @Failure      413 {object} map[string]string "Request body too large"
// @Failure      422 {object} map[string]string "URL content could not be fetched"
// @Failure      429 {object} map[string]string "Too many requests - rate limit exceeded"
// @Header       429 {integer} Retry-After "Seconds until the client should retry"
// @Router       /api/summarize [post]
func (h SummarizeHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	result, err := run(r, h.Runner)
	if err != nil {
		writeError(w, err)
		return
	}
	respond.JSON(w, http.StatusOK, result)
}

// ExportHandler serves POST /api/summarize/export.
type ExportHandler struct{ Runner *sumUC.Runner }

// ServeHTTP summarizes and returns the result as a text file
// @Summary      Export a summary
// @Description  Same input as /api/summarize; the result is returned as a plain-text download.
// @Tags         summarize
// @Accept       json
// @Produce      plain
// @Param        X-Session-ID header string false "Latest-request-wins session key"
// @Param        request body Request true "Text or URL to summarize"
// @Success      200 {string} string "summary.txt"
// @Header       200 {string} Content-Disposition "attachment; filename=\"summary.txt\""
// @Failure      400 {object} map[string]string "Invalid input"
// @Failure      409 {object} map[string]string "Superseded by a newer request of the same session"
// @Failure      422 {object} map[string]string "URL content could not be fetched"
// @Router       /api/summarize/export [post]
func (h ExportHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	result, err := run(r, h.Runner)
	if err != nil {
		writeError(w, err)
		return
	}
	respond.Attachment(w, sumUC.ExportFilename, sumUC.FormatPlainText(result))
}

func run(r *http.Request, runner *sumUC.Runner) (*entity.SummaryResult, error) {
	var req Request
	if err := respond.DecodeJSON(r, &req); err != nil {
		return nil, err
	}
	job := runner.Submit(r.Context(), r.Header.Get(SessionHeader), req.input())
	return job.Wait(r.Context())
}
