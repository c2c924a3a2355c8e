package summarize

import (
	"net/http"

	"ai-toolkit/internal/domain/entity"
	"ai-toolkit/internal/handler/http/respond"
	sumUC "ai-toolkit/internal/usecase/summarize"
)

// BatchHandler serves POST /api/summarize/batch.
type BatchHandler struct{ Svc *sumUC.Service }

// ServeHTTP summarizes several texts at once
// @Summary      Summarize a batch
// @Description  Summarizes every document with bounded parallelism. Results keep the request order; the first invalid document fails the whole batch.
// @Tags         summarize
// @Accept       json
// @Produce      json
// @Param        request body BatchRequest true "Documents to summarize"
// @Success      200 {object} BatchResponse
// @Failure      400 {object} map[string]string "Empty, oversized or invalid batch"
// @Failure      413 {object} map[string]string "Request body too large"
// @Router       /api/summarize/batch [post]
func (h BatchHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req BatchRequest
	if err := respond.DecodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	inputs := make([]sumUC.Input, len(req.Documents))
	for i, doc := range req.Documents {
		inputs[i] = sumUC.Input{Text: doc.Text, Level: entity.ParseCompressionLevel(doc.Length)}
	}

	results, err := h.Svc.SummarizeBatch(r.Context(), inputs)
	if err != nil {
		writeError(w, err)
		return
	}
	respond.JSON(w, http.StatusOK, BatchResponse{Results: results})
}
