package assistant

import (
	"net/http"

	"ai-toolkit/internal/handler/http/respond"
	asstUC "ai-toolkit/internal/usecase/assistant"
)

// DocumentQAHandler serves POST /api/document-qa.
type DocumentQAHandler struct{ Svc *asstUC.Service }

// ServeHTTP answers a question about uploaded documents
// @Summary      Ask about documents
// @Description  Answers a question using the uploaded documents as context. When the AI provider fails the reply has success=false and an apology text instead of an error status.
// @Tags         assistant
// @Accept       json
// @Produce      json
// @Param        request body DocumentQARequest true "Question and documents"
// @Success      200 {object} asstUC.QAReply
// @Failure      400 {object} map[string]string "Empty or too long question, too many documents"
// @Failure      413 {object} map[string]string "Request body too large"
// @Router       /api/document-qa [post]
func (h DocumentQAHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req DocumentQARequest
	if err := respond.DecodeJSON(r, &req); err != nil {
		respond.WriteError(w, http.StatusBadRequest, err)
		return
	}

	reply, err := h.Svc.AnswerQuestion(r.Context(), req.Question, req.Documents)
	if err != nil {
		writeError(w, err)
		return
	}
	respond.JSON(w, http.StatusOK, reply)
}

// ChatHandler serves POST /api/website-chat.
type ChatHandler struct{ Svc *asstUC.Service }

// ServeHTTP answers a website help message
// @Summary      Website help chat
// @Description  Answers questions about the toolkit. When the AI provider fails the reply has success=false and an apology text instead of an error status.
// @Tags         assistant
// @Accept       json
// @Produce      json
// @Param        request body ChatRequest true "Chat message"
// @Success      200 {object} asstUC.ChatReply
// @Failure      400 {object} map[string]string "Empty or too long message"
// @Router       /api/website-chat [post]
func (h ChatHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req ChatRequest
	if err := respond.DecodeJSON(r, &req); err != nil {
		respond.WriteError(w, http.StatusBadRequest, err)
		return
	}

	reply, err := h.Svc.Chat(r.Context(), req.Message)
	if err != nil {
		writeError(w, err)
		return
	}
	respond.JSON(w, http.StatusOK, reply)
}

func writeError(w http.ResponseWriter, err error) {
	if asstUC.IsValidationError(err) {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}
	respond.WriteError(w, http.StatusInternalServerError, err)
}

// Register registers the assistant endpoints with the given mux.
func Register(mux *http.ServeMux, svc *asstUC.Service) {
	mux.Handle("POST /api/document-qa", DocumentQAHandler{Svc: svc})
	mux.Handle("POST /api/website-chat", ChatHandler{Svc: svc})
}
