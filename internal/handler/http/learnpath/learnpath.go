// Package learnpath provides the HTTP handlers for learning path generation
// and export.
package learnpath

import (
	"net/http"

	"ai-toolkit/internal/domain/entity"
	"ai-toolkit/internal/handler/http/respond"
	lpUC "ai-toolkit/internal/usecase/learnpath"
)

// Request is the body of /api/learning-path and /api/learning-path/export.
type Request struct {
	Goal           string `json:"goal" example:"Become a React developer"`
	Level          string `json:"level,omitempty" example:"beginner" enums:"beginner,intermediate,advanced"`
	TimeCommitment string `json:"timeCommitment,omitempty" example:"3-5" enums:"1-2,3-5,6-10,10+"`
}

// GenerateHandler serves POST /api/learning-path.
type GenerateHandler struct{ Gen *lpUC.Generator }

// ServeHTTP builds a learning path
// @Summary      Generate a learning path
// @Description  Builds a step-by-step roadmap for the goal. Web and data goals get curated templates, anything else a personalized three-step path. The time commitment (hours per week) scales the durations.
// @Tags         learning-path
// @Accept       json
// @Produce      json
// @Param        request body Request true "Goal, level and weekly hours"
// @Success      200 {object} entity.LearningPath
// @Failure      400 {object} map[string]string "Missing goal, unknown level or time commitment"
// @Router       /api/learning-path [post]
func (h GenerateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	path, err := generate(r, h.Gen)
	if err != nil {
		writeError(w, err)
		return
	}
	respond.JSON(w, http.StatusOK, path)
}

// ExportHandler serves POST /api/learning-path/export.
type ExportHandler struct{ Gen *lpUC.Generator }

// ServeHTTP builds a learning path and returns it as a text file
// @Summary      Export a learning path
// @Description  Same input as /api/learning-path; the path is returned as a plain-text download.
// @Tags         learning-path
// @Accept       json
// @Produce      plain
// @Param        request body Request true "Goal, level and weekly hours"
// @Success      200 {string} string "learning-path.txt"
// @Header       200 {string} Content-Disposition "attachment; filename=\"learning-path.txt\""
// @Failure      400 {object} map[string]string "Missing goal, unknown level or time commitment"
// @Router       /api/learning-path/export [post]
func (h ExportHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	path, err := generate(r, h.Gen)
	if err != nil {
		writeError(w, err)
		return
	}
	respond.Attachment(w, lpUC.ExportFilename, lpUC.FormatPlainText(path))
}

func generate(r *http.Request, gen *lpUC.Generator) (*entity.LearningPath, error) {
	var req Request
	if err := respond.DecodeJSON(r, &req); err != nil {
		return nil, err
	}
	return gen.Generate(r.Context(), lpUC.Request{
		Goal:           req.Goal,
		Level:          lpUC.Level(req.Level),
		TimeCommitment: lpUC.TimeCommitment(req.TimeCommitment),
	})
}

func writeError(w http.ResponseWriter, err error) {
	if lpUC.IsValidationError(err) {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}
	respond.WriteError(w, http.StatusInternalServerError, err)
}

// Register registers the learning path endpoints with the given mux.
func Register(mux *http.ServeMux, gen *lpUC.Generator) {
	mux.Handle("POST /api/learning-path", GenerateHandler{Gen: gen})
	mux.Handle("POST /api/learning-path/export", ExportHandler{Gen: gen})
}
