package summarize

import (
	"context"
	"errors"
	"net/http"

	"ai-toolkit/internal/handler/http/respond"
	sumUC "ai-toolkit/internal/usecase/summarize"
)

// writeError maps usecase errors to status codes:
// validation 400, superseded 409, URL ingestion 422, deadline 504.
func writeError(w http.ResponseWriter, err error) {
	switch {
	case sumUC.IsValidationError(err):
		respond.SafeError(w, http.StatusBadRequest, err)
	case errors.Is(err, sumUC.ErrSuperseded):
		respond.SafeError(w, http.StatusConflict, err)
	case errors.Is(err, sumUC.ErrContentFetchDisabled):
		respond.WriteError(w, http.StatusUnprocessableEntity,
			respond.NewAppError(http.StatusUnprocessableEntity, sumUC.ErrContentFetchDisabled.Error(), nil))
	case errors.Is(err, sumUC.ErrContentFetch):
		respond.WriteError(w, http.StatusUnprocessableEntity,
			respond.NewAppError(http.StatusUnprocessableEntity, sumUC.ErrContentFetch.Error(), err))
	case errors.Is(err, context.DeadlineExceeded):
		respond.WriteError(w, http.StatusGatewayTimeout,
			respond.NewAppError(http.StatusGatewayTimeout, "request timeout", err))
	default:
		respond.WriteError(w, http.StatusInternalServerError, err)
	}
}
