package respond

import (
	"errors"
	"net/http"

	"github.com/IsaacDSC/cinecritique/internal/domain"
	"github.com/IsaacDSC/cinecritique/pkg/ctxlogger"
	"github.com/IsaacDSC/cinecritique/pkg/httpadapter"
)

// StatusFor maps a backend error onto the status the gateway answers with.
func StatusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrMissingAccessToken), errors.Is(err, domain.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, domain.ErrMovieNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrInvalidReview), errors.Is(err, domain.ErrRejected):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrBackendUnavailable):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// Error logs err and writes it as {"error": msg}. Client errors are logged at warn.
func Error(w http.ResponseWriter, r *http.Request, err error, msg string) {
	status := StatusFor(err)
	l := ctxlogger.GetLogger(r.Context())
	if status >= http.StatusInternalServerError {
		l.Error(msg, "status", status, "error", err)
	} else {
		l.Warn(msg, "status", status, "error", err)
	}

	if status == http.StatusUnauthorized {
		w.Header().Set("WWW-Authenticate", `Bearer realm="cinecritique"`)
	}

	httpadapter.WriteError(w, status, msg)
}
