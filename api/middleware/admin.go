package middleware

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/feedstorehq/feedstore-backend/api/responses"
	pkgerrors "github.com/feedstorehq/feedstore-backend/pkg/errors"
	"github.com/feedstorehq/feedstore-backend/pkg/logger"
)

const adminTokenHeader = "X-Admin-Token"

// AdminToken guards back-office routes behind a shared secret. The header is
// compared in constant time.
func AdminToken(token string, logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			presented := strings.TrimSpace(r.Header.Get(adminTokenHeader))
			if token == "" || presented == "" ||
				subtle.ConstantTimeCompare([]byte(presented), []byte(token)) != 1 {
				responses.WriteError(r.Context(), logg, w,
					pkgerrors.New(pkgerrors.CodeUnauthorized, "admin token required"))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
