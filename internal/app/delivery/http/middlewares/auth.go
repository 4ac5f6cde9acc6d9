package middlewares

import (
	"context"
	"livwise-service/internal/pkg/constvars"
	"livwise-service/internal/pkg/exceptions"
	"livwise-service/internal/pkg/utils"
	"net/http"
	"strings"
)

// Authenticate requires a bearer token issued to a field device and puts
// the device identifier on the request context.
func (m *Middlewares) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get(constvars.HeaderAuthorization)
		if authHeader == "" {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTokenMissing(nil))
			return
		}

		token := strings.TrimPrefix(authHeader, "Bearer ")
		deviceID, err := utils.ParseJWT(token, m.InternalConfig.JWT.Secret)
		if err != nil {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTokenInvalidOrExpired(err))
			return
		}

		ctx := context.WithValue(r.Context(), constvars.CONTEXT_DEVICE_ID_KEY, deviceID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
