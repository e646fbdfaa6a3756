package api

import (
	"errors"
	"net/http"
	"strings"

	"github.com/Lkoenig2121/ebay/internal/token"
	"github.com/gin-gonic/gin"
)

const (
	authorizationHeaderKey  = "Authorization"
	authorizationTypeBearer = "Bearer"
	authorizationPayloadKey = "authPayload"
	tokenCookieName         = "token"
)

// extractAccessToken reads the token from the Authorization header or,
// failing that, the session cookie the login handler sets.
func extractAccessToken(ctx *gin.Context) (string, error) {
	authorizationHeader := ctx.GetHeader(authorizationHeaderKey)
	if authorizationHeader != "" {
		fields := strings.Fields(authorizationHeader)
		if len(fields) != 2 {
			return "", errors.New("invalid authorization header format")
		}
		if fields[0] != authorizationTypeBearer {
			return "", errors.New("unsupported authorization header type")
		}
		return fields[1], nil
	}

	cookie, err := ctx.Cookie(tokenCookieName)
	if err != nil || cookie == "" {
		return "", errors.New("authorization is not provided")
	}
	return cookie, nil
}

// authMiddleware authenticates the user.
func authMiddleware(tokenMaker token.Maker) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		accessToken, err := extractAccessToken(ctx)
		if err != nil {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, errorResponse(err))
			return
		}

		payload, err := tokenMaker.VerifyToken(accessToken)
		if err != nil {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, errorResponse(err))
			return
		}

		ctx.Set(authorizationPayloadKey, payload)
		ctx.Next()
	}
}
