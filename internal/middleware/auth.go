package middleware

import (
	"net/http"
	"strings"

	"github.com/sams408/safeon-id-vault/internal/domain"
	"github.com/sams408/safeon-id-vault/internal/i18n"
	"github.com/sams408/safeon-id-vault/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

const (
	TokenCookie     = "token"
	AccountIDKey    = "accountID"
	AccountEmailKey = "accountEmail"
	unauthorizedKey = "errors.unauthorized"
)

type TokenParser interface {
	ParseToken(token string) (*usecase.Claims, error)
}

// AuthMiddleware accepts a bearer token or the session cookie, verifies it
// and stores the account on both the gin and the request context.
func AuthMiddleware(parser TokenParser, tr *i18n.Translator, log *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		rawToken, ok := extractToken(c, log)
		if !ok {
			abortUnauthorized(c, tr)
			return
		}

		claims, err := parser.ParseToken(rawToken)
		if err != nil {
			log.Warnf("Middleware: Rejected token: %v", err)
			abortUnauthorized(c, tr)
			return
		}

		log.Debugf("Middleware: Authenticated account %s", claims.Subject)
		c.Set(AccountIDKey, claims.Subject)
		c.Set(AccountEmailKey, claims.Email)
		c.Request = c.Request.WithContext(domain.WithActor(c.Request.Context(), claims.Email))
		c.Next()
	}
}

func extractToken(c *gin.Context, log *logrus.Logger) (string, bool) {
	if authHeader := c.GetHeader("Authorization"); authHeader != "" {
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" || parts[1] == "" {
			log.Warn("Middleware: Invalid Authorization header format")
			return "", false
		}
		return parts[1], true
	}

	token, err := c.Cookie(TokenCookie)
	if err != nil || token == "" {
		log.Warn("Middleware: No bearer token or session cookie")
		return "", false
	}
	return token, true
}

func abortUnauthorized(c *gin.Context, tr *i18n.Translator) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"Status":  "Fail",
		"Message": tr.T(LanguageFrom(c, tr), unauthorizedKey, nil),
	})
}

// AccountID returns the authenticated account id set by AuthMiddleware.
func AccountID(c *gin.Context) string {
	return c.GetString(AccountIDKey)
}
