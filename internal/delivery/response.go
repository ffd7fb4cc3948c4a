package delivery

import (
	"errors"
	"net/http"
	"strings"

	"github.com/sams408/safeon-id-vault/internal/domain"
	"github.com/sams408/safeon-id-vault/internal/i18n"
	"github.com/sams408/safeon-id-vault/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type Response struct {
	Status  string      `json:"Status"`
	Message string      `json:"Message"`
	Data    interface{} `json:"Data,omitempty"`
}

func SuccessResponse(c *gin.Context, statusCode int, message string, data interface{}) {
	c.JSON(statusCode, Response{
		Status:  "Success",
		Message: message,
		Data:    data,
	})
}

func ErrorResponse(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, Response{
		Status:  "Fail",
		Message: message,
	})
}

func mapErrorToStatus(err error) int {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrAlreadyExists), errors.Is(err, domain.ErrReferenced):
		return http.StatusConflict
	case errors.Is(err, domain.ErrInvalidInput), errors.Is(err, domain.ErrMissingReference):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrUnauthorized):
		return http.StatusUnauthorized
	}

	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "not found") {
		return http.StatusNotFound
	}
	if strings.Contains(errMsg, "already exists") || strings.Contains(errMsg, "duplicate key") || strings.Contains(errMsg, "unique constraint") {
		return http.StatusConflict
	}
	if strings.Contains(errMsg, "invalid") || strings.Contains(errMsg, "cannot be empty") || strings.Contains(errMsg, "constraint violation") {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

// base carries what every handler needs to reply in the request language.
type base struct {
	tr  *i18n.Translator
	log *logrus.Logger
}

func (b base) lang(c *gin.Context) string {
	return middleware.LanguageFrom(c, b.tr)
}

func (b base) t(c *gin.Context, key string, params map[string]string) string {
	return b.tr.T(b.lang(c), key, params)
}

func (b base) entity(c *gin.Context, name string) string {
	if name == "" {
		return ""
	}
	return b.t(c, "entities."+name, nil)
}

// fail replies with the status for err. Only validation errors carry their
// detail; everything else is described by a translated template so replies
// stay in the request language.
func (b base) fail(c *gin.Context, err error, entity string) {
	status := mapErrorToStatus(err)
	params := map[string]string{"entity": b.entity(c, entity)}

	var key string
	switch {
	case status == http.StatusNotFound:
		key = "errors.notFound"
	case errors.Is(err, domain.ErrReferenced):
		key = "errors.referenced"
	case status == http.StatusConflict:
		key = "errors.conflict"
	case errors.Is(err, domain.ErrMissingReference):
		key = "errors.missingRef"
	case status == http.StatusBadRequest:
		key = "errors.invalid"
		params["detail"] = err.Error()
	case status == http.StatusUnauthorized:
		key = "errors.unauthorized"
	default:
		key = "errors.internal"
	}
	ErrorResponse(c, status, b.t(c, key, params))
}

func (b base) badRequest(c *gin.Context, err error) {
	b.log.Warnf("Failed to bind request body for %s %s: %v", c.Request.Method, c.FullPath(), err)
	ErrorResponse(c, http.StatusBadRequest, b.t(c, "errors.badRequest", nil))
}

// idParam reads the :id path parameter, rejects anything that is not a UUID
// and returns it in canonical lower-case hyphenated form.
func (b base) idParam(c *gin.Context, entity string) (string, bool) {
	id := c.Param("id")
	parsed, err := uuid.Parse(id)
	if err != nil {
		b.log.Warnf("Invalid %s ID parameter: %s", entity, id)
		ErrorResponse(c, http.StatusBadRequest, b.t(c, "errors.invalidId", map[string]string{"entity": b.entity(c, entity)}))
		return "", false
	}
	return parsed.String(), true
}
