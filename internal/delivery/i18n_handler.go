package delivery

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/sams408/safeon-id-vault/internal/i18n"
	"github.com/sams408/safeon-id-vault/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type I18nHandler struct {
	base
}

func NewI18nHandler(tr *i18n.Translator, logger *logrus.Logger) *I18nHandler {
	return &I18nHandler{base: base{tr: tr, log: logger}}
}

func (h *I18nHandler) RegisterRoutes(router gin.IRouter) {
	group := router.Group("/i18n")
	{
		group.GET("/languages", h.Languages)
		group.GET("/:lang", h.Table)
		group.POST("/language", h.SetLanguage)
	}
}

type languageView struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

var languageNameKeys = map[string]string{
	"en": "common.english",
	"es": "common.spanish",
}

func (h *I18nHandler) Languages(c *gin.Context) {
	languages := make([]languageView, 0)
	for _, code := range h.tr.Languages() {
		languages = append(languages, languageView{Code: code, Name: h.t(c, languageNameKeys[code], nil)})
	}
	SuccessResponse(c, http.StatusOK, h.t(c, "messages.listed", map[string]string{"count": strconv.Itoa(len(languages))}), gin.H{
		"active":    h.lang(c),
		"default":   h.tr.Default(),
		"languages": languages,
	})
}

func (h *I18nHandler) Table(c *gin.Context) {
	lang := strings.ToLower(c.Param("lang"))
	table, ok := h.tr.Table(lang)
	if !ok {
		ErrorResponse(c, http.StatusNotFound, h.t(c, "errors.language", map[string]string{"language": c.Param("lang")}))
		return
	}
	SuccessResponse(c, http.StatusOK, h.t(c, "messages.retrieved", map[string]string{"entity": lang}), table)
}

type languageRequest struct {
	Language string `json:"language" binding:"required"`
}

// SetLanguage persists the choice in a cookie read by the language middleware.
func (h *I18nHandler) SetLanguage(c *gin.Context) {
	var req languageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badRequest(c, err)
		return
	}
	if !h.tr.Supported(req.Language) {
		ErrorResponse(c, http.StatusBadRequest, h.t(c, "errors.language", map[string]string{"language": req.Language}))
		return
	}

	lang := strings.ToLower(req.Language)
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.LanguageCookie, lang, 365*24*60*60, "/", "", false, false)
	SuccessResponse(c, http.StatusOK, h.tr.T(lang, "messages.language", map[string]string{"language": h.tr.T(lang, languageNameKeys[lang], nil)}), gin.H{"language": lang})
}
