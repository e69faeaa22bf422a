package httpgin

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/amesa/housedraw/internal/domain"
	"github.com/amesa/housedraw/internal/service"
)

// @Summary  Active languages
// @Success  200  {array}  domain.Language
// @Router   /languages [get]
func handleLanguages(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		langs, err := svcs.I18n.Languages(c.Request.Context())
		if err != nil {
			respondErr(c, err)
			return
		}

		writeJSONWithCache(c, http.StatusOK, langs, "public, max-age=300")
	}
}

// @Summary  Translation catalog of one language
// @Param    lang  path  string  true  "Language code"
// @Success  200  {object}  map[string]string
// @Failure  400  {object}  ErrorResponse
// @Router   /translations/{lang} [get]
func handleCatalog(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		lang := c.Param("lang")
		if !validLangCode(lang) {
			badRequest(c, "invalid language")
			return
		}

		cat, err := svcs.I18n.Catalog(c.Request.Context(), lang)
		if err != nil {
			respondErr(c, err)
			return
		}

		c.Header("Content-Language", lang)
		writeJSONWithCache(c, http.StatusOK, cat, "public, max-age=300")
	}
}

// @Summary  Translate one key
// @Param    key              path    string  true   "Translation key"
// @Param    lang             query   string  false  "Language code, overrides Accept-Language"
// @Param    Accept-Language  header  string  false  "Preferred languages"
// @Success  200  {object}  TranslateResponse
// @Router   /translate/{key} [get]
func handleTranslate(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		lang := c.Query("lang")
		if lang == "" {
			lang = svcs.I18n.Negotiate(ctx, c.GetHeader("Accept-Language"))
		} else if !validLangCode(lang) {
			badRequest(c, "invalid language")
			return
		}

		key := c.Param("key")

		c.Header("Content-Language", lang)
		c.JSON(http.StatusOK, TranslateResponse{
			Key:      key,
			Language: lang,
			Value:    svcs.I18n.Translate(ctx, lang, key),
		})
	}
}

// @Summary   Insert or update translations
// @Security  BearerAuth
// @Param     req  body  UpsertTranslationsRequest  true  "payload"
// @Success   200  {object}  UpsertTranslationsResponse
// @Failure   400  {object}  ErrorResponse
// @Router    /admin/translations [put]
func handleUpsertTranslations(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req UpsertTranslationsRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err.Error())
			return
		}

		rows := make([]domain.Translation, 0, len(req.Translations))
		for _, t := range req.Translations {
			rows = append(rows, domain.Translation{
				Language: t.Language,
				Key:      t.Key,
				Value:    t.Value,
				Category: t.Category,
			})
		}

		n, err := svcs.I18n.Upsert(c.Request.Context(), rows)
		if err != nil {
			respondErr(c, err)
			return
		}

		c.JSON(http.StatusOK, UpsertTranslationsResponse{Written: n})
	}
}
