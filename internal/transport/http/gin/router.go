package httpgin

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	redisrepo "github.com/amesa/housedraw/internal/repository/redis"
	"github.com/amesa/housedraw/internal/service"
	"github.com/amesa/housedraw/internal/service/admin"
	"github.com/amesa/housedraw/internal/service/i18n"
	"github.com/amesa/housedraw/internal/service/listing"
	"github.com/amesa/housedraw/internal/service/purchase"
	"github.com/amesa/housedraw/internal/service/results"
)

type Options struct {
	Idempotency *redisrepo.IdempotencyStore
	IdemLockTTL time.Duration
	Limiter     *redisrepo.SlidingWindowLimiter
	// AdminSecret enables the /admin routes.
	AdminSecret string
	CORSOrigins []string
}

func NewRouter(
	svcs *service.Services,
	opts Options,
	logger *slog.Logger,
	middlewares ...gin.HandlerFunc,
) *gin.Engine {
	registerValidators()

	if opts.IdemLockTTL <= 0 {
		opts.IdemLockTTL = 30 * time.Second
	}

	r := gin.New()

	r.Use(gin.Recovery(), RequestIDMiddleware(), LoggingMiddleware(logger), CORS(opts.CORSOrigins))
	for _, m := range middlewares {
		if m != nil {
			r.Use(m)
		}
	}

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	r.GET("/healthz", handleHealth(svcs))

	r.GET("/houses", handleListHouses(svcs))
	r.GET("/houses/:id", handleGetHouse(svcs))
	r.POST("/houses/:id/tickets", handlePurchase(svcs, opts))
	r.GET("/houses/:id/results", handleListResults(svcs))

	r.POST("/results/:id/claim", handleClaimResult(svcs))

	r.GET("/languages", handleLanguages(svcs))
	r.GET("/translations/:lang", handleCatalog(svcs))
	r.GET("/translate/:key", handleTranslate(svcs))

	showcase := r.Group("/carousel")
	{
		showcase.GET("", handleCarouselCurrent(svcs))
		showcase.POST("/next", handleCarouselStep(svcs, svcs.Carousel.Next))
		showcase.POST("/prev", handleCarouselStep(svcs, svcs.Carousel.Prev))
		showcase.POST("/images/next", handleCarouselStep(svcs, svcs.Carousel.NextImage))
		showcase.POST("/images/prev", handleCarouselStep(svcs, svcs.Carousel.PrevImage))
		showcase.POST("/listings/:index", handleCarouselJump(svcs, svcs.Carousel.GoToListing))
		showcase.POST("/images/:index", handleCarouselJump(svcs, svcs.Carousel.GoToImage))
	}

	if opts.AdminSecret != "" {
		adm := r.Group("/admin", AdminAuth([]byte(opts.AdminSecret)))
		{
			adm.POST("/houses", handleCreateHouse(svcs))
			adm.PATCH("/houses/:id/status", handleSetStatus(svcs))
			adm.POST("/houses/:id/draw", handleDraw(svcs))
			adm.GET("/results/export", handleExportResults(svcs))
			adm.PUT("/translations", handleUpsertTranslations(svcs))
		}
	}

	return r
}

func badRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, ErrorResponse{Error: msg})
}

func respondErr(c *gin.Context, err error) {
	if err == nil {
		c.Status(http.StatusNoContent)
		return
	}

	switch {
	// not found
	case errors.Is(err, listing.ErrHouseNotFound),
		errors.Is(err, admin.ErrHouseNotFound),
		errors.Is(err, results.ErrHouseNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "house not found"})
	case errors.Is(err, results.ErrResultNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "lottery result not found"})

	// bad input
	case errors.Is(err, listing.ErrInvalidStatus),
		errors.Is(err, admin.ErrInvalidStatus):
		badRequest(c, "invalid status")
	case errors.Is(err, admin.ErrInvalidHouse):
		badRequest(c, "invalid house")
	case errors.Is(err, i18n.ErrInvalidTranslation):
		badRequest(c, i18n.ErrInvalidTranslation.Error())
	case errors.Is(err, i18n.ErrUnknownLanguage):
		badRequest(c, "unknown language")

	// state conflicts
	case errors.Is(err, admin.ErrHouseConflict):
		c.JSON(http.StatusConflict, ErrorResponse{Error: "house already exists"})
	case errors.Is(err, results.ErrAlreadyDrawn):
		c.JSON(http.StatusConflict, ErrorResponse{Error: "lottery already drawn"})
	case errors.Is(err, results.ErrNotDrawable):
		c.JSON(http.StatusConflict, ErrorResponse{Error: "lottery is not ended or sold no tickets"})
	case errors.Is(err, results.ErrAlreadyClaimed):
		c.JSON(http.StatusConflict, ErrorResponse{Error: "prize already claimed"})

	case errors.Is(err, purchase.ErrUnavailable):
		c.Header("Retry-After", "1")
		c.JSON(http.StatusServiceUnavailable, ErrorResponse{Error: "temporarily unavailable"})

	default:
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
	}
}
