package httpgin

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/amesa/housedraw/internal/domain"
	"github.com/amesa/housedraw/internal/service"
)

// @Summary  Health check
// @Success  200  {object}  HealthResponse
// @Router   /healthz [get]
func handleHealth(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, HealthResponse{
			Status: "ok",
			Houses: len(svcs.Listing.All(c.Request.Context())),
		})
	}
}

// @Summary  List houses
// @Param    status  query  string  false  "active, upcoming or ended"
// @Success  200  {array}   domain.House
// @Failure  400  {object}  ErrorResponse
// @Router   /houses [get]
func handleListHouses(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		status := domain.HouseStatus(strings.ToLower(strings.TrimSpace(c.Query("status"))))

		houses, err := svcs.Listing.ByStatus(c.Request.Context(), status)
		if err != nil {
			respondErr(c, err)
			return
		}

		writeJSONWithCache(c, http.StatusOK, houses, "public, max-age=5")
	}
}

// @Summary  Get house
// @Param    id  path  string  true  "House ID"
// @Success  200  {object}  domain.House
// @Failure  404  {object}  ErrorResponse
// @Router   /houses/{id} [get]
func handleGetHouse(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		h, err := svcs.Listing.ByID(c.Request.Context(), c.Param("id"))
		if err != nil {
			respondErr(c, err)
			return
		}

		writeJSONWithCache(c, http.StatusOK, h, "public, max-age=5")
	}
}
