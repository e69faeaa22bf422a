package httpgin

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/amesa/housedraw/internal/domain"
	"github.com/amesa/housedraw/internal/service"
)

// @Summary   Create house
// @Security  BearerAuth
// @Param     req  body  CreateHouseRequest  true  "payload"
// @Success   201  {object}  domain.House
// @Failure   400  {object}  ErrorResponse
// @Failure   409  {object}  ErrorResponse
// @Router    /admin/houses [post]
func handleCreateHouse(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateHouseRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err.Error())
			return
		}

		h, err := svcs.Admin.CreateHouse(c.Request.Context(), req.toDomain())
		if err != nil {
			respondErr(c, err)
			return
		}

		c.JSON(http.StatusCreated, h)
	}
}

// @Summary   Change lottery status
// @Security  BearerAuth
// @Param     id   path  string            true  "House ID"
// @Param     req  body  SetStatusRequest  true  "payload"
// @Success   200  {object}  domain.House
// @Failure   400  {object}  ErrorResponse
// @Failure   404  {object}  ErrorResponse
// @Router    /admin/houses/{id}/status [patch]
func handleSetStatus(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req SetStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err.Error())
			return
		}

		h, err := svcs.Admin.SetStatus(c.Request.Context(), c.Param("id"), domain.HouseStatus(req.Status))
		if err != nil {
			respondErr(c, err)
			return
		}

		c.JSON(http.StatusOK, h)
	}
}
