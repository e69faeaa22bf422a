package httpgin

import (
	"bytes"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/amesa/housedraw/internal/service"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// @Summary  Lottery results of a house
// @Param    id  path  string  true  "House ID"
// @Success  200  {array}   domain.LotteryResult
// @Failure  404  {object}  ErrorResponse
// @Router   /houses/{id}/results [get]
func handleListResults(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		res, err := svcs.Results.List(c.Request.Context(), c.Param("id"))
		if err != nil {
			respondErr(c, err)
			return
		}

		writeJSONWithCache(c, http.StatusOK, res, "public, max-age=30")
	}
}

// @Summary  Claim a prize
// @Param    id  path  string  true  "Result ID (uuid)"
// @Success  200  {object}  domain.LotteryResult
// @Failure  404  {object}  ErrorResponse
// @Failure  409  {object}  ErrorResponse  "already claimed"
// @Router   /results/{id}/claim [post]
func handleClaimResult(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := uuid.Parse(c.Param("id"))
		if err != nil {
			badRequest(c, "invalid id")
			return
		}

		res, err := svcs.Results.Claim(c.Request.Context(), id)
		if err != nil {
			respondErr(c, err)
			return
		}

		c.JSON(http.StatusOK, res)
	}
}

// @Summary   Draw the winners of an ended lottery
// @Security  BearerAuth
// @Param     id  path  string  true  "House ID"
// @Success   201  {array}   domain.LotteryResult
// @Failure   404  {object}  ErrorResponse
// @Failure   409  {object}  ErrorResponse  "not ended or already drawn"
// @Router    /admin/houses/{id}/draw [post]
func handleDraw(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		res, err := svcs.Results.Draw(c.Request.Context(), c.Param("id"))
		if err != nil {
			respondErr(c, err)
			return
		}

		c.JSON(http.StatusCreated, res)
	}
}

// @Summary   Export all lottery results
// @Security  BearerAuth
// @Produce   application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success   200  {file}  file
// @Router    /admin/results/export [get]
func handleExportResults(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		var buf bytes.Buffer
		if err := svcs.Results.Export(c.Request.Context(), &buf); err != nil {
			respondErr(c, err)
			return
		}

		name := fmt.Sprintf("lottery-results-%s.xlsx", time.Now().UTC().Format("20060102"))
		c.Header("Content-Disposition", `attachment; filename="`+name+`"`)
		c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
	}
}
