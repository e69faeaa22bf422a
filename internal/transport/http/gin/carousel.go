package httpgin

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/amesa/housedraw/internal/service"
)

// @Summary  Showcase state
// @Success  200  {object}  carousel.Snapshot
// @Router   /carousel [get]
func handleCarouselCurrent(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, svcs.Carousel.Current())
	}
}

// @Summary  Step the showcase
// @Success  200  {object}  carousel.Snapshot
// @Router   /carousel/next [post]
// @Router   /carousel/prev [post]
// @Router   /carousel/images/next [post]
// @Router   /carousel/images/prev [post]
func handleCarouselStep(svcs *service.Services, step func()) gin.HandlerFunc {
	return func(c *gin.Context) {
		step()
		c.JSON(http.StatusOK, svcs.Carousel.Current())
	}
}

// @Summary  Jump to a listing or image
// @Param    index  path  int  true  "zero-based index"
// @Success  200  {object}  carousel.Snapshot
// @Failure  400  {object}  ErrorResponse
// @Router   /carousel/listings/{index} [post]
// @Router   /carousel/images/{index} [post]
func handleCarouselJump(svcs *service.Services, jump func(int)) gin.HandlerFunc {
	return func(c *gin.Context) {
		i, err := strconv.Atoi(c.Param("index"))
		if err != nil {
			badRequest(c, "invalid index")
			return
		}

		jump(i)
		c.JSON(http.StatusOK, svcs.Carousel.Current())
	}
}
