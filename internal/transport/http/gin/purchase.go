package httpgin

import (
	"encoding/json"
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/amesa/housedraw/internal/domain"
	redisrepo "github.com/amesa/housedraw/internal/repository/redis"
	"github.com/amesa/housedraw/internal/service"
)

func purchaseStatus(res *domain.PurchaseResult) int {
	if res.Success {
		return http.StatusCreated
	}

	switch res.Kind {
	case domain.PurchaseNotFound:
		return http.StatusNotFound
	case domain.PurchaseLotteryInactive, domain.PurchaseSoldOut:
		return http.StatusConflict
	}

	return http.StatusServiceUnavailable
}

// @Summary  Buy one ticket
// @Param    id               path    string  true   "House ID"
// @Param    Idempotency-Key  header  string  false  "replays the first response for the same key"
// @Param    Accept-Language  header  string  false  "language of the message"
// @Success  201  {object}  domain.PurchaseResult
// @Failure  404  {object}  domain.PurchaseResult  "house not found"
// @Failure  409  {object}  domain.PurchaseResult  "lottery inactive, sold out or key in progress"
// @Failure  429  {object}  ErrorResponse  "rate limited"
// @Failure  503  {object}  domain.PurchaseResult  "retry later"
// @Router   /houses/{id}/tickets [post]
func handlePurchase(svcs *service.Services, opts Options) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		houseID := c.Param("id")

		allowed, _, retryAfter, err := opts.Limiter.Allow(ctx, "ip:"+c.ClientIP())
		if err != nil {
			// Limiter errors let the request through.
			_ = c.Error(err)
		} else if !allowed {
			c.Header("Retry-After", strconv.Itoa(int(math.Ceil(retryAfter.Seconds()))))
			c.JSON(http.StatusTooManyRequests, ErrorResponse{Error: "rate limited"})
			return
		}

		idemKey := strings.TrimSpace(c.GetHeader("Idempotency-Key"))
		var idemStorageKey string
		if opts.Idempotency != nil && idemKey != "" {
			idemStorageKey = redisrepo.KeyIdemPurchase(houseID, idemKey)

			if status, payload, ok, _ := opts.Idempotency.GetResult(ctx, idemStorageKey); ok {
				replay(c, idemKey, status, payload)
				return
			}

			locked, err := opts.Idempotency.AcquireLock(ctx, idemStorageKey, opts.IdemLockTTL)
			if err != nil {
				_ = c.Error(err)
				idemStorageKey = ""
			} else if !locked {
				if status, payload, ok, _ := opts.Idempotency.GetResult(ctx, idemStorageKey); ok {
					replay(c, idemKey, status, payload)
					return
				}
				c.Header("Retry-After", "1")
				c.JSON(http.StatusConflict, ErrorResponse{Error: "idempotency key in progress"})
				return
			}
		}

		lang := svcs.I18n.Negotiate(ctx, c.GetHeader("Accept-Language"))

		res, err := svcs.Purchase.Purchase(ctx, houseID)
		if err != nil {
			_ = c.Error(err)
		}

		res.Message = svcs.I18n.PurchaseMessage(ctx, lang, res)
		status := purchaseStatus(res)

		c.Header("Content-Language", lang)

		if idemStorageKey != "" {
			if status == http.StatusServiceUnavailable {
				_ = opts.Idempotency.Release(ctx, idemStorageKey)
			} else {
				b, _ := json.Marshal(res)
				_ = opts.Idempotency.SaveResult(ctx, idemStorageKey, status, string(b))
			}
			c.Header("Idempotency-Key", idemKey)
		}

		if status == http.StatusServiceUnavailable {
			c.Header("Retry-After", "1")
		}

		c.JSON(status, res)
	}
}

func replay(c *gin.Context, idemKey string, status int, payload string) {
	c.Header("Idempotency-Key", idemKey)
	c.Header("Idempotent-Replayed", "true")
	c.Data(status, "application/json; charset=utf-8", []byte(payload))
}
