package orderControllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/storely/storefront-api/middleware"
	"github.com/storely/storefront-api/models"
	"github.com/storely/storefront-api/services"
	"github.com/storely/storefront-api/utils"
)

// OrderSummary is the list-view shape: full items stay on the detail
// endpoint, lists carry a count.
type OrderSummary struct {
	ID          uint               `json:"id"`
	OrderRef    string             `json:"order_ref"`
	TotalAmount float64            `json:"total_amount"`
	Status      models.OrderStatus `json:"status"`
	ItemCount   int                `json:"item_count"`
	CreatedAt   string             `json:"created_at"`
}

func summarize(orders []models.Order) []OrderSummary {
	summaries := make([]OrderSummary, 0, len(orders))
	for _, o := range orders {
		summaries = append(summaries, OrderSummary{
			ID:          o.ID,
			OrderRef:    o.OrderRef,
			TotalAmount: o.TotalAmount,
			Status:      o.Status,
			ItemCount:   len(o.Items),
			CreatedAt:   o.CreatedAt.Format("2006-01-02 15:04:05"),
		})
	}
	return summaries
}

// POST /orders
func PlaceOrderHandler(svc *services.OrderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		order, err := svc.Checkout(middleware.UserID(c))
		if err != nil {
			var stockErr *services.InsufficientStockError
			switch {
			case errors.Is(err, services.ErrEmptyCart):
				utils.Fail(c, http.StatusBadRequest, err.Error())
			case errors.Is(err, services.ErrProductNotFound):
				utils.Fail(c, http.StatusNotFound, err.Error())
			case errors.As(err, &stockErr):
				c.JSON(http.StatusBadRequest, utils.Response{
					Success: false,
					Message: stockErr.Error(),
					Errors:  stockErr,
				})
			default:
				utils.Fail(c, http.StatusInternalServerError, "failed to place order")
			}
			return
		}

		broadcastNewOrder(*order)
		utils.Created(c, "order placed successfully", order)
	}
}

// GET /orders
func GetUserOrdersHandler(svc *services.OrderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
		limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

		orders, meta, err := svc.ListOrders(middleware.UserID(c), c.Query("status"), page, limit)
		if err != nil {
			if errors.Is(err, services.ErrInvalidOrderStatus) {
				utils.Fail(c, http.StatusBadRequest, err.Error())
				return
			}
			utils.Fail(c, http.StatusInternalServerError, "failed to fetch orders")
			return
		}

		utils.OK(c, "orders", gin.H{"orders": summarize(orders), "pagination": meta})
	}
}

// GET /orders/:id
func GetOrderByIDHandler(svc *services.OrderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		orderID, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			utils.Fail(c, http.StatusBadRequest, "invalid order id")
			return
		}

		order, err := svc.GetOrder(middleware.UserID(c), uint(orderID))
		if err != nil {
			if errors.Is(err, services.ErrOrderNotFound) {
				utils.Fail(c, http.StatusNotFound, err.Error())
				return
			}
			utils.Fail(c, http.StatusInternalServerError, "failed to fetch order")
			return
		}

		utils.OK(c, "order", order)
	}
}

// GET /orders-stats
func GetOrderStatsHandler(svc *services.OrderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		stats, err := svc.Stats(middleware.UserID(c))
		if err != nil {
			utils.Fail(c, http.StatusInternalServerError, "failed to fetch order stats")
			return
		}
		utils.OK(c, "order stats", stats)
	}
}
