package httpserver

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"pharmacy-storefront/internal/cart"
	"pharmacy-storefront/internal/catalog"
	"pharmacy-storefront/internal/checkout"
	"pharmacy-storefront/internal/domain"
)

func listProductsHandler(cat *catalog.Catalog) gin.HandlerFunc {
	return func(c *gin.Context) {
		q := catalog.Query{
			Text:     c.Query("q"),
			Category: c.DefaultQuery("category", domain.CategoryAll),
			MaxPrice: decimal.NewFromInt(9999),
			Sort:     c.DefaultQuery("sort", catalog.SortFeatured),
		}
		if raw := c.Query("maxPrice"); raw != "" {
			price, err := decimal.NewFromString(raw)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "invalid maxPrice"})
				return
			}
			q.MaxPrice = price
		}

		visible := catalog.SelectVisible(cat.Products(), q)
		c.JSON(http.StatusOK, toProductViews(visible))
	}
}

func getCartHandler(store *cart.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, toCartView(store.Totals()))
	}
}

type addItemRequest struct {
	ProductID string `json:"productId" binding:"required"`
}

func addItemHandler(store *cart.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req addItemRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "productId required"})
			return
		}
		if err := store.Add(c.Request.Context(), req.ProductID); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not update cart"})
			return
		}
		c.JSON(http.StatusOK, toCartView(store.Totals()))
	}
}

type setQtyRequest struct {
	Qty *int `json:"qty" binding:"required"`
}

func setQtyHandler(store *cart.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req setQtyRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "qty required"})
			return
		}
		if err := store.SetQty(c.Request.Context(), c.Param("id"), *req.Qty); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not update cart"})
			return
		}
		c.JSON(http.StatusOK, toCartView(store.Totals()))
	}
}

func removeItemHandler(store *cart.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := store.Remove(c.Request.Context(), c.Param("id")); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not update cart"})
			return
		}
		c.JSON(http.StatusOK, toCartView(store.Totals()))
	}
}

func clearCartHandler(store *cart.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := store.Clear(c.Request.Context()); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not update cart"})
			return
		}
		c.JSON(http.StatusOK, toCartView(store.Totals()))
	}
}

type checkoutRequest struct {
	Customer struct {
		Name    string `json:"name"`
		Phone   string `json:"phone"`
		Address string `json:"address"`
	} `json:"customer"`
	Payment struct {
		Method string `json:"method"`
	} `json:"payment"`
}

// checkoutHandler is the surrounding form: it owns non-emptiness validation
// of customer input before the builder sees it.
func checkoutHandler(svc *checkout.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req checkoutRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid checkout payload"})
			return
		}
		if strings.TrimSpace(req.Customer.Name) == "" ||
			strings.TrimSpace(req.Customer.Phone) == "" ||
			strings.TrimSpace(req.Customer.Address) == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "name, phone and address are required"})
			return
		}
		if strings.TrimSpace(req.Payment.Method) == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "payment method required"})
			return
		}

		res, err := svc.Checkout(c.Request.Context(), checkout.Input{
			Customer: domain.Customer{
				Name:    req.Customer.Name,
				Phone:   req.Customer.Phone,
				Address: req.Customer.Address,
			},
			Method: req.Payment.Method,
		})
		if err != nil {
			var rejected *domain.RejectedError
			switch {
			case errors.Is(err, domain.ErrEmptyCart):
				c.JSON(http.StatusConflict, gin.H{"error": "your cart is empty"})
			case errors.As(err, &rejected):
				c.JSON(http.StatusBadGateway, gin.H{"error": rejected.Message})
			case errors.Is(err, domain.ErrNetwork):
				c.JSON(http.StatusBadGateway, gin.H{"error": "could not place the order, try again"})
			default:
				c.JSON(http.StatusInternalServerError, gin.H{"error": "could not place the order"})
			}
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"orderId": res.OrderID,
			"total":   res.Total,
		})
	}
}
