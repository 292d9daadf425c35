package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/nbui/fitstore-api/middlewares"
	"github.com/nbui/fitstore-api/services"
)

type OrderController struct {
	orders *services.OrderService
}

func NewOrderController(orders *services.OrderService) *OrderController {
	return &OrderController{orders: orders}
}

// Checkout turns the caller's cart into a paid order.
func (c *OrderController) Checkout(ctx *gin.Context) {
	var body struct {
		Token string `json:"token" binding:"required"`
	}
	if err := ctx.ShouldBindJSON(&body); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	order, err := c.orders.Checkout(middlewares.CurrentUser(ctx), body.Token)
	if err != nil {
		respondError(ctx, err)
		return
	}
	sendJSONResponse(ctx, http.StatusCreated, gin.H{"order": order})
}

func (c *OrderController) GetOrder(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("orderId"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Failed to parse orderId")
		return
	}

	order, err := c.orders.Get(middlewares.CurrentUser(ctx), uint(id))
	if err != nil {
		respondError(ctx, err)
		return
	}
	sendJSONResponse(ctx, http.StatusOK, gin.H{"order": order})
}

func (c *OrderController) GetOrders(ctx *gin.Context) {
	orders, err := c.orders.ListForUser(middlewares.CurrentUser(ctx))
	if err != nil {
		respondError(ctx, err)
		return
	}
	sendJSONResponse(ctx, http.StatusOK, gin.H{"orders": orders})
}
