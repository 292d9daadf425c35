package controllers

import (
	"math"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/nbui/fitstore-api/middlewares"
	"github.com/nbui/fitstore-api/models"
	"github.com/nbui/fitstore-api/services"
)

type ItemController struct {
	items *services.ItemService
}

func NewItemController(items *services.ItemService) *ItemController {
	return &ItemController{items: items}
}

func (c *ItemController) CreateItem(ctx *gin.Context) {
	var item models.Item
	if err := ctx.ShouldBindJSON(&item); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	created, err := c.items.Create(middlewares.CurrentUser(ctx), &item)
	if err != nil {
		respondError(ctx, err)
		return
	}
	sendJSONResponse(ctx, http.StatusCreated, gin.H{"item": created})
}

func (c *ItemController) GetItem(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Failed to parse item id")
		return
	}

	item, err := c.items.Get(uint(id))
	if err != nil {
		respondError(ctx, err)
		return
	}
	sendJSONResponse(ctx, http.StatusOK, gin.H{"item": item})
}

func (c *ItemController) GetItems(ctx *gin.Context) {
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "15"))
	offset := (page - 1) * limit

	items, count, err := c.items.List(limit, offset)
	if err != nil {
		respondError(ctx, err)
		return
	}

	totalPages := math.Ceil(float64(count) / float64(limit))
	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"items": items,
		"metadata": gin.H{
			"total":       count,
			"currentPage": page,
			"limit":       limit,
			"hasNextPage": int(totalPages) > page,
		},
	})
}

func (c *ItemController) UpdateItem(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Failed to parse item id")
		return
	}

	var updates models.ItemUpdates
	if err := ctx.ShouldBindJSON(&updates); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	item, err := c.items.Update(middlewares.CurrentUser(ctx), uint(id), updates)
	if err != nil {
		respondError(ctx, err)
		return
	}
	sendJSONResponse(ctx, http.StatusOK, gin.H{"item": item})
}

func (c *ItemController) DeleteItem(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Failed to parse item id")
		return
	}

	item, err := c.items.Delete(middlewares.CurrentUser(ctx), uint(id))
	if err != nil {
		respondError(ctx, err)
		return
	}
	sendJSONResponse(ctx, http.StatusOK, gin.H{"item": item})
}
