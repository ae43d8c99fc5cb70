package controllers

import (
	"math"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/tannu371/getting-to-know-kanji/repository"
)

const (
	maxPageSize     = 100
	defaultPage     = 1
	defaultPageSize = 20
)

type OrderController struct {
	Repo   repository.OrderRepository
	Logger *zap.Logger
}

func NewOrderController(repo repository.OrderRepository, logger *zap.Logger) *OrderController {
	return &OrderController{Repo: repo, Logger: logger}
}

func parsePaginationParams(ctx *gin.Context) (int, int) {
	page := defaultPage
	pageSize := defaultPageSize

	if p, err := strconv.Atoi(ctx.DefaultQuery("page", "1")); err == nil && p > 0 {
		page = p
	}
	if l, err := strconv.Atoi(ctx.DefaultQuery("page_size", "20")); err == nil && l > 0 {
		pageSize = l
		if pageSize > maxPageSize {
			pageSize = maxPageSize
		}
	}
	return page, pageSize
}

// ListOrders returns one page of recorded orders, newest first.
func (oc *OrderController) ListOrders(ctx *gin.Context) {
	page, pageSize := parsePaginationParams(ctx)

	orders, total, err := oc.Repo.List(ctx.Request.Context(), page, pageSize)
	if err != nil {
		oc.Logger.Error("Failed to list orders", zap.Error(err))
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	totalPages := int(math.Ceil(float64(total) / float64(pageSize)))

	ctx.JSON(http.StatusOK, gin.H{
		"data":        orders,
		"total":       total,
		"page":        page,
		"page_size":   pageSize,
		"total_pages": totalPages,
	})
}
