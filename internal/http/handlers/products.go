package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"bookinggo/internal/model"
)

type ProductsHandler struct {
	db  *gorm.DB
	log *zap.Logger
}

func NewProductsHandler(db *gorm.DB, log *zap.Logger) *ProductsHandler {
	return &ProductsHandler{db: db, log: log}
}

// List godoc
// @Summary List the product catalog
// @Tags    products
// @Produce json
// @Success 200 {array}  model.Product
// @Failure 500 {object} map[string]string
// @Router  /products [get]
func (h *ProductsHandler) List(c *gin.Context) {
	h.log.Info("fetching products")
	// Catalog rows live at ids 1..10; anything above is not for sale.
	products := make([]model.Product, 0)
	if err := h.db.Select("id, image, name, price").Where("id < ?", 11).Find(&products).Error; err != nil {
		h.log.Error("fetch products failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Internal Server Error"})
		return
	}
	h.log.Info("fetched products", zap.Int("count", len(products)))
	c.JSON(http.StatusOK, products)
}
