package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"bookinggo/internal/model"
)

// bookingTimeLayout matches the column format callers already parse.
const bookingTimeLayout = "2006-01-02 15:04:05"

type BookingsHandler struct {
	db  *gorm.DB
	log *zap.Logger
}

func NewBookingsHandler(db *gorm.DB, log *zap.Logger) *BookingsHandler {
	return &BookingsHandler{db: db, log: log}
}

type BookProductIn struct {
	Name      string `json:"name" binding:"required"`
	Mobile    string `json:"mobile" binding:"required"`
	Address   string `json:"address" binding:"required"`
	ProductID int64  `json:"product_id" binding:"required"`
}

type BookingCreatedOut struct {
	Message   string `json:"message"`
	BookingID int64  `json:"booking_id"`
}

type UserBookingsIn struct {
	Mobile string `json:"mobile" binding:"required"`
}

type UserBookingOut struct {
	ID           int64   `json:"id"`
	Name         string  `json:"name"`
	Mobile       string  `json:"mobile"`
	Address      string  `json:"address"`
	ProductID    int64   `json:"product_id"`
	ProductName  string  `json:"product_name"`
	ProductPrice float64 `json:"product_price"`
	BookingTime  string  `json:"booking_time"`
	ProductImage string  `json:"product_image"`
}

// Get godoc
// @Summary Fetch a booking by id
// @Tags    bookings
// @Produce json
// @Param   booking_id path int true "booking id"
// @Success 200 {object} model.Booking
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router  /bookings/{booking_id} [get]
func (h *BookingsHandler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("booking_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"detail": "booking_id must be an integer"})
		return
	}

	var b model.Booking
	if err := h.db.First(&b, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"detail": "Booking not found"})
			return
		}
		h.log.Error("fetch booking failed", zap.Int64("booking_id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Internal Server Error"})
		return
	}
	c.JSON(http.StatusOK, b)
}

// Book godoc
// @Summary Book a product
// @Tags    bookings
// @Accept  json
// @Produce json
// @Param   body body BookProductIn true "booking details"
// @Success 200 {object} BookingCreatedOut
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router  /book [post]
func (h *BookingsHandler) Book(c *gin.Context) {
	var in BookProductIn
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"detail": err.Error()})
		return
	}

	var p model.Product
	if err := h.db.Select("name, price").First(&p, "id = ?", in.ProductID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"detail": "Product not found"})
			return
		}
		h.log.Error("look up product failed", zap.Int64("product_id", in.ProductID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Internal Server Error"})
		return
	}

	b := model.Booking{
		Name:         in.Name,
		Mobile:       in.Mobile,
		Address:      in.Address,
		ProductID:    in.ProductID,
		ProductName:  p.Name,
		ProductPrice: p.Price,
		BookingTime:  time.Now().Format(bookingTimeLayout),
	}
	if err := h.db.Create(&b).Error; err != nil {
		h.log.Error("insert booking failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Internal Server Error"})
		return
	}
	c.JSON(http.StatusOK, BookingCreatedOut{Message: "Booking successful", BookingID: b.ID})
}

// ListByUser godoc
// @Summary List bookings made under a mobile number
// @Tags    bookings
// @Accept  json
// @Produce json
// @Param   body body UserBookingsIn true "mobile number"
// @Success 200 {array}  UserBookingOut
// @Failure 422 {object} map[string]string
// @Router  /user_bookings [post]
func (h *BookingsHandler) ListByUser(c *gin.Context) {
	var in UserBookingsIn
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"detail": err.Error()})
		return
	}

	rows := make([]UserBookingOut, 0)
	if err := h.db.
		Table("bookings").
		Select("bookings.*, products.image AS product_image").
		Joins("JOIN products ON products.id = bookings.product_id").
		Where("bookings.mobile = ?", in.Mobile).
		Find(&rows).Error; err != nil {
		h.log.Error("list user bookings failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Internal Server Error"})
		return
	}
	c.JSON(http.StatusOK, rows)
}
