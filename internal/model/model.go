package model

type Product struct {
	ID    int64   `gorm:"primaryKey" json:"id"`
	Name  string  `gorm:"not null"   json:"name"`
	Price float64 `gorm:"not null"   json:"price"`
	Image string  `gorm:"not null"   json:"image"`
}

// Booking keeps a copy of the product name and price as of booking time, so
// later catalog edits do not rewrite past bookings.
type Booking struct {
	ID           int64   `gorm:"primaryKey;autoIncrement" json:"id"`
	Name         string  `gorm:"not null"                 json:"name"`
	Mobile       string  `gorm:"not null"                 json:"mobile"`
	Address      string  `gorm:"not null"                 json:"address"`
	ProductID    int64   `gorm:"not null"                 json:"product_id"`
	Product      Product `gorm:"foreignKey:ProductID;references:ID" json:"-"`
	ProductName  string  `gorm:"not null"                 json:"product_name"`
	ProductPrice float64 `gorm:"not null"                 json:"product_price"`
	BookingTime  string  `gorm:"not null"                 json:"booking_time"`
}
