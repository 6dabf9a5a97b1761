package model

import "time"

// CartItemModel is the stored form of a priced order line.
type CartItemModel struct {
	ProductID       string            `bson:"product_id"`
	Quantity        int               `bson:"quantity"`
	Customizations  map[string]string `bson:"customizations"`
	CalculatedPrice float64           `bson:"calculated_price"`
}

// OrderModel is the stored form of an order document.
type OrderModel struct {
	ID              string          `bson:"_id"`
	UserID          string          `bson:"user_id"`
	Items           []CartItemModel `bson:"items"`
	TotalAmount     float64         `bson:"total_amount"`
	DeliveryAddress AddressModel    `bson:"delivery_address"`
	PaymentMethod   string          `bson:"payment_method"`
	PaymentStatus   string          `bson:"payment_status"`
	OrderStatus     string          `bson:"order_status"`
	CreatedAt       time.Time       `bson:"created_at"`
	UpdatedAt       time.Time       `bson:"updated_at"`
}
