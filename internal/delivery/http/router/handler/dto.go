package handler

import (
	"time"

	"kitchen/internal/domain/entity"
	"kitchen/internal/usecase"
)

// Wire payloads. Field names follow the public API contract (snake_case);
// they are mapped to and from the usecase DTOs here so neither the domain
// nor the usecase layer carries JSON tags.

type customizationOptionPayload struct {
	Name          string  `json:"name"`
	PriceModifier float64 `json:"price_modifier"`
}

type customizationCategoryPayload struct {
	Enabled bool                         `json:"enabled"`
	Options []customizationOptionPayload `json:"options"`
}

type productPayload struct {
	ID                   string                                  `json:"id"`
	Name                 string                                  `json:"name"`
	Description          string                                  `json:"description"`
	Images               []string                                `json:"images"`
	Category             string                                  `json:"category"`
	Subcategory          string                                  `json:"subcategory"`
	BasePrice            float64                                 `json:"base_price"`
	CustomizationOptions map[string]customizationCategoryPayload `json:"customization_options"`
	IsActive             bool                                    `json:"is_active"`
	StockQuantity        int                                     `json:"stock_quantity"`
	MinStockLevel        int                                     `json:"min_stock_level"`
	PreparationTime      int                                     `json:"preparation_time"`
	Tags                 []string                                `json:"tags"`
	NutritionInfo        map[string]any                          `json:"nutrition_info,omitempty"`
	CreatedAt            time.Time                               `json:"created_at"`
	UpdatedAt            time.Time                               `json:"updated_at"`
}

type addressPayload struct {
	Label      string `json:"label"`
	Street     string `json:"street"`
	City       string `json:"city"`
	State      string `json:"state"`
	PostalCode string `json:"postal_code"`
	Phone      string `json:"phone"`
}

type userPayload struct {
	ID        string           `json:"id"`
	Email     string           `json:"email,omitempty"`
	Phone     string           `json:"phone,omitempty"`
	Name      string           `json:"name"`
	Addresses []addressPayload `json:"addresses"`
	CreatedAt time.Time        `json:"created_at"`
	UpdatedAt time.Time        `json:"updated_at"`
}

type cartItemPayload struct {
	ProductID       string            `json:"product_id"`
	Quantity        int               `json:"quantity"`
	Customizations  map[string]string `json:"customizations"`
	CalculatedPrice float64           `json:"calculated_price"`
}

type orderPayload struct {
	ID              string            `json:"id"`
	UserID          string            `json:"user_id"`
	Items           []cartItemPayload `json:"items"`
	TotalAmount     float64           `json:"total_amount"`
	DeliveryAddress addressPayload    `json:"delivery_address"`
	PaymentMethod   string            `json:"payment_method"`
	PaymentStatus   string            `json:"payment_status"`
	OrderStatus     string            `json:"order_status"`
	CreatedAt       time.Time         `json:"created_at"`
	UpdatedAt       time.Time         `json:"updated_at"`
}

// --- Mapper Functions ---

func toProductPayload(p *entity.Product) productPayload {
	customizations := make(map[string]customizationCategoryPayload, len(p.Customizations))
	for name, category := range p.Customizations {
		options := make([]customizationOptionPayload, 0, len(category.Options))
		for _, opt := range category.Options {
			options = append(options, customizationOptionPayload{
				Name:          opt.Name,
				PriceModifier: opt.PriceModifier,
			})
		}
		customizations[name] = customizationCategoryPayload{
			Enabled: category.Enabled,
			Options: options,
		}
	}

	return productPayload{
		ID:                   p.ID.String(),
		Name:                 p.Name,
		Description:          p.Description,
		Images:               p.Images,
		Category:             p.Category.String(),
		Subcategory:          p.Subcategory,
		BasePrice:            p.BasePrice,
		CustomizationOptions: customizations,
		IsActive:             p.IsActive,
		StockQuantity:        p.StockQuantity,
		MinStockLevel:        p.MinStockLevel,
		PreparationTime:      p.PreparationTime,
		Tags:                 p.Tags,
		NutritionInfo:        p.NutritionInfo,
		CreatedAt:            p.CreatedAt,
		UpdatedAt:            p.UpdatedAt,
	}
}

func toProductPayloads(products []*entity.Product) []productPayload {
	payloads := make([]productPayload, 0, len(products))
	for _, p := range products {
		payloads = append(payloads, toProductPayload(p))
	}

	return payloads
}

func fromCustomizationPayloads(in map[string]customizationCategoryPayload) map[string]entity.CustomizationCategory {
	if in == nil {
		return nil
	}

	out := make(map[string]entity.CustomizationCategory, len(in))
	for name, category := range in {
		options := make([]entity.CustomizationOption, 0, len(category.Options))
		for _, opt := range category.Options {
			options = append(options, entity.CustomizationOption{
				Name:          opt.Name,
				PriceModifier: opt.PriceModifier,
			})
		}
		out[name] = entity.CustomizationCategory{
			Enabled: category.Enabled,
			Options: options,
		}
	}

	return out
}

func toAddressPayload(a entity.Address) addressPayload {
	return addressPayload{
		Label:      a.Label,
		Street:     a.Street,
		City:       a.City,
		State:      a.State,
		PostalCode: a.PostalCode,
		Phone:      a.Phone,
	}
}

func fromAddressPayload(a addressPayload) usecase.AddressInput {
	return usecase.AddressInput{
		Label:      a.Label,
		Street:     a.Street,
		City:       a.City,
		State:      a.State,
		PostalCode: a.PostalCode,
		Phone:      a.Phone,
	}
}

func toUserPayload(u *entity.User) userPayload {
	addresses := make([]addressPayload, 0, len(u.Addresses))
	for _, addr := range u.Addresses {
		addresses = append(addresses, toAddressPayload(addr))
	}

	return userPayload{
		ID:        u.ID.String(),
		Email:     u.Email,
		Phone:     u.Phone,
		Name:      u.Name,
		Addresses: addresses,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

func toCartItemPayloads(items []entity.CartItem) []cartItemPayload {
	payloads := make([]cartItemPayload, 0, len(items))
	for _, item := range items {
		payloads = append(payloads, cartItemPayload{
			ProductID:       item.ProductID.String(),
			Quantity:        item.Quantity,
			Customizations:  item.Customizations,
			CalculatedPrice: item.CalculatedPrice,
		})
	}

	return payloads
}

func toOrderPayload(o *entity.Order) orderPayload {
	return orderPayload{
		ID:              o.ID.String(),
		UserID:          o.UserID.String(),
		Items:           toCartItemPayloads(o.Items),
		TotalAmount:     o.TotalAmount,
		DeliveryAddress: toAddressPayload(o.DeliveryAddress),
		PaymentMethod:   o.PaymentMethod,
		PaymentStatus:   o.PaymentStatus,
		OrderStatus:     o.OrderStatus.String(),
		CreatedAt:       o.CreatedAt,
		UpdatedAt:       o.UpdatedAt,
	}
}

func toOrderPayloads(orders []*entity.Order) []orderPayload {
	payloads := make([]orderPayload, 0, len(orders))
	for _, o := range orders {
		payloads = append(payloads, toOrderPayload(o))
	}

	return payloads
}
