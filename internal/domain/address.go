package domain

type Address struct {
	ID         int32  `json:"id"`
	Address    string `json:"address"`
	City       string `json:"city"`
	Country    string `json:"country"`
	PostalCode string `json:"postal_code"`
	UserID     int32  `json:"user_id"`
}

// AddressKind selects which slot on an order an address fills.
type AddressKind string

const (
	AddressKindDelivery AddressKind = "delivery"
	AddressKindPickup   AddressKind = "pickup"
)
