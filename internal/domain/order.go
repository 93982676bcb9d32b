package domain

// Order is a request for a printed assistive device, assigned to exactly one
// helper and carrying exactly one lifecycle status at all times.
type Order struct {
	ID                int32  `json:"id"`
	Description       string `json:"description"`
	LongDescription   string `json:"long_description,omitempty"`
	HelperID          int32  `json:"helper_id"`
	StatusID          int32  `json:"status_id"`
	DeliveryAddressID *int32 `json:"address_delivery_id,omitempty"`
	PickupAddressID   *int32 `json:"address_pickup_id,omitempty"`
	Active            bool   `json:"active"`
	CreatedOn         string `json:"created_on"`
	UpdatedOn         string `json:"updated_on"`
}
