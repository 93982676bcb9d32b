package domain

// Document points at an uploaded file in object storage or at an externally
// hosted resource (e.g. a video URL). Immutable once created except for deletion.
type Document struct {
	ID        int32  `json:"id"`
	Name      string `json:"name"`
	URL       string `json:"url"`
	OrderID   int32  `json:"order_id"`
	UserID    int32  `json:"user_id"`
	CreatedOn string `json:"created_on"`
}
