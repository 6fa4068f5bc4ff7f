package orders

import "time"

// Order is the stable shape callers receive. Status and PaymentStatus are
// independent axes reported by the backend; the client never infers one
// from the other (a cancelled order can still show a refunded payment).
type Order struct {
	ID            int64       `json:"id"`
	TotalAmount   float64     `json:"totalAmount"`
	Status        string      `json:"status"`
	PaymentStatus string      `json:"paymentStatus"`
	ItemsCount    int         `json:"itemsCount"`
	Items         []OrderItem `json:"items"`
	CreatedAt     time.Time   `json:"createdAt"`
}

// OrderItem is one line of an order. Quantity is at least 1 and Price is
// non-negative in backend data.
type OrderItem struct {
	ID          int64   `json:"id"`
	ProductName string  `json:"productName"`
	Price       float64 `json:"price"`
	Quantity    int     `json:"quantity"`
}

// Receipt is what a successful order placement returns.
type Receipt struct {
	Message string
	Order   Order
}

// orderRecord is the backend wire shape.
type orderRecord struct {
	ID            int64             `json:"id"`
	TotalAmount   float64           `json:"total_amount"`
	Status        string            `json:"status"`
	PaymentStatus string            `json:"payment_status"`
	ItemsCount    int               `json:"items_count"`
	Items         []orderItemRecord `json:"items"`
	CreatedAt     time.Time         `json:"created_at"`
}

type orderItemRecord struct {
	ID          int64   `json:"id"`
	ProductName string  `json:"product_name"`
	Price       float64 `json:"price"`
	Quantity    int     `json:"quantity"`
}

func (r orderRecord) toDomain() Order {
	items := make([]OrderItem, 0, len(r.Items))
	for _, it := range r.Items {
		items = append(items, OrderItem{
			ID:          it.ID,
			ProductName: it.ProductName,
			Price:       it.Price,
			Quantity:    it.Quantity,
		})
	}
	return Order{
		ID:            r.ID,
		TotalAmount:   r.TotalAmount,
		Status:        r.Status,
		PaymentStatus: r.PaymentStatus,
		ItemsCount:    r.ItemsCount,
		Items:         items,
		CreatedAt:     r.CreatedAt,
	}
}
