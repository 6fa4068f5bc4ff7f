package farmers

// Farmer is the stable shape callers receive. It is built per response and
// never cached across requests.
type Farmer struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone,omitempty"`
	Location string `json:"location"`
	Role     string `json:"role"`
	HasPhone bool   `json:"hasPhone"`
}

// FarmerProduct is one catalog entry of a farmer.
//
// Price is the authoritative value and is never negative in backend data.
// FormattedPrice is a display string derived by the backend; callers must
// not parse it back into a number.
type FarmerProduct struct {
	ID             int64   `json:"id"`
	Name           string  `json:"name"`
	Description    string  `json:"description"`
	Price          float64 `json:"price"`
	FormattedPrice string  `json:"formattedPrice,omitempty"`
	Image          string  `json:"image"`
	Category       string  `json:"category"`
	Location       string  `json:"location"`
	StockQuantity  int     `json:"stockQuantity"`
}

// UpdateResult is what a phone update always returns, failure included.
type UpdateResult struct {
	Success bool
	Message string
}

// farmerRecord is the backend wire shape.
type farmerRecord struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Location string `json:"location"`
	Role     string `json:"role"`
}

func (r farmerRecord) toDomain() Farmer {
	return Farmer{
		ID:       r.ID,
		Name:     r.Name,
		Email:    r.Email,
		Phone:    r.Phone,
		Location: r.Location,
		Role:     r.Role,
		HasPhone: r.Phone != "",
	}
}

// productRecord is the backend wire shape for a farmer's catalog entry.
type productRecord struct {
	ID             int64   `json:"id"`
	Name           string  `json:"name"`
	Description    string  `json:"description"`
	Price          float64 `json:"price"`
	FormattedPrice string  `json:"formatted_price"`
	Image          string  `json:"image"`
	Category       string  `json:"category"`
	Location       string  `json:"location"`
	StockQuantity  int     `json:"stock_quantity"`
}

func (r productRecord) toDomain() FarmerProduct {
	return FarmerProduct{
		ID:             r.ID,
		Name:           r.Name,
		Description:    r.Description,
		Price:          r.Price,
		FormattedPrice: r.FormattedPrice,
		Image:          r.Image,
		Category:       r.Category,
		Location:       r.Location,
		StockQuantity:  r.StockQuantity,
	}
}
