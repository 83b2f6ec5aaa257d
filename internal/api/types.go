package api

// Paged is the DRF-style list envelope shared by every paginated
// endpoint. Count is the total across all pages; Next/Previous are
// sibling-page URLs, nil at the respective boundary.
type Paged[T any] struct {
	Count    int     `json:"count"`
	Next     *string `json:"next"`
	Previous *string `json:"previous"`
	Results  []T     `json:"results"`
}

type Category struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Image string `json:"image,omitempty"`
}

// Subcategory field names follow the backend's casing verbatim.
type Subcategory struct {
	ID       int    `json:"id"`
	Category int    `json:"Category"`
	Name     string `json:"name"`
	Image    string `json:"Sub_category_image,omitempty"`
	Enabled  bool   `json:"Enable_subcategory"`
}

type WeightOption struct {
	Weight    string  `json:"weight"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
	IsInStock bool    `json:"is_in_stock"`
}

type Product struct {
	ID                int            `json:"id"`
	Name              string         `json:"name"`
	Category          int            `json:"category"`
	CategoryName      string         `json:"category_name,omitempty"`
	SubCategory       int            `json:"sub_category"`
	SubCategoryName   string         `json:"sub_category_name,omitempty"`
	Price             float64        `json:"price"`
	OfferPrice        float64        `json:"offer_price"`
	Discount          float64        `json:"discount"`
	Quantity          int            `json:"quantity"`
	Description       string         `json:"description"`
	Image             string         `json:"image,omitempty"`
	Available         bool           `json:"Available"`
	IsPopular         bool           `json:"is_popular_product"`
	IsOffer           bool           `json:"is_offer_product"`
	Weights           []WeightOption `json:"weights,omitempty"`
	Weight            string         `json:"weight,omitempty"`
	WeightMeasurement string         `json:"weight_measurement,omitempty"`
}

// StockRow is the stock report's per-product row; Weights carries every
// variant, of which the views show only the first until expanded.
type StockRow struct {
	ID                int            `json:"id"`
	Name              string         `json:"name"`
	Image             string         `json:"image,omitempty"`
	Quantity          int            `json:"quantity"`
	Available         bool           `json:"Available"`
	Weights           []WeightOption `json:"weights,omitempty"`
	WeightMeasurement string         `json:"weight_measurement,omitempty"`
}

type Customer struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	MobileNumber string `json:"mobile_number,omitempty"`
	DateJoined   string `json:"date_joined,omitempty"`
	IsActive     bool   `json:"is_active"`
}

type CartProduct struct {
	Product  int     `json:"product"`
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
	Weight   string  `json:"weight,omitempty"`
}

type Order struct {
	ID           int           `json:"id"`
	User         int           `json:"user"`
	CustomerName string        `json:"customer_name,omitempty"`
	TotalPrice   float64       `json:"total_price"`
	Status       string        `json:"status,omitempty"`
	Address      string        `json:"address,omitempty"`
	CreatedAt    string        `json:"created_at,omitempty"`
	CartProducts []CartProduct `json:"cart_products,omitempty"`
}

type Notification struct {
	ID        int    `json:"id"`
	Message   string `json:"message"`
	Image     string `json:"image,omitempty"`
	IsRead    bool   `json:"is_read"`
	CreatedAt string `json:"created_at,omitempty"`
}

type DeliveryBoy struct {
	ID            int    `json:"id"`
	Name          string `json:"name"`
	Email         string `json:"email"`
	MobileNumber  string `json:"mobile_number"`
	VehicleType   string `json:"vehicle_type,omitempty"`
	VehicleNumber string `json:"vehicle_number,omitempty"`
	Gender        string `json:"gender,omitempty"`
	DOB           string `json:"dob,omitempty"`
	IdentityProof string `json:"identity_proof,omitempty"`
}

type CarouselImage struct {
	ID    int    `json:"id"`
	Image string `json:"image"`
}

type Poster struct {
	ID    int    `json:"id"`
	Image string `json:"image"`
}

type HomeImage struct {
	ID    int    `json:"id"`
	Image string `json:"image"`
}

// LoginResult is persisted client-side as the session record.
type LoginResult struct {
	Message     string   `json:"message"`
	Email       string   `json:"email,omitempty"`
	IsSuperuser bool     `json:"is_superuser"`
	Permissions []string `json:"permissions,omitempty"`
}

type SubAdmin struct {
	ID          int    `json:"id"`
	Name        string `json:"name,omitempty"`
	Email       string `json:"email"`
	IsActive    bool   `json:"is_active"`
	IsSuperuser bool   `json:"is_superuser"`
}

type StockRevenue struct {
	TotalStockQuantity  int     `json:"total_stock_quantity"`
	TotalAmountInvested float64 `json:"total_amount_invested"`
	TotalAmountReceived float64 `json:"total_amount_received"`
	Profit              float64 `json:"profit"`
}

type PaymentTotal struct {
	UserID     int     `json:"user_id"`
	Name       string  `json:"name,omitempty"`
	Email      string  `json:"email,omitempty"`
	TotalPrice float64 `json:"total_price"`
}
