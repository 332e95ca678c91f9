package models

// Request and response bodies of the backend REST contract.

type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type AdminCredentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type Registration struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type CreateAuctionRequest struct {
	Name          string  `json:"name"`
	Description   string  `json:"description"`
	StartingPrice float64 `json:"starting_price"`
	EndTime       string  `json:"end_time"`
}

type PlaceBidRequest struct {
	BidAmount float64 `json:"bid_amount"`
}

// MessageResponse is the generic {"message": ...} success body.
type MessageResponse struct {
	Message string `json:"message"`
}

type TokenResponse struct {
	Token   string `json:"token"`
	Message string `json:"message,omitempty"`
}

type SellerAuthResponse struct {
	Message string  `json:"message,omitempty"`
	Token   string  `json:"token"`
	Seller  *Seller `json:"seller"`
}

type Admin struct {
	ID       ID     `json:"id"`
	Username string `json:"username"`
}

type AdminAuthResponse struct {
	Token string `json:"token"`
	Admin *Admin `json:"admin"`
}

// ErrorResponse is the backend's error body.
type ErrorResponse struct {
	Error string `json:"error"`
}
