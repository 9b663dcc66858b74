package dto

// CreatePayPalOrderRequest asks the server to create a checkout order.
// The amount is a string because it travels straight from the form.
type CreatePayPalOrderRequest struct {
	Amount      string `json:"amount" binding:"required"`
	Currency    string `json:"currency" binding:"required,len=3"`
	Description string `json:"description"`
	ReturnURL   string `json:"returnURL" binding:"omitempty,url"`
	CancelURL   string `json:"cancelURL" binding:"omitempty,url"`
}

// PayPalOrderResponse is the created order handed back to the form.
type PayPalOrderResponse struct {
	OrderID    string `json:"orderID"`
	Status     string `json:"status"`
	ApproveURL string `json:"approveURL,omitempty"`
}

// PayPalCaptureResponse is the capture outcome for an approved order.
type PayPalCaptureResponse struct {
	OrderID       string `json:"orderID"`
	Status        string `json:"status"`
	TransactionID string `json:"transactionID,omitempty"`
	PayerEmail    string `json:"payerEmail,omitempty"`
}
