package request

type PurchaseTicketRequest struct {
	ScreeningID string `json:"screening_id" validate:"required,uuid"`
}
