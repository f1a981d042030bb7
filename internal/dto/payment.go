package dto

import "github.com/ashkanv/shopdesk/internal/duedate"

type CreatePaymentRequestDTO struct {
	ID            string       `json:"id,omitempty" example:"f7efb9f0-3f3d-4b8b-8f6e-2f1a3a6d9c6b"`
	RequesterName string       `json:"requester_name" validate:"required" example:"ali"`
	ExternalID    string       `json:"external_id" validate:"required" example:"112233445566778899"`
	Amount        string       `json:"amount" validate:"required,numeric" example:"2"`
	Price         string       `json:"price" validate:"required,numeric" example:"150000"`
	CardNumber    string       `json:"card_number,omitempty" validate:"cardnumber" example:"4242424242424242"`
	IBAN          string       `json:"iban,omitempty" validate:"iban" example:"IR123456789012345678901234"`
	AccountName   string       `json:"account_name,omitempty" example:"Ali Tester"`
	Phone         string       `json:"phone,omitempty" validate:"phone" example:"09121234567"`
	Duration      duedate.Spec `json:"duration" swaggertype:"string" example:"1-2 days"`
	Note          string       `json:"note,omitempty"`
	Game          string       `json:"game,omitempty" example:"wow"`
}

type UpdatePaymentRequestDTO struct {
	RequesterName *string `json:"requester_name,omitempty"`
	Amount        *string `json:"amount,omitempty" validate:"omitempty,numeric"`
	Price         *string `json:"price,omitempty" validate:"omitempty,numeric"`
	CardNumber    *string `json:"card_number,omitempty" validate:"omitempty,cardnumber"`
	IBAN          *string `json:"iban,omitempty" validate:"omitempty,iban"`
	AccountName   *string `json:"account_name,omitempty"`
	Phone         *string `json:"phone,omitempty" validate:"omitempty,phone"`
	Duration      *string `json:"duration,omitempty"`
	Note          *string `json:"note,omitempty"`
	Game          *string `json:"game,omitempty"`
}

type PaymentResponseDTO struct {
	ID            string  `json:"id"`
	RequesterName string  `json:"requester_name" example:"ali"`
	ExternalID    string  `json:"external_id" example:"112233445566778899"`
	Amount        float64 `json:"amount" example:"2"`
	Price         float64 `json:"price" example:"150000"`
	TotalRial     float64 `json:"total_rial" example:"3000000"`
	CardNumber    string  `json:"card_number,omitempty"`
	IBAN          string  `json:"iban,omitempty"`
	AccountName   string  `json:"account_name,omitempty"`
	Phone         string  `json:"phone,omitempty"`
	Duration      string  `json:"duration" example:"1-2 days"`
	CreatedAt     string  `json:"created_at" example:"2024-03-10T12:30:00Z"`
	DueDate       string  `json:"due_date" example:"2024-03-12T12:30:00Z"`
	Note          string  `json:"note,omitempty"`
	Game          string  `json:"game,omitempty"`
	Status        string  `json:"status" example:"Pending"`
	Paid          bool    `json:"paid"`
	ChangedBy     string  `json:"changed_by,omitempty"`
}

type StatusRequestDTO struct {
	Status string `json:"status" validate:"required" example:"Paid"`
}

type BatchStatusRequestDTO struct {
	IDs    []string `json:"ids" validate:"required,min=1"`
	Status string   `json:"status" validate:"required" example:"Paid"`
}

type BatchItemDTO struct {
	ID      string              `json:"id"`
	OK      bool                `json:"ok"`
	Error   string              `json:"error,omitempty"`
	Payment *PaymentResponseDTO `json:"payment,omitempty"`
}

type BatchStatusResponseDTO struct {
	Results []BatchItemDTO `json:"results"`
}
