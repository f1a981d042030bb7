package dto

type UpsertSellerRequestDTO struct {
	ExternalID  string `json:"external_id,omitempty" example:"112233445566778899"`
	CardNumber  string `json:"card_number,omitempty" validate:"cardnumber" example:"4242424242424242"`
	IBAN        string `json:"iban,omitempty" validate:"iban" example:"IR123456789012345678901234"`
	AccountName string `json:"account_name,omitempty" example:"Ali Tester"`
	Phone       string `json:"phone,omitempty" validate:"phone" example:"09121234567"`
}

type SellerResponseDTO struct {
	ExternalID  string `json:"external_id"`
	CardNumber  string `json:"card_number,omitempty"`
	IBAN        string `json:"iban,omitempty"`
	AccountName string `json:"account_name,omitempty"`
	Phone       string `json:"phone,omitempty"`
}
