package dto

type GoldResponseDTO struct {
	ID            string  `json:"id" example:"gold-112233445566778899-2-1717236000000"`
	ExternalID    string  `json:"external_id" example:"112233445566778899"`
	RequesterName string  `json:"requester_name" example:"ali"`
	Amount        float64 `json:"amount" example:"500"`
	Price         float64 `json:"price" example:"1200"`
	TotalRial     float64 `json:"total_rial" example:"6000000"`
	CreatedAt     string  `json:"created_at" example:"2024-03-10T12:30:00Z"`
	Note          string  `json:"note,omitempty"`
	Status        string  `json:"status" example:"Pending"`
	ChangedBy     string  `json:"changed_by,omitempty"`
}
