package domain

import (
	"strings"
	"time"
)

// Status is the canonical payment status. Store cells may hold free-text
// variants; NormalizeStatus folds them into one of these three values.
type Status string

const (
	StatusPending   Status = "Pending"
	StatusPaid      Status = "Paid"
	StatusCancelled Status = "Cancelled"
)

// NormalizeStatus canonicalizes a raw store cell into a Status. Blank and
// unrecognized values are treated as Pending.
func NormalizeStatus(raw string) Status {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "paid", "yes", "true", "completed":
		return StatusPaid
	case "cancelled", "canceled", "cancel":
		return StatusCancelled
	default:
		return StatusPending
	}
}

// ParseStatus is the strict variant used for client input: it accepts only
// the three canonical values, case-insensitively.
func ParseStatus(raw string) (Status, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "pending":
		return StatusPending, true
	case "paid":
		return StatusPaid, true
	case "cancelled":
		return StatusCancelled, true
	}
	return "", false
}

type Role string

const (
	// RoleSupport is the privileged shop-staff role.
	RoleSupport Role = "SUPPORT"
	// RoleMember may only view records matching their own external ID.
	RoleMember Role = "MEMBER"
)

// Viewer is the identity-provider context a request carries: who is asking
// and with which role.
type Viewer struct {
	ExternalID string
	Name       string
	Role       Role
}

func (v Viewer) Privileged() bool {
	return v.Role == RoleSupport
}

// Payment is a single sale transaction backed by one store row.
type Payment struct {
	ID            string
	RequesterName string
	ExternalID    string
	Amount        float64
	Price         float64
	TotalRial     float64
	CardNumber    string
	IBAN          string
	AccountName   string
	Phone         string
	Duration      string
	CreatedAt     time.Time
	DueDate       time.Time
	Note          string
	Game          string
	Status        Status
	Paid          bool
	ChangedBy     string
}

func (p Payment) OwnerID() string { return p.ExternalID }

// PaymentPatch is a partial update: nil fields keep the stored cell value.
// CreatedAt is deliberately absent; that column is never rewritten.
type PaymentPatch struct {
	RequesterName *string
	Amount        *float64
	Price         *float64
	TotalRial     *float64
	CardNumber    *string
	IBAN          *string
	AccountName   *string
	Phone         *string
	Duration      *string
	DueDate       *time.Time
	Note          *string
	Game          *string
}

// GoldPayment is an in-game-currency transaction. The store carries no key
// column for it, so ID is synthesized at read time from the owner, the row
// position and the capture instant; it is not stable across cache refreshes.
type GoldPayment struct {
	ID            string
	ExternalID    string
	RequesterName string
	Amount        float64
	Price         float64
	TotalRial     float64
	CreatedAt     time.Time
	Note          string
	Status        Status
	ChangedBy     string
}

func (g GoldPayment) OwnerID() string { return g.ExternalID }

// SellerInfo is a payout profile, at most one row per external ID.
type SellerInfo struct {
	ExternalID  string
	CardNumber  string
	IBAN        string
	AccountName string
	Phone       string
}
