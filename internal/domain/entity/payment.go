package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PaymentMethod is one of the fixed accepted payment methods
type PaymentMethod string

const (
	PaymentMethodCash      PaymentMethod = "cash"
	PaymentMethodTransfer  PaymentMethod = "transfer"
	PaymentMethodNequi     PaymentMethod = "nequi"
	PaymentMethodDaviplata PaymentMethod = "daviplata"
	PaymentMethodCard      PaymentMethod = "card"
)

// PaymentMethods lists the accepted methods in report order.
var PaymentMethods = []PaymentMethod{
	PaymentMethodCash,
	PaymentMethodTransfer,
	PaymentMethodNequi,
	PaymentMethodDaviplata,
	PaymentMethodCard,
}

// ParsePaymentMethod resolves a method name, rejecting unknown names.
func ParsePaymentMethod(s string) (PaymentMethod, bool) {
	method := PaymentMethod(s)
	for _, m := range PaymentMethods {
		if m == method {
			return method, true
		}
	}
	return "", false
}

// Payment is one recorded payment against an appointment.
type Payment struct {
	ID            int64           `gorm:"primaryKey;autoIncrement" json:"id"`
	AppointmentID uuid.UUID       `gorm:"type:uuid;not null;index" json:"appointment_id"`
	Method        PaymentMethod   `gorm:"type:varchar(20);not null" json:"method"`
	Amount        decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"amount"`
	PaidAt        time.Time       `gorm:"not null;index" json:"paid_at"`
	Reference     string          `gorm:"type:varchar(100)" json:"reference,omitempty"`
	CreatedAt     time.Time       `gorm:"autoCreateTime" json:"created_at"`

	// Relationships
	Appointment Appointment `gorm:"foreignKey:AppointmentID" json:"appointment,omitempty"`
}

func (Payment) TableName() string {
	return "payments"
}

// PaymentSummary is the categorized fold of a payment set.
type PaymentSummary struct {
	Total    decimal.Decimal                   `json:"total"`
	ByMethod map[PaymentMethod]decimal.Decimal `json:"by_method"`
	Count    int                               `json:"count"`
}

// SummarizePayments folds payments into total, per-method subtotals
// for the fixed method set and a count. Amounts carried by a method
// outside the fixed set still count toward the total but get no
// subtotal bucket.
func SummarizePayments(payments []Payment) PaymentSummary {
	summary := PaymentSummary{
		Total:    decimal.Zero,
		ByMethod: make(map[PaymentMethod]decimal.Decimal, len(PaymentMethods)),
	}
	for _, m := range PaymentMethods {
		summary.ByMethod[m] = decimal.Zero
	}

	for _, p := range payments {
		summary.Total = summary.Total.Add(p.Amount)
		summary.Count++
		if subtotal, ok := summary.ByMethod[p.Method]; ok {
			summary.ByMethod[p.Method] = subtotal.Add(p.Amount)
		}
	}

	return summary
}
