package models

// Order is one recorded purchase, appended when Stripe reports a checkout
// session as completed. Rows are never updated or deleted.
//
// CustomerEmail, Amount and Currency are pointers because Stripe does not
// always collect them; a nil value is stored as NULL.
type Order struct {
	ID            uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	SessionID     string  `gorm:"type:varchar(255);index" json:"session_id"`
	CustomerEmail *string `gorm:"type:varchar(255)" json:"customer_email"`
	Amount        *int64  `json:"amount"` // minor currency units (cents)
	Currency      *string `gorm:"type:varchar(10)" json:"currency"`
	CreatedAt     int64   `gorm:"autoCreateTime" json:"created_at"` // epoch seconds, stamped at insert
}
