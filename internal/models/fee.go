package models

// Fee statuses. Overdue is only ever set explicitly.
const (
	FeeStatusPending = "pending"
	FeeStatusPaid    = "paid"
	FeeStatusOverdue = "overdue"
)

// Fee is a billable charge and its payment state.
type Fee struct {
	ID        uint     `gorm:"primaryKey" json:"id"`
	StudentID uint     `gorm:"not null;index" json:"student_id"`
	Student   *Student `gorm:"foreignKey:StudentID" json:"-"`
	FeeType   string   `gorm:"size:64;not null" json:"fee_type"`
	Amount    float64  `gorm:"not null" json:"amount"`
	DueDate   string   `gorm:"size:10" json:"due_date"`
	PaidDate  *string  `gorm:"size:10" json:"paid_date"`
	Status    string   `gorm:"size:16;not null;default:pending;index;check:chk_fees_status,status IN ('pending','paid','overdue')" json:"status"`
}
