package models

import "time"

// DefaultClassCapacity applies when a class is created without a capacity.
const DefaultClassCapacity = 30

// Class is a teaching group. Deleting a class does not cascade.
type Class struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:128;not null" json:"name"`
	Grade     string    `gorm:"size:32;not null" json:"grade"`
	Section   string    `gorm:"size:32" json:"section"`
	TeacherID *uint     `gorm:"index" json:"teacher_id"`
	Teacher   *User     `gorm:"foreignKey:TeacherID" json:"-"`
	Capacity  int       `gorm:"not null;default:30" json:"capacity"`
	CreatedAt time.Time `json:"created_at"`
}
