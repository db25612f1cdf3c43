package models

// Subject is a course taught within a class.
type Subject struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	Name      string `gorm:"size:128;not null" json:"name"`
	Code      string `gorm:"size:32;uniqueIndex;not null" json:"code"`
	ClassID   *uint  `gorm:"index" json:"class_id"`
	Class     *Class `gorm:"foreignKey:ClassID" json:"-"`
	TeacherID *uint  `gorm:"index" json:"teacher_id"`
	Teacher   *User  `gorm:"foreignKey:TeacherID" json:"-"`
}
