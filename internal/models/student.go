package models

// Student is the academic record of a student-role user.
type Student struct {
	ID            uint   `gorm:"primaryKey" json:"id"`
	UserID        uint   `gorm:"uniqueIndex;not null" json:"user_id"`
	User          *User  `gorm:"foreignKey:UserID" json:"-"`
	RollNumber    string `gorm:"size:64;uniqueIndex;not null" json:"roll_number"`
	ClassID       *uint  `gorm:"index" json:"class_id"`
	Class         *Class `gorm:"foreignKey:ClassID" json:"-"`
	ParentName    string `gorm:"size:255" json:"parent_name"`
	ParentPhone   string `gorm:"size:64" json:"parent_phone"`
	Address       string `gorm:"size:512" json:"address"`
	DateOfBirth   string `gorm:"size:10" json:"date_of_birth"`
	Gender        string `gorm:"size:16" json:"gender"`
	AdmissionDate string `gorm:"size:10" json:"admission_date"`
}
