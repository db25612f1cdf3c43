package models

// DefaultTotalMarks applies when a grade is recorded without total marks.
const DefaultTotalMarks = 100

// Grade is one scored assessment.
type Grade struct {
	ID            uint     `gorm:"primaryKey" json:"id"`
	StudentID     uint     `gorm:"not null;index" json:"student_id"`
	Student       *Student `gorm:"foreignKey:StudentID" json:"-"`
	SubjectID     uint     `gorm:"not null;index" json:"subject_id"`
	Subject       *Subject `gorm:"foreignKey:SubjectID" json:"-"`
	ExamType      string   `gorm:"size:64;not null" json:"exam_type"`
	MarksObtained *float64 `json:"marks_obtained"`
	TotalMarks    float64  `gorm:"not null;default:100" json:"total_marks"`
	GradeLetter   string   `gorm:"size:4" json:"grade_letter"`
	Remarks       string   `gorm:"size:512" json:"remarks"`
	Date          string   `gorm:"size:10" json:"date"`
}
