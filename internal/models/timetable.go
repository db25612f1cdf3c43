package models

// TimetableEntry is a scheduled class/subject slot. Overlaps are not detected.
type TimetableEntry struct {
	ID        uint     `gorm:"primaryKey" json:"id"`
	ClassID   uint     `gorm:"not null;index" json:"class_id"`
	Class     *Class   `gorm:"foreignKey:ClassID" json:"-"`
	SubjectID uint     `gorm:"not null;index" json:"subject_id"`
	Subject   *Subject `gorm:"foreignKey:SubjectID" json:"-"`
	DayOfWeek string   `gorm:"size:16;not null" json:"day_of_week"`
	StartTime string   `gorm:"size:5;not null" json:"start_time"`
	EndTime   string   `gorm:"size:5;not null" json:"end_time"`
}

// TableName keeps the singular table name.
func (TimetableEntry) TableName() string {
	return "timetable"
}
