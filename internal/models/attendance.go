package models

// Attendance statuses.
const (
	AttendancePresent = "present"
	AttendanceAbsent  = "absent"
	AttendanceLate    = "late"
)

// Attendance records one student's presence in one class on one day.
// (student_id, date, class_id) is unique.
type Attendance struct {
	ID        uint     `gorm:"primaryKey" json:"id"`
	StudentID uint     `gorm:"not null;uniqueIndex:idx_attendance_student_date_class,priority:1" json:"student_id"`
	Student   *Student `gorm:"foreignKey:StudentID" json:"-"`
	Date      string   `gorm:"size:10;not null;uniqueIndex:idx_attendance_student_date_class,priority:2;index" json:"date"`
	ClassID   uint     `gorm:"not null;uniqueIndex:idx_attendance_student_date_class,priority:3" json:"class_id"`
	Class     *Class   `gorm:"foreignKey:ClassID" json:"-"`
	Status    string   `gorm:"size:16;not null;check:chk_attendance_status,status IN ('present','absent','late')" json:"status"`
}

// TableName keeps the singular table name.
func (Attendance) TableName() string {
	return "attendance"
}
