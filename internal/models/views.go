package models

import "time"

// Read models returned by join queries. Columns coming from LEFT JOINs are pointers
// so missing associations serialise as null.

// StudentDetail is a student joined with its login identity and class.
type StudentDetail struct {
	ID            uint    `json:"id"`
	UserID        uint    `json:"user_id"`
	RollNumber    string  `json:"roll_number"`
	ClassID       *uint   `json:"class_id"`
	ParentName    string  `json:"parent_name"`
	ParentPhone   string  `json:"parent_phone"`
	Address       string  `json:"address"`
	DateOfBirth   string  `json:"date_of_birth"`
	Gender        string  `json:"gender"`
	AdmissionDate string  `json:"admission_date"`
	Name          string  `json:"name"`
	Username      string  `json:"username"`
	Email         string  `json:"email"`
	ClassName     *string `json:"class_name"`
	Grade         *string `json:"grade"`
}

// TeacherDetail is a teacher account with the names of the classes it leads.
type TeacherDetail struct {
	ID        uint      `json:"id"`
	Username  string    `json:"username"`
	Role      Role      `json:"role"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
	Classes   *string   `gorm:"-" json:"classes"`
}

// ClassDetail is a class with its teacher name and enrolment count.
type ClassDetail struct {
	ID           uint      `json:"id"`
	Name         string    `json:"name"`
	Grade        string    `json:"grade"`
	Section      string    `json:"section"`
	TeacherID    *uint     `json:"teacher_id"`
	Capacity     int       `json:"capacity"`
	CreatedAt    time.Time `json:"created_at"`
	TeacherName  *string   `json:"teacher_name"`
	StudentCount int64     `json:"student_count"`
}

// SubjectDetail is a subject with class and teacher names.
type SubjectDetail struct {
	ID          uint    `json:"id"`
	Name        string  `json:"name"`
	Code        string  `json:"code"`
	ClassID     *uint   `json:"class_id"`
	TeacherID   *uint   `json:"teacher_id"`
	ClassName   *string `json:"class_name"`
	TeacherName *string `json:"teacher_name"`
}

// AttendanceRosterEntry is one student of a class with that day's record, if any.
type AttendanceRosterEntry struct {
	ID          *uint   `json:"id"`
	StudentID   uint    `json:"student_id"`
	ClassID     *uint   `json:"class_id"`
	Date        *string `json:"date"`
	Status      *string `json:"status"`
	RollNumber  string  `json:"roll_number"`
	StudentName string  `json:"student_name"`
}

// AttendanceDetail is an attendance record with student and class names.
type AttendanceDetail struct {
	ID          uint   `json:"id"`
	StudentID   uint   `json:"student_id"`
	ClassID     uint   `json:"class_id"`
	Date        string `json:"date"`
	Status      string `json:"status"`
	StudentName string `json:"student_name"`
	ClassName   string `json:"class_name"`
}

// GradeDetail is a grade with student and subject names.
type GradeDetail struct {
	ID            uint     `json:"id"`
	StudentID     uint     `json:"student_id"`
	SubjectID     uint     `json:"subject_id"`
	ExamType      string   `json:"exam_type"`
	MarksObtained *float64 `json:"marks_obtained"`
	TotalMarks    float64  `json:"total_marks"`
	GradeLetter   string   `json:"grade_letter"`
	Remarks       string   `json:"remarks"`
	Date          string   `json:"date"`
	StudentName   string   `json:"student_name"`
	SubjectName   string   `json:"subject_name"`
	SubjectCode   string   `json:"subject_code"`
}

// FeeDetail is a fee with the student's name and roll number.
type FeeDetail struct {
	ID          uint    `json:"id"`
	StudentID   uint    `json:"student_id"`
	FeeType     string  `json:"fee_type"`
	Amount      float64 `json:"amount"`
	DueDate     string  `json:"due_date"`
	PaidDate    *string `json:"paid_date"`
	Status      string  `json:"status"`
	StudentName string  `json:"student_name"`
	RollNumber  string  `json:"roll_number"`
}

// AnnouncementDetail is an announcement with its author's name.
type AnnouncementDetail struct {
	ID         uint      `json:"id"`
	Title      string    `json:"title"`
	Content    string    `json:"content"`
	AuthorID   uint      `json:"author_id"`
	TargetRole string    `json:"target_role"`
	CreatedAt  time.Time `json:"created_at"`
	AuthorName string    `json:"author_name"`
}

// TimetableDetail is a timetable slot with subject, class and teacher names.
type TimetableDetail struct {
	ID          uint    `json:"id"`
	ClassID     uint    `json:"class_id"`
	SubjectID   uint    `json:"subject_id"`
	DayOfWeek   string  `json:"day_of_week"`
	StartTime   string  `json:"start_time"`
	EndTime     string  `json:"end_time"`
	SubjectName string  `json:"subject_name"`
	Code        string  `json:"code"`
	ClassName   string  `json:"class_name"`
	TeacherName *string `json:"teacher_name"`
}
