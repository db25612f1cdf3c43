package dto

// AttendanceRosterRequest selects one class on one day.
type AttendanceRosterRequest struct {
	ClassID uint   `json:"class_id" validate:"required"`
	Date    string `json:"date" validate:"required,datetime=2006-01-02"`
}

// AttendanceRecord is one entry of a bulk attendance submission.
type AttendanceRecord struct {
	StudentID uint   `json:"student_id" validate:"required"`
	ClassID   uint   `json:"class_id" validate:"required"`
	Date      string `json:"date" validate:"required,datetime=2006-01-02"`
	Status    string `json:"status" validate:"required,oneof=present absent late"`
}

// AttendanceMarkRequest is the body of POST /api/attendance.
type AttendanceMarkRequest struct {
	Records []AttendanceRecord `json:"records" validate:"required,dive"`
}

// AttendanceReportRequest filters the attendance report.
type AttendanceReportRequest struct {
	StudentID *uint  `json:"student_id"`
	ClassID   *uint  `json:"class_id"`
	Status    string `json:"status" validate:"omitempty,oneof=present absent late"`
	From      string `json:"from" validate:"omitempty,datetime=2006-01-02"`
	To        string `json:"to" validate:"omitempty,datetime=2006-01-02"`
}

// GradeListRequest filters grade lists.
type GradeListRequest struct {
	StudentID *uint
	SubjectID *uint
}

// GradeCreateRequest records an assessment. The letter is derived when omitted.
type GradeCreateRequest struct {
	StudentID     uint     `json:"student_id" validate:"required"`
	SubjectID     uint     `json:"subject_id" validate:"required"`
	ExamType      string   `json:"exam_type" validate:"required"`
	MarksObtained *float64 `json:"marks_obtained" validate:"omitempty,min=0"`
	TotalMarks    *float64 `json:"total_marks" validate:"omitempty,gt=0"`
	GradeLetter   string   `json:"grade_letter"`
	Remarks       string   `json:"remarks"`
	Date          string   `json:"date" validate:"omitempty,datetime=2006-01-02"`
}

// GradeUpdateRequest overwrites the supplied grade fields.
type GradeUpdateRequest struct {
	ExamType      *string  `json:"exam_type" validate:"omitempty,min=1"`
	MarksObtained *float64 `json:"marks_obtained" validate:"omitempty,min=0"`
	TotalMarks    *float64 `json:"total_marks" validate:"omitempty,gt=0"`
	GradeLetter   *string  `json:"grade_letter"`
	Remarks       *string  `json:"remarks"`
	Date          *string  `json:"date" validate:"omitempty,datetime=2006-01-02"`
}

// FeeListRequest filters fee lists.
type FeeListRequest struct {
	StudentID *uint  `json:"student_id"`
	Status    string `json:"status" validate:"omitempty,oneof=pending paid overdue"`
}

// FeeCreateRequest bills a student. New fees are always pending.
type FeeCreateRequest struct {
	StudentID uint    `json:"student_id" validate:"required"`
	FeeType   string  `json:"fee_type" validate:"required"`
	Amount    float64 `json:"amount" validate:"required,gt=0"`
	DueDate   string  `json:"due_date" validate:"omitempty,datetime=2006-01-02"`
}
