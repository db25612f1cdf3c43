package dto

// ClassCreateRequest creates a class. Capacity defaults to 30.
type ClassCreateRequest struct {
	Name      string `json:"name" validate:"required"`
	Grade     string `json:"grade" validate:"required"`
	Section   string `json:"section"`
	TeacherID *uint  `json:"teacher_id"`
	Capacity  *int   `json:"capacity" validate:"omitempty,min=1"`
}

// ClassUpdateRequest overwrites the supplied class fields.
type ClassUpdateRequest struct {
	Name      *string `json:"name" validate:"omitempty,min=1"`
	Grade     *string `json:"grade" validate:"omitempty,min=1"`
	Section   *string `json:"section"`
	TeacherID *uint   `json:"teacher_id"`
	Capacity  *int    `json:"capacity" validate:"omitempty,min=1"`
}

// SubjectCreateRequest creates a subject.
type SubjectCreateRequest struct {
	Name      string `json:"name" validate:"required"`
	Code      string `json:"code" validate:"required"`
	ClassID   *uint  `json:"class_id"`
	TeacherID *uint  `json:"teacher_id"`
}

// SubjectUpdateRequest overwrites the supplied subject fields.
type SubjectUpdateRequest struct {
	Name      *string `json:"name" validate:"omitempty,min=1"`
	Code      *string `json:"code" validate:"omitempty,min=1"`
	ClassID   *uint   `json:"class_id"`
	TeacherID *uint   `json:"teacher_id"`
}

// TimetableCreateRequest schedules a subject for a class.
type TimetableCreateRequest struct {
	ClassID   uint   `json:"class_id" validate:"required"`
	SubjectID uint   `json:"subject_id" validate:"required"`
	DayOfWeek string `json:"day_of_week" validate:"required,oneof=Monday Tuesday Wednesday Thursday Friday Saturday Sunday"`
	StartTime string `json:"start_time" validate:"required,datetime=15:04"`
	EndTime   string `json:"end_time" validate:"required,datetime=15:04"`
}
