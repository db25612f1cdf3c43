package dto

// StudentListRequest captures the student list filters.
type StudentListRequest struct {
	Search  string
	ClassID *uint
}

// StudentCreateRequest creates a student login and academic record together.
type StudentCreateRequest struct {
	Name          string `json:"name" validate:"required"`
	Username      string `json:"username" validate:"required"`
	Password      string `json:"password" validate:"required"`
	Email         string `json:"email" validate:"omitempty,email"`
	RollNumber    string `json:"roll_number" validate:"required"`
	ClassID       *uint  `json:"class_id"`
	ParentName    string `json:"parent_name"`
	ParentPhone   string `json:"parent_phone"`
	Address       string `json:"address"`
	DateOfBirth   string `json:"date_of_birth" validate:"omitempty,datetime=2006-01-02"`
	Gender        string `json:"gender"`
	AdmissionDate string `json:"admission_date" validate:"omitempty,datetime=2006-01-02"`
}

// StudentUpdateRequest overwrites the supplied fields. Username and roll number are immutable.
type StudentUpdateRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=1"`
	Email       *string `json:"email" validate:"omitempty,email"`
	ClassID     *uint   `json:"class_id"`
	ParentName  *string `json:"parent_name"`
	ParentPhone *string `json:"parent_phone"`
	Address     *string `json:"address"`
	DateOfBirth *string `json:"date_of_birth" validate:"omitempty,datetime=2006-01-02"`
	Gender      *string `json:"gender"`
}

// TeacherCreateRequest creates a teacher account.
type TeacherCreateRequest struct {
	Name     string `json:"name" validate:"required"`
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
	Email    string `json:"email" validate:"omitempty,email"`
}

// TeacherUpdateRequest overwrites the supplied teacher fields.
type TeacherUpdateRequest struct {
	Name  *string `json:"name" validate:"omitempty,min=1"`
	Email *string `json:"email" validate:"omitempty,email"`
}
