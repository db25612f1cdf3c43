package dto

import "github.com/noah-isme/school-admin-api/internal/models"

// AnnouncementCreateRequest publishes a message. TargetRole defaults to "all".
type AnnouncementCreateRequest struct {
	Title      string `json:"title" validate:"required"`
	Content    string `json:"content" validate:"required"`
	TargetRole string `json:"target_role" validate:"omitempty,oneof=all admin teacher student"`
}

// DashboardStats is the summary shown on the landing page.
type DashboardStats struct {
	TotalStudents       int64                       `json:"totalStudents"`
	TotalTeachers       int64                       `json:"totalTeachers"`
	TotalClasses        int64                       `json:"totalClasses"`
	TotalSubjects       int64                       `json:"totalSubjects"`
	PresentToday        int64                       `json:"presentToday"`
	AbsentToday         int64                       `json:"absentToday"`
	PendingFees         int64                       `json:"pendingFees"`
	PaidFees            int64                       `json:"paidFees"`
	RecentAnnouncements []models.AnnouncementDetail `json:"recentAnnouncements"`
}
