package models

import "time"

// TargetAll makes an announcement visible to every role.
const TargetAll = "all"

// Announcement is a broadcast message.
type Announcement struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	Title      string    `gorm:"size:255;not null" json:"title"`
	Content    string    `gorm:"type:text;not null" json:"content"`
	AuthorID   uint      `gorm:"not null;index" json:"author_id"`
	Author     *User     `gorm:"foreignKey:AuthorID" json:"-"`
	TargetRole string    `gorm:"size:16;not null;default:all" json:"target_role"`
	CreatedAt  time.Time `gorm:"index" json:"created_at"`
}
