package model

// MaxDescriptionLength bounds Task.Description in characters.
const MaxDescriptionLength = 80

// Task is a short to-do item belonging to exactly one user.
type Task struct {
	ID          uint   `json:"id" gorm:"primaryKey"`
	Description string `json:"description" gorm:"size:80;not null"`
	Completed   bool   `json:"completed" gorm:"not null;default:false"`
	UserID      uint   `json:"-" gorm:"not null"`
}

// TableName pins the table name to tasks.
func (Task) TableName() string { return "tasks" }
