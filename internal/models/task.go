package model

import "time"

type Task struct {
	ID        uint       `gorm:"primaryKey;autoIncrement" json:"id"`
	Task      string     `gorm:"not null" json:"task"`
	Completed bool       `gorm:"not null;default:false" json:"completed"`
	Category  Category   `gorm:"type:varchar(20);not null;default:Other" json:"category"`
	DueDate   *time.Time `gorm:"index" json:"due_date"`
}

func (Task) TableName() string {
	return "todos"
}
