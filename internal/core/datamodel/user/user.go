package user

import "time"

type User struct {
	ID         string    `gorm:"primaryKey"`
	Name       string    `gorm:"column:name;not null"`
	Role       string    `gorm:"column:role;not null"`
	Department string    `gorm:"column:department;not null"`
	Avatar     string    `gorm:"column:avatar"`
	CreatedAt  time.Time `gorm:"column:created_at;autoCreateTime"`
}

func (User) TableName() string {
	return "users"
}
