package access

import "time"

type AccessRequest struct {
	ID          string    `gorm:"primaryKey"`
	Name        string    `gorm:"column:name;not null"`
	Department  string    `gorm:"column:department;not null"`
	Role        string    `gorm:"column:role;not null"`
	RequestDate time.Time `gorm:"column:request_date;type:date"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime"`
}

func (AccessRequest) TableName() string {
	return "access_requests"
}
