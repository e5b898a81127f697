package model

import "time"

// UserModel mirrors the 'users' table. The primary key is a plain
// database-assigned integer exposed as user_id.
type UserModel struct {
	ID           int64      `gorm:"column:user_id;primaryKey;autoIncrement"`
	Email        string     `gorm:"type:varchar(255);uniqueIndex;not null"`
	PasswordHash string     `gorm:"type:varchar(255);not null"`
	Username     string     `gorm:"type:varchar(100);uniqueIndex;not null"`
	PublicName   string     `gorm:"type:varchar(100);not null"`
	Birthdate    *time.Time `gorm:"type:date"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
