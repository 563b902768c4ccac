package model

// User 后台账号表 — 对应 users
// 替代旧版前端硬编码口令：所有请求经服务端 JWT 校验
type User struct {
	UserID       string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"user_id"`
	Name         string `gorm:"type:varchar(100);not null"                     json:"name"`
	Email        string `gorm:"type:varchar(255);not null;uniqueIndex:uq_users_email" json:"email"`
	PasswordHash string `gorm:"type:varchar(255);not null"                     json:"-"`
	Role         string `gorm:"type:varchar(20);not null;default:'hr'"         json:"role"` // admin | hr
	BaseModel
}

// TableName 指定表名
func (User) TableName() string { return "users" }
