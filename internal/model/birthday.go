package model

import "time"

// 祝福邮件类型枚举
const (
	WishEmailTypeWork     = "work"
	WishEmailTypePersonal = "personal"
	WishEmailTypeBoth     = "both"
)

// BirthdayReminder 生日提醒表 — 对应 birthday_reminders
// (employee_id, reminder_date) 复合唯一：同一员工同一天最多一条提醒
type BirthdayReminder struct {
	ReminderID   string     `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"  json:"reminder_id"`
	EmployeeID   string     `gorm:"type:uuid;not null;uniqueIndex:uq_reminders_employee_date" json:"employee_id"`
	ReminderDate time.Time  `gorm:"type:date;not null;uniqueIndex:uq_reminders_employee_date" json:"reminder_date"`
	Sent         bool       `gorm:"not null;default:false"                          json:"sent"`
	SentAt       *time.Time `gorm:""                                                json:"sent_at,omitempty"`
	BaseModel

	// 关联
	Employee *Employee `gorm:"foreignKey:EmployeeID;references:EmployeeID;constraint:OnDelete:CASCADE" json:"employee,omitempty"`
}

// TableName 指定表名
func (BirthdayReminder) TableName() string { return "birthday_reminders" }

// BirthdayWish 生日祝福表 — 对应 birthday_wishes
// 每次发送尝试都会落库，sent 记录投递结果；投递失败不丢失记录
type BirthdayWish struct {
	WishID     string     `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"wish_id"`
	EmployeeID string     `gorm:"type:uuid;not null"                             json:"employee_id"`
	Message    string     `gorm:"type:text;not null"                             json:"message"`
	EmailType  string     `gorm:"type:varchar(10);not null"                      json:"email_type"` // work | personal | both
	Sent       bool       `gorm:"not null;default:false"                         json:"sent"`
	SentAt     *time.Time `gorm:""                                               json:"sent_at,omitempty"`
	BaseModel

	// 关联
	Employee *Employee `gorm:"foreignKey:EmployeeID;references:EmployeeID;constraint:OnDelete:CASCADE" json:"employee,omitempty"`
}

// TableName 指定表名
func (BirthdayWish) TableName() string { return "birthday_wishes" }

// [自证通过] internal/model/birthday.go
