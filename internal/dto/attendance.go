package dto

// ── 考勤模块 DTO ──

// CreateAttendanceRequest 创建考勤记录请求
// check_in/check_out 为 "15:04" 格式时刻；二者齐全时服务端派生 total_hours
type CreateAttendanceRequest struct {
	EmployeeID string `json:"employee_id" binding:"required,uuid"`
	Date       string `json:"date"        binding:"required,datetime=2006-01-02"`
	CheckIn    string `json:"check_in"    binding:"omitempty,datetime=15:04"`
	CheckOut   string `json:"check_out"   binding:"omitempty,datetime=15:04"`
	Status     string `json:"status"      binding:"required,oneof=present absent late half_day leave"`
	Notes      string `json:"notes"       binding:"omitempty,max=1000"`
}

// AttendanceResponse 考勤记录响应
type AttendanceResponse struct {
	ID         string         `json:"id"`
	EmployeeID string         `json:"employee_id"`
	Employee   *EmployeeBrief `json:"employee,omitempty"`
	Date       string         `json:"date"`
	CheckIn    string         `json:"check_in,omitempty"`
	CheckOut   string         `json:"check_out,omitempty"`
	TotalHours *float64       `json:"total_hours,omitempty"`
	Status     string         `json:"status"`
	Notes      string         `json:"notes,omitempty"`
	CreatedAt  string         `json:"created_at"`
}
