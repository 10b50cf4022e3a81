// Package dto - DTO cho domain CRM (lead).
package dto

import (
	crmmodels "meta_crm/internal/api/crm/models"
)

// CrmLeadCreateInput dữ liệu tạo lead mới.
// Email và LeadSource là bắt buộc, thiếu sẽ bị chặn ở tầng validate.
// Status/Rating để trống sẽ nhận giá trị mặc định (new/warm).
// LeadScore = 0 sẽ được tính tự động từ thuật toán chấm điểm.
type CrmLeadCreateInput struct {
	FirstName string                     `json:"firstName" validate:"required,no_xss"`
	LastName  string                     `json:"lastName" validate:"required,no_xss"`
	Title     string                     `json:"title,omitempty" validate:"omitempty,no_xss"`
	Company   string                     `json:"company" validate:"required,no_xss"`
	Website   string                     `json:"website,omitempty"`
	Industry  string                     `json:"industry,omitempty"`
	Email     string                     `json:"email" validate:"required,email"`
	Phone     string                     `json:"phone,omitempty"`
	Mobile    string                     `json:"mobile,omitempty"`
	Fax       string                     `json:"fax,omitempty"`
	Address   *crmmodels.CrmLeadAddress  `json:"address,omitempty"`

	EmployeeCount string `json:"employeeCount,omitempty" validate:"omitempty,oneof=1-49 50-99 100-499 500-999 1000+"`
	AnnualRevenue string `json:"annualRevenue,omitempty" validate:"omitempty,oneof=<$1M $1M-$10M $10M-$50M $50M-$100M $100M+"`

	Status        string `json:"status,omitempty" validate:"omitempty,oneof=new contacted qualified proposal negotiation won lost"`
	Rating        string `json:"rating,omitempty" validate:"omitempty,oneof=hot warm cold"`
	LeadScore     int    `json:"leadScore,omitempty" validate:"omitempty,min=0,max=100"`
	LeadSource    string `json:"leadSource" validate:"required"`
	LeadSubSource string `json:"leadSubSource,omitempty"`
	ReferredBy    string `json:"referredBy,omitempty"`
	Campaign      string `json:"campaign,omitempty"`

	EstimatedValue     float64  `json:"estimatedValue,omitempty" validate:"omitempty,min=0"`
	EstimatedCloseDate int64    `json:"estimatedCloseDate,omitempty"`
	Probability        *int     `json:"probability,omitempty" validate:"omitempty,min=0,max=100"` // nil → mặc định 50
	ProductInterest    []string `json:"productInterest,omitempty"`
	CustomProducts     []string `json:"customProducts,omitempty"`

	AssignedTo     string `json:"assignedTo,omitempty"`
	TeamAssignment string `json:"teamAssignment,omitempty"`

	Description  string                 `json:"description,omitempty" validate:"omitempty,no_xss,no_sql_injection"`
	Tags         []string               `json:"tags,omitempty"`
	CustomFields map[string]interface{} `json:"customFields,omitempty"`
	LinkedIn     string                 `json:"linkedIn,omitempty"`
	Twitter      string                 `json:"twitter,omitempty"`
	Facebook     string                 `json:"facebook,omitempty"`

	GdprConsent bool  `json:"gdprConsent,omitempty"`
	EmailOptIn  *bool `json:"emailOptIn,omitempty"` // nil → mặc định true
	SmsOptIn    bool  `json:"smsOptIn,omitempty"`
	DoNotCall   bool  `json:"doNotCall,omitempty"`
}

// CrmLeadUpdateInput dữ liệu cập nhật lead (partial update).
// Tất cả field là pointer/slice để phân biệt "không gửi" với "gửi giá trị zero".
type CrmLeadUpdateInput struct {
	FirstName *string                   `json:"firstName,omitempty" validate:"omitempty,no_xss"`
	LastName  *string                   `json:"lastName,omitempty" validate:"omitempty,no_xss"`
	Title     *string                   `json:"title,omitempty"`
	Company   *string                   `json:"company,omitempty" validate:"omitempty,no_xss"`
	Website   *string                   `json:"website,omitempty"`
	Industry  *string                   `json:"industry,omitempty"`
	Email     *string                   `json:"email,omitempty" validate:"omitempty,email"`
	Phone     *string                   `json:"phone,omitempty"`
	Mobile    *string                   `json:"mobile,omitempty"`
	Fax       *string                   `json:"fax,omitempty"`
	Address   *crmmodels.CrmLeadAddress `json:"address,omitempty"`

	EmployeeCount *string `json:"employeeCount,omitempty" validate:"omitempty,oneof=1-49 50-99 100-499 500-999 1000+"`
	AnnualRevenue *string `json:"annualRevenue,omitempty" validate:"omitempty,oneof=<$1M $1M-$10M $10M-$50M $50M-$100M $100M+"`

	Status        *string `json:"status,omitempty" validate:"omitempty,oneof=new contacted qualified proposal negotiation won lost"`
	Rating        *string `json:"rating,omitempty" validate:"omitempty,oneof=hot warm cold"`
	LeadScore     *int    `json:"leadScore,omitempty" validate:"omitempty,min=0,max=100"`
	LeadSource    *string `json:"leadSource,omitempty"`
	LeadSubSource *string `json:"leadSubSource,omitempty"`
	ReferredBy    *string `json:"referredBy,omitempty"`
	Campaign      *string `json:"campaign,omitempty"`

	EstimatedValue     *float64 `json:"estimatedValue,omitempty" validate:"omitempty,min=0"`
	EstimatedCloseDate *int64   `json:"estimatedCloseDate,omitempty"`
	Probability        *int     `json:"probability,omitempty" validate:"omitempty,min=0,max=100"`
	ProductInterest    []string `json:"productInterest,omitempty"`
	CustomProducts     []string `json:"customProducts,omitempty"`

	AssignedTo     *string `json:"assignedTo,omitempty"`
	TeamAssignment *string `json:"teamAssignment,omitempty"`

	Description  *string                `json:"description,omitempty" validate:"omitempty,no_xss,no_sql_injection"`
	Tags         []string               `json:"tags,omitempty"`
	CustomFields map[string]interface{} `json:"customFields,omitempty"`
	LinkedIn     *string                `json:"linkedIn,omitempty"`
	Twitter      *string                `json:"twitter,omitempty"`
	Facebook     *string                `json:"facebook,omitempty"`

	GdprConsent *bool `json:"gdprConsent,omitempty"`
	EmailOptIn  *bool `json:"emailOptIn,omitempty"`
	SmsOptIn    *bool `json:"smsOptIn,omitempty"`
	DoNotCall   *bool `json:"doNotCall,omitempty"`

	LastContactDate *int64 `json:"lastContactDate,omitempty"`
}

// CrmLeadFilterInput tham số lọc danh sách lead (từ query string).
type CrmLeadFilterInput struct {
	Search     string   // Tìm kiếm substring (không phân biệt hoa thường) trên firstName, lastName, company, email
	Status     string   // Khớp chính xác
	Rating     string   // Khớp chính xác
	AssignedTo string   // Khớp chính xác
	LeadSource string   // Khớp chính xác
	Tags       []string // Lead khớp khi có ÍT NHẤT một tag trùng
}

// CrmLeadListResponse kết quả danh sách lead có phân trang.
type CrmLeadListResponse struct {
	Data  []crmmodels.CrmLead `json:"data"`
	Total int64               `json:"total"` // Tổng số bản ghi sau lọc, trước phân trang
	Page  int64               `json:"page"`
	Limit int64               `json:"limit"`
}

// CrmLeadStats thống kê tổng hợp lead.
type CrmLeadStats struct {
	Total      int64            `json:"total"`
	ByStatus   map[string]int64 `json:"byStatus"`
	ByRating   map[string]int64 `json:"byRating"`
	TotalValue float64          `json:"totalValue"` // Tổng estimatedValue
}
