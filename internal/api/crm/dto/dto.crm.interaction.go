// Package dto - DTO cho domain CRM (interaction).
package dto

// CrmInteractionCreateInput dữ liệu tạo tương tác mới.
// DateTime = 0 sẽ nhận thời điểm hiện tại.
// CustomerId nếu có phải trỏ tới bản ghi trong crm_leads (khách hàng là lead đã chuyển đổi).
type CrmInteractionCreateInput struct {
	Type        string `json:"type" validate:"required,oneof=call email meeting site_visit support complaint feedback page_visit"`
	CustomerId  string `json:"customerId,omitempty" validate:"omitempty,exists=crm_leads"`
	ContactId   string `json:"contactId,omitempty"`
	Subject     string `json:"subject" validate:"required,no_xss"`
	Description string `json:"description,omitempty" validate:"omitempty,no_xss,no_sql_injection"`
	Outcome     string `json:"outcome,omitempty" validate:"omitempty,oneof=positive neutral negative follow_up_required"`

	DurationMinutes int    `json:"durationMinutes,omitempty" validate:"omitempty,min=0"`
	Location        string `json:"location,omitempty"`
	PerformedBy     string `json:"performedBy,omitempty"`
	DateTime        int64  `json:"dateTime,omitempty"`

	FollowUpRequired bool  `json:"followUpRequired,omitempty"`
	FollowUpDate     int64 `json:"followUpDate,omitempty"`

	AssignedTo string   `json:"assignedTo,omitempty"`
	Tags       []string `json:"tags,omitempty"`

	OpportunityId string `json:"opportunityId,omitempty"`
	OrderId       string `json:"orderId,omitempty"`

	UserId    string                 `json:"userId,omitempty"`
	SessionId string                 `json:"sessionId,omitempty"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
}

// CrmInteractionUpdateInput dữ liệu cập nhật tương tác (partial update).
type CrmInteractionUpdateInput struct {
	Type        *string `json:"type,omitempty" validate:"omitempty,oneof=call email meeting site_visit support complaint feedback page_visit"`
	CustomerId  *string `json:"customerId,omitempty" validate:"omitempty,exists=crm_leads"`
	ContactId   *string `json:"contactId,omitempty"`
	Subject     *string `json:"subject,omitempty" validate:"omitempty,no_xss"`
	Description *string `json:"description,omitempty" validate:"omitempty,no_xss,no_sql_injection"`
	Outcome     *string `json:"outcome,omitempty" validate:"omitempty,oneof=positive neutral negative follow_up_required"`

	DurationMinutes *int    `json:"durationMinutes,omitempty" validate:"omitempty,min=0"`
	Location        *string `json:"location,omitempty"`
	PerformedBy     *string `json:"performedBy,omitempty"`
	DateTime        *int64  `json:"dateTime,omitempty"`

	FollowUpRequired *bool  `json:"followUpRequired,omitempty"`
	FollowUpDate     *int64 `json:"followUpDate,omitempty"`

	AssignedTo *string  `json:"assignedTo,omitempty"`
	Tags       []string `json:"tags,omitempty"`

	OpportunityId *string `json:"opportunityId,omitempty"`
	OrderId       *string `json:"orderId,omitempty"`

	Metadata map[string]interface{} `json:"metadata,omitempty"`
}

// CrmLogVisitInput dữ liệu ghi nhận page visit.
type CrmLogVisitInput struct {
	UserId    string                 `json:"userId" validate:"required"`
	PageUrl   string                 `json:"pageUrl" validate:"required"`
	SessionId string                 `json:"sessionId,omitempty"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
}

// CrmInteractionStats thống kê tổng hợp tương tác.
type CrmInteractionStats struct {
	Total      int64            `json:"total"`
	ThisWeek   int64            `json:"thisWeek"` // dateTime trong 7x24h gần nhất
	Calls      int64            `json:"calls"`
	Meetings   int64            `json:"meetings"`
	PageVisits int64            `json:"pageVisits"`
	ByType     map[string]int64 `json:"byType"`
	ByOutcome  map[string]int64 `json:"byOutcome"` // Chỉ tính các tương tác có outcome
}
