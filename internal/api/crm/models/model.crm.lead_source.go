// Package models - CrmLeadSource thuộc domain CRM (crm_lead_sources).
// Danh mục nguồn lead, seed sẵn khi khởi động (IsSystem).
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CrmLeadSource lưu nguồn lead (crm_lead_sources).
type CrmLeadSource struct {
	ID primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`

	Code        string `json:"code" bson:"code" index:"unique"` // WEBSITE, REFERRAL, COLD_CALL, ...
	Name        string `json:"name" bson:"name"`
	Description string `json:"description,omitempty" bson:"description,omitempty"`
	IsSystem    bool   `json:"isSystem" bson:"isSystem"` // Dữ liệu hệ thống, không cho sửa/xóa qua API
	IsActive    bool   `json:"isActive" bson:"isActive" default:"true"`
	SortOrder   int    `json:"sortOrder" bson:"sortOrder" index:"single:1"`

	CreatedAt int64 `json:"createdAt" bson:"createdAt"`
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"`
}
