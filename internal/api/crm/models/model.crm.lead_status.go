// Package models - CrmLeadStatus thuộc domain CRM (crm_lead_statuses).
// Danh mục trạng thái lead, seed sẵn khi khởi động (IsSystem).
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CrmLeadStatus lưu trạng thái lead (crm_lead_statuses).
type CrmLeadStatus struct {
	ID primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`

	Code        string `json:"code" bson:"code" index:"unique"` // NEW, CONTACTED, QUALIFIED, PROPOSAL, NEGOTIATION, WON, LOST
	Name        string `json:"name" bson:"name"`
	Description string `json:"description,omitempty" bson:"description,omitempty"`
	IsSystem    bool   `json:"isSystem" bson:"isSystem"` // Dữ liệu hệ thống, không cho sửa/xóa qua API
	IsActive    bool   `json:"isActive" bson:"isActive" default:"true"`
	SortOrder   int    `json:"sortOrder" bson:"sortOrder" index:"single:1"`

	// Cờ trạng thái cuối của vòng đời lead
	IsFinal bool `json:"isFinal" bson:"isFinal"`
	IsWon   bool `json:"isWon" bson:"isWon"`
	IsLost  bool `json:"isLost" bson:"isLost"`

	CreatedAt int64 `json:"createdAt" bson:"createdAt"`
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"`
}
