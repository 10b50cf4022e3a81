// Package models - CrmInteraction thuộc domain CRM (crm_interactions).
// Lịch sử tương tác với khách/lead: gọi điện, họp, email, page visit...
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CrmInteraction lưu một lần tương tác (crm_interactions).
type CrmInteraction struct {
	ID primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`

	Type        string `json:"type" bson:"type" index:"single:1"` // call, email, meeting, site_visit, support, complaint, feedback, page_visit
	CustomerId  string `json:"customerId,omitempty" bson:"customerId,omitempty" index:"single:1"`
	ContactId   string `json:"contactId,omitempty" bson:"contactId,omitempty"`
	Subject     string `json:"subject" bson:"subject"`
	Description string `json:"description,omitempty" bson:"description,omitempty"`
	Outcome     string `json:"outcome,omitempty" bson:"outcome,omitempty"` // positive, neutral, negative, follow_up_required

	DurationMinutes int    `json:"durationMinutes,omitempty" bson:"durationMinutes,omitempty"`
	Location        string `json:"location,omitempty" bson:"location,omitempty"`
	PerformedBy     string `json:"performedBy,omitempty" bson:"performedBy,omitempty"`
	DateTime        int64  `json:"dateTime" bson:"dateTime" index:"single:-1"`

	FollowUpRequired bool  `json:"followUpRequired" bson:"followUpRequired"`
	FollowUpDate     int64 `json:"followUpDate,omitempty" bson:"followUpDate,omitempty"`

	AssignedTo string   `json:"assignedTo,omitempty" bson:"assignedTo,omitempty"`
	Tags       []string `json:"tags,omitempty" bson:"tags,omitempty"`

	// Liên kết nghiệp vụ
	OpportunityId string `json:"opportunityId,omitempty" bson:"opportunityId,omitempty"`
	OrderId       string `json:"orderId,omitempty" bson:"orderId,omitempty"`

	// Page visit tracking
	UserId    string                 `json:"userId,omitempty" bson:"userId,omitempty"`
	SessionId string                 `json:"sessionId,omitempty" bson:"sessionId,omitempty"`
	Metadata  map[string]interface{} `json:"metadata,omitempty" bson:"metadata,omitempty"`

	CreatedAt int64 `json:"createdAt" bson:"createdAt"`
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"`
}
