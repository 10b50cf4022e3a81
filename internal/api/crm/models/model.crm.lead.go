// Package models - CrmLead thuộc domain CRM (crm_leads).
// Lead bán hàng với điểm chất lượng (leadScore) tính tự động.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CrmLeadAddress địa chỉ của lead (embedded).
type CrmLeadAddress struct {
	Street     string `json:"street,omitempty" bson:"street,omitempty"`
	City       string `json:"city,omitempty" bson:"city,omitempty"`
	State      string `json:"state,omitempty" bson:"state,omitempty"`
	PostalCode string `json:"postalCode,omitempty" bson:"postalCode,omitempty"`
	Country    string `json:"country,omitempty" bson:"country,omitempty"`
}

// CrmLead lưu lead bán hàng (crm_leads).
type CrmLead struct {
	ID primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`

	// Thông tin liên hệ
	FirstName string          `json:"firstName" bson:"firstName"`
	LastName  string          `json:"lastName" bson:"lastName"`
	Title     string          `json:"title,omitempty" bson:"title,omitempty"`
	Company   string          `json:"company" bson:"company"`
	Website   string          `json:"website,omitempty" bson:"website,omitempty"`
	Industry  string          `json:"industry,omitempty" bson:"industry,omitempty"`
	Email     string          `json:"email,omitempty" bson:"email,omitempty" index:"single:1"`
	Phone     string          `json:"phone,omitempty" bson:"phone,omitempty"`
	Mobile    string          `json:"mobile,omitempty" bson:"mobile,omitempty"`
	Fax       string          `json:"fax,omitempty" bson:"fax,omitempty"`
	Address   *CrmLeadAddress `json:"address,omitempty" bson:"address,omitempty"`

	// Quy mô công ty (dùng cho tính leadScore)
	EmployeeCount string `json:"employeeCount,omitempty" bson:"employeeCount,omitempty"` // "1-49", "50-99", "100-499", "500-999", "1000+"
	AnnualRevenue string `json:"annualRevenue,omitempty" bson:"annualRevenue,omitempty"` // "<$1M", "$1M-$10M", "$10M-$50M", "$50M-$100M", "$100M+"

	// Chất lượng lead
	Status        string `json:"status" bson:"status" index:"single:1" default:"new"`
	Rating        string `json:"rating" bson:"rating" index:"single:1" default:"warm"`
	LeadScore     int    `json:"leadScore" bson:"leadScore"`
	LeadSource    string `json:"leadSource,omitempty" bson:"leadSource,omitempty" index:"single:1"`
	LeadSubSource string `json:"leadSubSource,omitempty" bson:"leadSubSource,omitempty"`
	ReferredBy    string `json:"referredBy,omitempty" bson:"referredBy,omitempty"`
	Campaign      string `json:"campaign,omitempty" bson:"campaign,omitempty"`

	// Cơ hội bán hàng
	EstimatedValue     float64  `json:"estimatedValue" bson:"estimatedValue"`
	EstimatedCloseDate int64    `json:"estimatedCloseDate,omitempty" bson:"estimatedCloseDate,omitempty"`
	Probability        int      `json:"probability" bson:"probability"`
	ProductInterest    []string `json:"productInterest,omitempty" bson:"productInterest,omitempty"`
	CustomProducts     []string `json:"customProducts,omitempty" bson:"customProducts,omitempty"`

	// Phân công
	AssignedTo     string `json:"assignedTo,omitempty" bson:"assignedTo,omitempty" index:"single:1"`
	TeamAssignment string `json:"teamAssignment,omitempty" bson:"teamAssignment,omitempty"`

	// Thông tin bổ sung
	Description  string                 `json:"description,omitempty" bson:"description,omitempty"`
	Tags         []string               `json:"tags,omitempty" bson:"tags,omitempty" index:"single:1"`
	CustomFields map[string]interface{} `json:"customFields,omitempty" bson:"customFields,omitempty"`
	LinkedIn     string                 `json:"linkedIn,omitempty" bson:"linkedIn,omitempty"`
	Twitter      string                 `json:"twitter,omitempty" bson:"twitter,omitempty"`
	Facebook     string                 `json:"facebook,omitempty" bson:"facebook,omitempty"`

	// Tuân thủ (consent)
	GdprConsent bool `json:"gdprConsent" bson:"gdprConsent"`
	EmailOptIn  bool `json:"emailOptIn" bson:"emailOptIn"`
	SmsOptIn    bool `json:"smsOptIn" bson:"smsOptIn"`
	DoNotCall   bool `json:"doNotCall" bson:"doNotCall"`

	// Theo dõi
	LastContactDate     int64              `json:"lastContactDate,omitempty" bson:"lastContactDate,omitempty"`
	ConvertedAt         int64              `json:"convertedAt,omitempty" bson:"convertedAt,omitempty"`
	ConvertedCustomerId primitive.ObjectID `json:"convertedCustomerId,omitempty" bson:"convertedCustomerId,omitempty"`

	CreatedAt int64 `json:"createdAt" bson:"createdAt" index:"single:-1"`
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"`
}
