// Package models - Các hằng số dùng chung cho domain CRM.
package models

// Trạng thái lead (vòng đời từ new đến won/lost).
const (
	LeadStatusNew         = "new"
	LeadStatusContacted   = "contacted"
	LeadStatusQualified   = "qualified"
	LeadStatusProposal    = "proposal"
	LeadStatusNegotiation = "negotiation"
	LeadStatusWon         = "won"
	LeadStatusLost        = "lost"
)

// Mức độ tiềm năng của lead.
const (
	LeadRatingHot  = "hot"
	LeadRatingWarm = "warm"
	LeadRatingCold = "cold"
)

// Loại tương tác.
const (
	InteractionTypeCall      = "call"
	InteractionTypeEmail     = "email"
	InteractionTypeMeeting   = "meeting"
	InteractionTypeSiteVisit = "site_visit"
	InteractionTypeSupport   = "support"
	InteractionTypeComplaint = "complaint"
	InteractionTypeFeedback  = "feedback"
	InteractionTypePageVisit = "page_visit"
)

// Kết quả tương tác.
const (
	InteractionOutcomePositive         = "positive"
	InteractionOutcomeNeutral          = "neutral"
	InteractionOutcomeNegative         = "negative"
	InteractionOutcomeFollowUpRequired = "follow_up_required"
)
