// Package crmvc - Thuật toán chấm điểm lead (leadScore 0-100).
//
// Điểm được cộng dồn từ các tín hiệu chất lượng:
//
//	QUY MÔ CÔNG TY:  employeeCount, annualRevenue (tối đa +20 mỗi trục)
//	LIÊN HỆ:         email +10, phone +10, website +5
//	RATING:          hot +20, warm +10, cold +0
//	QUAN TÂM SP:     +5 mỗi mục productInterest
//	NGUỒN:           Referral +15, Events +10
//
// Tổng điểm bị chặn trên ở 100, không chặn dưới.
package crmvc

import (
	crmmodels "meta_crm/internal/api/crm/models"
	"meta_crm/internal/utility"
)

const (
	// Điểm theo employeeCount
	scoreEmployee1000Plus = 20
	scoreEmployee500      = 15
	scoreEmployee100      = 10
	scoreEmployee50       = 5

	// Điểm theo annualRevenue
	scoreRevenue100MPlus = 20
	scoreRevenue50M      = 15
	scoreRevenue10M      = 10
	scoreRevenue1M       = 5

	// Điểm thông tin liên hệ
	scoreHasEmail   = 10
	scoreHasPhone   = 10
	scoreHasWebsite = 5

	// Điểm rating
	scoreRatingHot  = 20
	scoreRatingWarm = 10

	// Điểm khác
	scorePerProductInterest = 5
	scoreSourceReferral     = 15
	scoreSourceEvents       = 10

	// Trần điểm
	maxLeadScore = 100
)

// scoreRecalcFields các field ảnh hưởng đến leadScore.
// Update chạm vào bất kỳ field nào trong danh sách này sẽ tính lại điểm trên bản ghi đã merge.
// Lưu ý: status KHÔNG nằm trong danh sách, nên patch chỉ đổi status không tính lại điểm.
var scoreRecalcFields = []string{
	"employeeCount",
	"annualRevenue",
	"email",
	"phone",
	"website",
	"rating",
	"productInterest",
	"leadSource",
}

// ShouldRecomputeScore kiểm tra patch có chạm vào field ảnh hưởng điểm không.
// touchedFields là danh sách bson key có mặt trong patch.
func ShouldRecomputeScore(touchedFields []string) bool {
	return utility.HasAnyOverlap(touchedFields, scoreRecalcFields)
}

// ComputeLeadScore tính leadScore từ bản ghi lead đầy đủ. Thuần và xác định:
// cùng input luôn cho cùng output, không phụ thuộc thời gian hay trạng thái ngoài.
func ComputeLeadScore(lead *crmmodels.CrmLead) int {
	score := 0

	switch lead.EmployeeCount {
	case "1000+":
		score += scoreEmployee1000Plus
	case "500-999":
		score += scoreEmployee500
	case "100-499":
		score += scoreEmployee100
	case "50-99":
		score += scoreEmployee50
	}

	switch lead.AnnualRevenue {
	case "$100M+":
		score += scoreRevenue100MPlus
	case "$50M-$100M":
		score += scoreRevenue50M
	case "$10M-$50M":
		score += scoreRevenue10M
	case "$1M-$10M":
		score += scoreRevenue1M
	}

	if lead.Email != "" {
		score += scoreHasEmail
	}
	if lead.Phone != "" {
		score += scoreHasPhone
	}
	if lead.Website != "" {
		score += scoreHasWebsite
	}

	switch lead.Rating {
	case crmmodels.LeadRatingHot:
		score += scoreRatingHot
	case crmmodels.LeadRatingWarm:
		score += scoreRatingWarm
	}

	score += len(lead.ProductInterest) * scorePerProductInterest

	switch lead.LeadSource {
	case "Referral":
		score += scoreSourceReferral
	case "Events":
		score += scoreSourceEvents
	}

	if score > maxLeadScore {
		score = maxLeadScore
	}

	return score
}
