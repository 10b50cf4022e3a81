// Package crmvc - Tổng hợp thống kê lead và tương tác.
// Các hàm Build* là hàm thuần trên slice đã fetch, tách khỏi tầng DB để test độc lập.
package crmvc

import (
	"time"

	crmdto "meta_crm/internal/api/crm/dto"
	crmmodels "meta_crm/internal/api/crm/models"
)

// msPerWeek milliseconds trong 7 ngày.
const msPerWeek = 7 * 24 * 60 * 60 * 1000

// BuildLeadStats tính thống kê lead: tổng số, phân bố theo status/rating, tổng giá trị ước tính.
func BuildLeadStats(leads []crmmodels.CrmLead) *crmdto.CrmLeadStats {
	stats := &crmdto.CrmLeadStats{
		Total:    int64(len(leads)),
		ByStatus: map[string]int64{},
		ByRating: map[string]int64{},
	}

	for i := range leads {
		lead := &leads[i]
		stats.ByStatus[lead.Status]++
		stats.ByRating[lead.Rating]++
		stats.TotalValue += lead.EstimatedValue
	}

	return stats
}

// BuildInteractionStats tính thống kê tương tác tại thời điểm now (Unix ms).
// thisWeek đếm các tương tác có dateTime trong 7x24h tính ngược từ now.
// byOutcome chỉ đếm tương tác có outcome.
func BuildInteractionStats(interactions []crmmodels.CrmInteraction, now int64) *crmdto.CrmInteractionStats {
	stats := &crmdto.CrmInteractionStats{
		Total:     int64(len(interactions)),
		ByType:    map[string]int64{},
		ByOutcome: map[string]int64{},
	}

	weekAgo := now - msPerWeek

	for i := range interactions {
		it := &interactions[i]

		if it.DateTime >= weekAgo && it.DateTime <= now {
			stats.ThisWeek++
		}

		stats.ByType[it.Type]++
		switch it.Type {
		case crmmodels.InteractionTypeCall:
			stats.Calls++
		case crmmodels.InteractionTypeMeeting:
			stats.Meetings++
		case crmmodels.InteractionTypePageVisit:
			stats.PageVisits++
		}

		if it.Outcome != "" {
			stats.ByOutcome[it.Outcome]++
		}
	}

	return stats
}

// nowUnixMilli thời điểm hiện tại (Unix ms), tách ra để service gọi thống nhất.
func nowUnixMilli() int64 {
	return time.Now().UnixMilli()
}
