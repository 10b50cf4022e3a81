// Package crmvc - Test thuật toán chấm điểm lead.
package crmvc

import (
	"testing"

	crmmodels "meta_crm/internal/api/crm/models"
)

func TestComputeLeadScore_FullSignals(t *testing.T) {
	// Tất cả tín hiệu ở mức cao nhất: 20+20+10+10+5+20+15 = 100 trước khi cộng productInterest
	lead := &crmmodels.CrmLead{
		EmployeeCount:   "1000+",
		AnnualRevenue:   "$100M+",
		Email:           "ceo@example.com",
		Phone:           "0901234567",
		Website:         "https://example.com",
		Rating:          crmmodels.LeadRatingHot,
		ProductInterest: []string{"crm", "erp"},
		LeadSource:      "Referral",
	}
	score := ComputeLeadScore(lead)
	if score != 100 {
		t.Errorf("điểm phải bị chặn trên ở 100, nhận được %d", score)
	}
}

func TestComputeLeadScore_EmptyLead(t *testing.T) {
	lead := &crmmodels.CrmLead{Rating: crmmodels.LeadRatingCold}
	if score := ComputeLeadScore(lead); score != 0 {
		t.Errorf("lead trống với rating cold phải 0 điểm, nhận được %d", score)
	}
}

func TestComputeLeadScore_MidTiers(t *testing.T) {
	// 500-999 (+15), $10M-$50M (+10), email (+10), warm (+10), 1 productInterest (+5), Events (+10) = 60
	lead := &crmmodels.CrmLead{
		EmployeeCount:   "500-999",
		AnnualRevenue:   "$10M-$50M",
		Email:           "a@b.com",
		Rating:          crmmodels.LeadRatingWarm,
		ProductInterest: []string{"crm"},
		LeadSource:      "Events",
	}
	if score := ComputeLeadScore(lead); score != 60 {
		t.Errorf("điểm mong đợi 60, nhận được %d", score)
	}
}

func TestComputeLeadScore_UnknownTiersIgnored(t *testing.T) {
	// Giá trị ngoài danh mục không cộng điểm
	lead := &crmmodels.CrmLead{
		EmployeeCount: "10-49",
		AnnualRevenue: "$500K",
		LeadSource:    "Website",
	}
	if score := ComputeLeadScore(lead); score != 0 {
		t.Errorf("tier không xác định không được cộng điểm, nhận được %d", score)
	}
}

func TestComputeLeadScore_Deterministic(t *testing.T) {
	lead := &crmmodels.CrmLead{
		EmployeeCount:   "100-499",
		Phone:           "0909",
		Rating:          crmmodels.LeadRatingWarm,
		ProductInterest: []string{"a", "b", "c"},
	}
	first := ComputeLeadScore(lead)
	for i := 0; i < 10; i++ {
		if got := ComputeLeadScore(lead); got != first {
			t.Fatalf("điểm không xác định: lần đầu %d, lần %d được %d", first, i, got)
		}
	}
	// 10 + 10 + 10 + 15 = 45
	if first != 45 {
		t.Errorf("điểm mong đợi 45, nhận được %d", first)
	}
}

func TestShouldRecomputeScore_ScoreFields(t *testing.T) {
	cases := []string{"employeeCount", "annualRevenue", "email", "phone", "website", "rating", "productInterest", "leadSource"}
	for _, f := range cases {
		if !ShouldRecomputeScore([]string{f}) {
			t.Errorf("patch chạm %s phải tính lại điểm", f)
		}
	}
}

func TestShouldRecomputeScore_StatusOnlyPatch(t *testing.T) {
	// Patch chỉ đổi status không được tính lại điểm
	if ShouldRecomputeScore([]string{"status"}) {
		t.Error("patch chỉ đổi status không được tính lại điểm")
	}
	if ShouldRecomputeScore([]string{"firstName", "description", "tags"}) {
		t.Error("patch không chạm field điểm không được tính lại điểm")
	}
	if ShouldRecomputeScore(nil) {
		t.Error("patch rỗng không được tính lại điểm")
	}
	if !ShouldRecomputeScore([]string{"status", "rating"}) {
		t.Error("patch có rating phải tính lại điểm dù có kèm status")
	}
}
