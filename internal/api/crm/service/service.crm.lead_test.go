// Package crmvc - Test dựng filter và áp patch cho lead.
package crmvc

import (
	"errors"
	"strings"
	"testing"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	crmdto "meta_crm/internal/api/crm/dto"
	crmmodels "meta_crm/internal/api/crm/models"
	"meta_crm/internal/common"
)

func strPtr(s string) *string { return &s }

func TestBuildLeadFilter_Empty(t *testing.T) {
	filter := BuildLeadFilter(&crmdto.CrmLeadFilterInput{})
	if len(filter) != 0 {
		t.Errorf("filter rỗng phải match tất cả, nhận được %v", filter)
	}
	if filter = BuildLeadFilter(nil); len(filter) != 0 {
		t.Errorf("input nil phải cho filter rỗng, nhận được %v", filter)
	}
}

func TestBuildLeadFilter_SearchOrClause(t *testing.T) {
	filter := BuildLeadFilter(&crmdto.CrmLeadFilterInput{Search: "acme"})
	or, ok := filter["$or"].([]bson.M)
	if !ok {
		t.Fatalf("search phải sinh mệnh đề $or, nhận được %v", filter)
	}
	if len(or) != 4 {
		t.Fatalf("$or phải phủ 4 field (firstName, lastName, company, email), có %d", len(or))
	}
	for _, clause := range or {
		for field, v := range clause {
			regex, ok := v.(primitive.Regex)
			if !ok {
				t.Fatalf("field %s phải là regex, nhận được %T", field, v)
			}
			if regex.Options != "i" {
				t.Errorf("regex trên %s phải không phân biệt hoa thường, options = %q", field, regex.Options)
			}
		}
	}
}

func TestBuildLeadFilter_SearchEscapesRegexMeta(t *testing.T) {
	filter := BuildLeadFilter(&crmdto.CrmLeadFilterInput{Search: "a.b+c"})
	or := filter["$or"].([]bson.M)
	regex := or[0]["firstName"].(primitive.Regex)
	if regex.Pattern == "a.b+c" {
		t.Error("ký tự đặc biệt trong search phải được escape, không dùng raw pattern")
	}
}

func TestBuildLeadFilter_ExactMatchesAnded(t *testing.T) {
	filter := BuildLeadFilter(&crmdto.CrmLeadFilterInput{
		Search:     "an",
		Status:     crmmodels.LeadStatusQualified,
		Rating:     crmmodels.LeadRatingHot,
		AssignedTo: "user-1",
		LeadSource: "Referral",
		Tags:       []string{"vip", "q3"},
	})

	if filter["status"] != crmmodels.LeadStatusQualified {
		t.Errorf("status phải match chính xác, nhận được %v", filter["status"])
	}
	if filter["rating"] != crmmodels.LeadRatingHot {
		t.Errorf("rating phải match chính xác, nhận được %v", filter["rating"])
	}
	if filter["assignedTo"] != "user-1" {
		t.Errorf("assignedTo phải match chính xác, nhận được %v", filter["assignedTo"])
	}
	if filter["leadSource"] != "Referral" {
		t.Errorf("leadSource phải match chính xác, nhận được %v", filter["leadSource"])
	}

	tags, ok := filter["tags"].(bson.M)
	if !ok {
		t.Fatalf("tags phải là mệnh đề $in, nhận được %v", filter["tags"])
	}
	in, ok := tags["$in"].([]string)
	if !ok || len(in) != 2 {
		t.Errorf("tags $in phải chứa đủ danh sách yêu cầu, nhận được %v", tags["$in"])
	}

	// Search và exact match cùng tồn tại trong một filter (AND)
	if _, ok := filter["$or"]; !ok {
		t.Error("search phải được giữ lại khi kết hợp với các điều kiện khác")
	}
}

func TestApplyLeadPatch_MergeAndTouched(t *testing.T) {
	lead := &crmmodels.CrmLead{
		FirstName: "An",
		LastName:  "Nguyen",
		Company:   "Acme",
		Email:     "an@acme.vn",
		Status:    crmmodels.LeadStatusNew,
		Rating:    crmmodels.LeadRatingWarm,
	}
	input := &crmdto.CrmLeadUpdateInput{
		Email:  strPtr("an.nguyen@acme.vn"),
		Rating: strPtr(crmmodels.LeadRatingHot),
	}

	set, touched := ApplyLeadPatch(lead, input)

	if lead.Email != "an.nguyen@acme.vn" {
		t.Errorf("email phải được merge vào bản ghi, nhận được %q", lead.Email)
	}
	if lead.Rating != crmmodels.LeadRatingHot {
		t.Errorf("rating phải được merge vào bản ghi, nhận được %q", lead.Rating)
	}
	if lead.FirstName != "An" {
		t.Errorf("field không có trong patch phải giữ nguyên, firstName = %q", lead.FirstName)
	}

	if len(set) != 2 {
		t.Errorf("$set chỉ chứa field có trong patch, nhận được %v", set)
	}
	if set["email"] != "an.nguyen@acme.vn" {
		t.Errorf("$set thiếu email, nhận được %v", set)
	}

	touchedSet := map[string]bool{}
	for _, k := range touched {
		touchedSet[k] = true
	}
	if !touchedSet["email"] || !touchedSet["rating"] {
		t.Errorf("touched phải ghi nhận email và rating, nhận được %v", touched)
	}
}

func TestApplyLeadPatch_EmptyStringIsPresent(t *testing.T) {
	// Gửi chuỗi rỗng khác với không gửi: pointer non-nil phải được áp dụng
	lead := &crmmodels.CrmLead{Phone: "0909"}
	set, touched := ApplyLeadPatch(lead, &crmdto.CrmLeadUpdateInput{Phone: strPtr("")})

	if lead.Phone != "" {
		t.Errorf("phone phải bị ghi đè thành rỗng, nhận được %q", lead.Phone)
	}
	if _, ok := set["phone"]; !ok {
		t.Errorf("$set phải chứa phone, nhận được %v", set)
	}
	if len(touched) != 1 || touched[0] != "phone" {
		t.Errorf("touched mong đợi [phone], nhận được %v", touched)
	}
}

func TestApplyLeadPatch_NilInputFieldsIgnored(t *testing.T) {
	lead := &crmmodels.CrmLead{FirstName: "An", LeadScore: 45}
	set, touched := ApplyLeadPatch(lead, &crmdto.CrmLeadUpdateInput{})

	if len(set) != 0 || len(touched) != 0 {
		t.Errorf("patch rỗng không được sinh thay đổi, set=%v touched=%v", set, touched)
	}
	if lead.LeadScore != 45 {
		t.Errorf("leadScore phải giữ nguyên, nhận được %d", lead.LeadScore)
	}
}

func TestApplyLeadPatch_RecomputeOnMergedRecord(t *testing.T) {
	// Điểm tính trên bản ghi ĐÃ merge: email cũ vẫn đóng góp khi patch chỉ đổi rating
	lead := &crmmodels.CrmLead{
		Email:  "an@acme.vn",
		Phone:  "0909",
		Rating: crmmodels.LeadRatingWarm,
	}
	set, touched := ApplyLeadPatch(lead, &crmdto.CrmLeadUpdateInput{Rating: strPtr(crmmodels.LeadRatingHot)})

	if !ShouldRecomputeScore(touched) {
		t.Fatal("patch đổi rating phải tính lại điểm")
	}
	// email +10, phone +10, hot +20 = 40
	if got := ComputeLeadScore(lead); got != 40 {
		t.Errorf("điểm trên bản ghi merge mong đợi 40, nhận được %d", got)
	}
	if _, ok := set["rating"]; !ok {
		t.Errorf("$set thiếu rating, nhận được %v", set)
	}
}

func TestApplyLeadPatch_StatusOnlyDoesNotRecompute(t *testing.T) {
	lead := &crmmodels.CrmLead{Status: crmmodels.LeadStatusNew, LeadScore: 70}
	_, touched := ApplyLeadPatch(lead, &crmdto.CrmLeadUpdateInput{Status: strPtr(crmmodels.LeadStatusContacted)})

	if ShouldRecomputeScore(touched) {
		t.Error("patch chỉ đổi status không được tính lại điểm")
	}
}

func TestBuildConvertUpdate_ForcesWonAndStampsConvertedAt(t *testing.T) {
	lead := &crmmodels.CrmLead{Status: crmmodels.LeadStatusNew}
	now := int64(1_700_000_000_000)

	set, alreadyConverted := BuildConvertUpdate(lead, now)
	if alreadyConverted {
		t.Fatal("lead chưa won không được coi là đã chuyển đổi")
	}
	if set["status"] != crmmodels.LeadStatusWon {
		t.Errorf("status phải bị ép thành won, nhận được %v", set["status"])
	}
	if set["convertedAt"] != now {
		t.Errorf("convertedAt phải bằng thời điểm chuyển đổi, nhận được %v", set["convertedAt"])
	}
}

func TestBuildConvertUpdate_Idempotent(t *testing.T) {
	lead := &crmmodels.CrmLead{Status: crmmodels.LeadStatusQualified}

	set, _ := BuildConvertUpdate(lead, 1000)
	lead.Status = set["status"].(string)
	lead.ConvertedAt = set["convertedAt"].(int64)

	set2, alreadyConverted := BuildConvertUpdate(lead, 2000)
	if !alreadyConverted {
		t.Fatal("chuyển đổi lần hai trên lead đã won phải là no-op")
	}
	if set2 != nil {
		t.Errorf("lần hai không được sinh update nào, nhận được %v", set2)
	}
	if lead.ConvertedAt != 1000 {
		t.Errorf("convertedAt của lần đầu phải được giữ nguyên, nhận được %d", lead.ConvertedAt)
	}
}

func TestWrapNotFound_NamesEntityAndId(t *testing.T) {
	id := primitive.NewObjectID()

	err := wrapNotFound(common.ErrNotFound, "lead", id)
	var appErr *common.Error
	if !errors.As(err, &appErr) {
		t.Fatalf("kết quả phải là *common.Error, nhận được %T", err)
	}
	if appErr.StatusCode != common.StatusNotFound {
		t.Errorf("status code phải là 404, nhận được %d", appErr.StatusCode)
	}
	if !strings.Contains(appErr.Message, id.Hex()) {
		t.Errorf("message phải chứa id bị thiếu, nhận được %q", appErr.Message)
	}
	if !errors.Is(err, common.ErrNotFound) {
		t.Error("lỗi sau khi wrap vẫn phải match ErrNotFound")
	}
}

func TestWrapNotFound_PassThroughOtherErrors(t *testing.T) {
	id := primitive.NewObjectID()

	original := errors.New("mất kết nối database")
	if got := wrapNotFound(original, "lead", id); got != original {
		t.Errorf("lỗi không phải NotFound phải được trả nguyên trạng, nhận được %v", got)
	}
	if got := wrapNotFound(nil, "lead", id); got != nil {
		t.Errorf("err nil phải cho nil, nhận được %v", got)
	}
}
