// Package crmvc - Service quản lý lead (crm_leads).
package crmvc

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	mongoopts "go.mongodb.org/mongo-driver/mongo/options"

	basesvc "meta_crm/internal/api/base/service"
	crmdto "meta_crm/internal/api/crm/dto"
	crmmodels "meta_crm/internal/api/crm/models"
	"meta_crm/internal/common"
	"meta_crm/internal/global"
	"meta_crm/internal/utility"
)

// wrapNotFound đổi ErrNotFound từ tầng base thành lỗi NotFound có tên entity và id.
// Lỗi khác được trả nguyên trạng.
func wrapNotFound(err error, entity string, id primitive.ObjectID) error {
	if errors.Is(err, common.ErrNotFound) {
		return common.NewNotFoundError(entity, utility.ObjectID2String(id))
	}
	return err
}

// CrmLeadService xử lý nghiệp vụ lead: tạo, lọc, chấm điểm, chuyển đổi khách hàng.
type CrmLeadService struct {
	*basesvc.BaseServiceMongoImpl[crmmodels.CrmLead]
}

// NewCrmLeadService tạo CrmLeadService mới.
func NewCrmLeadService() (*CrmLeadService, error) {
	coll, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.CrmLeads)
	if !exist {
		return nil, fmt.Errorf("không tìm thấy collection %s: %w", global.MongoDB_ColNames.CrmLeads, common.ErrNotFound)
	}
	return &CrmLeadService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[crmmodels.CrmLead](coll),
	}, nil
}

// CreateLead tạo lead mới với giá trị mặc định và leadScore tính tự động.
// Điểm chỉ được tính khi caller không gửi leadScore (hoặc gửi 0); điểm khác 0 từ caller được giữ nguyên.
func (s *CrmLeadService) CreateLead(ctx context.Context, input *crmdto.CrmLeadCreateInput) (*crmmodels.CrmLead, error) {
	lead := crmmodels.CrmLead{
		FirstName:          input.FirstName,
		LastName:           input.LastName,
		Title:              input.Title,
		Company:            input.Company,
		Website:            input.Website,
		Industry:           input.Industry,
		Email:              input.Email,
		Phone:              input.Phone,
		Mobile:             input.Mobile,
		Fax:                input.Fax,
		Address:            input.Address,
		EmployeeCount:      input.EmployeeCount,
		AnnualRevenue:      input.AnnualRevenue,
		Status:             input.Status,
		Rating:             input.Rating,
		LeadScore:          input.LeadScore,
		LeadSource:         input.LeadSource,
		LeadSubSource:      input.LeadSubSource,
		ReferredBy:         input.ReferredBy,
		Campaign:           input.Campaign,
		EstimatedValue:     input.EstimatedValue,
		EstimatedCloseDate: input.EstimatedCloseDate,
		ProductInterest:    input.ProductInterest,
		CustomProducts:     input.CustomProducts,
		AssignedTo:         input.AssignedTo,
		TeamAssignment:     input.TeamAssignment,
		Description:        input.Description,
		Tags:               input.Tags,
		CustomFields:       input.CustomFields,
		LinkedIn:           input.LinkedIn,
		Twitter:            input.Twitter,
		Facebook:           input.Facebook,
		GdprConsent:        input.GdprConsent,
		SmsOptIn:           input.SmsOptIn,
		DoNotCall:          input.DoNotCall,
	}

	// Giá trị mặc định phải có trước khi chấm điểm (rating warm đóng góp +10)
	if lead.Status == "" {
		lead.Status = crmmodels.LeadStatusNew
	}
	if lead.Rating == "" {
		lead.Rating = crmmodels.LeadRatingWarm
	}
	if input.Probability != nil {
		lead.Probability = *input.Probability
	} else {
		lead.Probability = 50
	}
	if input.EmailOptIn != nil {
		lead.EmailOptIn = *input.EmailOptIn
	} else {
		lead.EmailOptIn = true
	}

	if lead.LeadScore == 0 {
		lead.LeadScore = ComputeLeadScore(&lead)
	}

	created, err := s.InsertOne(ctx, lead)
	if err != nil {
		return nil, err
	}
	return &created, nil
}

// BuildLeadFilter dựng filter MongoDB từ tham số lọc. Các điều kiện được AND với nhau.
// search là substring match không phân biệt hoa thường trên firstName, lastName, company, email.
// tags là set-intersection: lead khớp khi có ít nhất một tag trùng với danh sách yêu cầu.
func BuildLeadFilter(input *crmdto.CrmLeadFilterInput) bson.M {
	filter := bson.M{}
	if input == nil {
		return filter
	}

	if input.Search != "" {
		// QuoteMeta để ký tự đặc biệt trong search được hiểu literal, không phải regex
		pattern := regexp.QuoteMeta(input.Search)
		regex := primitive.Regex{Pattern: pattern, Options: "i"}
		filter["$or"] = []bson.M{
			{"firstName": regex},
			{"lastName": regex},
			{"company": regex},
			{"email": regex},
		}
	}

	if input.Status != "" {
		filter["status"] = input.Status
	}
	if input.Rating != "" {
		filter["rating"] = input.Rating
	}
	if input.AssignedTo != "" {
		filter["assignedTo"] = input.AssignedTo
	}
	if input.LeadSource != "" {
		filter["leadSource"] = input.LeadSource
	}
	if len(input.Tags) > 0 {
		filter["tags"] = bson.M{"$in": input.Tags}
	}

	return filter
}

// FindAllLeads trả về danh sách lead theo filter, sắp xếp createdAt giảm dần, có phân trang.
// total là số bản ghi sau lọc trước phân trang; page vượt quá trang cuối trả về data rỗng với total đúng.
func (s *CrmLeadService) FindAllLeads(ctx context.Context, input *crmdto.CrmLeadFilterInput, page, limit int64) (*crmdto.CrmLeadListResponse, error) {
	filter := BuildLeadFilter(input)
	opts := mongoopts.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})

	result, err := s.FindWithPagination(ctx, filter, page, limit, opts)
	if err != nil {
		return nil, err
	}

	return &crmdto.CrmLeadListResponse{
		Data:  result.Items,
		Total: result.Total,
		Page:  result.Page,
		Limit: result.Limit,
	}, nil
}

// GetLead tìm lead theo id, lỗi NotFound có kèm id.
func (s *CrmLeadService) GetLead(ctx context.Context, id primitive.ObjectID) (*crmmodels.CrmLead, error) {
	lead, err := s.FindOneById(ctx, id)
	if err != nil {
		return nil, wrapNotFound(err, "lead", id)
	}
	return &lead, nil
}

// ApplyLeadPatch áp patch lên bản ghi lead (merge tại chỗ) và trả về:
//   - set: map bson key → giá trị mới để đưa vào $set
//   - touched: danh sách bson key có mặt trong patch (dùng quyết định tính lại điểm)
//
// Field nil trong input nghĩa là "không gửi", được bỏ qua.
func ApplyLeadPatch(lead *crmmodels.CrmLead, input *crmdto.CrmLeadUpdateInput) (map[string]interface{}, []string) {
	set := make(map[string]interface{})
	touched := []string{}

	touch := func(key string, value interface{}) {
		set[key] = value
		touched = append(touched, key)
	}

	if input.FirstName != nil {
		lead.FirstName = *input.FirstName
		touch("firstName", *input.FirstName)
	}
	if input.LastName != nil {
		lead.LastName = *input.LastName
		touch("lastName", *input.LastName)
	}
	if input.Title != nil {
		lead.Title = *input.Title
		touch("title", *input.Title)
	}
	if input.Company != nil {
		lead.Company = *input.Company
		touch("company", *input.Company)
	}
	if input.Website != nil {
		lead.Website = *input.Website
		touch("website", *input.Website)
	}
	if input.Industry != nil {
		lead.Industry = *input.Industry
		touch("industry", *input.Industry)
	}
	if input.Email != nil {
		lead.Email = *input.Email
		touch("email", *input.Email)
	}
	if input.Phone != nil {
		lead.Phone = *input.Phone
		touch("phone", *input.Phone)
	}
	if input.Mobile != nil {
		lead.Mobile = *input.Mobile
		touch("mobile", *input.Mobile)
	}
	if input.Fax != nil {
		lead.Fax = *input.Fax
		touch("fax", *input.Fax)
	}
	if input.Address != nil {
		lead.Address = input.Address
		touch("address", input.Address)
	}
	if input.EmployeeCount != nil {
		lead.EmployeeCount = *input.EmployeeCount
		touch("employeeCount", *input.EmployeeCount)
	}
	if input.AnnualRevenue != nil {
		lead.AnnualRevenue = *input.AnnualRevenue
		touch("annualRevenue", *input.AnnualRevenue)
	}
	if input.Status != nil {
		lead.Status = *input.Status
		touch("status", *input.Status)
	}
	if input.Rating != nil {
		lead.Rating = *input.Rating
		touch("rating", *input.Rating)
	}
	if input.LeadScore != nil {
		lead.LeadScore = *input.LeadScore
		touch("leadScore", *input.LeadScore)
	}
	if input.LeadSource != nil {
		lead.LeadSource = *input.LeadSource
		touch("leadSource", *input.LeadSource)
	}
	if input.LeadSubSource != nil {
		lead.LeadSubSource = *input.LeadSubSource
		touch("leadSubSource", *input.LeadSubSource)
	}
	if input.ReferredBy != nil {
		lead.ReferredBy = *input.ReferredBy
		touch("referredBy", *input.ReferredBy)
	}
	if input.Campaign != nil {
		lead.Campaign = *input.Campaign
		touch("campaign", *input.Campaign)
	}
	if input.EstimatedValue != nil {
		lead.EstimatedValue = *input.EstimatedValue
		touch("estimatedValue", *input.EstimatedValue)
	}
	if input.EstimatedCloseDate != nil {
		lead.EstimatedCloseDate = *input.EstimatedCloseDate
		touch("estimatedCloseDate", *input.EstimatedCloseDate)
	}
	if input.Probability != nil {
		lead.Probability = *input.Probability
		touch("probability", *input.Probability)
	}
	if input.ProductInterest != nil {
		lead.ProductInterest = input.ProductInterest
		touch("productInterest", input.ProductInterest)
	}
	if input.CustomProducts != nil {
		lead.CustomProducts = input.CustomProducts
		touch("customProducts", input.CustomProducts)
	}
	if input.AssignedTo != nil {
		lead.AssignedTo = *input.AssignedTo
		touch("assignedTo", *input.AssignedTo)
	}
	if input.TeamAssignment != nil {
		lead.TeamAssignment = *input.TeamAssignment
		touch("teamAssignment", *input.TeamAssignment)
	}
	if input.Description != nil {
		lead.Description = *input.Description
		touch("description", *input.Description)
	}
	if input.Tags != nil {
		lead.Tags = input.Tags
		touch("tags", input.Tags)
	}
	if input.CustomFields != nil {
		lead.CustomFields = input.CustomFields
		touch("customFields", input.CustomFields)
	}
	if input.LinkedIn != nil {
		lead.LinkedIn = *input.LinkedIn
		touch("linkedIn", *input.LinkedIn)
	}
	if input.Twitter != nil {
		lead.Twitter = *input.Twitter
		touch("twitter", *input.Twitter)
	}
	if input.Facebook != nil {
		lead.Facebook = *input.Facebook
		touch("facebook", *input.Facebook)
	}
	if input.GdprConsent != nil {
		lead.GdprConsent = *input.GdprConsent
		touch("gdprConsent", *input.GdprConsent)
	}
	if input.EmailOptIn != nil {
		lead.EmailOptIn = *input.EmailOptIn
		touch("emailOptIn", *input.EmailOptIn)
	}
	if input.SmsOptIn != nil {
		lead.SmsOptIn = *input.SmsOptIn
		touch("smsOptIn", *input.SmsOptIn)
	}
	if input.DoNotCall != nil {
		lead.DoNotCall = *input.DoNotCall
		touch("doNotCall", *input.DoNotCall)
	}
	if input.LastContactDate != nil {
		lead.LastContactDate = *input.LastContactDate
		touch("lastContactDate", *input.LastContactDate)
	}

	return set, touched
}

// UpdateLead cập nhật lead theo patch. Nếu patch chạm vào field ảnh hưởng điểm
// (employeeCount, annualRevenue, email, phone, website, rating, productInterest, leadSource)
// thì leadScore được tính lại trên bản ghi đã merge. Patch chỉ đổi status không tính lại điểm.
func (s *CrmLeadService) UpdateLead(ctx context.Context, id primitive.ObjectID, input *crmdto.CrmLeadUpdateInput) (*crmmodels.CrmLead, error) {
	existing, err := s.GetLead(ctx, id)
	if err != nil {
		return nil, err
	}

	merged := *existing
	set, touched := ApplyLeadPatch(&merged, input)

	if ShouldRecomputeScore(touched) {
		set["leadScore"] = ComputeLeadScore(&merged)
	}

	updated, err := s.UpdateById(ctx, id, &basesvc.UpdateData{Set: set})
	if err != nil {
		return nil, wrapNotFound(err, "lead", id)
	}
	return &updated, nil
}

// RemoveLead xóa lead theo id, lỗi NotFound có kèm id.
func (s *CrmLeadService) RemoveLead(ctx context.Context, id primitive.ObjectID) error {
	if err := s.DeleteById(ctx, id); err != nil {
		return wrapNotFound(err, "lead", id)
	}
	return nil
}

// BuildConvertUpdate dựng $set cho thao tác chuyển lead thành khách hàng:
// ép status = won và ghi convertedAt = now. Lead đã won trả về alreadyConverted = true
// và không có update nào, giữ nguyên convertedAt cũ.
func BuildConvertUpdate(lead *crmmodels.CrmLead, now int64) (map[string]interface{}, bool) {
	if lead.Status == crmmodels.LeadStatusWon {
		return nil, true
	}
	return map[string]interface{}{
		"status":      crmmodels.LeadStatusWon,
		"convertedAt": now,
	}, false
}

// ConvertToCustomer ép status = won và ghi convertedAt. Idempotent:
// lead đã won được trả về nguyên trạng, không đổi convertedAt.
func (s *CrmLeadService) ConvertToCustomer(ctx context.Context, id primitive.ObjectID) (*crmmodels.CrmLead, error) {
	existing, err := s.GetLead(ctx, id)
	if err != nil {
		return nil, err
	}

	set, alreadyConverted := BuildConvertUpdate(existing, time.Now().UnixMilli())
	if alreadyConverted {
		return existing, nil
	}

	updated, err := s.UpdateById(ctx, id, &basesvc.UpdateData{Set: set})
	if err != nil {
		return nil, wrapNotFound(err, "lead", id)
	}
	return &updated, nil
}

// UpdateLastContactDate ghi nhận thời điểm liên hệ gần nhất = hiện tại.
func (s *CrmLeadService) UpdateLastContactDate(ctx context.Context, id primitive.ObjectID) (*crmmodels.CrmLead, error) {
	set := map[string]interface{}{
		"lastContactDate": time.Now().UnixMilli(),
	}
	updated, err := s.UpdateById(ctx, id, &basesvc.UpdateData{Set: set})
	if err != nil {
		return nil, wrapNotFound(err, "lead", id)
	}
	return &updated, nil
}

// GetLeadStats thống kê tổng hợp trên toàn bộ lead.
func (s *CrmLeadService) GetLeadStats(ctx context.Context) (*crmdto.CrmLeadStats, error) {
	leads, err := s.Find(ctx, bson.D{}, nil)
	if err != nil {
		return nil, err
	}
	return BuildLeadStats(leads), nil
}
