// Package crmvc - Service quản lý tương tác khách hàng (crm_interactions).
package crmvc

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	mongoopts "go.mongodb.org/mongo-driver/mongo/options"

	basesvc "meta_crm/internal/api/base/service"
	crmdto "meta_crm/internal/api/crm/dto"
	crmmodels "meta_crm/internal/api/crm/models"
	"meta_crm/internal/common"
	"meta_crm/internal/global"
)

// CrmInteractionService xử lý nghiệp vụ tương tác: ghi log, page visit, thống kê.
type CrmInteractionService struct {
	*basesvc.BaseServiceMongoImpl[crmmodels.CrmInteraction]
}

// NewCrmInteractionService tạo CrmInteractionService mới.
func NewCrmInteractionService() (*CrmInteractionService, error) {
	coll, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.CrmInteractions)
	if !exist {
		return nil, fmt.Errorf("không tìm thấy collection %s: %w", global.MongoDB_ColNames.CrmInteractions, common.ErrNotFound)
	}
	return &CrmInteractionService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[crmmodels.CrmInteraction](coll),
	}, nil
}

// CreateInteraction tạo tương tác mới. DateTime = 0 nhận thời điểm hiện tại.
func (s *CrmInteractionService) CreateInteraction(ctx context.Context, input *crmdto.CrmInteractionCreateInput) (*crmmodels.CrmInteraction, error) {
	interaction := crmmodels.CrmInteraction{
		Type:             input.Type,
		CustomerId:       input.CustomerId,
		ContactId:        input.ContactId,
		Subject:          input.Subject,
		Description:      input.Description,
		Outcome:          input.Outcome,
		DurationMinutes:  input.DurationMinutes,
		Location:         input.Location,
		PerformedBy:      input.PerformedBy,
		DateTime:         input.DateTime,
		FollowUpRequired: input.FollowUpRequired,
		FollowUpDate:     input.FollowUpDate,
		AssignedTo:       input.AssignedTo,
		Tags:             input.Tags,
		OpportunityId:    input.OpportunityId,
		OrderId:          input.OrderId,
		UserId:           input.UserId,
		SessionId:        input.SessionId,
		Metadata:         input.Metadata,
	}

	if interaction.DateTime == 0 {
		interaction.DateTime = time.Now().UnixMilli()
	}

	created, err := s.InsertOne(ctx, interaction)
	if err != nil {
		return nil, err
	}
	return &created, nil
}

// FindAllInteractions trả về toàn bộ tương tác, dateTime giảm dần (mới nhất trước).
func (s *CrmInteractionService) FindAllInteractions(ctx context.Context) ([]crmmodels.CrmInteraction, error) {
	opts := mongoopts.Find().SetSort(bson.D{{Key: "dateTime", Value: -1}})
	return s.Find(ctx, bson.D{}, opts)
}

// GetInteraction tìm tương tác theo id, lỗi NotFound có kèm id.
func (s *CrmInteractionService) GetInteraction(ctx context.Context, id primitive.ObjectID) (*crmmodels.CrmInteraction, error) {
	interaction, err := s.FindOneById(ctx, id)
	if err != nil {
		return nil, wrapNotFound(err, "interaction", id)
	}
	return &interaction, nil
}

// ApplyInteractionPatch chuyển patch thành map bson key → giá trị mới cho $set.
// Field nil trong input nghĩa là "không gửi", được bỏ qua.
func ApplyInteractionPatch(input *crmdto.CrmInteractionUpdateInput) map[string]interface{} {
	set := make(map[string]interface{})

	if input.Type != nil {
		set["type"] = *input.Type
	}
	if input.CustomerId != nil {
		set["customerId"] = *input.CustomerId
	}
	if input.ContactId != nil {
		set["contactId"] = *input.ContactId
	}
	if input.Subject != nil {
		set["subject"] = *input.Subject
	}
	if input.Description != nil {
		set["description"] = *input.Description
	}
	if input.Outcome != nil {
		set["outcome"] = *input.Outcome
	}
	if input.DurationMinutes != nil {
		set["durationMinutes"] = *input.DurationMinutes
	}
	if input.Location != nil {
		set["location"] = *input.Location
	}
	if input.PerformedBy != nil {
		set["performedBy"] = *input.PerformedBy
	}
	if input.DateTime != nil {
		set["dateTime"] = *input.DateTime
	}
	if input.FollowUpRequired != nil {
		set["followUpRequired"] = *input.FollowUpRequired
	}
	if input.FollowUpDate != nil {
		set["followUpDate"] = *input.FollowUpDate
	}
	if input.AssignedTo != nil {
		set["assignedTo"] = *input.AssignedTo
	}
	if input.Tags != nil {
		set["tags"] = input.Tags
	}
	if input.OpportunityId != nil {
		set["opportunityId"] = *input.OpportunityId
	}
	if input.OrderId != nil {
		set["orderId"] = *input.OrderId
	}
	if input.Metadata != nil {
		set["metadata"] = input.Metadata
	}

	return set
}

// UpdateInteraction cập nhật tương tác theo patch.
func (s *CrmInteractionService) UpdateInteraction(ctx context.Context, id primitive.ObjectID, input *crmdto.CrmInteractionUpdateInput) (*crmmodels.CrmInteraction, error) {
	set := ApplyInteractionPatch(input)

	updated, err := s.UpdateById(ctx, id, &basesvc.UpdateData{Set: set})
	if err != nil {
		return nil, wrapNotFound(err, "interaction", id)
	}
	return &updated, nil
}

// RemoveInteraction xóa tương tác theo id, lỗi NotFound có kèm id.
func (s *CrmInteractionService) RemoveInteraction(ctx context.Context, id primitive.ObjectID) error {
	if err := s.DeleteById(ctx, id); err != nil {
		return wrapNotFound(err, "interaction", id)
	}
	return nil
}

// BuildPageVisitInput tổng hợp một tương tác page_visit từ thông tin visit.
// Metadata gửi lên được merge thêm pageUrl và timestamp (Unix ms tại thời điểm now).
// Hàm thuần, tách khỏi LogPageVisit để test độc lập.
func BuildPageVisitInput(input *crmdto.CrmLogVisitInput, now int64) *crmdto.CrmInteractionCreateInput {
	metadata := map[string]interface{}{}
	for k, v := range input.Metadata {
		metadata[k] = v
	}
	metadata["pageUrl"] = input.PageUrl
	metadata["timestamp"] = now

	return &crmdto.CrmInteractionCreateInput{
		Type:        crmmodels.InteractionTypePageVisit,
		Subject:     fmt.Sprintf("Page visit: %s", input.PageUrl),
		Description: fmt.Sprintf("User visited page %s", input.PageUrl),
		DateTime:    now,
		UserId:      input.UserId,
		SessionId:   input.SessionId,
		Metadata:    metadata,
	}
}

// LogPageVisit ghi nhận page visit: tổng hợp tương tác type=page_visit rồi ủy quyền cho CreateInteraction.
func (s *CrmInteractionService) LogPageVisit(ctx context.Context, input *crmdto.CrmLogVisitInput) (*crmmodels.CrmInteraction, error) {
	createInput := BuildPageVisitInput(input, time.Now().UnixMilli())
	return s.CreateInteraction(ctx, createInput)
}

// GetInteractionStatistics thống kê tổng hợp trên toàn bộ tương tác.
func (s *CrmInteractionService) GetInteractionStatistics(ctx context.Context) (*crmdto.CrmInteractionStats, error) {
	interactions, err := s.Find(ctx, bson.D{}, nil)
	if err != nil {
		return nil, err
	}
	return BuildInteractionStats(interactions, nowUnixMilli()), nil
}
