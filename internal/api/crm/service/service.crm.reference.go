// Package crmvc - Service danh mục tham chiếu CRM: lead sources, lead statuses.
package crmvc

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	mongoopts "go.mongodb.org/mongo-driver/mongo/options"

	basesvc "meta_crm/internal/api/base/service"
	crmmodels "meta_crm/internal/api/crm/models"
	"meta_crm/internal/common"
	"meta_crm/internal/global"
)

// CrmLeadSourceService quản lý danh mục nguồn lead.
type CrmLeadSourceService struct {
	*basesvc.BaseServiceMongoImpl[crmmodels.CrmLeadSource]
}

// NewCrmLeadSourceService tạo CrmLeadSourceService mới.
func NewCrmLeadSourceService() (*CrmLeadSourceService, error) {
	coll, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.CrmLeadSources)
	if !exist {
		return nil, fmt.Errorf("không tìm thấy collection %s: %w", global.MongoDB_ColNames.CrmLeadSources, common.ErrNotFound)
	}
	return &CrmLeadSourceService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[crmmodels.CrmLeadSource](coll),
	}, nil
}

// FindAllActive trả về các nguồn lead đang hoạt động theo sortOrder tăng dần.
func (s *CrmLeadSourceService) FindAllActive(ctx context.Context) ([]crmmodels.CrmLeadSource, error) {
	opts := mongoopts.Find().SetSort(bson.D{{Key: "sortOrder", Value: 1}})
	return s.Find(ctx, bson.M{"isActive": true}, opts)
}

// CrmLeadStatusService quản lý danh mục trạng thái lead.
type CrmLeadStatusService struct {
	*basesvc.BaseServiceMongoImpl[crmmodels.CrmLeadStatus]
}

// NewCrmLeadStatusService tạo CrmLeadStatusService mới.
func NewCrmLeadStatusService() (*CrmLeadStatusService, error) {
	coll, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.CrmLeadStatuses)
	if !exist {
		return nil, fmt.Errorf("không tìm thấy collection %s: %w", global.MongoDB_ColNames.CrmLeadStatuses, common.ErrNotFound)
	}
	return &CrmLeadStatusService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[crmmodels.CrmLeadStatus](coll),
	}, nil
}

// FindAllActive trả về các trạng thái lead đang hoạt động theo sortOrder tăng dần.
func (s *CrmLeadStatusService) FindAllActive(ctx context.Context) ([]crmmodels.CrmLeadStatus, error) {
	opts := mongoopts.Find().SetSort(bson.D{{Key: "sortOrder", Value: 1}})
	return s.Find(ctx, bson.M{"isActive": true}, opts)
}
