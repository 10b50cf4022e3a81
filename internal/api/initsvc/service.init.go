// Package initsvc chứa InitService dùng để khởi tạo dữ liệu tham chiếu ban đầu (lead sources, lead statuses).
// Tách ra package riêng để tránh import cycle giữa crm/service và cmd.
package initsvc

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"

	basesvc "meta_crm/internal/api/base/service"
	crmmodels "meta_crm/internal/api/crm/models"
	crmvc "meta_crm/internal/api/crm/service"
	"meta_crm/internal/logger"
	"meta_crm/internal/utility"
)

// InitService là cấu trúc chứa các phương thức khởi tạo dữ liệu ban đầu cho hệ thống
type InitService struct {
	leadSourceService *crmvc.CrmLeadSourceService // Service danh mục nguồn lead
	leadStatusService *crmvc.CrmLeadStatusService // Service danh mục trạng thái lead
}

// NewInitService tạo mới một đối tượng InitService
func NewInitService() (*InitService, error) {
	leadSourceService, err := crmvc.NewCrmLeadSourceService()
	if err != nil {
		return nil, fmt.Errorf("failed to create lead source service: %v", err)
	}

	leadStatusService, err := crmvc.NewCrmLeadStatusService()
	if err != nil {
		return nil, fmt.Errorf("failed to create lead status service: %v", err)
	}

	return &InitService{
		leadSourceService: leadSourceService,
		leadStatusService: leadStatusService,
	}, nil
}

// InitialLeadSources định nghĩa danh mục nguồn lead mặc định của hệ thống
var InitialLeadSources = []crmmodels.CrmLeadSource{
	{Code: "WEBSITE", Name: "Website", Description: "Lead đến từ form trên website", SortOrder: 1},
	{Code: "REFERRAL", Name: "Referral", Description: "Lead do khách hàng giới thiệu", SortOrder: 2},
	{Code: "COLD_CALL", Name: "Cold Call", Description: "Lead từ cuộc gọi chủ động", SortOrder: 3},
	{Code: "TRADE_SHOW", Name: "Trade Show", Description: "Lead từ hội chợ, triển lãm", SortOrder: 4},
	{Code: "SOCIAL", Name: "Social Media", Description: "Lead từ mạng xã hội", SortOrder: 5},
	{Code: "EMAIL", Name: "Email Campaign", Description: "Lead từ chiến dịch email", SortOrder: 6},
	{Code: "PARTNER", Name: "Partner", Description: "Lead từ đối tác", SortOrder: 7},
	{Code: "ADVERTISEMENT", Name: "Advertisement", Description: "Lead từ quảng cáo", SortOrder: 8},
}

// InitialLeadStatuses định nghĩa danh mục trạng thái lead mặc định của hệ thống.
// WON và LOST là trạng thái cuối (isFinal).
var InitialLeadStatuses = []crmmodels.CrmLeadStatus{
	{Code: "NEW", Name: "New", Description: "Lead mới, chưa liên hệ", SortOrder: 1},
	{Code: "CONTACTED", Name: "Contacted", Description: "Đã liên hệ lần đầu", SortOrder: 2},
	{Code: "QUALIFIED", Name: "Qualified", Description: "Đã xác nhận nhu cầu và ngân sách", SortOrder: 3},
	{Code: "PROPOSAL", Name: "Proposal", Description: "Đã gửi báo giá", SortOrder: 4},
	{Code: "NEGOTIATION", Name: "Negotiation", Description: "Đang đàm phán", SortOrder: 5},
	{Code: "WON", Name: "Won", Description: "Chốt thành công, chuyển thành khách hàng", SortOrder: 6, IsFinal: true, IsWon: true},
	{Code: "LOST", Name: "Lost", Description: "Mất lead", SortOrder: 7, IsFinal: true, IsLost: true},
}

// missingSeedCodes trả về các code trong defs chưa có trong existing, giữ nguyên thứ tự khai báo.
// Chạy lại trên danh mục đã seed đầy đủ sẽ trả về danh sách rỗng, không insert gì thêm.
func missingSeedCodes(defs []string, existing []string) []string {
	missing := []string{}
	for _, code := range defs {
		if !utility.Contains(existing, code) {
			missing = append(missing, code)
		}
	}
	return missing
}

// InitLeadSources seed danh mục nguồn lead: chỉ insert khi code chưa tồn tại (idempotent).
// Lỗi từng item được log và bỏ qua, không dừng vòng lặp.
func (h *InitService) InitLeadSources() error {
	log := logger.GetAppLogger()
	// Context cho phép insert system data trong quá trình init
	ctx := basesvc.WithSystemDataInsertAllowed(context.TODO())

	existing, err := h.leadSourceService.Find(ctx, bson.M{}, nil)
	if err != nil {
		log.WithFields(logrus.Fields{"error": err}).Error("❌ [INIT] Lỗi đọc danh mục lead source hiện có")
		return err
	}
	existingCodes := make([]string, 0, len(existing))
	for _, doc := range existing {
		existingCodes = append(existingCodes, doc.Code)
	}

	defCodes := make([]string, 0, len(InitialLeadSources))
	for _, source := range InitialLeadSources {
		defCodes = append(defCodes, source.Code)
	}
	missing := missingSeedCodes(defCodes, existingCodes)

	for _, source := range InitialLeadSources {
		if !utility.Contains(missing, source.Code) {
			continue
		}

		source.IsSystem = true
		source.IsActive = true
		if _, err := h.leadSourceService.InsertOne(ctx, source); err != nil {
			log.WithFields(logrus.Fields{"code": source.Code, "error": err}).Error("❌ [INIT] Lỗi tạo lead source")
			continue
		}
		log.Infof("✅ [INIT] Created lead source '%s'", source.Code)
	}

	return nil
}

// InitLeadStatuses seed danh mục trạng thái lead: chỉ insert khi code chưa tồn tại (idempotent).
// Lỗi từng item được log và bỏ qua, không dừng vòng lặp.
func (h *InitService) InitLeadStatuses() error {
	log := logger.GetAppLogger()
	ctx := basesvc.WithSystemDataInsertAllowed(context.TODO())

	existing, err := h.leadStatusService.Find(ctx, bson.M{}, nil)
	if err != nil {
		log.WithFields(logrus.Fields{"error": err}).Error("❌ [INIT] Lỗi đọc danh mục lead status hiện có")
		return err
	}
	existingCodes := make([]string, 0, len(existing))
	for _, doc := range existing {
		existingCodes = append(existingCodes, doc.Code)
	}

	defCodes := make([]string, 0, len(InitialLeadStatuses))
	for _, status := range InitialLeadStatuses {
		defCodes = append(defCodes, status.Code)
	}
	missing := missingSeedCodes(defCodes, existingCodes)

	for _, status := range InitialLeadStatuses {
		if !utility.Contains(missing, status.Code) {
			continue
		}

		status.IsSystem = true
		status.IsActive = true
		if _, err := h.leadStatusService.InsertOne(ctx, status); err != nil {
			log.WithFields(logrus.Fields{"code": status.Code, "error": err}).Error("❌ [INIT] Lỗi tạo lead status")
			continue
		}
		log.Infof("✅ [INIT] Created lead status '%s'", status.Code)
	}

	return nil
}
