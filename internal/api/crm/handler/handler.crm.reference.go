// Package crmhdl - Handler danh mục tham chiếu CRM (read-only).
package crmhdl

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	basehdl "meta_crm/internal/api/base/handler"
	crmvc "meta_crm/internal/api/crm/service"
)

// CrmReferenceHandler xử lý các route danh mục: /crm/lead-sources, /crm/lead-statuses.
type CrmReferenceHandler struct {
	basehdl.BaseHandler
	LeadSourceService *crmvc.CrmLeadSourceService
	LeadStatusService *crmvc.CrmLeadStatusService
}

// NewCrmReferenceHandler tạo CrmReferenceHandler mới.
func NewCrmReferenceHandler() (*CrmReferenceHandler, error) {
	leadSourceService, err := crmvc.NewCrmLeadSourceService()
	if err != nil {
		return nil, fmt.Errorf("tạo CrmLeadSourceService: %w", err)
	}
	leadStatusService, err := crmvc.NewCrmLeadStatusService()
	if err != nil {
		return nil, fmt.Errorf("tạo CrmLeadStatusService: %w", err)
	}
	return &CrmReferenceHandler{
		LeadSourceService: leadSourceService,
		LeadStatusService: leadStatusService,
	}, nil
}

// HandleListLeadSources xử lý GET /crm/lead-sources.
func (h *CrmReferenceHandler) HandleListLeadSources(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		sources, err := h.LeadSourceService.FindAllActive(c.Context())
		h.HandleResponse(c, sources, err)
		return nil
	})
}

// HandleListLeadStatuses xử lý GET /crm/lead-statuses.
func (h *CrmReferenceHandler) HandleListLeadStatuses(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		statuses, err := h.LeadStatusService.FindAllActive(c.Context())
		h.HandleResponse(c, statuses, err)
		return nil
	})
}
