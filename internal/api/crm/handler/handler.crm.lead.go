// Package crmhdl - Handler quản lý lead CRM.
package crmhdl

import (
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v3"

	basehdl "meta_crm/internal/api/base/handler"
	crmdto "meta_crm/internal/api/crm/dto"
	crmvc "meta_crm/internal/api/crm/service"
	"meta_crm/internal/logger"
)

// CrmLeadHandler xử lý các route /crm/leads.
type CrmLeadHandler struct {
	basehdl.BaseHandler
	LeadService *crmvc.CrmLeadService
}

// NewCrmLeadHandler tạo CrmLeadHandler mới.
func NewCrmLeadHandler() (*CrmLeadHandler, error) {
	leadService, err := crmvc.NewCrmLeadService()
	if err != nil {
		return nil, fmt.Errorf("tạo CrmLeadService: %w", err)
	}
	return &CrmLeadHandler{LeadService: leadService}, nil
}

// HandleCreateLead xử lý POST /crm/leads.
func (h *CrmLeadHandler) HandleCreateLead(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input crmdto.CrmLeadCreateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		lead, err := h.LeadService.CreateLead(c.Context(), &input)
		if err == nil {
			logger.LogCRUD("create", "lead", lead.ID.Hex(), c, nil)
		}
		h.HandleCreatedResponse(c, lead, err)
		return nil
	})
}

// HandleListLeads xử lý GET /crm/leads.
// Query params: search, status, rating, assignedTo, leadSource, tags (cách nhau bởi dấu phẩy), page, limit.
func (h *CrmLeadHandler) HandleListLeads(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		filter := &crmdto.CrmLeadFilterInput{
			Search:     c.Query("search"),
			Status:     c.Query("status"),
			Rating:     c.Query("rating"),
			AssignedTo: c.Query("assignedTo"),
			LeadSource: c.Query("leadSource"),
		}
		if tagsParam := c.Query("tags"); tagsParam != "" {
			for _, tag := range strings.Split(tagsParam, ",") {
				if tag = strings.TrimSpace(tag); tag != "" {
					filter.Tags = append(filter.Tags, tag)
				}
			}
		}

		page, limit := h.ParsePagination(c)

		result, err := h.LeadService.FindAllLeads(c.Context(), filter, page, limit)
		h.HandleResponse(c, result, err)
		return nil
	})
}

// HandleGetLeadStats xử lý GET /crm/leads/stats.
func (h *CrmLeadHandler) HandleGetLeadStats(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		stats, err := h.LeadService.GetLeadStats(c.Context())
		h.HandleResponse(c, stats, err)
		return nil
	})
}

// HandleGetLead xử lý GET /crm/leads/:id.
func (h *CrmLeadHandler) HandleGetLead(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		id, err := h.ParseObjectID(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		lead, err := h.LeadService.GetLead(c.Context(), id)
		h.HandleResponse(c, lead, err)
		return nil
	})
}

// HandleUpdateLead xử lý PATCH /crm/leads/:id.
func (h *CrmLeadHandler) HandleUpdateLead(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		id, err := h.ParseObjectID(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		var input crmdto.CrmLeadUpdateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		lead, err := h.LeadService.UpdateLead(c.Context(), id, &input)
		if err == nil {
			logger.LogCRUD("update", "lead", id.Hex(), c, nil)
		}
		h.HandleResponse(c, lead, err)
		return nil
	})
}

// HandleDeleteLead xử lý DELETE /crm/leads/:id. Thành công trả về 204 không có body.
func (h *CrmLeadHandler) HandleDeleteLead(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		id, err := h.ParseObjectID(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		err = h.LeadService.RemoveLead(c.Context(), id)
		if err == nil {
			logger.LogCRUD("delete", "lead", id.Hex(), c, nil)
		}
		h.HandleDeletedResponse(c, err)
		return nil
	})
}

// HandleConvertToCustomer xử lý POST /crm/leads/:id/convert-to-customer.
func (h *CrmLeadHandler) HandleConvertToCustomer(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		id, err := h.ParseObjectID(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		lead, err := h.LeadService.ConvertToCustomer(c.Context(), id)
		if err == nil {
			logger.LogAction("lead_convert", c, map[string]interface{}{"lead_id": id.Hex()})
		}
		h.HandleResponse(c, lead, err)
		return nil
	})
}

// HandleUpdateContactDate xử lý POST /crm/leads/:id/update-contact-date.
func (h *CrmLeadHandler) HandleUpdateContactDate(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		id, err := h.ParseObjectID(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		lead, err := h.LeadService.UpdateLastContactDate(c.Context(), id)
		h.HandleResponse(c, lead, err)
		return nil
	})
}
