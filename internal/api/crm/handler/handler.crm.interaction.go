// Package crmhdl - Handler tương tác khách hàng CRM.
package crmhdl

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	basehdl "meta_crm/internal/api/base/handler"
	crmdto "meta_crm/internal/api/crm/dto"
	crmvc "meta_crm/internal/api/crm/service"
	"meta_crm/internal/logger"
)

// CrmInteractionHandler xử lý các route /crm/interactions.
type CrmInteractionHandler struct {
	basehdl.BaseHandler
	InteractionService *crmvc.CrmInteractionService
}

// NewCrmInteractionHandler tạo CrmInteractionHandler mới.
func NewCrmInteractionHandler() (*CrmInteractionHandler, error) {
	interactionService, err := crmvc.NewCrmInteractionService()
	if err != nil {
		return nil, fmt.Errorf("tạo CrmInteractionService: %w", err)
	}
	return &CrmInteractionHandler{InteractionService: interactionService}, nil
}

// HandleCreateInteraction xử lý POST /crm/interactions.
func (h *CrmInteractionHandler) HandleCreateInteraction(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input crmdto.CrmInteractionCreateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		interaction, err := h.InteractionService.CreateInteraction(c.Context(), &input)
		if err == nil {
			logger.LogCRUD("create", "interaction", interaction.ID.Hex(), c, nil)
		}
		h.HandleCreatedResponse(c, interaction, err)
		return nil
	})
}

// HandleListInteractions xử lý GET /crm/interactions (dateTime giảm dần).
func (h *CrmInteractionHandler) HandleListInteractions(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		interactions, err := h.InteractionService.FindAllInteractions(c.Context())
		h.HandleResponse(c, interactions, err)
		return nil
	})
}

// HandleGetInteractionStats xử lý GET /crm/interactions/stats.
func (h *CrmInteractionHandler) HandleGetInteractionStats(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		stats, err := h.InteractionService.GetInteractionStatistics(c.Context())
		h.HandleResponse(c, stats, err)
		return nil
	})
}

// HandleLogPageVisit xử lý POST /crm/interactions/log-visit.
func (h *CrmInteractionHandler) HandleLogPageVisit(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input crmdto.CrmLogVisitInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		interaction, err := h.InteractionService.LogPageVisit(c.Context(), &input)
		h.HandleCreatedResponse(c, interaction, err)
		return nil
	})
}

// HandleGetInteraction xử lý GET /crm/interactions/:id.
func (h *CrmInteractionHandler) HandleGetInteraction(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		id, err := h.ParseObjectID(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		interaction, err := h.InteractionService.GetInteraction(c.Context(), id)
		h.HandleResponse(c, interaction, err)
		return nil
	})
}

// HandleUpdateInteraction xử lý PATCH /crm/interactions/:id.
func (h *CrmInteractionHandler) HandleUpdateInteraction(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		id, err := h.ParseObjectID(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		var input crmdto.CrmInteractionUpdateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		interaction, err := h.InteractionService.UpdateInteraction(c.Context(), id, &input)
		if err == nil {
			logger.LogCRUD("update", "interaction", id.Hex(), c, nil)
		}
		h.HandleResponse(c, interaction, err)
		return nil
	})
}

// HandleDeleteInteraction xử lý DELETE /crm/interactions/:id. Thành công trả về 204 không có body.
func (h *CrmInteractionHandler) HandleDeleteInteraction(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		id, err := h.ParseObjectID(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		err = h.InteractionService.RemoveInteraction(c.Context(), id)
		if err == nil {
			logger.LogCRUD("delete", "interaction", id.Hex(), c, nil)
		}
		h.HandleDeletedResponse(c, err)
		return nil
	})
}
