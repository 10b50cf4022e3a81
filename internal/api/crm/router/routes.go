// Package router đăng ký các route thuộc domain CRM: leads, interactions, danh mục tham chiếu.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	crmhdl "meta_crm/internal/api/crm/handler"
	apirouter "meta_crm/internal/api/router"
)

// Register đăng ký tất cả route CRM lên v1.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	leadHandler, err := crmhdl.NewCrmLeadHandler()
	if err != nil {
		return fmt.Errorf("tạo CrmLeadHandler: %w", err)
	}
	interactionHandler, err := crmhdl.NewCrmInteractionHandler()
	if err != nil {
		return fmt.Errorf("tạo CrmInteractionHandler: %w", err)
	}
	referenceHandler, err := crmhdl.NewCrmReferenceHandler()
	if err != nil {
		return fmt.Errorf("tạo CrmReferenceHandler: %w", err)
	}

	// Route tĩnh phải đăng ký trước route có :id để /stats không bị nuốt bởi /:id

	// POST /crm/leads
	apirouter.RegisterRouteWithMiddleware(v1, "/crm/leads", "POST", "", nil, leadHandler.HandleCreateLead)
	// GET /crm/leads: search, status, rating, assignedTo, leadSource, tags, page, limit
	apirouter.RegisterRouteWithMiddleware(v1, "/crm/leads", "GET", "", nil, leadHandler.HandleListLeads)
	// GET /crm/leads/stats
	apirouter.RegisterRouteWithMiddleware(v1, "/crm/leads", "GET", "/stats", nil, leadHandler.HandleGetLeadStats)
	// GET /crm/leads/:id
	apirouter.RegisterRouteWithMiddleware(v1, "/crm/leads", "GET", "/:id", nil, leadHandler.HandleGetLead)
	// PATCH /crm/leads/:id
	apirouter.RegisterRouteWithMiddleware(v1, "/crm/leads", "PATCH", "/:id", nil, leadHandler.HandleUpdateLead)
	// DELETE /crm/leads/:id: 204 khi thành công
	apirouter.RegisterRouteWithMiddleware(v1, "/crm/leads", "DELETE", "/:id", nil, leadHandler.HandleDeleteLead)
	// POST /crm/leads/:id/convert-to-customer
	apirouter.RegisterRouteWithMiddleware(v1, "/crm/leads", "POST", "/:id/convert-to-customer", nil, leadHandler.HandleConvertToCustomer)
	// POST /crm/leads/:id/update-contact-date
	apirouter.RegisterRouteWithMiddleware(v1, "/crm/leads", "POST", "/:id/update-contact-date", nil, leadHandler.HandleUpdateContactDate)

	// POST /crm/interactions
	apirouter.RegisterRouteWithMiddleware(v1, "/crm/interactions", "POST", "", nil, interactionHandler.HandleCreateInteraction)
	// GET /crm/interactions: dateTime giảm dần
	apirouter.RegisterRouteWithMiddleware(v1, "/crm/interactions", "GET", "", nil, interactionHandler.HandleListInteractions)
	// GET /crm/interactions/stats
	apirouter.RegisterRouteWithMiddleware(v1, "/crm/interactions", "GET", "/stats", nil, interactionHandler.HandleGetInteractionStats)
	// POST /crm/interactions/log-visit
	apirouter.RegisterRouteWithMiddleware(v1, "/crm/interactions", "POST", "/log-visit", nil, interactionHandler.HandleLogPageVisit)
	// GET /crm/interactions/:id
	apirouter.RegisterRouteWithMiddleware(v1, "/crm/interactions", "GET", "/:id", nil, interactionHandler.HandleGetInteraction)
	// PATCH /crm/interactions/:id
	apirouter.RegisterRouteWithMiddleware(v1, "/crm/interactions", "PATCH", "/:id", nil, interactionHandler.HandleUpdateInteraction)
	// DELETE /crm/interactions/:id: 204 khi thành công
	apirouter.RegisterRouteWithMiddleware(v1, "/crm/interactions", "DELETE", "/:id", nil, interactionHandler.HandleDeleteInteraction)

	// Danh mục tham chiếu (read-only, seed sẵn khi khởi động)
	apirouter.RegisterRouteWithMiddleware(v1, "/crm/lead-sources", "GET", "", nil, referenceHandler.HandleListLeadSources)
	apirouter.RegisterRouteWithMiddleware(v1, "/crm/lead-statuses", "GET", "", nil, referenceHandler.HandleListLeadStatuses)

	return nil
}
