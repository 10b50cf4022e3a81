package global

import (
	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/mongo"

	"meta_crm/config"
	"meta_crm/internal/registry"
)

// MongoDB_Crm_CollectionName chứa tên các collection trong MongoDB
type MongoDB_Crm_CollectionName struct {
	CrmLeads        string // Tên collection cho leads
	CrmInteractions string // Tên collection cho interactions
	CrmLeadSources  string // Tên collection cho nguồn lead (reference data)
	CrmLeadStatuses string // Tên collection cho trạng thái lead (reference data)
}

// Các biến toàn cục
var Validate *validator.Validate                                                    // Biến để xác thực dữ liệu
var MongoDB_Session *mongo.Client                                                   // Phiên kết nối tới MongoDB
var MongoDB_ServerConfig *config.Configuration                                      // Cấu hình của server
var MongoDB_ColNames MongoDB_Crm_CollectionName = *new(MongoDB_Crm_CollectionName) // Tên các collection

// Các Registry
var RegistryCollections = registry.NewRegistry[*mongo.Collection]() // Registry chứa các collections
var RegistryDatabase = registry.NewRegistry[*mongo.Database]()      // Registry chứa các databases
