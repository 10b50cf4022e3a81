package main

import (
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"

	"meta_crm/config"
	"meta_crm/internal/global"
)

func InitRegistry() {
	// Khởi tạo registry và đăng ký các collections
	err := InitCollections(global.MongoDB_Session, global.MongoDB_ServerConfig)
	if err != nil {
		logrus.Fatalf("Failed to initialize collections: %v", err)
	}
	logrus.Info("Initialized collection registry")
}

// InitCollections khởi tạo và đăng ký database cùng các collections MongoDB
func InitCollections(client *mongo.Client, cfg *config.Configuration) error {
	db := client.Database(cfg.MongoDB_DBName)

	// Đăng ký database để các tầng khác (health check) truy cập qua registry
	if _, err := global.RegistryDatabase.Register(cfg.MongoDB_DBName, db); err != nil {
		logrus.Errorf("Failed to register database %s: %v", cfg.MongoDB_DBName, err)
		return err
	}

	colNames := []string{
		global.MongoDB_ColNames.CrmLeads,
		global.MongoDB_ColNames.CrmInteractions,
		global.MongoDB_ColNames.CrmLeadSources,
		global.MongoDB_ColNames.CrmLeadStatuses,
	}

	for _, name := range colNames {
		registered, err := global.RegistryCollections.Register(name, db.Collection(name))
		if err != nil {
			logrus.Errorf("Failed to register collection %s: %v", name, err)
			return err
		}

		if registered {
			logrus.Infof("Collection %s registered successfully", name)
		} else {
			logrus.Errorf("Collection %s already registered", name)
		}
	}

	return nil
}
