package main

import (
	"meta_crm/internal/api/initsvc"
	"meta_crm/internal/logger"
)

func InitDefaultData() {
	log := logger.GetAppLogger()
	log.Info("🔄 [INIT] Starting InitDefaultData...")

	initService, err := initsvc.NewInitService()
	if err != nil {
		log.Fatalf("Failed to initialize init service: %v", err)
	}

	// 1. Khởi tạo danh mục nguồn lead (reference data)
	log.Info("🔄 [INIT] Step 1: Initializing lead sources...")
	if err := initService.InitLeadSources(); err != nil {
		log.WithError(err).Error("❌ [INIT] Step 1: Failed to initialize lead sources")
		log.Warnf("Failed to initialize lead sources: %v", err)
	} else {
		log.Info("✅ [INIT] Step 1: Lead sources initialized successfully")
	}

	// 2. Khởi tạo danh mục trạng thái lead (reference data)
	log.Info("🔄 [INIT] Step 2: Initializing lead statuses...")
	if err := initService.InitLeadStatuses(); err != nil {
		log.WithError(err).Error("❌ [INIT] Step 2: Failed to initialize lead statuses")
		log.Warnf("Failed to initialize lead statuses: %v", err)
	} else {
		log.Info("✅ [INIT] Step 2: Lead statuses initialized successfully")
	}

	log.Info("✅ [INIT] InitDefaultData completed successfully")
}
