package repository

import (
	"inkwell/internal/database"
	"inkwell/internal/observability"

	"gorm.io/gorm"
)

var dbMetrics = observability.NewDatabaseMetrics()

func readDB(primary *gorm.DB) *gorm.DB {
	if db := database.GetReadDB(); db != nil {
		return db
	}
	return primary
}
