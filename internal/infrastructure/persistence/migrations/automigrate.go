package migrations

import (
	"gorm.io/gorm"

	"miniticker/internal/infrastructure/persistence/models"
)

// AutoMigrateAll creates the schema from the gorm models. Used by the sqlite
// test harness and by local development; production uses the versioned SQL
// migrations.
func AutoMigrateAll(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.UserModel{},
		&models.AreaModel{},
		&models.RequestTypeModel{},
		&models.TicketModel{},
		&models.CommentModel{},
		&models.TicketEventModel{},
		&models.SystemEventModel{},
		&models.TicketSequenceModel{},
	)
}
