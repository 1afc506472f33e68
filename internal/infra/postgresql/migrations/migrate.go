package migrations

import (
	"github.com/go-gormigrate/gormigrate/v2"
	"github.com/optimusdesign/booking-api/internal/repository"
	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	m := gormigrate.New(db, gormigrate.DefaultOptions, []*gormigrate.Migration{
		createAppointmentsTable(),
		createNotifyFailuresTable(),
	})

	return m.Migrate()
}

func createAppointmentsTable() *gormigrate.Migration {
	return &gormigrate.Migration{
		ID: "000001_create_appointments",
		Migrate: func(tx *gorm.DB) error {
			if err := tx.AutoMigrate(&repository.AppointmentModel{}); err != nil {
				return err
			}
			indexes := []string{
				`CREATE INDEX IF NOT EXISTS idx_appointments_email ON appointments (email)`,
				`CREATE INDEX IF NOT EXISTS idx_appointments_created_at ON appointments (created_at DESC)`,
			}
			for _, sql := range indexes {
				if err := tx.Exec(sql).Error; err != nil {
					return err
				}
			}
			return nil
		},
		Rollback: func(tx *gorm.DB) error {
			return tx.Migrator().DropTable(&repository.AppointmentModel{})
		},
	}
}

func createNotifyFailuresTable() *gormigrate.Migration {
	return &gormigrate.Migration{
		ID: "000002_create_notify_failures",
		Migrate: func(tx *gorm.DB) error {
			if err := tx.AutoMigrate(&repository.NotifyFailureModel{}); err != nil {
				return err
			}
			return tx.Exec(`CREATE INDEX IF NOT EXISTS idx_notify_failures_status_created ON notify_failures (status, created_at DESC)`).Error
		},
		Rollback: func(tx *gorm.DB) error {
			return tx.Migrator().DropTable(&repository.NotifyFailureModel{})
		},
	}
}
