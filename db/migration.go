package db

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	dbmodels "hiring-feedback-backend/models/db"
)

func AutoMigrateDB() error {
	DB.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")
	log.Info("Запуск миграций")
	if err := DB.AutoMigrate(&dbmodels.Applicant{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры Applicant")
	}
	if err := DB.AutoMigrate(&dbmodels.Company{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры Company")
	}
	if err := DB.AutoMigrate(&dbmodels.Vacancy{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры Vacancy")
	}
	if err := DB.AutoMigrate(&dbmodels.Application{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры Application")
	}
	if err := DB.AutoMigrate(&dbmodels.ApplicationOutcome{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры ApplicationOutcome")
	}
	if err := DB.AutoMigrate(&dbmodels.FeedbackRequest{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры FeedbackRequest")
	}
	if err := DB.AutoMigrate(&dbmodels.ApplicantFeedback{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры ApplicantFeedback")
	}
	if err := DB.AutoMigrate(&dbmodels.CompanyRating{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры CompanyRating")
	}
	if err := DB.AutoMigrate(&dbmodels.RatingAuditLog{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры RatingAuditLog")
	}
	if err := DB.AutoMigrate(&dbmodels.SuccessStory{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры SuccessStory")
	}
	if err := DB.AutoMigrate(&dbmodels.EmploymentCheckTask{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры EmploymentCheckTask")
	}
	log.Info("Миграция прошла успешно")
	return nil
}
