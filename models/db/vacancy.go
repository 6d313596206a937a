package dbmodels

import "hiring-feedback-backend/models"

type Vacancy struct {
	BaseModel
	CompanyID      string   `gorm:"type:varchar(36);index"`
	Company        *Company `gorm:"foreignKey:CompanyID"`
	JobTitle       string   `gorm:"type:varchar(255)"`
	EmploymentType models.EmploymentType `gorm:"type:varchar(50)"`
}
