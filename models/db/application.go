package dbmodels

import "time"

// Application связка кандидат-вакансия-работодатель, создается пайплайном подбора,
// после создания не меняется
type Application struct {
	BaseModel
	ApplicantID string     `gorm:"type:varchar(36);index"`
	Applicant   *Applicant `gorm:"foreignKey:ApplicantID"`
	VacancyID   string     `gorm:"type:varchar(36);index"`
	Vacancy     *Vacancy   `gorm:"foreignKey:VacancyID"`
	CompanyID   string     `gorm:"type:varchar(36);index"`
	Company     *Company   `gorm:"foreignKey:CompanyID"`
	AppliedAt   time.Time
}
