package pipeline

import (
	"github.com/pkg/errors"

	"hiring-feedback-backend/db"
	applicantstore "hiring-feedback-backend/lib/applicant/store"
	applicationstore "hiring-feedback-backend/lib/application/store"
	companystore "hiring-feedback-backend/lib/company/store"
	vacancystore "hiring-feedback-backend/lib/vacancy/store"
	"hiring-feedback-backend/models"
	dbmodels "hiring-feedback-backend/models/db"
)

// ResolvedApplication отклик со всеми связанными записями
type ResolvedApplication struct {
	Application dbmodels.Application
	Applicant   dbmodels.Applicant
	Company     dbmodels.Company
	Vacancy     dbmodels.Vacancy
}

type Provider interface {
	Resolve(applicationID string) (*ResolvedApplication, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		applicationStore: applicationstore.NewInstance(db.DB),
		applicantStore:   applicantstore.NewInstance(db.DB),
		companyStore:     companystore.NewInstance(db.DB),
		vacancyStore:     vacancystore.NewInstance(db.DB),
	}
}

type impl struct {
	applicationStore applicationstore.Provider
	applicantStore   applicantstore.Provider
	companyStore     companystore.Provider
	vacancyStore     vacancystore.Provider
}

func (i impl) Resolve(applicationID string) (*ResolvedApplication, error) {
	app, err := i.applicationStore.GetByID(applicationID)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка получения отклика")
	}
	if app == nil {
		return nil, errors.Wrap(models.ErrNotFound, "отклик не найден")
	}
	applicant, err := i.applicantStore.GetByID(app.ApplicantID)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка получения кандидата")
	}
	if applicant == nil {
		return nil, errors.Wrap(models.ErrNotFound, "кандидат не найден")
	}
	company, err := i.companyStore.GetByID(app.CompanyID)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка получения работодателя")
	}
	if company == nil {
		return nil, errors.Wrap(models.ErrNotFound, "работодатель не найден")
	}
	vacancy, err := i.vacancyStore.GetByID(app.VacancyID)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка получения вакансии")
	}
	if vacancy == nil {
		return nil, errors.Wrap(models.ErrNotFound, "вакансия не найдена")
	}
	return &ResolvedApplication{
		Application: *app,
		Applicant:   *applicant,
		Company:     *company,
		Vacancy:     *vacancy,
	}, nil
}
