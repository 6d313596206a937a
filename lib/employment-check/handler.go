package employmentcheck

import (
	"time"

	"github.com/pkg/errors"

	"hiring-feedback-backend/db"
	employmentcheckstore "hiring-feedback-backend/lib/employment-check/store"
	dbmodels "hiring-feedback-backend/models/db"
)

type Provider interface {
	Enqueue(applicationID string, dueAt time.Time) error
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store: employmentcheckstore.NewInstance(db.DB),
	}
}

type impl struct {
	store employmentcheckstore.Provider
}

// Enqueue ставит отложенную проверку трудоустройства в очередь.
// Обязанность вызывающего кода заканчивается на успешной постановке,
// доставкой занимается воркер
func (i impl) Enqueue(applicationID string, dueAt time.Time) error {
	_, err := i.store.Create(dbmodels.EmploymentCheckTask{
		ApplicationID: applicationID,
		DueAt:         dueAt,
		Status:        dbmodels.CheckTaskPending,
	})
	if err != nil {
		return errors.Wrap(err, "ошибка постановки проверки трудоустройства в очередь")
	}
	return nil
}
