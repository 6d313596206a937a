package dbmodels

import "time"

type CheckTaskStatus string

const (
	CheckTaskPending CheckTaskStatus = "pending" // Ожидает наступления срока
	CheckTaskSent    CheckTaskStatus = "sent"    // Запрос подтверждения отправлен
	CheckTaskFailed  CheckTaskStatus = "failed"  // Отправка не удалась
)

// EmploymentCheckTask отложенная проверка трудоустройства через 6 месяцев
// после найма, обрабатывается фоновым воркером
type EmploymentCheckTask struct {
	BaseModel
	ApplicationID string       `gorm:"type:varchar(36);index"`
	Application   *Application `gorm:"foreignKey:ApplicationID"`
	DueAt         time.Time    `gorm:"index"`
	Status        CheckTaskStatus `gorm:"type:varchar(50);index"`
	Attempts      int
}
