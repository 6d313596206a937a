package models

import "github.com/pkg/errors"

type PipelineStage string

const (
	StageApplicationReview PipelineStage = "application_review" // Рассмотрение отклика
	StageChallenge         PipelineStage = "challenge"          // Тестовое задание
	StageInterview         PipelineStage = "interview"          // Интервью
	StageOffer             PipelineStage = "offer"              // Оффер
)

// Validate этапы приходят от внешних вызовов, произвольные строки не принимаем
func (s PipelineStage) Validate() error {
	switch s {
	case StageApplicationReview, StageChallenge, StageInterview, StageOffer:
		return nil
	}
	return errors.Wrapf(ErrValidation, "неизвестный этап подбора (%v)", s)
}

func (s PipelineStage) ToString() string {
	switch s {
	case StageApplicationReview:
		return "рассмотрение отклика"
	case StageChallenge:
		return "тестовое задание"
	case StageInterview:
		return "интервью"
	case StageOffer:
		return "оффер"
	}
	return string(s)
}

type OutcomeResult string

const (
	OutcomeHired         OutcomeResult = "hired"          // Кандидат нанят
	OutcomeRejected      OutcomeResult = "rejected"       // Кандидат отклонен
	OutcomeWithdrawn     OutcomeResult = "withdrawn"      // Кандидат отозвал отклик
	OutcomeOfferDeclined OutcomeResult = "offer_declined" // Кандидат отказался от оффера
)

func (r OutcomeResult) Validate() error {
	switch r {
	case OutcomeHired, OutcomeRejected, OutcomeWithdrawn, OutcomeOfferDeclined:
		return nil
	}
	return errors.Wrapf(ErrValidation, "неизвестный результат подбора (%v)", r)
}

type EmploymentType string

const (
	EmploymentFull       EmploymentType = "full_time"  // Полная занятость
	EmploymentPart       EmploymentType = "part_time"  // Частичная занятость
	EmploymentContract   EmploymentType = "contract"   // Контракт
	EmploymentInternship EmploymentType = "internship" // Стажировка
)

func (e EmploymentType) ToString() string {
	switch e {
	case EmploymentFull:
		return "полная занятость"
	case EmploymentPart:
		return "частичная занятость"
	case EmploymentContract:
		return "контракт"
	case EmploymentInternship:
		return "стажировка"
	}
	return string(e)
}
