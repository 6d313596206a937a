package feedbackrequesthandler

import (
	"bytes"
	"text/template"

	"github.com/pkg/errors"

	"hiring-feedback-backend/models"
)

const feedbackRequestTitle = "Оцените процесс подбора"

type feedbackMsgData struct {
	ApplicantName string
	JobTitle      string
	CompanyName   string
	FeedbackUrl   string
}

// по одному шаблону на этап подбора
var stageTemplates = map[models.PipelineStage]*template.Template{
	models.StageApplicationReview: template.Must(template.New("application_review").Parse(
		"Здравствуйте, {{.ApplicantName}}!\n\n" +
			"Компания {{.CompanyName}} рассмотрела ваш отклик на вакансию «{{.JobTitle}}».\n" +
			"Поделитесь, пожалуйста, впечатлением от этапа рассмотрения отклика — это займет пару минут:\n" +
			"{{.FeedbackUrl}}\n")),
	models.StageChallenge: template.Must(template.New("challenge").Parse(
		"Здравствуйте, {{.ApplicantName}}!\n\n" +
			"Вы выполнили тестовое задание для компании {{.CompanyName}} по вакансии «{{.JobTitle}}».\n" +
			"Расскажите, насколько понятным и честным был этот этап:\n" +
			"{{.FeedbackUrl}}\n")),
	models.StageInterview: template.Must(template.New("interview").Parse(
		"Здравствуйте, {{.ApplicantName}}!\n\n" +
			"Вы прошли интервью в компанию {{.CompanyName}} на вакансию «{{.JobTitle}}».\n" +
			"Оцените, пожалуйста, как прошло интервью:\n" +
			"{{.FeedbackUrl}}\n")),
	models.StageOffer: template.Must(template.New("offer").Parse(
		"Здравствуйте, {{.ApplicantName}}!\n\n" +
			"Процесс подбора на вакансию «{{.JobTitle}}» в компании {{.CompanyName}} завершен.\n" +
			"Поделитесь итоговым впечатлением о процессе:\n" +
			"{{.FeedbackUrl}}\n")),
}

func buildStageMessage(stage models.PipelineStage, data feedbackMsgData) (string, error) {
	tpl, ok := stageTemplates[stage]
	if !ok {
		return "", errors.Wrapf(models.ErrValidation, "нет шаблона для этапа (%v)", stage)
	}
	buf := new(bytes.Buffer)
	err := tpl.Execute(buf, data)
	if err != nil {
		return "", err
	}
	return buf.String(), nil
}
