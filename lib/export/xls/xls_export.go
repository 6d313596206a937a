package xlsexport

import (
	"bytes"
	"fmt"

	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"

	ratinghandler "hiring-feedback-backend/lib/rating"
)

const ratingsSheet = "Рейтинги работодателей"

var ratingsHeaders = []string{
	"Работодатель",
	"Качество обратной связи",
	"Скорость коммуникации",
	"Впечатление от интервью",
	"Прозрачность процесса",
	"Кол-во отзывов",
}

type Provider interface {
	ExportRatings() ([]byte, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		rating: ratinghandler.Instance,
	}
}

type impl struct {
	rating ratinghandler.Provider
}

// ExportRatings выгружает текущие срезы рейтингов всех работодателей
func (i impl) ExportRatings() ([]byte, error) {
	list, err := i.rating.List()
	if err != nil {
		return nil, err
	}
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(ratingsSheet)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка создания листа")
	}
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	row := 0
	row, err = writeHeader(f, ratingsSheet, row, ratingsHeaders)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка записи заголовка")
	}
	for _, rec := range list {
		companyName := rec.CompanyID
		if rec.Company != nil {
			companyName = rec.Company.Name
		}
		values := []interface{}{
			companyName,
			fmt.Sprintf("%.2f", rec.FeedbackQuality),
			fmt.Sprintf("%.2f", rec.CommunicationSpeed),
			fmt.Sprintf("%.2f", rec.InterviewExperience),
			fmt.Sprintf("%.2f", rec.ProcessTransparency),
			rec.ReviewCount,
		}
		row, err = writeRow(f, ratingsSheet, row, values)
		if err != nil {
			return nil, errors.Wrap(err, "ошибка записи строки")
		}
	}

	buf := new(bytes.Buffer)
	if err = f.Write(buf); err != nil {
		return nil, errors.Wrap(err, "ошибка выгрузки файла")
	}
	return buf.Bytes(), nil
}
