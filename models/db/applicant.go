package dbmodels

import "fmt"

type Applicant struct {
	BaseModel
	FirstName string `gorm:"type:varchar(255)"`
	LastName  string `gorm:"type:varchar(255)"`
	Email     string `gorm:"type:varchar(255);index"`
}

func (a Applicant) GetFullName() string {
	return fmt.Sprintf("%v %v", a.FirstName, a.LastName)
}
