package dbmodels

type Company struct {
	BaseModel
	Name string `gorm:"type:varchar(255)"`
}
