package models

// Region is the top level of the administrative hierarchy.
type Region struct {
	ID     uint   `gorm:"primaryKey"`
	Nombre string `gorm:"size:200;not null"`

	Comunas []Comuna `gorm:"foreignKey:RegionID"`
}

// Comuna is the second level of the administrative hierarchy.
// Every aviso is posted against exactly one comuna.
type Comuna struct {
	ID       uint   `gorm:"primaryKey"`
	Nombre   string `gorm:"size:200;not null;index"`
	RegionID uint   `gorm:"not null;index"`

	Region Region `gorm:"foreignKey:RegionID"`
}
