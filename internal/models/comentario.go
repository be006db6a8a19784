package models

import "time"

// Comentario is an append-only comment on an existing aviso. Comments
// are never edited or deleted.
type Comentario struct {
	ID       uint      `gorm:"primaryKey"`
	AvisoID  uint      `gorm:"not null;index"`
	Nombre   string    `gorm:"size:80;not null"`
	Texto    string    `gorm:"size:300;not null"`
	CreadoEn time.Time `gorm:"not null"`

	Aviso AvisoAdopcion `gorm:"foreignKey:AvisoID;constraint:OnDelete:CASCADE"`
}
