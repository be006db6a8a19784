package models

import "time"

// Canonical codes stored in the database. User input is normalized to
// these values before anything is persisted (see internal/normalize).
const (
	TipoGato  = "gato"
	TipoPerro = "perro"

	UnidadMeses = "m"
	UnidadAnios = "a"
)

// AvisoAdopcion represents a single pet-adoption posting.
type AvisoAdopcion struct {
	ID           uint      `gorm:"primaryKey"`
	FechaIngreso time.Time `gorm:"not null"` // server-assigned at submit time
	ComunaID     uint      `gorm:"not null;index"`
	Sector       *string   `gorm:"size:100"`
	Nombre       string    `gorm:"size:200;not null"`
	Email        string    `gorm:"size:100;not null"`
	Celular      *string   `gorm:"size:15"`
	Tipo         string    `gorm:"size:10;not null"` // 'gato' | 'perro'
	Cantidad     int       `gorm:"not null"`
	Edad         int       `gorm:"not null"`
	UnidadMedida string    `gorm:"size:1;not null"` // 'm' | 'a'
	FechaEntrega time.Time `gorm:"not null"`
	Descripcion  *string   `gorm:"size:500"`

	Comuna Comuna `gorm:"foreignKey:ComunaID"`

	// Fotos and Contactos are owned by the aviso and are deleted with it.
	Fotos     []Foto         `gorm:"foreignKey:AvisoID;constraint:OnDelete:CASCADE"`
	Contactos []ContactarPor `gorm:"foreignKey:AvisoID;constraint:OnDelete:CASCADE"`
}

// Foto is one stored photo of an aviso. RutaArchivo holds the storage
// folder (e.g. "static/uploads") and NombreArchivo the generated name;
// the public URL is built from both at serialization time.
type Foto struct {
	ID            uint   `gorm:"primaryKey"`
	RutaArchivo   string `gorm:"size:300;not null"`
	NombreArchivo string `gorm:"size:300;not null"`
	AvisoID       uint   `gorm:"not null;index"`
}

// ContactarPor is one channel+identifier pair through which the
// submitter can be reached.
type ContactarPor struct {
	ID            uint   `gorm:"primaryKey"`
	Nombre        string `gorm:"size:20;not null"` // 'whatsapp'|'telegram'|'X'|'instagram'|'tiktok'|'otra'
	Identificador string `gorm:"size:150;not null"`
	AvisoID       uint   `gorm:"not null;index"`
}
