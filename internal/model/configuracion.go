package model

import "time"

// ClaveDeduccion stores the operator margin percentage consumed by reports.
const ClaveDeduccion = "deduction_percent"

// Configuracion is a single persisted key/value setting, written by the admin
// surface only.
type Configuracion struct {
	Clave     string `gorm:"primaryKey"`
	Valor     string `gorm:"not null"`
	UpdatedAt time.Time
}

func (Configuracion) TableName() string { return "configuraciones" }
