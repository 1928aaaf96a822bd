package domain

import "time"

// SchemaMigration records a schema version that has been applied
type SchemaMigration struct {
	Version   int       `gorm:"primaryKey;autoIncrement:false"`
	Name      string    `gorm:"type:varchar(100);not null"`
	AppliedAt time.Time `gorm:"not null;autoCreateTime"`
}

// TableName specifies the table name for SchemaMigration
func (SchemaMigration) TableName() string {
	return "schema_migrations"
}
