// Package sequencerepo implements the sequence allocator on a "sequences" table
// holding one row per named counter.
package sequencerepo

// SequenceDTO is one named counter. Value is the last identifier handed out.
type SequenceDTO struct {
	Name  string `gorm:"primaryKey;size:64"`
	Value int64  `gorm:"not null"`
}

// TableName specifies the database table name for counters.
func (SequenceDTO) TableName() string {
	return "sequences"
}
