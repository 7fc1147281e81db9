package entity

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// UUIDList stores a set of ids as a JSONB array
type UUIDList []uuid.UUID

// Value returns json value, implement driver.Valuer interface
func (l UUIDList) Value() (driver.Value, error) {
	if len(l) == 0 {
		return nil, nil
	}
	return json.Marshal(l)
}

// Scan scan value into the list, implements sql.Scanner interface
func (l *UUIDList) Scan(value interface{}) error {
	if value == nil {
		*l = nil
		return nil
	}
	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return errors.New(fmt.Sprint("Failed to unmarshal JSONB value:", value))
	}

	var result []uuid.UUID
	if err := json.Unmarshal(bytes, &result); err != nil {
		return err
	}
	*l = UUIDList(result)
	return nil
}

// PetHealthBook is a visit record for a boarded pet: which medicines were
// given, when the visit happened and when the next one is due.
type PetHealthBook struct {
	ID                   uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	BookingServiceItemID uuid.UUID  `gorm:"type:uuid;not null;index" json:"booking_service_item_id"`
	MedicineIDs          UUIDList   `gorm:"type:jsonb" json:"medicine_ids"`
	VisitDate            time.Time  `gorm:"not null;index" json:"visit_date"`
	NextVisitDate        *time.Time `json:"next_visit_date,omitempty"`
	PerformBy            string     `gorm:"type:varchar(255);not null" json:"perform_by"`
	IsDeleted            bool       `gorm:"not null;default:false;index" json:"is_deleted"`
	CreatedAt            time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt            time.Time  `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	BookingServiceItem BookingServiceItem `gorm:"foreignKey:BookingServiceItemID" json:"booking_service_item,omitempty"`
}

func (PetHealthBook) TableName() string {
	return "pet_health_books"
}
