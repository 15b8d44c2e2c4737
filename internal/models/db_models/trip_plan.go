package db_models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/datatypes"
)

type TripPlan struct {
	BaseModel
	OwnerID           uuid.UUID `gorm:"type:uuid;index"`
	Owner             *Account  `gorm:"foreignKey:OwnerID"`
	Title             string
	Destination       string
	StartDate         time.Time `gorm:"type:date"`
	EndDate           time.Time `gorm:"type:date"`
	Budget            *int
	PeopleCount       *int
	Pace              string
	PreferenceWeights datatypes.JSON `gorm:"type:jsonb"`

	Days []TripDay `gorm:"foreignKey:PlanID"`
}

type TripDay struct {
	BaseModel
	PlanID   uuid.UUID `gorm:"type:uuid;index"`
	DayIndex int
	Date     time.Time `gorm:"type:date"`

	Activities []TripActivity `gorm:"foreignKey:TripDayID"`
}

type TripActivity struct {
	BaseModel
	TripDayID     uuid.UUID `gorm:"type:uuid;index"`
	Position      int
	Type          string // sight / food / hotel / other
	Name          string
	Location      string
	StartTime     string // HH:mm, empty when unscheduled
	EndTime       string
	Transport     string
	EstimatedCost *int
	Lng           *float64
	Lat           *float64
	Tags          pq.StringArray `gorm:"type:text[]"`
}
