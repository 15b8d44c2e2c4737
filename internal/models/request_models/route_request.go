package request_models

import "routeplanner/pkg/utils"

const (
	DefaultTotalBudget = 8000
	DefaultPeopleCount = 2
	DefaultTransport   = "mixed"
	DefaultIntensity   = "moderate"
)

// ItineraryRequest is the input of AI route generation. Nothing here is persisted.
type ItineraryRequest struct {
	DepartureCity   string         `json:"departureCity"`
	Destinations    []string       `json:"destinations"`
	StartDate       utils.Date     `json:"startDate"`
	EndDate         utils.Date     `json:"endDate"`
	TotalBudget     *int           `json:"totalBudget" binding:"omitempty,min=0"`
	PeopleCount     *int           `json:"peopleCount" binding:"omitempty,min=1"`
	Transport       string         `json:"transport" binding:"omitempty,oneof=public drive mixed"`
	Intensity       string         `json:"intensity" binding:"omitempty,oneof=relaxed moderate high"`
	InterestWeights map[string]int `json:"interestWeights"`
}

func (r ItineraryRequest) BudgetOrDefault() int {
	if r.TotalBudget == nil {
		return DefaultTotalBudget
	}
	return *r.TotalBudget
}

func (r ItineraryRequest) PeopleOrDefault() int {
	if r.PeopleCount == nil {
		return DefaultPeopleCount
	}
	return *r.PeopleCount
}

func (r ItineraryRequest) TransportOrDefault() string {
	if r.Transport == "" {
		return DefaultTransport
	}
	return r.Transport
}

func (r ItineraryRequest) IntensityOrDefault() string {
	if r.Intensity == "" {
		return DefaultIntensity
	}
	return r.Intensity
}

type CreatePlanRequest struct {
	Destination           string           `json:"destination" binding:"required"`
	StartDate             utils.Date       `json:"startDate"`
	EndDate               utils.Date       `json:"endDate"`
	Budget                *int             `json:"budget" binding:"omitempty,min=0"`
	PeopleCount           *int             `json:"peopleCount" binding:"omitempty,min=1"`
	Pace                  string           `json:"pace" binding:"required"`
	PreferenceWeightsJSON string           `json:"preferenceWeightsJson"`
	Days                  []PlanDayRequest `json:"days" binding:"omitempty,dive"`
}

type PlanDayRequest struct {
	DayIndex   int                   `json:"dayIndex" binding:"min=1"`
	Date       utils.Date            `json:"date"`
	Activities []PlanActivityRequest `json:"activities"`
}

type PlanActivityRequest struct {
	Type          string   `json:"type"`
	Name          string   `json:"name"`
	Location      string   `json:"location"`
	StartTime     string   `json:"startTime"`
	EndTime       string   `json:"endTime"`
	Transport     string   `json:"transport"`
	EstimatedCost *int     `json:"estimatedCost"`
	Lng           *float64 `json:"lng"`
	Lat           *float64 `json:"lat"`
	Tags          []string `json:"tags"`
}
