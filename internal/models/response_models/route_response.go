package response_models

import "routeplanner/pkg/utils"

// POIItem is a single stop of a generated day. Lng and Lat are set together or not at all.
type POIItem struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Image       string   `json:"image,omitempty"`
	StayMinutes int      `json:"stayMinutes"`
	Tags        []string `json:"tags"`
	Lng         *float64 `json:"lng"`
	Lat         *float64 `json:"lat"`
}

func (p POIItem) HasCoordinates() bool {
	return p.Lng != nil && p.Lat != nil
}

type DayPlan struct {
	DayIndex        int        `json:"dayIndex"`
	Date            utils.Date `json:"date"`
	DurationMinutes int        `json:"durationMinutes"`
	DistanceKm      int        `json:"distanceKm"`
	CommuteMinutes  int        `json:"commuteMinutes"`
	Items           []POIItem  `json:"items"`
}

type PlanVariant struct {
	ID   string    `json:"id"`
	Name string    `json:"name"`
	Days []DayPlan `json:"days"`
}

type GenerateResult struct {
	Variants []PlanVariant `json:"variants"`
}

type PlanResponse struct {
	ID          string     `json:"id"`
	OwnerID     string     `json:"ownerId"`
	Title       string     `json:"title"`
	Destination string     `json:"destination"`
	StartDate   utils.Date `json:"startDate"`
	EndDate     utils.Date `json:"endDate"`
	Budget      *int       `json:"budget"`
	PeopleCount *int       `json:"peopleCount"`
	Pace        string     `json:"pace"`
	CreatedAt   int64      `json:"createdAt"`
	Days        []PlanDay  `json:"days"`
}

type PlanDay struct {
	DayIndex   int            `json:"dayIndex"`
	Date       utils.Date     `json:"date"`
	PathKm     float64        `json:"pathKm"`
	Activities []PlanActivity `json:"activities"`
}

type PlanActivity struct {
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

type HotPlanResponse struct {
	PlanResponse
	LikeCount     int64 `json:"likeCount"`
	FavoriteCount int64 `json:"favoriteCount"`
	Score         int64 `json:"score"`
}

type ReactionResponse struct {
	Active bool  `json:"active"`
	Count  int64 `json:"count"`
}

type ReactionCountsResponse struct {
	LikeCount     int64 `json:"likeCount"`
	FavoriteCount int64 `json:"favoriteCount"`
}
