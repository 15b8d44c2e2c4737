package services

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"routeplanner/internal/models/response_models"
	"routeplanner/pkg/utils"
)

const (
	variantCount = 3

	defaultVariantID       = "a"
	defaultVariantName     = "方案"
	defaultDurationMinutes = 180
	defaultDistanceKm      = 10
	defaultCommuteMinutes  = 20
	defaultItemName        = "景点"
	defaultItemImage       = "https://picsum.photos/seed/poi/320/180"
	defaultStayMinutes     = 60
)

var errMalformedRoute = errors.New("malformed route response")

// lenientString accepts JSON strings and numbers; anything else reads as absent.
type lenientString struct {
	value string
	set   bool
}

func (s *lenientString) UnmarshalJSON(b []byte) error {
	if isJSONNull(b) {
		return nil
	}
	var str string
	if err := json.Unmarshal(b, &str); err == nil {
		s.value, s.set = str, true
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err == nil {
		s.value, s.set = n.String(), true
	}
	return nil
}

func (s lenientString) or(def string) string {
	if !s.set {
		return def
	}
	return s.value
}

// lenientNumber accepts JSON numbers and numeric strings; anything else reads as absent.
type lenientNumber struct {
	value float64
	set   bool
}

func (n *lenientNumber) UnmarshalJSON(b []byte) error {
	if isJSONNull(b) {
		return nil
	}
	var f float64
	if err := json.Unmarshal(b, &f); err == nil {
		n.value, n.set = f, true
		return nil
	}
	var str string
	if err := json.Unmarshal(b, &str); err == nil {
		if f, err := json.Number(strings.TrimSpace(str)).Float64(); err == nil {
			n.value, n.set = f, true
		}
	}
	return nil
}

func (n lenientNumber) intOr(def int) int {
	if !n.set {
		return def
	}
	return int(n.value)
}

// lenientStrings accepts a JSON array of scalars; any other value reads as an empty list.
type lenientStrings []string

func (l *lenientStrings) UnmarshalJSON(b []byte) error {
	var raw []lenientString
	if err := json.Unmarshal(b, &raw); err != nil {
		*l = lenientStrings{}
		return nil
	}
	out := make(lenientStrings, 0, len(raw))
	for _, s := range raw {
		if s.set {
			out = append(out, s.value)
		}
	}
	*l = out
	return nil
}

func isJSONNull(b []byte) bool {
	return bytes.Equal(bytes.TrimSpace(b), []byte("null"))
}

type aiRouteEnvelope struct {
	Variants json.RawMessage `json:"variants"`
}

type aiRouteVariant struct {
	ID   lenientString `json:"id"`
	Name lenientString `json:"name"`
	Days []aiRouteDay  `json:"days"`
}

type aiRouteDay struct {
	DayIndex        lenientNumber `json:"dayIndex"`
	Date            lenientString `json:"date"`
	DurationMinutes lenientNumber `json:"durationMinutes"`
	DistanceKm      lenientNumber `json:"distanceKm"`
	CommuteMinutes  lenientNumber `json:"commuteMinutes"`
	Items           []aiRouteItem `json:"items"`
}

type aiRouteItem struct {
	ID          lenientString  `json:"id"`
	Name        lenientString  `json:"name"`
	Image       lenientString  `json:"image"`
	StayMinutes lenientNumber  `json:"stayMinutes"`
	Tags        lenientStrings `json:"tags"`
	Lng         lenientNumber  `json:"lng"`
	Lat         lenientNumber  `json:"lat"`
}

// parseRouteVariants decodes a model reply into exactly variantCount variants of
// exactly dayCount days each. Surplus variants or days are dropped; a shortfall
// is reported as errMalformedRoute.
func parseRouteVariants(content string, startDate utils.Date, dayCount int) ([]response_models.PlanVariant, error) {
	var envelope aiRouteEnvelope
	if err := json.Unmarshal([]byte(utils.StripCodeFence(content)), &envelope); err != nil {
		return nil, fmt.Errorf("%w: %v", errMalformedRoute, err)
	}

	raw := bytes.TrimSpace(envelope.Variants)
	if len(raw) == 0 || raw[0] != '[' {
		return nil, fmt.Errorf("%w: variants missing or not an array", errMalformedRoute)
	}

	var decoded []aiRouteVariant
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return nil, fmt.Errorf("%w: %v", errMalformedRoute, err)
	}
	if len(decoded) < variantCount {
		return nil, fmt.Errorf("%w: got %d variants, want %d", errMalformedRoute, len(decoded), variantCount)
	}

	lastDate := startDate.AddDays(dayCount - 1)
	variants := make([]response_models.PlanVariant, 0, variantCount)

	for _, v := range decoded[:variantCount] {
		if len(v.Days) < dayCount {
			return nil, fmt.Errorf("%w: variant %q has %d days, want %d", errMalformedRoute, v.ID.value, len(v.Days), dayCount)
		}

		days := make([]response_models.DayPlan, 0, dayCount)
		for pos, d := range v.Days[:dayCount] {
			days = append(days, convertAIDay(d, pos, dayCount, startDate, lastDate))
		}

		variants = append(variants, response_models.PlanVariant{
			ID:   v.ID.or(defaultVariantID),
			Name: v.Name.or(defaultVariantName),
			Days: days,
		})
	}

	return variants, nil
}

// convertAIDay trusts the reported dayIndex only inside [1, dayCount]; otherwise the
// day's position in the array decides, so derived dates stay in the request window.
func convertAIDay(d aiRouteDay, pos int, dayCount int, startDate, lastDate utils.Date) response_models.DayPlan {
	dayIndex := d.DayIndex.intOr(pos + 1)
	if dayIndex < 1 || dayIndex > dayCount {
		dayIndex = pos + 1
	}

	date := startDate.AddDays(dayIndex - 1)
	if d.Date.set {
		// A date outside the requested window means the model miscounted.
		if parsed, err := utils.ParseDate(strings.TrimSpace(d.Date.value)); err == nil &&
			!parsed.Before(startDate) && !parsed.After(lastDate) {
			date = parsed
		}
	}

	items := make([]response_models.POIItem, 0, len(d.Items))
	for _, it := range d.Items {
		items = append(items, convertAIItem(it))
	}

	return response_models.DayPlan{
		DayIndex:        dayIndex,
		Date:            date,
		DurationMinutes: d.DurationMinutes.intOr(defaultDurationMinutes),
		DistanceKm:      d.DistanceKm.intOr(defaultDistanceKm),
		CommuteMinutes:  d.CommuteMinutes.intOr(defaultCommuteMinutes),
		Items:           items,
	}
}

func convertAIItem(it aiRouteItem) response_models.POIItem {
	tags := []string(it.Tags)
	if tags == nil {
		tags = []string{}
	}

	item := response_models.POIItem{
		ID:          it.ID.or(utils.ShortID()),
		Name:        it.Name.or(defaultItemName),
		Image:       it.Image.or(defaultItemImage),
		StayMinutes: it.StayMinutes.intOr(defaultStayMinutes),
		Tags:        tags,
	}

	if it.Lng.set && it.Lat.set {
		lng, lat := it.Lng.value, it.Lat.value
		item.Lng, item.Lat = &lng, &lat
	}
	return item
}
