package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/paulmach/orb"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"routeplanner/internal/models/db_models"
	"routeplanner/internal/models/request_models"
	"routeplanner/internal/models/response_models"
	"routeplanner/internal/repositories"
	"routeplanner/pkg/geo"
	"routeplanner/pkg/utils"
)

const (
	maxPlanDays = 14

	defaultActivityType  = "sight"
	defaultDisplayName   = "用户"
	scheduleStartMinutes = 9 * 60
	scheduleStayMinutes  = 60
	scheduleGapMinutes   = 30
)

type RoutePlanServiceInterface interface {
	GenerateAiPlan(ctx context.Context, req request_models.ItineraryRequest) (*response_models.GenerateResult, error)
	CreatePlan(ctx context.Context, ownerID string, req request_models.CreatePlanRequest) (string, error)
	GetPlan(ctx context.Context, planID string) (*response_models.PlanResponse, error)
	ListPlansByOwner(ctx context.Context, ownerID string) ([]response_models.PlanResponse, error)
	ListHotPlans(ctx context.Context, limit int) ([]response_models.HotPlanResponse, error)
	DeletePlan(ctx context.Context, requesterID string, planID string) error
}

type RoutePlanService struct {
	aiClient      AIRouteClientInterface
	fallback      FallbackRouteGeneratorInterface
	gazetteer     geo.Gazetteer
	planRepo      repositories.TripPlanRepository
	reactionRepo  repositories.ContentReactionRepository
	accountRepo   repositories.AccountRepository
	candidatePool int
	logger        *zap.Logger
}

func NewRoutePlanService(
	aiClient AIRouteClientInterface,
	fallback FallbackRouteGeneratorInterface,
	gazetteer geo.Gazetteer,
	planRepo repositories.TripPlanRepository,
	reactionRepo repositories.ContentReactionRepository,
	accountRepo repositories.AccountRepository,
	candidatePool int,
	logger *zap.Logger,
) RoutePlanServiceInterface {
	if candidatePool <= 0 {
		candidatePool = MaxHotLimit
	}
	return &RoutePlanService{
		aiClient:      aiClient,
		fallback:      fallback,
		gazetteer:     gazetteer,
		planRepo:      planRepo,
		reactionRepo:  reactionRepo,
		accountRepo:   accountRepo,
		candidatePool: candidatePool,
		logger:        logger.With(zap.String("component", "route_plan_service")),
	}
}

// PlanDayCount is the inclusive number of days between start and end, clamped to [1, 14].
func PlanDayCount(start, end utils.Date) int {
	n := utils.DaysBetween(start, end) + 1
	if n < 1 {
		return 1
	}
	if n > maxPlanDays {
		return maxPlanDays
	}
	return n
}

func normalizeDestinations(destinations []string) []string {
	out := make([]string, 0, len(destinations))
	for _, d := range destinations {
		if d = strings.TrimSpace(d); d != "" {
			out = append(out, d)
		}
	}
	return out
}

// GenerateAiPlan always yields three variants of PlanDayCount days each. Only
// request validation produces an error; AI failures fall back silently.
func (s *RoutePlanService) GenerateAiPlan(ctx context.Context, req request_models.ItineraryRequest) (*response_models.GenerateResult, error) {
	req.Destinations = normalizeDestinations(req.Destinations)
	if len(req.Destinations) == 0 {
		return nil, utils.ErrInvalidDestinations
	}
	if req.StartDate.IsZero() || req.EndDate.IsZero() {
		return nil, utils.ErrMissingDate
	}
	if req.EndDate.Before(req.StartDate) {
		return nil, utils.ErrInvalidDateRange
	}

	dayCount := PlanDayCount(req.StartDate, req.EndDate)

	var variants []response_models.PlanVariant
	if !s.aiClient.IsAvailable() {
		s.logger.Info("AI generation not configured or disabled, using fallback routes")
	} else {
		s.logger.Info("Generating routes with AI",
			zap.String("departure", req.DepartureCity),
			zap.Strings("destinations", req.Destinations),
			zap.String("start", req.StartDate.String()),
			zap.String("end", req.EndDate.String()),
			zap.Int("budget", req.BudgetOrDefault()),
			zap.String("transport", req.TransportOrDefault()),
			zap.String("intensity", req.IntensityOrDefault()))

		result := s.aiClient.Generate(ctx, req, dayCount)
		if result.OK() {
			variants = result.Variants
		} else {
			s.logger.Warn("AI generation failed, using fallback routes",
				zap.String("outcome", string(result.Outcome)),
				zap.Error(result.Err))
		}
	}

	if len(variants) == 0 {
		variants = s.fallback.Generate(req.Destinations[0], req.StartDate, dayCount)
	}

	EnrichVariants(s.gazetteer, variants)
	return &response_models.GenerateResult{Variants: variants}, nil
}

func (s *RoutePlanService) CreatePlan(ctx context.Context, ownerID string, req request_models.CreatePlanRequest) (string, error) {
	ownerUUID, err := uuid.Parse(ownerID)
	if err != nil {
		return "", utils.ErrUnauthorized
	}
	if req.StartDate.IsZero() || req.EndDate.IsZero() {
		return "", utils.ErrMissingDate
	}
	if req.EndDate.Before(req.StartDate) {
		s.logger.Warn("Create plan rejected: end date before start date",
			zap.String("start", req.StartDate.String()),
			zap.String("end", req.EndDate.String()))
		return "", utils.ErrInvalidDateRange
	}

	owner, err := s.accountRepo.FindById(ctx, ownerID)
	if err != nil {
		return "", fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	if owner == nil {
		return "", utils.ErrAccountNotFound
	}

	plan := &db_models.TripPlan{
		OwnerID:           ownerUUID,
		Title:             planTitle(owner, req.Destination),
		Destination:       req.Destination,
		StartDate:         req.StartDate.Time(),
		EndDate:           req.EndDate.Time(),
		Budget:            req.Budget,
		PeopleCount:       req.PeopleCount,
		Pace:              req.Pace,
		PreferenceWeights: preferenceWeights(req.PreferenceWeightsJSON),
		Days:              toDBDays(req.Days),
	}

	if err := s.planRepo.Create(ctx, plan); err != nil {
		return "", fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}

	s.logger.Info("Plan created",
		zap.String("plan_id", plan.ID.String()),
		zap.String("destination", plan.Destination),
		zap.Int("days", len(plan.Days)))
	return plan.ID.String(), nil
}

func preferenceWeights(raw string) datatypes.JSON {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	if json.Valid([]byte(raw)) {
		return datatypes.JSON(raw)
	}
	// Keep free-form input as a JSON string rather than rejecting it.
	b, _ := json.Marshal(raw)
	return datatypes.JSON(b)
}

func toDBDays(days []request_models.PlanDayRequest) []db_models.TripDay {
	out := make([]db_models.TripDay, 0, len(days))
	for _, d := range days {
		activities := make([]db_models.TripActivity, 0, len(d.Activities))
		for pos, a := range d.Activities {
			kind := a.Type
			if kind == "" {
				kind = defaultActivityType
			}
			activities = append(activities, db_models.TripActivity{
				Position:      pos,
				Type:          kind,
				Name:          a.Name,
				Location:      a.Location,
				StartTime:     strings.TrimSpace(a.StartTime),
				EndTime:       strings.TrimSpace(a.EndTime),
				Transport:     a.Transport,
				EstimatedCost: a.EstimatedCost,
				Lng:           a.Lng,
				Lat:           a.Lat,
				Tags:          pq.StringArray(a.Tags),
			})
		}
		out = append(out, db_models.TripDay{
			DayIndex:   d.DayIndex,
			Date:       d.Date.Time(),
			Activities: activities,
		})
	}
	return out
}

func (s *RoutePlanService) GetPlan(ctx context.Context, planID string) (*response_models.PlanResponse, error) {
	id, err := uuid.Parse(planID)
	if err != nil {
		return nil, utils.ErrInvalidID
	}

	plan, err := s.planRepo.FindDetailById(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	if plan == nil {
		return nil, utils.ErrPlanNotFound
	}

	resp := toPlanSummary(*plan)
	resp.Days = make([]response_models.PlanDay, 0, len(plan.Days))
	for _, day := range plan.Days {
		resp.Days = append(resp.Days, toPlanDay(day))
	}

	s.logger.Debug("Plan loaded", zap.String("plan_id", planID), zap.Int("days", len(resp.Days)))
	return &resp, nil
}

// toPlanDay fills missing activity times from a cursor starting at 09:00: each
// unscheduled activity gets one hour and the cursor then skips a 30 minute gap.
func toPlanDay(day db_models.TripDay) response_models.PlanDay {
	activities := make([]response_models.PlanActivity, 0, len(day.Activities))
	path := make([]orb.Point, 0, len(day.Activities))
	cursor := scheduleStartMinutes

	for _, act := range day.Activities {
		start, end := act.StartTime, act.EndTime
		if start == "" || end == "" {
			start = utils.FormatClock(cursor)
			end = utils.FormatClock(cursor + scheduleStayMinutes)
			cursor += scheduleStayMinutes + scheduleGapMinutes
		}

		tags := []string(act.Tags)
		if tags == nil {
			tags = []string{}
		}

		activities = append(activities, response_models.PlanActivity{
			Type:          act.Type,
			Name:          act.Name,
			Location:      act.Location,
			StartTime:     start,
			EndTime:       end,
			Transport:     act.Transport,
			EstimatedCost: act.EstimatedCost,
			Lng:           act.Lng,
			Lat:           act.Lat,
			Tags:          tags,
		})

		if act.Lng != nil && act.Lat != nil {
			path = append(path, orb.Point{*act.Lng, *act.Lat})
		}
	}

	return response_models.PlanDay{
		DayIndex:   day.DayIndex,
		Date:       utils.DateOf(day.Date),
		PathKm:     geo.PathLengthKm(path),
		Activities: activities,
	}
}

func (s *RoutePlanService) ListPlansByOwner(ctx context.Context, ownerID string) ([]response_models.PlanResponse, error) {
	id, err := uuid.Parse(ownerID)
	if err != nil {
		return nil, utils.ErrInvalidID
	}

	plans, err := s.planRepo.ListByOwner(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}

	out := make([]response_models.PlanResponse, 0, len(plans))
	for _, p := range plans {
		out = append(out, toPlanSummary(p))
	}
	return out, nil
}

// ListHotPlans re-scores the newest candidatePool plans on every call.
func (s *RoutePlanService) ListHotPlans(ctx context.Context, limit int) ([]response_models.HotPlanResponse, error) {
	plans, err := s.planRepo.ListLatest(ctx, s.candidatePool)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	if len(plans) == 0 {
		return []response_models.HotPlanResponse{}, nil
	}

	ids := make([]uuid.UUID, 0, len(plans))
	byID := make(map[string]db_models.TripPlan, len(plans))
	for _, p := range plans {
		ids = append(ids, p.ID)
		byID[p.ID.String()] = p
	}

	likes, err := s.reactionRepo.CountByTargets(ctx, db_models.ReactionLike, db_models.TargetRoute, ids)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	favorites, err := s.reactionRepo.CountByTargets(ctx, db_models.ReactionFavorite, db_models.TargetRoute, ids)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}

	candidates := make([]RankingCandidate, 0, len(plans))
	for _, p := range plans {
		candidates = append(candidates, RankingCandidate{
			ID:        p.ID.String(),
			CreatedAt: utils.FromUnixSeconds(p.CreatedAt),
			Likes:     likes[p.ID],
			Favorites: favorites[p.ID],
		})
	}

	ranked := RankByPopularity(candidates, limit)
	out := make([]response_models.HotPlanResponse, 0, len(ranked))
	for _, c := range ranked {
		out = append(out, response_models.HotPlanResponse{
			PlanResponse:  toPlanSummary(byID[c.ID]),
			LikeCount:     c.Likes,
			FavoriteCount: c.Favorites,
			Score:         c.Score(),
		})
	}
	return out, nil
}

func (s *RoutePlanService) DeletePlan(ctx context.Context, requesterID string, planID string) error {
	id, err := uuid.Parse(planID)
	if err != nil {
		return utils.ErrInvalidID
	}

	plan, err := s.planRepo.FindById(ctx, id)
	if err != nil {
		return fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	if plan == nil {
		return utils.ErrPlanNotFound
	}
	if plan.OwnerID.String() != requesterID {
		return utils.ErrForbidden
	}

	if err := s.planRepo.DeleteWithDays(ctx, id); err != nil {
		return fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}

	s.logger.Info("Plan deleted", zap.String("plan_id", planID))
	return nil
}

// ownerDisplayName prefers the nickname, then email, then phone.
func ownerDisplayName(owner *db_models.Account) string {
	if owner == nil {
		return defaultDisplayName
	}
	if name := strings.TrimSpace(owner.Name); name != "" {
		return name
	}
	if owner.Email != "" {
		return owner.Email
	}
	if owner.Phone != "" {
		return owner.Phone
	}
	return defaultDisplayName
}

func planTitle(owner *db_models.Account, destination string) string {
	return ownerDisplayName(owner) + "的" + destination + "之旅"
}

// toPlanSummary recomputes the title from the owner's current profile.
func toPlanSummary(p db_models.TripPlan) response_models.PlanResponse {
	return response_models.PlanResponse{
		ID:          p.ID.String(),
		OwnerID:     p.OwnerID.String(),
		Title:       planTitle(p.Owner, p.Destination),
		Destination: p.Destination,
		StartDate:   utils.DateOf(p.StartDate),
		EndDate:     utils.DateOf(p.EndDate),
		Budget:      p.Budget,
		PeopleCount: p.PeopleCount,
		Pace:        p.Pace,
		CreatedAt:   p.CreatedAt,
		Days:        []response_models.PlanDay{},
	}
}
