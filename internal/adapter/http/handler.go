package httpadapter

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"strings"

	"newworld/internal/adapter/scenario/yamlfile"
	"newworld/internal/app/battle"
	"newworld/internal/app/observe"
	"newworld/internal/app/ports"
	"newworld/internal/app/replay"
	"newworld/internal/app/route"
	"newworld/internal/app/setup"
	"newworld/internal/app/status"
	"newworld/internal/domain/world"
	"newworld/internal/platform/logging"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
	"go.uber.org/zap"
)

const idempotencyKeyHeader = "Idempotency-Key"

var ErrMissingGameID = errors.New("missing game id")

type Handler struct {
	SetupUC   setup.UseCase
	RouteUC   route.UseCase
	BattleUC  battle.UseCase
	OddsUC    battle.OddsUseCase
	ReplayUC  replay.UseCase
	StatusUC  status.UseCase
	ObserveUC observe.UseCase
	Scenarios scenarioLister
	KPI       kpiSnapshotProvider
	Limiter   *IPLimiter
	// CORSOrigin is sent as Access-Control-Allow-Origin. Empty means "*".
	CORSOrigin string
	Logger     *zap.Logger
}

type scenarioLister interface {
	List(ctx context.Context) ([]string, error)
}

type kpiSnapshotProvider interface {
	SnapshotAny() any
}

func (h Handler) RegisterRoutes(s *server.Hertz) {
	s.Use(corsMiddleware(h.CORSOrigin))

	api := s.Group("/api", rateLimitMiddleware(h.Limiter))
	api.GET("/scenarios", h.scenarios)
	api.POST("/games", h.createGame)

	games := api.Group("/games/:game_id")
	games.GET("", h.status)
	games.POST("/observe", h.observe)
	games.POST("/path", h.path)
	games.POST("/search", h.search)
	games.POST("/odds", h.odds)
	games.POST("/attack", h.attack)
	games.POST("/bombard", h.bombard)
	games.GET("/battles", h.battles)

	s.GET("/ops/kpi", h.kpi)
}

type createGameRequest struct {
	Scenario string             `json:"scenario,omitempty"`
	Width    int                `json:"width,omitempty"`
	Height   int                `json:"height,omitempty"`
	Seed     *int64             `json:"seed,omitempty"`
	Players  []setup.PlayerSpec `json:"players,omitempty"`
}

type observeRequest struct {
	UnitID string `json:"unit_id"`
}

type pathRequest struct {
	UnitID    string         `json:"unit_id"`
	Target    world.Position `json:"target"`
	CarrierID string         `json:"carrier_id,omitempty"`
}

type searchRequest struct {
	UnitID    string `json:"unit_id"`
	Goal      string `json:"goal"`
	MaxTurns  int    `json:"max_turns,omitempty"`
	CarrierID string `json:"carrier_id,omitempty"`
}

type oddsRequest struct {
	AttackerID string         `json:"attacker_id"`
	Target     world.Position `json:"target"`
}

type attackRequest struct {
	IdempotencyKey string         `json:"idempotency_key"`
	AttackerID     string         `json:"attacker_id"`
	Target         world.Position `json:"target"`
	Seed           *int64         `json:"seed,omitempty"`
}

type bombardRequest struct {
	IdempotencyKey string         `json:"idempotency_key"`
	SettlementID   string         `json:"settlement_id"`
	Target         world.Position `json:"target"`
	Seed           *int64         `json:"seed,omitempty"`
}

type battleView struct {
	ReportID       string   `json:"report_id"`
	Kind           string   `json:"kind"`
	IdempotencyKey string   `json:"idempotency_key"`
	AttackerID     string   `json:"attacker_id"`
	DefenderID     string   `json:"defender_id"`
	Seed           int64    `json:"seed"`
	Draw           float64  `json:"draw"`
	Offence        float64  `json:"offence"`
	Defence        float64  `json:"defence"`
	WinProbability float64  `json:"win_probability"`
	Results        []string `json:"results"`
	GameVersion    int64    `json:"game_version"`
	OccurredAt     int64    `json:"occurred_at"`
	Verified       bool     `json:"verified"`
}

type battlesResponse struct {
	Battles  []battleView   `json:"battles"`
	Outcomes map[string]int `json:"outcomes"`
}

func (h Handler) scenarios(c context.Context, ctx *app.RequestContext) {
	if h.Scenarios == nil {
		writeErrorBody(ctx, consts.StatusNotFound, "not_configured", "scenario source not configured")
		return
	}
	names, err := h.Scenarios.List(c)
	if err != nil {
		h.fail(ctx, err)
		return
	}
	if names == nil {
		names = []string{}
	}
	ctx.JSON(consts.StatusOK, map[string]any{"scenarios": names})
}

func (h Handler) createGame(c context.Context, ctx *app.RequestContext) {
	var body createGameRequest
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}
	resp, err := h.SetupUC.Execute(c, setup.Request{
		Scenario: body.Scenario,
		Width:    body.Width,
		Height:   body.Height,
		Seed:     body.Seed,
		Players:  body.Players,
	})
	if err != nil {
		h.fail(ctx, err)
		return
	}
	ctx.JSON(consts.StatusCreated, resp)
}

func (h Handler) status(c context.Context, ctx *app.RequestContext) {
	gameID, ok := requireGameID(ctx)
	if !ok {
		return
	}
	resp, err := h.StatusUC.Execute(c, status.Request{GameID: gameID})
	if err != nil {
		h.fail(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) observe(c context.Context, ctx *app.RequestContext) {
	gameID, ok := requireGameID(ctx)
	if !ok {
		return
	}
	var body observeRequest
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}
	resp, err := h.ObserveUC.Execute(c, observe.Request{GameID: gameID, UnitID: body.UnitID})
	if err != nil {
		h.fail(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) path(c context.Context, ctx *app.RequestContext) {
	gameID, ok := requireGameID(ctx)
	if !ok {
		return
	}
	var body pathRequest
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}
	resp, err := h.RouteUC.Path(c, route.PathRequest{
		GameID:    gameID,
		UnitID:    body.UnitID,
		Target:    body.Target,
		CarrierID: body.CarrierID,
	})
	if err != nil {
		h.fail(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) search(c context.Context, ctx *app.RequestContext) {
	gameID, ok := requireGameID(ctx)
	if !ok {
		return
	}
	var body searchRequest
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}
	resp, err := h.RouteUC.Search(c, route.SearchRequest{
		GameID:    gameID,
		UnitID:    body.UnitID,
		Goal:      route.Goal(body.Goal),
		MaxTurns:  body.MaxTurns,
		CarrierID: body.CarrierID,
	})
	if err != nil {
		h.fail(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) odds(c context.Context, ctx *app.RequestContext) {
	gameID, ok := requireGameID(ctx)
	if !ok {
		return
	}
	var body oddsRequest
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}
	resp, err := h.OddsUC.Execute(c, battle.OddsRequest{
		GameID:     gameID,
		AttackerID: body.AttackerID,
		Target:     body.Target,
	})
	if err != nil {
		h.fail(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) attack(c context.Context, ctx *app.RequestContext) {
	gameID, ok := requireGameID(ctx)
	if !ok {
		return
	}
	var body attackRequest
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}
	resp, err := h.BattleUC.Attack(c, battle.AttackRequest{
		GameID:         gameID,
		IdempotencyKey: idempotencyKey(ctx, body.IdempotencyKey),
		AttackerID:     body.AttackerID,
		Target:         body.Target,
		Seed:           body.Seed,
	})
	if err != nil {
		h.fail(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) bombard(c context.Context, ctx *app.RequestContext) {
	gameID, ok := requireGameID(ctx)
	if !ok {
		return
	}
	var body bombardRequest
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}
	resp, err := h.BattleUC.Bombard(c, battle.BombardRequest{
		GameID:         gameID,
		IdempotencyKey: idempotencyKey(ctx, body.IdempotencyKey),
		SettlementID:   body.SettlementID,
		Target:         body.Target,
		Seed:           body.Seed,
	})
	if err != nil {
		h.fail(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) battles(c context.Context, ctx *app.RequestContext) {
	gameID, ok := requireGameID(ctx)
	if !ok {
		return
	}
	limit, _ := strconv.Atoi(string(ctx.Query("limit")))
	occurredFrom, _ := strconv.ParseInt(string(ctx.Query("occurred_from")), 10, 64)
	occurredTo, _ := strconv.ParseInt(string(ctx.Query("occurred_to")), 10, 64)
	resp, err := h.ReplayUC.Execute(c, replay.Request{
		GameID:       gameID,
		Limit:        limit,
		OccurredFrom: occurredFrom,
		OccurredTo:   occurredTo,
	})
	if err != nil {
		h.fail(ctx, err)
		return
	}
	out := battlesResponse{Battles: make([]battleView, 0, len(resp.Battles)), Outcomes: resp.Outcomes}
	for _, r := range resp.Battles {
		out.Battles = append(out.Battles, toBattleView(r))
	}
	ctx.JSON(consts.StatusOK, out)
}

func (h Handler) kpi(_ context.Context, ctx *app.RequestContext) {
	if h.KPI == nil {
		writeErrorBody(ctx, consts.StatusNotFound, "not_configured", "kpi provider not configured")
		return
	}
	ctx.JSON(consts.StatusOK, h.KPI.SnapshotAny())
}

func toBattleView(r ports.BattleReport) battleView {
	return battleView{
		ReportID:       r.ID,
		Kind:           r.Kind,
		IdempotencyKey: r.IdempotencyKey,
		AttackerID:     r.AttackerID,
		DefenderID:     r.DefenderID,
		Seed:           r.Seed,
		Draw:           r.Draw,
		Offence:        r.Odds.Offence,
		Defence:        r.Odds.Defence,
		WinProbability: r.Odds.Win,
		Results:        r.Results,
		GameVersion:    r.GameVersion,
		OccurredAt:     r.OccurredAt.Unix(),
		Verified:       replay.Verify(r),
	}
}

func requireGameID(ctx *app.RequestContext) (string, bool) {
	gameID := strings.TrimSpace(ctx.Param("game_id"))
	if gameID == "" {
		writeError(ctx, ErrMissingGameID)
		return "", false
	}
	return gameID, true
}

// idempotencyKey prefers the body field over the header.
func idempotencyKey(ctx *app.RequestContext, fromBody string) string {
	if key := strings.TrimSpace(fromBody); key != "" {
		return key
	}
	return strings.TrimSpace(string(ctx.GetHeader(idempotencyKeyHeader)))
}

func decodeJSON(ctx *app.RequestContext, out any) error {
	body := ctx.Request.Body()
	if len(body) == 0 {
		return nil
	}
	return json.Unmarshal(body, out)
}

func (h Handler) fail(ctx *app.RequestContext, err error) {
	if code := writeError(ctx, err); code == consts.StatusInternalServerError {
		logging.OrNop(h.Logger).Error("request failed",
			zap.String("path", string(ctx.Path())),
			zap.Error(err),
		)
	}
}

func writeError(ctx *app.RequestContext, err error) int {
	httpStatus, code, message := consts.StatusInternalServerError, "internal_error", "internal error"
	switch {
	case errors.Is(err, ErrMissingGameID):
		httpStatus, code = consts.StatusBadRequest, "missing_game_id"
	case errors.Is(err, battle.ErrNoMovesLeft):
		httpStatus, code = consts.StatusUnprocessableEntity, "no_moves_left"
	case errors.Is(err, battle.ErrNotAdjacent):
		httpStatus, code = consts.StatusUnprocessableEntity, "not_adjacent"
	case errors.Is(err, battle.ErrNoDefender):
		httpStatus, code = consts.StatusUnprocessableEntity, "no_defender"
	case errors.Is(err, battle.ErrNotAtWar):
		httpStatus, code = consts.StatusUnprocessableEntity, "not_at_war"
	case errors.Is(err, battle.ErrCannotBombard):
		httpStatus, code = consts.StatusUnprocessableEntity, "cannot_bombard"
	case errors.Is(err, battle.ErrInvalidRequest),
		errors.Is(err, route.ErrInvalidRequest),
		errors.Is(err, replay.ErrInvalidRequest),
		errors.Is(err, setup.ErrInvalidRequest),
		errors.Is(err, status.ErrInvalidRequest),
		errors.Is(err, observe.ErrInvalidRequest),
		errors.Is(err, yamlfile.ErrInvalidScenario),
		errors.Is(err, yamlfile.ErrInvalidScenarioPath):
		httpStatus, code = consts.StatusBadRequest, "bad_request"
	case errors.Is(err, ports.ErrNotFound):
		httpStatus, code = consts.StatusNotFound, "not_found"
	case errors.Is(err, ports.ErrConflict):
		httpStatus, code = consts.StatusConflict, "conflict"
	}
	if httpStatus != consts.StatusInternalServerError {
		message = err.Error()
	}
	writeErrorBody(ctx, httpStatus, code, message)
	return httpStatus
}

func writeErrorBody(ctx *app.RequestContext, status int, code, message string) {
	ctx.JSON(status, map[string]any{
		"error": map[string]string{
			"code":    code,
			"message": message,
		},
	})
}
