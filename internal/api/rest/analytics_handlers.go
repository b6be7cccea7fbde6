package rest

import (
	"errors"
	"net/http"

	"github.com/fortuna/courtside/internal/pbp"
	"github.com/fortuna/courtside/internal/service"
)

// GetGameScore returns the reconstructed score at a game cursor. The
// cursor is either ?clock=M:SS or ?time_remaining=seconds within
// ?period.
func (h *Handler) GetGameScore(w http.ResponseWriter, r *http.Request) {
	gameID, err := pathInt(r, "gameID")
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid game ID", err)
		return
	}

	period := queryInt(r, "period", 4)
	timeRemaining := queryInt(r, "time_remaining", 0)
	if clock := r.URL.Query().Get("clock"); clock != "" {
		sec, err := pbp.ClockToSeconds(clock)
		if err != nil {
			respondError(w, http.StatusBadRequest, "Invalid clock format (use M:SS)", err)
			return
		}
		timeRemaining = sec
	}

	score, err := h.analyticsService.GetScoreAt(r.Context(), gameID, period, timeRemaining)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to reconstruct score", err)
		return
	}

	respondJSON(w, http.StatusOK, score)
}

// GetClutchEvents returns the events inside a game's clutch window
func (h *Handler) GetClutchEvents(w http.ResponseWriter, r *http.Request) {
	gameID, err := pathInt(r, "gameID")
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid game ID", err)
		return
	}

	events, err := h.analyticsService.GetClutchEvents(r.Context(), gameID, clutchFilterFromQuery(r))
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to fetch clutch events", err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"events": events,
		"count":  len(events),
	})
}

// GetGameEvents returns a game's events narrowed by period and clock
// bounds
func (h *Handler) GetGameEvents(w http.ResponseWriter, r *http.Request) {
	gameID, err := pathInt(r, "gameID")
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid game ID", err)
		return
	}

	filter := pbp.TimeFilter{
		Period:           queryIntPtr(r, "period"),
		Periods:          queryIntList(r, "periods"),
		MinTimeRemaining: queryIntPtr(r, "min_time_remaining"),
		MaxTimeRemaining: queryIntPtr(r, "max_time_remaining"),
	}
	if v := queryBoolPtr(r, "exclude_garbage_time"); v != nil {
		filter.ExcludeGarbageTime = *v
	}

	events, err := h.analyticsService.GetEventsByTime(r.Context(), gameID, filter)
	if errors.Is(err, pbp.ErrPeriodConflict) || errors.Is(err, pbp.ErrTimeRange) {
		respondError(w, http.StatusBadRequest, "Invalid time filter", err)
		return
	}
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to filter events", err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"events": events,
		"count":  len(events),
	})
}

// GetSituationalStats returns a make/attempt split for shots matching
// situational attribute tags
func (h *Handler) GetSituationalStats(w http.ResponseWriter, r *http.Request) {
	gameID, err := pathInt(r, "gameID")
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid game ID", err)
		return
	}

	filter := pbp.SituationalFilter{
		FastBreak:    queryBoolPtr(r, "fast_break"),
		SecondChance: queryBoolPtr(r, "second_chance"),
		Contested:    queryBoolPtr(r, "contested"),
		ShotType:     r.URL.Query().Get("shot_type"),
	}
	scope := pbp.ShotScope{
		PlayerID: queryInt(r, "player", 0),
		TeamID:   queryInt(r, "team", 0),
	}

	split, err := h.analyticsService.GetSituationalStats(r.Context(), gameID, filter, scope)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to compute situational stats", err)
		return
	}

	respondJSON(w, http.StatusOK, split)
}

// GetPlayerQuarters returns a player's quarter-by-quarter breakdown for
// one game
func (h *Handler) GetPlayerQuarters(w http.ResponseWriter, r *http.Request) {
	gameID, err := pathInt(r, "gameID")
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid game ID", err)
		return
	}
	playerID, err := pathInt(r, "playerID")
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid player ID", err)
		return
	}

	buckets, err := h.analyticsService.GetPlayerStatsByQuarter(r.Context(), gameID, playerID)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to compute quarter stats", err)
		return
	}

	respondJSON(w, http.StatusOK, buckets)
}

// GetTeamQuarters returns a team's quarter-by-quarter breakdown for one
// game
func (h *Handler) GetTeamQuarters(w http.ResponseWriter, r *http.Request) {
	gameID, err := pathInt(r, "gameID")
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid game ID", err)
		return
	}
	teamID, err := pathInt(r, "teamID")
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid team ID", err)
		return
	}

	buckets, err := h.analyticsService.GetTeamStatsByQuarter(r.Context(), gameID, teamID)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to compute quarter stats", err)
		return
	}

	respondJSON(w, http.StatusOK, buckets)
}

// GetLineupStats returns plus/minus for a specific lineup in one game
func (h *Handler) GetLineupStats(w http.ResponseWriter, r *http.Request) {
	gameID, err := pathInt(r, "gameID")
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid game ID", err)
		return
	}

	playerIDs := queryIntList(r, "players")
	if len(playerIDs) == 0 {
		respondError(w, http.StatusBadRequest, "Missing query parameter 'players'", nil)
		return
	}
	teamID := queryInt(r, "team", 0)
	if teamID == 0 {
		respondError(w, http.StatusBadRequest, "Missing query parameter 'team'", nil)
		return
	}

	stats, err := h.analyticsService.GetLineupStats(r.Context(), gameID, teamID, playerIDs)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to compute lineup stats", err)
		return
	}

	respondJSON(w, http.StatusOK, stats)
}

// GetBestLineups ranks a team's lineup combinations for one game by
// plus/minus
func (h *Handler) GetBestLineups(w http.ResponseWriter, r *http.Request) {
	gameID, err := pathInt(r, "gameID")
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid game ID", err)
		return
	}

	teamID := queryInt(r, "team", 0)
	if teamID == 0 {
		respondError(w, http.StatusBadRequest, "Missing query parameter 'team'", nil)
		return
	}
	size := queryInt(r, "size", 5)
	minMinutes := queryFloat(r, "min_minutes", 0)

	lineups, err := h.analyticsService.GetBestLineups(r.Context(), gameID, teamID, size, minMinutes)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to rank lineups", err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"lineups": lineups,
		"count":   len(lineups),
	})
}

// GetPlayerOnOff returns a player's on/off split for one game
func (h *Handler) GetPlayerOnOff(w http.ResponseWriter, r *http.Request) {
	gameID, err := pathInt(r, "gameID")
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid game ID", err)
		return
	}
	playerID, err := pathInt(r, "playerID")
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid player ID", err)
		return
	}

	stats, err := h.analyticsService.GetPlayerOnOffStats(r.Context(), gameID, playerID, queryInt(r, "team", 0))
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to compute on/off stats", err)
		return
	}

	respondJSON(w, http.StatusOK, stats)
}

// GetSeasonClutchStats returns a clutch summary over a season for a
// team or a player
func (h *Handler) GetSeasonClutchStats(w http.ResponseWriter, r *http.Request) {
	seasonID, err := pathInt(r, "seasonID")
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid season ID", err)
		return
	}

	stats, err := h.analyticsService.GetClutchStatsForSeason(r.Context(), seasonID,
		queryInt(r, "player", 0), queryInt(r, "team", 0), clutchFilterFromQuery(r))
	if errors.Is(err, service.ErrScopeRequired) {
		respondError(w, http.StatusBadRequest, "Season clutch stats require exactly one of 'player' or 'team'", err)
		return
	}
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to compute season clutch stats", err)
		return
	}

	respondJSON(w, http.StatusOK, stats)
}

// GetSeasonQuarterSplits returns quarter-by-quarter scoring over a
// season for a player or a team
func (h *Handler) GetSeasonQuarterSplits(w http.ResponseWriter, r *http.Request) {
	seasonID, err := pathInt(r, "seasonID")
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid season ID", err)
		return
	}

	splits, err := h.analyticsService.GetQuarterSplitsForSeason(r.Context(), seasonID,
		queryInt(r, "player", 0), queryInt(r, "team", 0))
	if errors.Is(err, service.ErrScopeRequired) {
		respondError(w, http.StatusBadRequest, "Quarter splits require exactly one of 'player' or 'team'", err)
		return
	}
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to compute quarter splits", err)
		return
	}

	respondJSON(w, http.StatusOK, splits)
}

// GetSeasonLineupStats returns a lineup's accumulated plus/minus over a
// season
func (h *Handler) GetSeasonLineupStats(w http.ResponseWriter, r *http.Request) {
	seasonID, err := pathInt(r, "seasonID")
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid season ID", err)
		return
	}

	playerIDs := queryIntList(r, "players")
	if len(playerIDs) == 0 {
		respondError(w, http.StatusBadRequest, "Missing query parameter 'players'", nil)
		return
	}
	teamID := queryInt(r, "team", 0)
	if teamID == 0 {
		respondError(w, http.StatusBadRequest, "Missing query parameter 'team'", nil)
		return
	}

	stats, err := h.analyticsService.GetLineupStatsForSeason(r.Context(), seasonID, teamID, playerIDs)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to compute season lineup stats", err)
		return
	}

	respondJSON(w, http.StatusOK, stats)
}

// GetSeasonOnOff returns a player's accumulated on/off split over a
// season
func (h *Handler) GetSeasonOnOff(w http.ResponseWriter, r *http.Request) {
	seasonID, err := pathInt(r, "seasonID")
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid season ID", err)
		return
	}

	playerID := queryInt(r, "player", 0)
	if playerID == 0 {
		respondError(w, http.StatusBadRequest, "Missing query parameter 'player'", nil)
		return
	}

	stats, err := h.analyticsService.GetPlayerOnOffForSeason(r.Context(), seasonID, playerID, queryInt(r, "team", 0))
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to compute season on/off stats", err)
		return
	}

	respondJSON(w, http.StatusOK, stats)
}

// GetPerformanceTrend classifies recent form in one stat for a player
// or a team over a season. ?stat defaults to points.
func (h *Handler) GetPerformanceTrend(w http.ResponseWriter, r *http.Request) {
	seasonID, err := pathInt(r, "seasonID")
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid season ID", err)
		return
	}

	trend, err := h.analyticsService.GetPerformanceTrend(r.Context(), seasonID,
		queryInt(r, "player", 0), queryInt(r, "team", 0),
		r.URL.Query().Get("stat"), queryInt(r, "games", 0))
	if errors.Is(err, pbp.ErrNoTrendScope) {
		respondError(w, http.StatusBadRequest, "Trend requires exactly one of 'player' or 'team'", err)
		return
	}
	if errors.Is(err, service.ErrUnknownStat) {
		respondError(w, http.StatusBadRequest, "Unknown stat name", err)
		return
	}
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to compute performance trend", err)
		return
	}

	respondJSON(w, http.StatusOK, trend)
}

// clutchFilterFromQuery builds a clutch filter from query parameters,
// starting from the standard definition.
func clutchFilterFromQuery(r *http.Request) pbp.ClutchFilter {
	f := pbp.DefaultClutchFilter()
	f.TimeRemainingSeconds = queryInt(r, "window", f.TimeRemainingSeconds)
	f.ScoreMargin = queryInt(r, "margin", f.ScoreMargin)
	f.MinPeriod = queryInt(r, "min_period", f.MinPeriod)
	if v := queryBoolPtr(r, "include_overtime"); v != nil {
		f.IncludeOvertime = *v
	}
	return f
}
