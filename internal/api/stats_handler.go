package api

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"alcyxob/fitstack/internal/analytics"
	"alcyxob/fitstack/internal/domain"
	"alcyxob/fitstack/internal/service"

	"github.com/gin-gonic/gin"
)

// lockedBadgeIcon is what the client renders for a badge that has not been
// unlocked yet. Icon ids map to known assets; the engine carries each
// rule's own icon and the swap happens here, at the presentation edge.
const lockedBadgeIcon = "badge_locked"

// StatsHandler exposes the analytics engine over HTTP.
type StatsHandler struct {
	statsService service.StatsService
}

// NewStatsHandler creates a new StatsHandler.
func NewStatsHandler(statsService service.StatsService) *StatsHandler {
	return &StatsHandler{statsService: statsService}
}

// BadgeResponse is a badge with its icon resolved for display.
type BadgeResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	IsUnlocked  bool   `json:"isUnlocked"`
}

type BadgesResponse struct {
	Badges        []BadgeResponse `json:"badges"`
	UnlockedCount int             `json:"unlockedCount"`
	TotalCount    int             `json:"totalCount"`
}

// parseDateQuery reads an optional yyyy.MM.dd query parameter. A present
// but malformed value is a client error, reported through ok=false.
func parseDateQuery(c *gin.Context, name string) (*time.Time, bool) {
	raw := c.Query(name)
	if raw == "" {
		return nil, true
	}
	d, ok := analytics.ParseDate(raw)
	if !ok {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("invalid %s date, want yyyy.MM.dd", name))
		return nil, false
	}
	return &d, true
}

// GetSummary returns the aggregate report for the user's logs, optionally
// restricted via ?from=&to= (both required for a range; either alone is
// rejected since the engine treats a half-open range as empty).
func (h *StatsHandler) GetSummary(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to get user ID from token")
		return
	}

	from, ok := parseDateQuery(c, "from")
	if !ok {
		return
	}
	to, ok := parseDateQuery(c, "to")
	if !ok {
		return
	}
	if (from == nil) != (to == nil) {
		abortWithError(c, http.StatusBadRequest, "from and to must be given together")
		return
	}

	summary, err := h.statsService.Summary(c.Request.Context(), userID, from, to)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to compute summary")
		return
	}
	c.JSON(http.StatusOK, summary)
}

// GetDailyTotals returns per-day set totals plus the trend narrative.
func (h *StatsHandler) GetDailyTotals(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to get user ID from token")
		return
	}

	from, ok := parseDateQuery(c, "from")
	if !ok {
		return
	}
	to, ok := parseDateQuery(c, "to")
	if !ok {
		return
	}
	if (from == nil) != (to == nil) {
		abortWithError(c, http.StatusBadRequest, "from and to must be given together")
		return
	}

	trend, err := h.statsService.DailyTotals(c.Request.Context(), userID, from, to)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to compute daily totals")
		return
	}
	c.JSON(http.StatusOK, trend)
}

// GetComparison resolves the record closest to ?monthsAgo= months back.
// 404 means no record resolved and the comparison view should be hidden.
func (h *StatsHandler) GetComparison(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to get user ID from token")
		return
	}

	monthsAgo, err := strconv.Atoi(c.DefaultQuery("monthsAgo", "1"))
	if err != nil || monthsAgo < 0 {
		abortWithError(c, http.StatusBadRequest, "monthsAgo must be a non-negative integer")
		return
	}

	cmp, err := h.statsService.Comparison(c.Request.Context(), userID, monthsAgo)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to compute comparison")
		return
	}
	if cmp == nil {
		abortWithError(c, http.StatusNotFound, "no record found to compare against")
		return
	}
	c.JSON(http.StatusOK, cmp)
}

// GetBadges returns every badge with its unlock state and display icon.
func (h *StatsHandler) GetBadges(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to get user ID from token")
		return
	}

	badges, err := h.statsService.Badges(c.Request.Context(), userID)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to compute badges")
		return
	}

	resp := BadgesResponse{Badges: make([]BadgeResponse, 0, len(badges))}
	for _, b := range badges {
		resp.Badges = append(resp.Badges, mapBadgeToResponse(b))
		if b.IsUnlocked {
			resp.UnlockedCount++
		}
	}
	resp.TotalCount = len(badges)
	c.JSON(http.StatusOK, resp)
}

// GetCalendar projects the user's recorded dates onto ?year=&month=.
// Missing parameters default to the current month.
func (h *StatsHandler) GetCalendar(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to get user ID from token")
		return
	}

	now := time.Now()
	year, err := strconv.Atoi(c.DefaultQuery("year", strconv.Itoa(now.Year())))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "year must be an integer")
		return
	}
	month, err := strconv.Atoi(c.DefaultQuery("month", strconv.Itoa(int(now.Month()))))
	if err != nil || month < 1 || month > 12 {
		abortWithError(c, http.StatusBadRequest, "month must be 1-12")
		return
	}

	grid, err := h.statsService.Calendar(c.Request.Context(), userID, year, time.Month(month))
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to build calendar")
		return
	}
	c.JSON(http.StatusOK, grid)
}

func mapBadgeToResponse(b domain.Badge) BadgeResponse {
	icon := b.Icon
	if !b.IsUnlocked {
		icon = lockedBadgeIcon
	}
	return BadgeResponse{
		ID:          b.ID,
		Name:        b.Name,
		Description: b.Description,
		Icon:        icon,
		IsUnlocked:  b.IsUnlocked,
	}
}
