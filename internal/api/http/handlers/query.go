package handlers

import (
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/olimpo/referrals/internal/domain"
	apperrors "github.com/olimpo/referrals/pkg/util"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// queryValue returns the trimmed query value, or "" for the "all" sentinel.
func queryValue(c *fiber.Ctx, key string) string {
	val := strings.TrimSpace(c.Query(key))
	if strings.EqualFold(val, "all") {
		return ""
	}
	return val
}

func parseClientType(c *fiber.Ctx, key string) (*domain.ClientType, error) {
	val := queryValue(c, key)
	if val == "" {
		return nil, nil
	}
	clientType := domain.ClientType(val)
	if !clientType.Valid() {
		return nil, apperrors.NewValidationError("invalid client type", map[string]any{key: val})
	}
	return &clientType, nil
}

func parseProgram(c *fiber.Ctx, key string) (*domain.Program, error) {
	val := queryValue(c, key)
	if val == "" {
		return nil, nil
	}
	program := domain.Program(val)
	if !program.Valid() {
		return nil, apperrors.NewValidationError("invalid program", map[string]any{key: val})
	}
	return &program, nil
}

func parseReferralStatuses(c *fiber.Ctx, key string) ([]domain.ReferralStatus, error) {
	val := queryValue(c, key)
	if val == "" {
		return nil, nil
	}
	var statuses []domain.ReferralStatus
	for _, part := range strings.Split(val, ",") {
		status := domain.ReferralStatus(strings.TrimSpace(part))
		if status.Rank() < 0 {
			return nil, apperrors.NewValidationError("invalid status", map[string]any{key: part})
		}
		statuses = append(statuses, status)
	}
	return statuses, nil
}

func parseCommissionStatus(c *fiber.Ctx, key string) (*domain.CommissionStatus, error) {
	val := queryValue(c, key)
	if val == "" {
		return nil, nil
	}
	status := domain.CommissionStatus(val)
	if status != domain.CommissionPaid && status != domain.CommissionPending {
		return nil, apperrors.NewValidationError("invalid commission status", map[string]any{key: val})
	}
	return &status, nil
}

// parseDate accepts RFC3339 or a bare YYYY-MM-DD in UTC. With endOfDay a bare
// date covers the whole day.
func parseDate(c *fiber.Ctx, key string, endOfDay bool) (*time.Time, error) {
	val := queryValue(c, key)
	if val == "" {
		return nil, nil
	}
	if t, err := time.Parse(time.RFC3339, val); err == nil {
		t = t.UTC()
		return &t, nil
	}
	t, err := time.ParseInLocation(time.DateOnly, val, time.UTC)
	if err != nil {
		return nil, apperrors.NewValidationError("invalid date, expected RFC3339 or YYYY-MM-DD", map[string]any{key: val})
	}
	if endOfDay {
		t = t.AddDate(0, 0, 1).Add(-time.Nanosecond)
	}
	return &t, nil
}

func parseIntQuery(c *fiber.Ctx, key string, defaultVal int) int {
	val := c.Query(key)
	if val == "" {
		return defaultVal
	}
	parsed, err := strconv.Atoi(val)
	if err != nil || parsed <= 0 {
		return defaultVal
	}
	return parsed
}

// paginate slices items by the page and page_size query params.
func paginate[T any](c *fiber.Ctx, items []T) ([]T, int, int) {
	page := parseIntQuery(c, "page", 1)
	pageSize := min(parseIntQuery(c, "page_size", defaultPageSize), maxPageSize)
	// compare before multiplying so huge pages cannot overflow
	if page-1 >= (len(items)+pageSize-1)/pageSize {
		return []T{}, page, pageSize
	}
	start := (page - 1) * pageSize
	end := min(start+pageSize, len(items))
	return items[start:end], page, pageSize
}
