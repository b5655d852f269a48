package setting

import (
	"context"
	"errors"
	"time"

	"github.com/wagetrack/labour-backend-go/internal/pkg/validator"
)

var ErrUnknownKey = errors.New("unknown setting key")

// Setting is one row of the flat string key-value configuration store. Values
// stay strings end to end; consumers parse what they need and fall back to
// their own defaults on bad input.
type Setting struct {
	Key         string
	Value       string
	Description *string
	UpdatedAt   time.Time
}

// Keys the system reads. Updates are restricted to this set so a typo in an
// admin request cannot create a dead row.
const (
	KeyRegularHours       = "regular_hours"
	KeyHelperOTRate       = "helper_ot_rate"
	KeyNonHelperOTRate    = "non_helper_ot_rate"
	KeySundayOTMultiplier = "sunday_ot_multiplier"
	KeyCutoffHour         = "cutoff_hour"
	KeyCutoffMinute       = "cutoff_minute"
	KeyDefaultStartTime   = "default_start_time"
	KeyDefaultEndTime     = "default_end_time"
)

func KnownKeys() []string {
	return []string{
		KeyRegularHours,
		KeyHelperOTRate,
		KeyNonHelperOTRate,
		KeySundayOTMultiplier,
		KeyCutoffHour,
		KeyCutoffMinute,
		KeyDefaultStartTime,
		KeyDefaultEndTime,
	}
}

type UpdateRequest struct {
	Settings map[string]string `json:"settings"`
}

func (r *UpdateRequest) Validate() error {
	if len(r.Settings) == 0 {
		return validator.ValidationErrors{{Field: "settings", Message: "at least one setting is required"}}
	}
	return nil
}

type Response struct {
	Key         string  `json:"key"`
	Value       string  `json:"value"`
	Description *string `json:"description,omitempty"`
	UpdatedAt   string  `json:"updated_at"`
}

func ToResponse(s Setting) Response {
	return Response{
		Key:         s.Key,
		Value:       s.Value,
		Description: s.Description,
		UpdatedAt:   s.UpdatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}

type Service interface {
	List(ctx context.Context) ([]Response, error)
	Update(ctx context.Context, req UpdateRequest) error
}

type Repository interface {
	List(ctx context.Context) ([]Setting, error)
	// GetAll returns the store as a flat map for config consumers.
	GetAll(ctx context.Context) (map[string]string, error)
	Upsert(ctx context.Context, key, value string) error
}
