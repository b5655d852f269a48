package setting

import (
	"context"
	"fmt"
	"strings"

	"github.com/wagetrack/labour-backend-go/internal/domain/setting"
	"github.com/wagetrack/labour-backend-go/internal/pkg/validator"
)

type SettingServiceImpl struct {
	setting.Repository
}

func NewSettingService(settingRepo setting.Repository) *SettingServiceImpl {
	return &SettingServiceImpl{Repository: settingRepo}
}

func (s *SettingServiceImpl) List(ctx context.Context) ([]setting.Response, error) {
	settings, err := s.Repository.List(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]setting.Response, 0, len(settings))
	for _, row := range settings {
		out = append(out, setting.ToResponse(row))
	}
	return out, nil
}

// Update upserts the submitted keys. Settings apply forward only: stored pay
// columns are never recomputed when a rate changes. Unknown keys are rejected
// as a whole so a typo cannot silently create a dead row.
func (s *SettingServiceImpl) Update(ctx context.Context, req setting.UpdateRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	known := setting.KnownKeys()
	for key := range req.Settings {
		if !validator.IsInSlice(key, known) {
			return fmt.Errorf("%w: %s", setting.ErrUnknownKey, key)
		}
	}

	for key, value := range req.Settings {
		if err := s.Repository.Upsert(ctx, key, strings.TrimSpace(value)); err != nil {
			return err
		}
	}

	return nil
}
