package master

import (
	"context"

	"github.com/wagetrack/labour-backend-go/internal/domain/incentive"
	"github.com/wagetrack/labour-backend-go/internal/domain/master/client"
	"github.com/wagetrack/labour-backend-go/internal/domain/master/holiday"
	"github.com/wagetrack/labour-backend-go/internal/domain/master/site"
)

type Service interface {
	CreateClient(ctx context.Context, req client.UpsertRequest) (client.Response, error)
	ListClients(ctx context.Context) ([]client.Response, error)
	UpdateClient(ctx context.Context, id string, req client.UpsertRequest) (client.Response, error)
	DeleteClient(ctx context.Context, id string) error

	CreateSite(ctx context.Context, req site.UpsertRequest) (site.Response, error)
	ListSites(ctx context.Context, clientID *string) ([]site.Response, error)
	UpdateSite(ctx context.Context, id string, req site.UpsertRequest) (site.Response, error)
	DeleteSite(ctx context.Context, id string) error

	CreateHoliday(ctx context.Context, req holiday.CreateRequest) (holiday.Response, error)
	ListHolidays(ctx context.Context) ([]holiday.Response, error)
	DeleteHoliday(ctx context.Context, id string) error

	CreateIncentiveRule(ctx context.Context, req incentive.UpsertRequest) (incentive.Response, error)
	ListIncentiveRules(ctx context.Context) ([]incentive.Response, error)
	UpdateIncentiveRule(ctx context.Context, id string, req incentive.UpsertRequest) (incentive.Response, error)
	DeleteIncentiveRule(ctx context.Context, id string) error
}
