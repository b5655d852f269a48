package master

import (
	"context"

	"github.com/wagetrack/labour-backend-go/internal/domain/incentive"
	"github.com/wagetrack/labour-backend-go/internal/domain/master/client"
	"github.com/wagetrack/labour-backend-go/internal/domain/master/holiday"
	"github.com/wagetrack/labour-backend-go/internal/domain/master/site"
)

// MasterServiceImpl manages the reference data attendance records point at:
// clients, their sites, public holidays and per-client incentive rules.
type MasterServiceImpl struct {
	clientRepo    client.Repository
	siteRepo      site.Repository
	holidayRepo   holiday.Repository
	incentiveRepo incentive.Repository
}

func NewMasterService(
	clientRepo client.Repository,
	siteRepo site.Repository,
	holidayRepo holiday.Repository,
	incentiveRepo incentive.Repository,
) *MasterServiceImpl {
	return &MasterServiceImpl{
		clientRepo:    clientRepo,
		siteRepo:      siteRepo,
		holidayRepo:   holidayRepo,
		incentiveRepo: incentiveRepo,
	}
}

func (s *MasterServiceImpl) CreateClient(ctx context.Context, req client.UpsertRequest) (client.Response, error) {
	if err := req.Validate(); err != nil {
		return client.Response{}, err
	}

	if existing, err := s.clientRepo.GetByName(ctx, req.Name); err != nil {
		return client.Response{}, err
	} else if existing != nil {
		return client.Response{}, client.ErrClientNameExists
	}

	created, err := s.clientRepo.Create(ctx, client.Client{
		Name:    req.Name,
		Address: req.Address,
		Status:  "active",
	})
	if err != nil {
		return client.Response{}, err
	}

	return client.ToResponse(created), nil
}

func (s *MasterServiceImpl) ListClients(ctx context.Context) ([]client.Response, error) {
	clients, err := s.clientRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	return client.ToResponses(clients), nil
}

func (s *MasterServiceImpl) UpdateClient(ctx context.Context, id string, req client.UpsertRequest) (client.Response, error) {
	if err := req.Validate(); err != nil {
		return client.Response{}, err
	}

	c, err := s.clientRepo.GetByID(ctx, id)
	if err != nil {
		return client.Response{}, err
	}

	c.Name = req.Name
	if req.Address != nil {
		c.Address = req.Address
	}

	updated, err := s.clientRepo.Update(ctx, c)
	if err != nil {
		return client.Response{}, err
	}

	return client.ToResponse(updated), nil
}

// DeleteClient refuses while attendance still references the client.
func (s *MasterServiceImpl) DeleteClient(ctx context.Context, id string) error {
	if _, err := s.clientRepo.GetByID(ctx, id); err != nil {
		return err
	}

	has, err := s.clientRepo.HasAttendance(ctx, id)
	if err != nil {
		return err
	}
	if has {
		return client.ErrClientHasAttendance
	}

	return s.clientRepo.Delete(ctx, id)
}

func (s *MasterServiceImpl) CreateSite(ctx context.Context, req site.UpsertRequest) (site.Response, error) {
	if err := req.Validate(); err != nil {
		return site.Response{}, err
	}

	// The client must exist before a site can hang off it.
	if _, err := s.clientRepo.GetByID(ctx, req.ClientID); err != nil {
		return site.Response{}, err
	}

	created, err := s.siteRepo.Create(ctx, site.Site{
		ClientID: req.ClientID,
		Name:     req.Name,
		Address:  req.Address,
		Status:   "active",
	})
	if err != nil {
		return site.Response{}, err
	}

	return site.ToResponse(created), nil
}

func (s *MasterServiceImpl) ListSites(ctx context.Context, clientID *string) ([]site.Response, error) {
	var (
		sites []site.Site
		err   error
	)
	if clientID != nil {
		sites, err = s.siteRepo.ListByClient(ctx, *clientID)
	} else {
		sites, err = s.siteRepo.List(ctx)
	}
	if err != nil {
		return nil, err
	}
	return site.ToResponses(sites), nil
}

func (s *MasterServiceImpl) UpdateSite(ctx context.Context, id string, req site.UpsertRequest) (site.Response, error) {
	if err := req.Validate(); err != nil {
		return site.Response{}, err
	}

	st, err := s.siteRepo.GetByID(ctx, id)
	if err != nil {
		return site.Response{}, err
	}

	if _, err := s.clientRepo.GetByID(ctx, req.ClientID); err != nil {
		return site.Response{}, err
	}

	st.ClientID = req.ClientID
	st.Name = req.Name
	if req.Address != nil {
		st.Address = req.Address
	}

	updated, err := s.siteRepo.Update(ctx, st)
	if err != nil {
		return site.Response{}, err
	}

	return site.ToResponse(updated), nil
}

// DeleteSite refuses while attendance still references the site.
func (s *MasterServiceImpl) DeleteSite(ctx context.Context, id string) error {
	if _, err := s.siteRepo.GetByID(ctx, id); err != nil {
		return err
	}

	has, err := s.siteRepo.HasAttendance(ctx, id)
	if err != nil {
		return err
	}
	if has {
		return site.ErrSiteHasAttendance
	}

	return s.siteRepo.Delete(ctx, id)
}

// CreateHoliday adds a paid holiday. Existing attendance on that date keeps
// its stored pay; only records written afterwards see the holiday.
func (s *MasterServiceImpl) CreateHoliday(ctx context.Context, req holiday.CreateRequest) (holiday.Response, error) {
	if err := req.Validate(); err != nil {
		return holiday.Response{}, err
	}

	if existing, err := s.holidayRepo.GetByDate(ctx, req.Date); err != nil {
		return holiday.Response{}, err
	} else if existing != nil {
		return holiday.Response{}, holiday.ErrHolidayExists
	}

	created, err := s.holidayRepo.Create(ctx, holiday.Holiday{Date: req.Date, Name: req.Name})
	if err != nil {
		return holiday.Response{}, err
	}

	return holiday.ToResponse(created), nil
}

func (s *MasterServiceImpl) ListHolidays(ctx context.Context) ([]holiday.Response, error) {
	holidays, err := s.holidayRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	return holiday.ToResponses(holidays), nil
}

func (s *MasterServiceImpl) DeleteHoliday(ctx context.Context, id string) error {
	return s.holidayRepo.Delete(ctx, id)
}

func (s *MasterServiceImpl) CreateIncentiveRule(ctx context.Context, req incentive.UpsertRequest) (incentive.Response, error) {
	if err := req.Validate(); err != nil {
		return incentive.Response{}, err
	}

	if _, err := s.clientRepo.GetByID(ctx, req.ClientID); err != nil {
		return incentive.Response{}, err
	}

	active := true
	if req.Active != nil {
		active = *req.Active
	}

	created, err := s.incentiveRepo.Create(ctx, incentive.Rule{
		ClientID:      req.ClientID,
		Name:          req.Name,
		Description:   req.Description,
		RuleType:      incentive.RuleType(req.RuleType),
		Threshold:     req.Threshold,
		Amount:        req.Amount,
		PerOccurrence: req.PerOccurrence,
		Active:        active,
	})
	if err != nil {
		return incentive.Response{}, err
	}

	return incentive.ToResponse(created), nil
}

func (s *MasterServiceImpl) ListIncentiveRules(ctx context.Context) ([]incentive.Response, error) {
	rules, err := s.incentiveRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	return incentive.ToResponses(rules), nil
}

func (s *MasterServiceImpl) UpdateIncentiveRule(ctx context.Context, id string, req incentive.UpsertRequest) (incentive.Response, error) {
	if err := req.Validate(); err != nil {
		return incentive.Response{}, err
	}

	rule, err := s.incentiveRepo.GetByID(ctx, id)
	if err != nil {
		return incentive.Response{}, err
	}

	rule.ClientID = req.ClientID
	rule.Name = req.Name
	rule.Description = req.Description
	rule.RuleType = incentive.RuleType(req.RuleType)
	rule.Threshold = req.Threshold
	rule.Amount = req.Amount
	rule.PerOccurrence = req.PerOccurrence
	if req.Active != nil {
		rule.Active = *req.Active
	}

	updated, err := s.incentiveRepo.Update(ctx, rule)
	if err != nil {
		return incentive.Response{}, err
	}

	return incentive.ToResponse(updated), nil
}

func (s *MasterServiceImpl) DeleteIncentiveRule(ctx context.Context, id string) error {
	return s.incentiveRepo.Delete(ctx, id)
}
