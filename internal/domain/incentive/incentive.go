package incentive

import (
	"context"
	"errors"
	"time"

	"github.com/wagetrack/labour-backend-go/internal/pkg/validator"
)

var ErrRuleNotFound = errors.New("incentive rule not found")

type RuleType string

const (
	// RuleSundayCount pays when a labour works at least Threshold Sundays for
	// the client in the month.
	RuleSundayCount RuleType = "sunday_count"
	// RuleDaysWorked pays when total days for the client reach Threshold.
	RuleDaysWorked RuleType = "days_worked"
	// RuleFixed pays unconditionally to everyone who worked for the client.
	RuleFixed RuleType = "fixed"
)

func validRuleType(t string) bool {
	switch RuleType(t) {
	case RuleSundayCount, RuleDaysWorked, RuleFixed:
		return true
	}
	return false
}

type Rule struct {
	ID            string
	ClientID      string
	Name          string
	Description   *string
	RuleType      RuleType
	Threshold     int
	Amount        float64
	PerOccurrence bool
	Active        bool
	CreatedAt     time.Time
	UpdatedAt     time.Time

	ClientName *string
}

type UpsertRequest struct {
	ClientID      string  `json:"client_id"`
	Name          string  `json:"name"`
	Description   *string `json:"description"`
	RuleType      string  `json:"rule_type"`
	Threshold     int     `json:"threshold"`
	Amount        float64 `json:"amount"`
	PerOccurrence bool    `json:"per_occurrence"`
	Active        *bool   `json:"active"`
}

func (r *UpsertRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ClientID) {
		errs = append(errs, validator.ValidationError{Field: "client_id", Message: "client is required"})
	}
	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "name is required"})
	}
	if !validRuleType(r.RuleType) {
		errs = append(errs, validator.ValidationError{Field: "rule_type", Message: "rule type must be sunday_count, days_worked or fixed"})
	}
	if RuleType(r.RuleType) != RuleFixed && r.Threshold < 1 {
		errs = append(errs, validator.ValidationError{Field: "threshold", Message: "threshold must be at least 1"})
	}
	if r.Amount <= 0 {
		errs = append(errs, validator.ValidationError{Field: "amount", Message: "amount must be greater than zero"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type Response struct {
	ID            string  `json:"id"`
	ClientID      string  `json:"client_id"`
	ClientName    *string `json:"client_name,omitempty"`
	Name          string  `json:"name"`
	Description   *string `json:"description,omitempty"`
	RuleType      string  `json:"rule_type"`
	Threshold     int     `json:"threshold"`
	Amount        float64 `json:"amount"`
	PerOccurrence bool    `json:"per_occurrence"`
	Active        bool    `json:"active"`
}

func ToResponse(r Rule) Response {
	return Response{
		ID:            r.ID,
		ClientID:      r.ClientID,
		ClientName:    r.ClientName,
		Name:          r.Name,
		Description:   r.Description,
		RuleType:      string(r.RuleType),
		Threshold:     r.Threshold,
		Amount:        r.Amount,
		PerOccurrence: r.PerOccurrence,
		Active:        r.Active,
	}
}

func ToResponses(rules []Rule) []Response {
	out := make([]Response, 0, len(rules))
	for _, r := range rules {
		out = append(out, ToResponse(r))
	}
	return out
}

type Repository interface {
	Create(ctx context.Context, r Rule) (Rule, error)
	GetByID(ctx context.Context, id string) (Rule, error)
	List(ctx context.Context) ([]Rule, error)
	ListActive(ctx context.Context) ([]Rule, error)
	Update(ctx context.Context, r Rule) (Rule, error)
	Delete(ctx context.Context, id string) error
}

// Evaluate applies a rule to one labour's month with a client: days worked
// and Sundays worked for that client. The returned amount is zero when the
// rule does not fire.
func Evaluate(r Rule, daysWorked, sundaysWorked int) float64 {
	if !r.Active || daysWorked == 0 {
		return 0
	}

	switch r.RuleType {
	case RuleFixed:
		return r.Amount
	case RuleDaysWorked:
		if daysWorked < r.Threshold {
			return 0
		}
		if r.PerOccurrence {
			return r.Amount * float64(daysWorked/r.Threshold)
		}
		return r.Amount
	case RuleSundayCount:
		if sundaysWorked < r.Threshold {
			return 0
		}
		if r.PerOccurrence {
			return r.Amount * float64(sundaysWorked/r.Threshold)
		}
		return r.Amount
	}
	return 0
}
