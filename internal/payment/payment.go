// Package payment implements the wage calculation used for every attendance
// record. It is the single implementation shared by the labour check-in path,
// the admin/manager edit paths, mark-present and the live estimate endpoint.
//
// The formulas mirror the payroll Excel sheet the business runs on:
//
//	Standard Rate = Monthly Salary / Days in Month / Regular Hours
//	OT Rate       = fixed per hour, by designation (Helper vs everyone else)
//	Sunday Rate   = OT Rate x Sunday multiplier
//
// Regular day: hours up to the regular-hours threshold at the standard rate,
// the remainder at the OT rate. Sunday/holiday: the full regular-hours pay is
// guaranteed regardless of hours actually worked, plus every worked hour at
// the Sunday rate.
package payment

import (
	"errors"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidTimeFormat = errors.New("invalid time format, expected HH:MM")
	ErrInvalidDate       = errors.New("invalid date, expected YYYY-MM-DD")
)

// Defaults applied when a config key is missing or not parseable as a number.
const (
	DefaultRegularHours       = 10
	DefaultHelperOTRate       = 3
	DefaultNonHelperOTRate    = 4
	DefaultSundayOTMultiplier = 1.5
)

const minutesPerDay = 24 * 60

// Config holds the resolved numeric rate configuration.
type Config struct {
	RegularHours       float64
	HelperOTRate       float64
	NonHelperOTRate    float64
	SundayOTMultiplier float64
}

func DefaultConfig() Config {
	return Config{
		RegularHours:       DefaultRegularHours,
		HelperOTRate:       DefaultHelperOTRate,
		NonHelperOTRate:    DefaultNonHelperOTRate,
		SundayOTMultiplier: DefaultSundayOTMultiplier,
	}
}

// ConfigFromSettings resolves a Config from the flat string key-value config
// store. Settings are free-text admin input, so each value is parsed
// defensively: missing, empty or unparseable values fall back to the default
// rather than poisoning the calculation with NaN.
func ConfigFromSettings(settings map[string]string) Config {
	return Config{
		RegularHours:       floatSetting(settings, "regular_hours", DefaultRegularHours),
		HelperOTRate:       floatSetting(settings, "helper_ot_rate", DefaultHelperOTRate),
		NonHelperOTRate:    floatSetting(settings, "non_helper_ot_rate", DefaultNonHelperOTRate),
		SundayOTMultiplier: floatSetting(settings, "sunday_ot_multiplier", DefaultSundayOTMultiplier),
	}
}

func floatSetting(settings map[string]string, key string, fallback float64) float64 {
	raw, ok := settings[key]
	if !ok {
		return fallback
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return fallback
	}
	return v
}

// Result is the pay breakdown persisted with each attendance record.
// Monetary and hour fields carry at most two decimal places and
// TotalPay == RegularPay + OTPay holds after rounding.
type Result struct {
	HoursWorked float64 `json:"hours_worked"`
	RegularPay  float64 `json:"regular_pay"`
	OTPay       float64 `json:"ot_pay"`
	TotalPay    float64 `json:"total_pay"`
	IsSunday    bool    `json:"is_sunday"`
	IsHoliday   bool    `json:"is_holiday"`
}

// ParseTimeToMinutes converts a 24h "HH:MM" string to minutes since midnight.
func ParseTimeToMinutes(s string) (int, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return 0, ErrInvalidTimeFormat
	}
	h, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, ErrInvalidTimeFormat
	}
	m, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return 0, ErrInvalidTimeFormat
	}
	return h*60 + m, nil
}

// ShiftMinutes returns the worked minutes between two "HH:MM" times, treating
// end <= start as a night shift that crosses midnight. Equal start and end
// therefore computes a full 24h; callers that consider that invalid must
// reject it before persisting.
func ShiftMinutes(startTime, endTime string) (int, error) {
	start, err := ParseTimeToMinutes(startTime)
	if err != nil {
		return 0, err
	}
	end, err := ParseTimeToMinutes(endTime)
	if err != nil {
		return 0, err
	}
	if end <= start {
		end += minutesPerDay
	}
	return end - start, nil
}

// IsHelper reports whether a designation gets the Helper OT rate. Matching is
// case-insensitive and whitespace-tolerant; anything else, including an empty
// designation, is non-Helper.
func IsHelper(designation string) bool {
	return strings.EqualFold(strings.TrimSpace(designation), "helper")
}

// Calculate computes the pay breakdown for one worked day.
//
// monthlyWage is the labour's monthly salary, workDate the UAE-calendar date
// in YYYY-MM-DD form and holidays the configured holiday dates in the same
// form (compared as strings to avoid timezone shifts). If the wage is zero or
// any of the time/date inputs is empty the zero Result is returned without
// error: the front end uses that short-circuit to render "no estimate yet"
// while a form is half filled. Present but malformed times or dates are an
// error; this function never emits NaN.
func Calculate(monthlyWage float64, startTime, endTime, workDate string, holidays []string, cfg Config, designation string) (Result, error) {
	if monthlyWage == 0 || startTime == "" || endTime == "" || workDate == "" {
		return Result{}, nil
	}

	workedMinutes, err := ShiftMinutes(startTime, endTime)
	if err != nil {
		return Result{}, err
	}
	hoursWorked := float64(workedMinutes) / 60

	year, month, day, err := parseDateParts(workDate)
	if err != nil {
		return Result{}, err
	}

	// Day 0 of the next month is the last day of this one; leap-year aware.
	daysInMonth := time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
	standardRate := monthlyWage / float64(daysInMonth) / cfg.RegularHours

	overtimeRate := cfg.NonHelperOTRate
	if IsHelper(designation) {
		overtimeRate = cfg.HelperOTRate
	}
	sundayHolidayRate := overtimeRate * cfg.SundayOTMultiplier

	// Weekday from the date components directly, never from a parsed
	// timezone-aware instant that could shift the calendar day.
	isSunday := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC).Weekday() == time.Sunday
	isHoliday := false
	for _, h := range holidays {
		if h == workDate {
			isHoliday = true
			break
		}
	}

	var regularPay, otPay float64
	if isSunday || isHoliday {
		// Guaranteed full regular-hours pay for showing up, plus every
		// worked hour at the premium rate.
		regularPay = cfg.RegularHours * standardRate
		otPay = hoursWorked * sundayHolidayRate
	} else if hoursWorked <= cfg.RegularHours {
		regularPay = hoursWorked * standardRate
	} else {
		regularPay = cfg.RegularHours * standardRate
		otPay = (hoursWorked - cfg.RegularHours) * overtimeRate
	}

	// Round each component independently, then derive the total from the
	// rounded parts so the stored fields always reconcile to the cent.
	roundedRegular := round2(regularPay)
	roundedOT := round2(otPay)
	total, _ := decimal.NewFromFloat(roundedRegular).Add(decimal.NewFromFloat(roundedOT)).Round(2).Float64()

	return Result{
		HoursWorked: round2(hoursWorked),
		RegularPay:  roundedRegular,
		OTPay:       roundedOT,
		TotalPay:    total,
		IsSunday:    isSunday,
		IsHoliday:   isHoliday,
	}, nil
}

// round2 rounds half away from zero at the second decimal place.
func round2(v float64) float64 {
	f, _ := decimal.NewFromFloat(v).Round(2).Float64()
	return f
}

func parseDateParts(date string) (year, month, day int, err error) {
	parts := strings.Split(date, "-")
	if len(parts) != 3 {
		return 0, 0, 0, ErrInvalidDate
	}
	year, err = strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, 0, ErrInvalidDate
	}
	month, err = strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, 0, ErrInvalidDate
	}
	day, err = strconv.Atoi(parts[2])
	if err != nil {
		return 0, 0, 0, ErrInvalidDate
	}
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return 0, 0, 0, ErrInvalidDate
	}
	return year, month, day, nil
}
