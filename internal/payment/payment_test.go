package payment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Real production configuration: regular_hours=10, helper OT 3 AED/hr,
// non-helper OT 4 AED/hr, Sunday multiplier 1.5.
func prodConfig() Config {
	return DefaultConfig()
}

// 2026-01-04 is a Sunday; 2026-01-05 a Monday. January has 31 days.
const (
	sundayDate  = "2026-01-04"
	mondayDate  = "2026-01-05"
	tuesdayDate = "2026-01-06"
)

func TestParseTimeToMinutes(t *testing.T) {
	tests := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{"00:00", 0, false},
		{"08:00", 480, false},
		{"8:5", 485, false},
		{"23:59", 1439, false},
		{"0800", 0, true},
		{"08:00:00", 0, true},
		{"ab:cd", 0, true},
		{"", 0, true},
	}

	for _, tc := range tests {
		got, err := ParseTimeToMinutes(tc.in)
		if tc.wantErr {
			assert.ErrorIs(t, err, ErrInvalidTimeFormat, "input %q", tc.in)
			continue
		}
		require.NoError(t, err, "input %q", tc.in)
		assert.Equal(t, tc.want, got, "input %q", tc.in)
	}
}

func TestShiftMinutes_NightShiftWraparound(t *testing.T) {
	mins, err := ShiftMinutes("22:00", "06:00")
	require.NoError(t, err)
	assert.Equal(t, 8*60, mins)
}

func TestShiftMinutes_EqualTimesComputeFullDay(t *testing.T) {
	// Equal start and end falls under the night-shift rule and computes 24h.
	// The engine preserves that so historical payroll rows reproduce exactly;
	// attendance validation rejects equal times before anything is persisted.
	mins, err := ShiftMinutes("08:00", "08:00")
	require.NoError(t, err)
	assert.Equal(t, 24*60, mins)
}

func TestConfigFromSettings(t *testing.T) {
	t.Run("nil settings use defaults", func(t *testing.T) {
		assert.Equal(t, DefaultConfig(), ConfigFromSettings(nil))
	})

	t.Run("valid values parsed", func(t *testing.T) {
		cfg := ConfigFromSettings(map[string]string{
			"regular_hours":        "8",
			"helper_ot_rate":       "2.5",
			"non_helper_ot_rate":   "5",
			"sunday_ot_multiplier": "2",
		})
		assert.Equal(t, Config{RegularHours: 8, HelperOTRate: 2.5, NonHelperOTRate: 5, SundayOTMultiplier: 2}, cfg)
	})

	t.Run("whitespace tolerated", func(t *testing.T) {
		cfg := ConfigFromSettings(map[string]string{"regular_hours": " 9 "})
		assert.Equal(t, 9.0, cfg.RegularHours)
	})

	t.Run("malformed values fall back per key", func(t *testing.T) {
		// Config rows are free-text admin input; a typo in one key must not
		// disturb the others.
		cfg := ConfigFromSettings(map[string]string{
			"regular_hours":        "ten",
			"helper_ot_rate":       "",
			"non_helper_ot_rate":   "NaN",
			"sunday_ot_multiplier": "1.75",
		})
		assert.Equal(t, float64(DefaultRegularHours), cfg.RegularHours)
		assert.Equal(t, float64(DefaultHelperOTRate), cfg.HelperOTRate)
		assert.Equal(t, float64(DefaultNonHelperOTRate), cfg.NonHelperOTRate)
		assert.Equal(t, 1.75, cfg.SundayOTMultiplier)
	})
}

func TestIsHelper(t *testing.T) {
	assert.True(t, IsHelper("helper"))
	assert.True(t, IsHelper("Helper"))
	assert.True(t, IsHelper("  HELPER  "))
	assert.False(t, IsHelper("Carpenter"))
	assert.False(t, IsHelper(""))
}

func TestCalculate_RegularDayNoOvertime(t *testing.T) {
	// Real scenario: 1200 AED monthly, 31-day month, exactly 10h worked.
	// Standard rate 1200/31/10 = 3.87…, regular pay 38.71, no OT.
	res, err := Calculate(1200, "08:00", "18:00", mondayDate, nil, prodConfig(), "Helper")
	require.NoError(t, err)

	assert.Equal(t, 10.0, res.HoursWorked)
	assert.Equal(t, 38.71, res.RegularPay)
	assert.Equal(t, 0.0, res.OTPay)
	assert.Equal(t, 38.71, res.TotalPay)
	assert.False(t, res.IsSunday)
	assert.False(t, res.IsHoliday)
}

func TestCalculate_RegularDayOvertimeSplit(t *testing.T) {
	// 12h on a regular day: 10h at the standard rate, 2h at the fixed
	// non-helper OT rate.
	res, err := Calculate(1200, "08:00", "20:00", mondayDate, nil, prodConfig(), "Carpenter")
	require.NoError(t, err)

	assert.Equal(t, 12.0, res.HoursWorked)
	assert.Equal(t, 38.71, res.RegularPay)
	assert.Equal(t, 8.0, res.OTPay) // 2h * 4 AED
	assert.Equal(t, 46.71, res.TotalPay)
}

func TestCalculate_SundayGuaranteeAndPremium(t *testing.T) {
	// Sunday, only 6h worked: the full 10h regular pay is still guaranteed,
	// and every worked hour is paid at otRate * multiplier (3 * 1.5 = 4.5).
	res, err := Calculate(1200, "08:00", "14:00", sundayDate, nil, prodConfig(), "Helper")
	require.NoError(t, err)

	assert.True(t, res.IsSunday)
	assert.False(t, res.IsHoliday)
	assert.Equal(t, 6.0, res.HoursWorked)
	assert.Equal(t, 38.71, res.RegularPay)
	assert.Equal(t, 27.0, res.OTPay)
	assert.Equal(t, 65.71, res.TotalPay)
}

func TestCalculate_HolidayMatchesByDateString(t *testing.T) {
	holidays := []string{"2026-01-01", tuesdayDate}

	res, err := Calculate(1200, "08:00", "18:00", tuesdayDate, holidays, prodConfig(), "")
	require.NoError(t, err)

	assert.True(t, res.IsHoliday)
	assert.False(t, res.IsSunday)
	// Holiday branch: fixed 38.71 plus 10h * (4 * 1.5).
	assert.Equal(t, 38.71, res.RegularPay)
	assert.Equal(t, 60.0, res.OTPay)
	assert.Equal(t, 98.71, res.TotalPay)
}

func TestCalculate_NightShift(t *testing.T) {
	// 22:00 -> 06:00 crosses midnight: 8 hours, all regular.
	res, err := Calculate(3100, "22:00", "06:00", mondayDate, nil, prodConfig(), "")
	require.NoError(t, err)

	assert.Equal(t, 8.0, res.HoursWorked)
	assert.Equal(t, 80.0, res.RegularPay) // 3100/31/10 = 10 AED/h
	assert.Equal(t, 0.0, res.OTPay)
	assert.Equal(t, 80.0, res.TotalPay)
}

func TestCalculate_DesignationSelectsOTRate(t *testing.T) {
	// 12h regular day: 2h of OT, rate depends only on designation.
	for _, tc := range []struct {
		designation string
		wantOT      float64
	}{
		{"Helper", 6.0},
		{"  helper ", 6.0},
		{"Carpenter", 8.0},
		{"", 8.0},
	} {
		res, err := Calculate(1200, "08:00", "20:00", mondayDate, nil, prodConfig(), tc.designation)
		require.NoError(t, err)
		assert.Equal(t, tc.wantOT, res.OTPay, "designation %q", tc.designation)
	}
}

func TestCalculate_DegenerateInputsShortCircuit(t *testing.T) {
	zero := Result{}

	for name, run := range map[string]func() (Result, error){
		"zero wage":   func() (Result, error) { return Calculate(0, "08:00", "18:00", mondayDate, nil, prodConfig(), "") },
		"empty start": func() (Result, error) { return Calculate(1200, "", "18:00", mondayDate, nil, prodConfig(), "") },
		"empty end":   func() (Result, error) { return Calculate(1200, "08:00", "", mondayDate, nil, prodConfig(), "") },
		"empty date":  func() (Result, error) { return Calculate(1200, "08:00", "18:00", "", nil, prodConfig(), "") },
	} {
		res, err := run()
		require.NoError(t, err, name)
		assert.Equal(t, zero, res, name)
	}
}

func TestCalculate_MalformedInputsFailLoudly(t *testing.T) {
	_, err := Calculate(1200, "0800", "18:00", mondayDate, nil, prodConfig(), "")
	assert.ErrorIs(t, err, ErrInvalidTimeFormat)

	_, err = Calculate(1200, "08:00", "18:00", "05/01/2026", nil, prodConfig(), "")
	assert.ErrorIs(t, err, ErrInvalidDate)

	_, err = Calculate(1200, "08:00", "18:00", "2026-13-01", nil, prodConfig(), "")
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestCalculate_EqualStartEndPaysFullDay(t *testing.T) {
	// Documented decision: the engine keeps the 24h wraparound for equal
	// times so old rows recompute identically; persistence-path validation
	// is what rejects these shifts.
	res, err := Calculate(3100, "08:00", "08:00", mondayDate, nil, prodConfig(), "Carpenter")
	require.NoError(t, err)

	assert.Equal(t, 24.0, res.HoursWorked)
	assert.Equal(t, 100.0, res.RegularPay) // 10h * 10 AED
	assert.Equal(t, 56.0, res.OTPay)       // 14h * 4 AED
	assert.Equal(t, 156.0, res.TotalPay)
}

func TestCalculate_LeapFebruary(t *testing.T) {
	// February 2024 has 29 days: 2900/29/10 = 10 AED/h exactly.
	res, err := Calculate(2900, "08:00", "18:00", "2024-02-14", nil, prodConfig(), "")
	require.NoError(t, err)
	assert.Equal(t, 100.0, res.RegularPay)
}

func TestCalculate_TotalAlwaysSumOfRoundedParts(t *testing.T) {
	// The invariant must hold on the stored, rounded fields for every
	// branch, including wages that round awkwardly.
	cases := []struct {
		wage        float64
		start, end  string
		date        string
		designation string
	}{
		{1200, "08:00", "18:00", mondayDate, "Helper"},
		{1234.56, "07:13", "19:47", mondayDate, "Carpenter"},
		{1234.56, "07:13", "19:47", sundayDate, "Helper"},
		{999.99, "22:00", "06:30", tuesdayDate, ""},
		{3333.33, "09:00", "13:21", sundayDate, "Mason"},
	}

	for _, tc := range cases {
		res, err := Calculate(tc.wage, tc.start, tc.end, tc.date, nil, prodConfig(), tc.designation)
		require.NoError(t, err)

		sum := round2(res.RegularPay + res.OTPay)
		assert.Equal(t, sum, res.TotalPay,
			"wage=%v %s-%s %s", tc.wage, tc.start, tc.end, tc.date)
		assert.Equal(t, round2(res.HoursWorked), res.HoursWorked)
		assert.Equal(t, round2(res.RegularPay), res.RegularPay)
		assert.Equal(t, round2(res.OTPay), res.OTPay)
		assert.Equal(t, round2(res.TotalPay), res.TotalPay)
	}
}

func TestCalculate_Deterministic(t *testing.T) {
	first, err := Calculate(1234.56, "07:13", "19:47", sundayDate, []string{tuesdayDate}, prodConfig(), "Helper")
	require.NoError(t, err)

	for i := 0; i < 50; i++ {
		again, err := Calculate(1234.56, "07:13", "19:47", sundayDate, []string{tuesdayDate}, prodConfig(), "Helper")
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}
