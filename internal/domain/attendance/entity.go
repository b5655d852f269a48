package attendance

import "time"

// Attendance is one labour's worked day. The pay breakdown is computed once at
// write time and stored, so payroll reads never recalculate.
type Attendance struct {
	ID          string
	LabourID    string
	Date        string
	ClientID    string
	SiteID      string
	StartTime   string
	EndTime     string
	HoursWorked float64
	RegularPay  float64
	OTPay       float64
	TotalPay    float64
	IsSunday    bool
	IsHoliday   bool
	Notes       *string
	MarkedBy    *string

	AdminVerified bool
	VerifiedBy    *string
	VerifiedAt    *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time

	// Populated by list queries that join the related tables.
	LabourName        *string
	LabourDesignation *string
	ClientName        *string
	SiteName          *string
}
