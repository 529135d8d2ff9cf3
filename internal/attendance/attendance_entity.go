package attendance

import (
	"time"

	"github.com/google/uuid"
)

const (
	StatusPresent = "PRESENT"
	StatusAbsent  = "ABSENT"
	StatusHalfDay = "HALF_DAY"
	StatusLate    = "LATE"
	StatusOnLeave = "ON_LEAVE"
	StatusHoliday = "HOLIDAY"
	StatusWeekend = "WEEKEND"
)

// Attendance is a read-only projection of the attendance module's table;
// the payroll engine only consumes date and status.
type Attendance struct {
	ID             uuid.UUID `gorm:"column:id;type:uuid;primaryKey"`
	CompanyID      uuid.UUID `gorm:"column:company_id;type:uuid;index"`
	EmployeeID     uuid.UUID `gorm:"column:employee_id;type:uuid;index"`
	AttendanceDate time.Time `gorm:"column:attendance_date;type:date"`
	Status         string    `gorm:"column:status;type:varchar(20)"`
}

func (Attendance) TableName() string {
	return "attendances"
}

// CountsAsWorked reports whether a status contributes to days worked.
func CountsAsWorked(status string) bool {
	switch status {
	case StatusPresent, StatusHalfDay, StatusLate:
		return true
	default:
		return false
	}
}
