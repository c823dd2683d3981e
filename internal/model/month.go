package model

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/plureonic/cashflow/internal/common"
)

// monthLayout is the literal wire form of a calendar month.
const monthLayout = "2006-01"

// Month is a calendar month (year + month), the ledger's only notion of
// time. Months are ordered by (year, month), never by calendar-arithmetic
// distance.
type Month struct {
	Year  int
	Month time.Month
}

// NewMonth builds a Month from its parts.
func NewMonth(year int, month time.Month) Month {
	return Month{Year: year, Month: month}
}

// ParseMonth parses the literal YYYY-MM form, rejecting anything that is
// not a legal calendar month.
func ParseMonth(s string) (Month, error) {
	t, err := time.Parse(monthLayout, s)
	if err != nil {
		return Month{}, fmt.Errorf("%w: %q (expected YYYY-MM)", common.ErrInvalidMonth, s)
	}
	return Month{Year: t.Year(), Month: t.Month()}, nil
}

// IsZero reports whether the month is unset.
func (m Month) IsZero() bool {
	return m.Year == 0 && m.Month == 0
}

// String renders the month in its YYYY-MM form.
func (m Month) String() string {
	return fmt.Sprintf("%04d-%02d", m.Year, int(m.Month))
}

// Compare orders two months: -1 if m is earlier than o, 0 if equal, 1 if
// later.
func (m Month) Compare(o Month) int {
	switch {
	case m.Year != o.Year:
		if m.Year < o.Year {
			return -1
		}
		return 1
	case m.Month != o.Month:
		if m.Month < o.Month {
			return -1
		}
		return 1
	default:
		return 0
	}
}

// Before reports whether m is strictly earlier than o.
func (m Month) Before(o Month) bool {
	return m.Compare(o) < 0
}

// After reports whether m is strictly later than o.
func (m Month) After(o Month) bool {
	return m.Compare(o) > 0
}

// MarshalJSON encodes the month as its YYYY-MM string.
func (m Month) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.String())
}

// UnmarshalJSON decodes a YYYY-MM string.
func (m *Month) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("%w: month must be a string", common.ErrInvalidMonth)
	}
	parsed, err := ParseMonth(s)
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}
