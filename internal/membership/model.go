package membership

import "time"

type State string

const (
	StateActive    State = "active"
	StateCancelled State = "cancelled"
)

// BillingState is the explicit billing position of a membership. The
// original data model inferred it from invoice existence; it is an enum here
// so the check-in rules can switch on it directly.
type BillingState string

const (
	// BillingUnbilled: no outstanding/paid invoice yet, first check-in will
	// auto-provision one.
	BillingUnbilled BillingState = "unbilled"
	// BillingCurrent: billed, credit left, validity window open.
	BillingCurrent BillingState = "current"
	// BillingExhausted: billed but no credit left.
	BillingExhausted BillingState = "exhausted"
	// BillingExpired: billed, credit left, but the validity window has
	// closed.
	BillingExpired BillingState = "expired"
)

type Membership struct {
	ID             int        `db:"id" json:"id"`
	UserID         int        `db:"user_id" json:"user_id"`
	State          State      `db:"state" json:"state"`
	AmountOfCredit int64      `db:"amount_of_credit" json:"amount_of_credit"`
	StartDate      *time.Time `db:"start_date" json:"start_date,omitempty"`
	EndDate        *time.Time `db:"end_date" json:"end_date,omitempty"`
	CreatedAt      time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt      time.Time  `db:"updated_at" json:"updated_at"`
}

// ExpiringMember is a membership whose validity window closes soon, joined
// with the owning user's contact details for the reminder sweep.
type ExpiringMember struct {
	MembershipID int       `db:"id"`
	EndDate      time.Time `db:"end_date"`
	UserName     string    `db:"user_name"`
	UserEmail    string    `db:"user_email"`
}

// BillingStateOf computes the billing state of a membership. Exhausted wins
// over expired: a member with no credit is told about credit first even when
// the window has also closed.
func BillingStateOf(hasInvoice bool, credit int64, endDate *time.Time, now time.Time) BillingState {
	if !hasInvoice {
		return BillingUnbilled
	}
	if credit <= 0 {
		return BillingExhausted
	}
	if endDate != nil && dateOnly(now).After(dateOnly(*endDate)) {
		return BillingExpired
	}
	return BillingCurrent
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
