package status

import "fmt"

// Kind is the discrete state shown on a payment or invoice badge.
type Kind string

// Display kinds.
const (
	KindPaid          Kind = "paid"
	KindCancelled     Kind = "cancelled"
	KindOverdue       Kind = "overdue"
	KindDueSoon       Kind = "due-soon"
	KindPending       Kind = "pending"
	KindUnpaid        Kind = "unpaid"
	KindPartiallyPaid Kind = "partially-paid"
)

// Tier is the severity used to pick a badge colour.
type Tier int

// Severity tiers, least to most severe.
const (
	TierNeutral Tier = iota
	TierMuted
	TierSuccess
	TierInfo
	TierWarning
	TierDanger
)

// String returns the tier name.
func (t Tier) String() string {
	switch t {
	case TierNeutral:
		return "neutral"
	case TierMuted:
		return "muted"
	case TierSuccess:
		return "success"
	case TierInfo:
		return "info"
	case TierWarning:
		return "warning"
	case TierDanger:
		return "danger"
	default:
		return fmt.Sprintf("Unknown(%d)", int(t))
	}
}

// DisplayStatus is the classified state of a record at a given day.
// Days is the number of days overdue for KindOverdue and the number of days
// until due for KindDueSoon; it is zero otherwise.
type DisplayStatus struct {
	Kind  Kind
	Label string
	Tier  Tier
	Days  int
}

// IsOverdue returns true if the status is overdue.
func (s DisplayStatus) IsOverdue() bool {
	return s.Kind == KindOverdue
}

// NeedsAttention returns true for statuses the planner should act on.
func (s DisplayStatus) NeedsAttention() bool {
	return s.Kind == KindOverdue || s.Kind == KindDueSoon
}

func overdueLabel(days int) string {
	if days == 1 {
		return "Overdue by 1 day"
	}
	return fmt.Sprintf("Overdue by %d days", days)
}

func dueSoonLabel(days int) string {
	switch days {
	case 0:
		return "Due today"
	case 1:
		return "Due tomorrow"
	default:
		return fmt.Sprintf("Due in %d days", days)
	}
}
