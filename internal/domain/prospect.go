package domain

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// ClientType segments prospects.
type ClientType string

const (
	ClientTypeVIP      ClientType = "vip"
	ClientTypeStandard ClientType = "standard"
)

// ClientTypes lists every client type in display order.
var ClientTypes = []ClientType{ClientTypeVIP, ClientTypeStandard}

// Valid reports whether c is a known client type.
func (c ClientType) Valid() bool {
	return c == ClientTypeVIP || c == ClientTypeStandard
}

// Program enumerates the products a prospect can be enrolled in.
type Program string

const (
	ProgramEmpresaEB1 Program = "empresa_eb1"
	ProgramEmpresaEB2 Program = "empresa_eb2"
)

// Programs lists every program in display order.
var Programs = []Program{ProgramEmpresaEB1, ProgramEmpresaEB2}

// Valid reports whether p is a known program.
func (p Program) Valid() bool {
	return p == ProgramEmpresaEB1 || p == ProgramEmpresaEB2
}

// ReferralStatus is a milestone in the prospect funnel.
type ReferralStatus string

const (
	ReferralInvited    ReferralStatus = "invited"
	ReferralRegistered ReferralStatus = "registered"
	ReferralActive     ReferralStatus = "active"
	ReferralChurn      ReferralStatus = "churn"
)

// ReferralStatuses is the funnel in milestone order.
var ReferralStatuses = []ReferralStatus{ReferralInvited, ReferralRegistered, ReferralActive, ReferralChurn}

// Rank returns the position of s in the funnel, or -1 when unknown.
func (s ReferralStatus) Rank() int {
	for i, status := range ReferralStatuses {
		if status == s {
			return i
		}
	}
	return -1
}

// ReferralMethod records how a prospect entered the program.
type ReferralMethod string

const (
	ReferralMethodDirect     ReferralMethod = "direct"
	ReferralMethodInviteLink ReferralMethod = "invite_link"
)

// StatusHistoryEntry records when a milestone was reached.
type StatusHistoryEntry struct {
	Status    ReferralStatus
	Timestamp time.Time
}

// Prospect is an individual referred by an agent.
type Prospect struct {
	ID               string
	Name             string
	Phone            string
	Email            string
	ClientType       ClientType
	CreditAvailable  bool
	CreditLineAmount decimal.Decimal
	Program          Program
	ReferredByAgent  string
	ReferralMethod   ReferralMethod
	InviteLinkID     *string
	Status           ReferralStatus
	StatusHistory    []StatusHistoryEntry
	CreatedAt        time.Time
}

var (
	ErrUnknownStatus       = errors.New("unknown referral status")
	ErrStatusHistoryPrefix = errors.New("status history is not a prefix of the funnel")
	ErrStatusHistoryOrder  = errors.New("status history timestamps go backwards")
	ErrMissingContact      = errors.New("prospect needs a phone or an email")
)

// ValidateStatusHistory checks that history holds exactly the funnel milestones
// up to and including current, in order, with non-decreasing timestamps.
func ValidateStatusHistory(current ReferralStatus, history []StatusHistoryEntry) error {
	rank := current.Rank()
	if rank < 0 {
		return fmt.Errorf("%w: %q", ErrUnknownStatus, current)
	}
	if len(history) != rank+1 {
		return fmt.Errorf("%w: %d entries for status %q", ErrStatusHistoryPrefix, len(history), current)
	}
	for i, entry := range history {
		if entry.Status != ReferralStatuses[i] {
			return fmt.Errorf("%w: entry %d is %q, want %q", ErrStatusHistoryPrefix, i, entry.Status, ReferralStatuses[i])
		}
		if i > 0 && entry.Timestamp.Before(history[i-1].Timestamp) {
			return fmt.Errorf("%w: %q before %q", ErrStatusHistoryOrder, entry.Status, history[i-1].Status)
		}
	}
	return nil
}

// Validate enforces the construction invariants of a prospect.
func (p Prospect) Validate() error {
	if p.Phone == "" && p.Email == "" {
		return fmt.Errorf("prospect %s: %w", p.ID, ErrMissingContact)
	}
	if !p.ClientType.Valid() {
		return fmt.Errorf("prospect %s: unknown client type %q", p.ID, p.ClientType)
	}
	if !p.Program.Valid() {
		return fmt.Errorf("prospect %s: unknown program %q", p.ID, p.Program)
	}
	if err := ValidateStatusHistory(p.Status, p.StatusHistory); err != nil {
		return fmt.Errorf("prospect %s: %w", p.ID, err)
	}
	return nil
}

// ReachedAt returns when the prospect first reached status.
func (p Prospect) ReachedAt(status ReferralStatus) (time.Time, bool) {
	for _, entry := range p.StatusHistory {
		if entry.Status == status {
			return entry.Timestamp, true
		}
	}
	return time.Time{}, false
}
