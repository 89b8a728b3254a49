// Package seed holds the fixed demo dataset the service boots with.
package seed

import (
	"hash/fnv"
	"math/rand/v2"
	"time"

	"github.com/shopspring/decimal"

	"github.com/olimpo/referrals/internal/domain"
	"github.com/olimpo/referrals/internal/repository"
)

// Dataset returns a fresh copy of the literal seed collections.
func Dataset() repository.Dataset {
	data := repository.Dataset{
		Agents:       append([]domain.Agent(nil), agents...),
		Transactions: append([]domain.Transaction(nil), transactions...),
		InviteLinks:  append([]domain.InviteLink(nil), inviteLinks...),
		Prospects:    make([]domain.Prospect, 0, len(prospects)),
	}
	for _, p := range prospects {
		data.Prospects = append(data.Prospects, p.build())
	}
	return data
}

type prospectSeed struct {
	id              string
	name            string
	phone           string
	email           string
	clientType      domain.ClientType
	creditAvailable bool
	creditLine      int64
	program         domain.Program
	agentID         string
	method          domain.ReferralMethod
	inviteLinkID    *string
	status          domain.ReferralStatus
	historyBase     string
	createdAt       string
}

func (s prospectSeed) build() domain.Prospect {
	return domain.Prospect{
		ID:               s.id,
		Name:             s.name,
		Phone:            s.phone,
		Email:            s.email,
		ClientType:       s.clientType,
		CreditAvailable:  s.creditAvailable,
		CreditLineAmount: amount(s.creditLine),
		Program:          s.program,
		ReferredByAgent:  s.agentID,
		ReferralMethod:   s.method,
		InviteLinkID:     s.inviteLinkID,
		Status:           s.status,
		StatusHistory:    StatusHistory(s.id, s.status, day(s.historyBase)),
		CreatedAt:        at(s.createdAt),
	}
}

// StatusHistory builds the milestone log for a prospect that reached final.
// Milestone i lands 3*i days after base plus up to two days of jitter, during
// business hours. Jitter is seeded by the prospect id so every boot produces
// the same history.
func StatusHistory(prospectID string, final domain.ReferralStatus, base time.Time) []domain.StatusHistoryEntry {
	h := fnv.New64a()
	_, _ = h.Write([]byte(prospectID))
	rng := rand.New(rand.NewPCG(h.Sum64(), 0x9e3779b97f4a7c15))

	rank := final.Rank()
	history := make([]domain.StatusHistoryEntry, 0, rank+1)
	for i := 0; i <= rank; i++ {
		d := base.AddDate(0, 0, i*3+rng.IntN(3))
		d = time.Date(d.Year(), d.Month(), d.Day(), 9+rng.IntN(10), rng.IntN(60), 0, 0, time.UTC)
		history = append(history, domain.StatusHistoryEntry{Status: domain.ReferralStatuses[i], Timestamp: d})
	}
	return history
}

func amount(v int64) decimal.Decimal {
	return decimal.NewFromInt(v)
}

func at(value string) time.Time {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		panic(err)
	}
	return t.UTC()
}

func day(value string) time.Time {
	t, err := time.Parse(time.DateOnly, value)
	if err != nil {
		panic(err)
	}
	return t
}

func strPtr(v string) *string {
	return &v
}

func timePtr(value string) *time.Time {
	t := at(value)
	return &t
}
