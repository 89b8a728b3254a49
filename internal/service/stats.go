package service

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/olimpo/referrals/internal/domain"
)

// StatusBreakdown counts prospects per funnel milestone.
type StatusBreakdown struct {
	Invited    int `json:"invited"`
	Registered int `json:"registered"`
	Active     int `json:"active"`
	Churn      int `json:"churn"`
}

// Total sums every bucket.
func (b StatusBreakdown) Total() int {
	return b.Invited + b.Registered + b.Active + b.Churn
}

func (b *StatusBreakdown) add(status domain.ReferralStatus) {
	switch status {
	case domain.ReferralInvited:
		b.Invited++
	case domain.ReferralRegistered:
		b.Registered++
	case domain.ReferralActive:
		b.Active++
	case domain.ReferralChurn:
		b.Churn++
	}
}

// AgentStats is the per-agent rollup shown on the agent panel.
type AgentStats struct {
	TotalReferrals int `json:"total_referrals"`
	StatusBreakdown
	TotalFunding        decimal.Decimal `json:"total_funding"`
	TotalPurchases      decimal.Decimal `json:"total_purchases"`
	CommissionGenerated decimal.Decimal `json:"commission_generated"`
	CommissionPaid      decimal.Decimal `json:"commission_paid"`
}

// ClientTypeBreakdown counts prospects per client type.
type ClientTypeBreakdown struct {
	VIP      int `json:"vip"`
	Standard int `json:"standard"`
}

// GlobalStats is the admin dashboard rollup.
//
// ActiveAgents counts distinct referring agents among the filtered prospects;
// it never looks at Agent.Status.
type GlobalStats struct {
	TotalReferrals         int                    `json:"total_referrals"`
	StatusBreakdown        StatusBreakdown        `json:"status_breakdown"`
	TotalFunding           decimal.Decimal        `json:"total_funding"`
	TotalPurchases         decimal.Decimal        `json:"total_purchases"`
	TotalTransactionVolume decimal.Decimal        `json:"total_transaction_volume"`
	CommissionGenerated    decimal.Decimal        `json:"commission_generated"`
	CommissionPaid         decimal.Decimal        `json:"commission_paid"`
	CommissionPending      decimal.Decimal        `json:"commission_pending"`
	ActiveAgents           int                    `json:"active_agents"`
	ClientTypeBreakdown    ClientTypeBreakdown    `json:"client_type_breakdown"`
	ProgramBreakdown       map[domain.Program]int `json:"program_breakdown"`
	ConversionRate         decimal.Decimal        `json:"conversion_rate"`
	AvgFundingPerProspect  int64                  `json:"avg_funding_per_prospect"`
}

// DashboardFilter narrows global stats. A nil field means "all".
type DashboardFilter struct {
	DateFrom   *time.Time
	DateTo     *time.Time
	ClientType *domain.ClientType
	Program    *domain.Program
}

// IsZero reports whether the filter selects everything.
func (f DashboardFilter) IsZero() bool {
	return f.DateFrom == nil && f.DateTo == nil && f.ClientType == nil && f.Program == nil
}

// MonthlyMetric is one calendar-month bucket of an agent's activity.
type MonthlyMetric struct {
	Label       string          `json:"label"`
	Commissions int64           `json:"commissions"`
	Referrals   int             `json:"referrals"`
	Activations int             `json:"activations"`
	Funding     decimal.Decimal `json:"funding"`
}

// ComputeAgentStats rolls up one agent's prospects, transactions and commissions.
func ComputeAgentStats(prospects []domain.Prospect, transactions []domain.Transaction, commissions []domain.Commission) AgentStats {
	stats := AgentStats{TotalReferrals: len(prospects)}
	for _, p := range prospects {
		stats.StatusBreakdown.add(p.Status)
	}
	stats.TotalFunding, stats.TotalPurchases = sumTransactions(transactions)
	generated, paid, _ := sumCommissions(commissions)
	stats.CommissionGenerated = generated.Round(2)
	stats.CommissionPaid = paid.Round(2)
	return stats
}

// ComputeGlobalStats applies filter (date bounds, then client type, then
// program) and rolls up what survives.
func ComputeGlobalStats(prospects []domain.Prospect, transactions []domain.Transaction, commissions []domain.Commission, f DashboardFilter) GlobalStats {
	if f.DateFrom != nil {
		from := *f.DateFrom
		prospects = keep(prospects, func(p domain.Prospect) bool { return !p.CreatedAt.Before(from) })
		transactions = keep(transactions, func(t domain.Transaction) bool { return !t.CreatedAt.Before(from) })
		commissions = keep(commissions, func(c domain.Commission) bool { return !c.CreatedAt.Before(from) })
	}
	if f.DateTo != nil {
		to := *f.DateTo
		prospects = keep(prospects, func(p domain.Prospect) bool { return !p.CreatedAt.After(to) })
		transactions = keep(transactions, func(t domain.Transaction) bool { return !t.CreatedAt.After(to) })
		commissions = keep(commissions, func(c domain.Commission) bool { return !c.CreatedAt.After(to) })
	}
	if f.ClientType != nil {
		clientType := *f.ClientType
		prospects = keep(prospects, func(p domain.Prospect) bool { return p.ClientType == clientType })
		transactions, commissions = restrictToProspects(prospects, transactions, commissions)
	}
	if f.Program != nil {
		program := *f.Program
		prospects = keep(prospects, func(p domain.Prospect) bool { return p.Program == program })
		transactions, commissions = restrictToProspects(prospects, transactions, commissions)
	}

	stats := GlobalStats{
		TotalReferrals:   len(prospects),
		ProgramBreakdown: make(map[domain.Program]int, len(domain.Programs)),
	}
	for _, program := range domain.Programs {
		stats.ProgramBreakdown[program] = 0
	}

	agents := make(map[string]struct{})
	for _, p := range prospects {
		stats.StatusBreakdown.add(p.Status)
		agents[p.ReferredByAgent] = struct{}{}
		switch p.ClientType {
		case domain.ClientTypeVIP:
			stats.ClientTypeBreakdown.VIP++
		case domain.ClientTypeStandard:
			stats.ClientTypeBreakdown.Standard++
		}
		stats.ProgramBreakdown[p.Program]++
	}
	stats.ActiveAgents = len(agents)

	stats.TotalFunding, stats.TotalPurchases = sumTransactions(transactions)
	stats.TotalTransactionVolume = stats.TotalFunding.Add(stats.TotalPurchases)

	generated, paid, pending := sumCommissions(commissions)
	stats.CommissionGenerated = generated.Round(2)
	stats.CommissionPaid = paid.Round(2)
	stats.CommissionPending = pending.Round(2)

	stats.ConversionRate = decimal.Zero
	if stats.TotalReferrals > 0 {
		stats.ConversionRate = decimal.NewFromInt(int64(stats.StatusBreakdown.Active)).
			Div(decimal.NewFromInt(int64(stats.TotalReferrals))).
			Mul(decimal.NewFromInt(100)).
			Round(2)
	}
	if active := stats.StatusBreakdown.Active; active > 0 {
		stats.AvgFundingPerProspect = stats.TotalFunding.Div(decimal.NewFromInt(int64(active))).Round(0).IntPart()
	}
	return stats
}

// ComputeMonthlyMetrics buckets one agent's activity into windows, in order.
// Every window yields a record, zero-filled when nothing happened in it.
func ComputeMonthlyMetrics(windows []MonthWindow, prospects []domain.Prospect, transactions []domain.Transaction, commissions []domain.Commission) []MonthlyMetric {
	result := make([]MonthlyMetric, 0, len(windows))
	for _, w := range windows {
		metric := MonthlyMetric{Label: w.Label, Funding: decimal.Zero}

		commissionSum := decimal.Zero
		for _, c := range commissions {
			if w.Contains(c.CreatedAt) {
				commissionSum = commissionSum.Add(c.Amount)
			}
		}
		metric.Commissions = commissionSum.Round(0).IntPart()

		for _, p := range prospects {
			if w.Contains(p.CreatedAt) {
				metric.Referrals++
			}
			if activeAt, ok := p.ReachedAt(domain.ReferralActive); ok && w.Contains(activeAt) {
				metric.Activations++
			}
		}

		for _, t := range transactions {
			if t.Type == domain.TransactionFunding && w.Contains(t.CreatedAt) {
				metric.Funding = metric.Funding.Add(t.Amount)
			}
		}
		result = append(result, metric)
	}
	return result
}

func sumTransactions(transactions []domain.Transaction) (fundingTotal, purchaseTotal decimal.Decimal) {
	fundingTotal, purchaseTotal = decimal.Zero, decimal.Zero
	for _, t := range transactions {
		switch t.Type {
		case domain.TransactionFunding:
			fundingTotal = fundingTotal.Add(t.Amount)
		case domain.TransactionCardPurchase:
			purchaseTotal = purchaseTotal.Add(t.Amount)
		}
	}
	return fundingTotal.Round(2), purchaseTotal.Round(2)
}

func sumCommissions(commissions []domain.Commission) (generated, paid, pending decimal.Decimal) {
	generated, paid, pending = decimal.Zero, decimal.Zero, decimal.Zero
	for _, c := range commissions {
		generated = generated.Add(c.Amount)
		switch c.Status {
		case domain.CommissionPaid:
			paid = paid.Add(c.Amount)
		case domain.CommissionPending:
			pending = pending.Add(c.Amount)
		}
	}
	return generated, paid, pending
}

func restrictToProspects(prospects []domain.Prospect, transactions []domain.Transaction, commissions []domain.Commission) ([]domain.Transaction, []domain.Commission) {
	ids := make(map[string]struct{}, len(prospects))
	for _, p := range prospects {
		ids[p.ID] = struct{}{}
	}
	transactions = keep(transactions, func(t domain.Transaction) bool {
		_, ok := ids[t.ProspectID]
		return ok
	})
	commissions = keep(commissions, func(c domain.Commission) bool {
		_, ok := ids[c.ProspectID]
		return ok
	})
	return transactions, commissions
}

func keep[T any](items []T, pred func(T) bool) []T {
	result := make([]T, 0, len(items))
	for _, item := range items {
		if pred(item) {
			result = append(result, item)
		}
	}
	return result
}
