package domain

import (
	"errors"
	"testing"
	"time"
)

func TestValidateStatusHistory(t *testing.T) {
	base := time.Date(2025, 11, 5, 9, 0, 0, 0, time.UTC)
	entry := func(status ReferralStatus, days int) StatusHistoryEntry {
		return StatusHistoryEntry{Status: status, Timestamp: base.AddDate(0, 0, days)}
	}

	cases := []struct {
		name    string
		status  ReferralStatus
		history []StatusHistoryEntry
		wantErr error
	}{
		{"invited only", ReferralInvited, []StatusHistoryEntry{entry(ReferralInvited, 0)}, nil},
		{"full funnel", ReferralChurn, []StatusHistoryEntry{
			entry(ReferralInvited, 0), entry(ReferralRegistered, 3), entry(ReferralActive, 6), entry(ReferralChurn, 9),
		}, nil},
		{"skipped milestone", ReferralActive, []StatusHistoryEntry{
			entry(ReferralInvited, 0), entry(ReferralActive, 3), entry(ReferralActive, 6),
		}, ErrStatusHistoryPrefix},
		{"missing current", ReferralRegistered, []StatusHistoryEntry{entry(ReferralInvited, 0)}, ErrStatusHistoryPrefix},
		{"entry beyond current", ReferralInvited, []StatusHistoryEntry{
			entry(ReferralInvited, 0), entry(ReferralRegistered, 1),
		}, ErrStatusHistoryPrefix},
		{"timestamps backwards", ReferralRegistered, []StatusHistoryEntry{
			entry(ReferralInvited, 3), entry(ReferralRegistered, 0),
		}, ErrStatusHistoryOrder},
		{"unknown status", ReferralStatus("lost"), nil, ErrUnknownStatus},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateStatusHistory(tc.status, tc.history)
			if tc.wantErr == nil && err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if tc.wantErr != nil && !errors.Is(err, tc.wantErr) {
				t.Fatalf("expected %v, got %v", tc.wantErr, err)
			}
		})
	}
}

func TestProspectValidateRequiresContact(t *testing.T) {
	p := Prospect{
		ID:            "prospect-x",
		ClientType:    ClientTypeStandard,
		Program:       ProgramEmpresaEB2,
		Status:        ReferralInvited,
		StatusHistory: []StatusHistoryEntry{{Status: ReferralInvited, Timestamp: time.Now()}},
	}
	if err := p.Validate(); !errors.Is(err, ErrMissingContact) {
		t.Fatalf("expected ErrMissingContact, got %v", err)
	}
	p.Email = "someone@example.com"
	if err := p.Validate(); err != nil {
		t.Fatalf("expected valid prospect, got %v", err)
	}
}

func TestProspectReachedAt(t *testing.T) {
	ts := time.Date(2025, 12, 1, 10, 0, 0, 0, time.UTC)
	p := Prospect{StatusHistory: []StatusHistoryEntry{
		{Status: ReferralInvited, Timestamp: ts},
		{Status: ReferralRegistered, Timestamp: ts.AddDate(0, 0, 3)},
	}}
	got, ok := p.ReachedAt(ReferralRegistered)
	if !ok || !got.Equal(ts.AddDate(0, 0, 3)) {
		t.Fatalf("unexpected registered milestone %v %v", got, ok)
	}
	if _, ok := p.ReachedAt(ReferralActive); ok {
		t.Fatalf("active milestone should be absent")
	}
}
