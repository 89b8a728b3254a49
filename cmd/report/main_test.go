package main

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/olimpo/referrals/internal/config"
	"github.com/olimpo/referrals/internal/domain"
)

func testConfig() *config.Config {
	return &config.Config{
		Commission: config.CommissionConfig{BoundaryMonth: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)},
		Metrics:    config.MetricsConfig{FirstMonth: time.Date(2025, 10, 1, 0, 0, 0, 0, time.UTC), WindowCount: 5},
	}
}

func TestMoneyUsesLocaleGrouping(t *testing.T) {
	p := message.NewPrinter(language.MustParse("es-MX"))
	got := money(p, decimal.RequireFromString("1234567.5"))
	if got != "$1,234,567.50" {
		t.Fatalf("unexpected money format %q", got)
	}
}

func TestFilterParsesFlags(t *testing.T) {
	f, err := options{clientType: "vip", program: "all", from: "2025-11-01", to: "2025-11-30"}.filter()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if f.ClientType == nil || *f.ClientType != domain.ClientTypeVIP {
		t.Fatalf("expected vip filter, got %v", f.ClientType)
	}
	if f.Program != nil {
		t.Fatalf("expected no program filter")
	}
	wantTo := time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC).Add(-time.Nanosecond)
	if f.DateTo == nil || !f.DateTo.Equal(wantTo) {
		t.Fatalf("expected date_to %v got %v", wantTo, f.DateTo)
	}
}

func TestFilterRejectsUnknownValues(t *testing.T) {
	cases := []options{
		{clientType: "gold"},
		{program: "empresa_eb9"},
		{from: "11/01/2025"},
	}
	for _, o := range cases {
		if _, err := o.filter(); err == nil {
			t.Fatalf("expected error for %+v", o)
		}
	}
}

func TestRunPrintsEveryAgent(t *testing.T) {
	var out bytes.Buffer
	if err := run(nil, testConfig(), &out); err != nil {
		t.Fatalf("run: %v", err)
	}
	text := out.String()
	if !strings.Contains(text, "Referidos: 35") {
		t.Fatalf("expected global referral count, got:\n%s", text)
	}
	for _, id := range []string{"agent-001", "agent-010"} {
		if !strings.Contains(text, id) {
			t.Fatalf("expected row for %s", id)
		}
	}
}

func TestRunRejectsBadLanguage(t *testing.T) {
	var out bytes.Buffer
	if err := run([]string{"-lang", "not a tag!"}, testConfig(), &out); err == nil {
		t.Fatal("expected error for invalid language tag")
	}
}
