package service

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/finzzup/portal-api/internal/core/domain"
)

func newPortalFixture() (*PortalService, *stubClientRepo, *stubKPIRepo, *stubActionRepo, *stubEngagementRepo) {
	clients := newStubClientRepo()
	kpis := newStubKPIRepo()
	actions := newStubActionRepo()
	engagements := newStubEngagementRepo()
	svc := NewPortalService(clients, kpis, actions, engagements, zerolog.Nop())
	return svc, clients, kpis, actions, engagements
}

func TestPortalService_Navigation(t *testing.T) {
	svc, clients, _, _, _ := newPortalFixture()
	client := seedClient(clients)

	entries, err := svc.Navigation(context.Background(), client.ID)
	if err != nil {
		t.Fatalf("Navigation returned error: %v", err)
	}
	// msme + both: all six entries, report labeled for the plan.
	if len(entries) != 6 {
		t.Fatalf("expected 6 entries, got %d", len(entries))
	}
	if entries[3].Label != "MSME Report" {
		t.Fatalf("expected MSME Report, got %s", entries[3].Label)
	}
}

func TestPortalService_Navigation_UnknownClient(t *testing.T) {
	svc, _, _, _, _ := newPortalFixture()

	if _, err := svc.Navigation(context.Background(), "missing"); err != domain.ErrClientNotFound {
		t.Fatalf("expected ErrClientNotFound, got %v", err)
	}
}

func TestPortalService_Dashboard_SnapshotOptional(t *testing.T) {
	svc, clients, kpis, _, _ := newPortalFixture()
	client := seedClient(clients)

	result, err := svc.Dashboard(context.Background(), client.ID)
	if err != nil {
		t.Fatalf("Dashboard returned error: %v", err)
	}
	if len(result.Cards) != 6 {
		t.Fatalf("expected 6 metric cards, got %d", len(result.Cards))
	}
	if result.Snapshot != nil {
		t.Fatalf("expected no snapshot before a save")
	}

	if _, err := kpis.Upsert(context.Background(), &domain.KPISnapshot{
		ClientID: client.ID, Month: "Feb 2026", Revenue: "₹8.4 Cr", UpdatedAt: time.Now(),
	}); err != nil {
		t.Fatalf("seed kpi: %v", err)
	}

	result, err = svc.Dashboard(context.Background(), client.ID)
	if err != nil {
		t.Fatalf("Dashboard returned error: %v", err)
	}
	if result.Snapshot == nil || result.Snapshot.Month != "Feb 2026" {
		t.Fatalf("expected stored snapshot, got %+v", result.Snapshot)
	}
}

func TestPortalService_Actions_DemoFallback(t *testing.T) {
	svc, clients, _, actions, _ := newPortalFixture()
	client := seedClient(clients)

	items, err := svc.Actions(context.Background(), client.ID)
	if err != nil {
		t.Fatalf("Actions returned error: %v", err)
	}
	if len(items) != 5 {
		t.Fatalf("expected demo list, got %d items", len(items))
	}

	if _, err := actions.Create(context.Background(), &domain.ActionItem{
		ClientID: client.ID, Text: "Review Q4 MIS pack", Priority: domain.PriorityHigh,
	}); err != nil {
		t.Fatalf("seed action: %v", err)
	}

	items, err = svc.Actions(context.Background(), client.ID)
	if err != nil {
		t.Fatalf("Actions returned error: %v", err)
	}
	if len(items) != 1 || items[0].Text != "Review Q4 MIS pack" {
		t.Fatalf("expected stored items only, got %+v", items)
	}
}

func TestPortalService_ToggleAction_DoubleToggleRestores(t *testing.T) {
	svc, clients, _, actions, _ := newPortalFixture()
	client := seedClient(clients)
	created, _ := actions.Create(context.Background(), &domain.ActionItem{
		ClientID: client.ID, Text: "File GST returns", Priority: domain.PriorityHigh,
	})

	first, err := svc.ToggleAction(context.Background(), client.ID, created.ID)
	if err != nil {
		t.Fatalf("first toggle failed: %v", err)
	}
	if !first.Done {
		t.Fatalf("expected done after first toggle")
	}

	second, err := svc.ToggleAction(context.Background(), client.ID, created.ID)
	if err != nil {
		t.Fatalf("second toggle failed: %v", err)
	}
	if second.Done {
		t.Fatalf("expected original state after double toggle")
	}
}

func TestPortalService_ToggleAction_OtherClientsItemHidden(t *testing.T) {
	svc, clients, _, actions, _ := newPortalFixture()
	client := seedClient(clients)
	other := clients.add(domain.Client{Email: "other@co.in", InviteCode: "OTHR2026", Active: true})
	created, _ := actions.Create(context.Background(), &domain.ActionItem{
		ClientID: other.ID, Text: "Someone else's item",
	})

	if _, err := svc.ToggleAction(context.Background(), client.ID, created.ID); err != domain.ErrActionNotFound {
		t.Fatalf("expected ErrActionNotFound, got %v", err)
	}
}

func TestPortalService_Report_PlanDriven(t *testing.T) {
	svc, clients, _, _, _ := newPortalFixture()
	msme := seedClient(clients)
	corp := clients.add(domain.Client{
		Email: "anita@horizon.in", InviteCode: "HORI2026", Plan: domain.PlanCorporate,
		Service: domain.ServiceBoth, Active: true,
	})

	pack, err := svc.Report(context.Background(), msme.ID)
	if err != nil {
		t.Fatalf("Report returned error: %v", err)
	}
	if pack.Plan != domain.PlanMSME || pack.ScoreName != "cash_health" {
		t.Fatalf("unexpected pack: %+v", pack.Plan)
	}

	pack, err = svc.Report(context.Background(), corp.ID)
	if err != nil {
		t.Fatalf("Report returned error: %v", err)
	}
	if pack.Plan != domain.PlanCorporate || pack.Score != 58 {
		t.Fatalf("unexpected corporate pack: plan=%s score=%d", pack.Plan, pack.Score)
	}
}

func TestPortalService_Engagement_DemoFallbackThenStored(t *testing.T) {
	svc, clients, _, _, engagements := newPortalFixture()
	client := seedClient(clients)

	result, err := svc.Engagement(context.Background(), client.ID)
	if err != nil {
		t.Fatalf("Engagement returned error: %v", err)
	}
	if result.Engagement.RefNumber != "VAL-240216" {
		t.Fatalf("expected demo engagement, got %+v", result.Engagement)
	}
	if result.Progress != 40 {
		t.Fatalf("expected 40%% progress at stage 2, got %v", result.Progress)
	}

	if _, err := engagements.Upsert(context.Background(), &domain.Engagement{
		ClientID: client.ID, Type: "409A Valuation", RefNumber: "VAL-260831", Status: 4,
	}); err != nil {
		t.Fatalf("seed engagement: %v", err)
	}

	result, err = svc.Engagement(context.Background(), client.ID)
	if err != nil {
		t.Fatalf("Engagement returned error: %v", err)
	}
	if result.Engagement.RefNumber != "VAL-260831" || result.Progress != 80 {
		t.Fatalf("expected stored engagement at 80%%, got %+v (%v)", result.Engagement, result.Progress)
	}
}
