package storage

import (
	"path/filepath"
	"testing"
	"time"

	"futures_go/internal/domain"
)

func setupTestJournal(t *testing.T) *Journal {
	j, err := openJournal(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to open test journal: %v", err)
	}
	return j
}

func TestAppendAndRecentEvents(t *testing.T) {
	j := setupTestJournal(t)

	stages := []string{domain.StageRequest, domain.StageResponse}
	for i, stage := range stages {
		ev := &domain.OrderEvent{
			At:        time.Now(),
			Stage:     stage,
			Operation: domain.OpPlace,
			Symbol:    "BTCUSDT",
			OrderID:   int64(100 + i),
			Detail:    "detail " + stage,
		}
		if err := j.AppendEvent(ev); err != nil {
			t.Fatalf("AppendEvent failed: %v", err)
		}
	}

	events, err := j.RecentEvents(10)
	if err != nil {
		t.Fatalf("RecentEvents failed: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(events))
	}

	// Newest first
	if events[0].Stage != domain.StageResponse {
		t.Errorf("expected RESPONSE first, got %s", events[0].Stage)
	}
	if events[1].Stage != domain.StageRequest {
		t.Errorf("expected REQUEST second, got %s", events[1].Stage)
	}
}

func TestRecentEventsLimit(t *testing.T) {
	j := setupTestJournal(t)

	for i := 0; i < 5; i++ {
		ev := &domain.OrderEvent{
			At:        time.Now(),
			Stage:     domain.StageRequest,
			Operation: domain.OpPlace,
			Symbol:    "ETHUSDT",
		}
		if err := j.AppendEvent(ev); err != nil {
			t.Fatalf("AppendEvent failed: %v", err)
		}
	}

	events, err := j.RecentEvents(3)
	if err != nil {
		t.Fatalf("RecentEvents failed: %v", err)
	}
	if len(events) != 3 {
		t.Errorf("expected 3 events, got %d", len(events))
	}
}

func TestEventsForSymbol(t *testing.T) {
	j := setupTestJournal(t)

	for _, sym := range []string{"BTCUSDT", "ETHUSDT", "BTCUSDT"} {
		ev := &domain.OrderEvent{
			At:        time.Now(),
			Stage:     domain.StageRequest,
			Operation: domain.OpPlace,
			Symbol:    sym,
		}
		if err := j.AppendEvent(ev); err != nil {
			t.Fatalf("AppendEvent failed: %v", err)
		}
	}

	events, err := j.EventsForSymbol("BTCUSDT", 10)
	if err != nil {
		t.Fatalf("EventsForSymbol failed: %v", err)
	}
	if len(events) != 2 {
		t.Errorf("expected 2 BTCUSDT events, got %d", len(events))
	}
	for _, ev := range events {
		if ev.Symbol != "BTCUSDT" {
			t.Errorf("unexpected symbol %s", ev.Symbol)
		}
	}
}

func TestJournalImplementsInterface(t *testing.T) {
	var _ domain.Journal = (*Journal)(nil)
}
