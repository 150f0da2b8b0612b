package scheduler

import (
	"context"
	"errors"
	"testing"
)

type fakeReporter struct {
	tradesErr error
	refreshed int
}

func (f *fakeReporter) GetMatchupReport(ctx context.Context) (string, error) { return "matchups", nil }
func (f *fakeReporter) GetTradeReport(ctx context.Context) (string, error)   { return "", f.tradesErr }
func (f *fakeReporter) GetWaiverReport(ctx context.Context) (string, error)  { return "waivers", nil }
func (f *fakeReporter) GetPlayerReport(ctx context.Context, name string) (string, error) {
	return name, nil
}
func (f *fakeReporter) Refresh(ctx context.Context) error {
	f.refreshed++
	return nil
}

func TestSendReports_SkipsFailures(t *testing.T) {
	var sent []string
	rep := &fakeReporter{tradesErr: errors.New("boom")}
	s, err := NewScheduler(rep, func(text string) error {
		sent = append(sent, text)
		return nil
	}, "30 7 * * 2", "America/Chicago")
	if err != nil {
		t.Fatalf("NewScheduler: %v", err)
	}

	s.sendReports()
	if len(sent) != 2 || sent[0] != "matchups" || sent[1] != "waivers" {
		t.Errorf("sent = %v, want [matchups waivers]", sent)
	}

	s.refresh()
	if rep.refreshed != 1 {
		t.Errorf("refreshed %d times, want 1", rep.refreshed)
	}
}

func TestStart_InvalidSchedule(t *testing.T) {
	s, err := NewScheduler(&fakeReporter{}, func(string) error { return nil }, "not a cron", "Nowhere/Invalid")
	if err != nil {
		t.Fatalf("NewScheduler: %v", err)
	}

	if err := s.Start(); err == nil {
		t.Error("expected error for invalid schedule")
	}
}
