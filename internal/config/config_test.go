package config

import (
	"testing"
)

func TestNew_Defaults(t *testing.T) {
	t.Setenv("LEAGUE_IDS", "111,222")

	cfg, err := New()
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if len(cfg.Sleeper.LeagueIDs) != 2 {
		t.Errorf("LeagueIDs = %v, want 2 ids", cfg.Sleeper.LeagueIDs)
	}
	if cfg.Sleeper.UsersLeagueID != "222" {
		t.Errorf("UsersLeagueID = %q, want last league 222", cfg.Sleeper.UsersLeagueID)
	}
	if cfg.Sleeper.MaxWeek != 18 || cfg.Sleeper.CacheDir != "data" {
		t.Errorf("Sleeper = %+v", cfg.Sleeper)
	}
	if cfg.Analytics.CloseLossThreshold != 10 || cfg.Analytics.BeanThreshold != 1 || cfg.Analytics.LeaderboardSize != 10 {
		t.Errorf("Analytics = %+v", cfg.Analytics)
	}
	if cfg.TelegramBot.Enabled() {
		t.Error("TelegramBot enabled without a token")
	}
}

func TestNew_Overrides(t *testing.T) {
	t.Setenv("LEAGUE_IDS", "111")
	t.Setenv("USERS_LEAGUE_ID", "999")
	t.Setenv("STRICT_LOSER_ATTRIBUTION", "true")
	t.Setenv("TELEGRAM_TOKEN", "token")
	t.Setenv("CHAT_ID", "42")

	cfg, err := New()
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if cfg.Sleeper.UsersLeagueID != "999" {
		t.Errorf("UsersLeagueID = %q, want 999", cfg.Sleeper.UsersLeagueID)
	}
	if !cfg.Analytics.StrictLoserAttribution {
		t.Error("StrictLoserAttribution = false, want true")
	}
	if !cfg.TelegramBot.Enabled() || cfg.TelegramBot.ChatID != 42 {
		t.Errorf("TelegramBot = %+v", cfg.TelegramBot)
	}
}

func TestNew_MissingLeagues(t *testing.T) {
	t.Setenv("LEAGUE_IDS", "")

	if _, err := New(); err == nil {
		t.Fatal("expected error without LEAGUE_IDS")
	}
}

func TestNew_BadSchedule(t *testing.T) {
	t.Setenv("LEAGUE_IDS", "111")
	t.Setenv("REPORT_SCHEDULE", "every tuesday")

	if _, err := New(); err == nil {
		t.Fatal("expected error for invalid REPORT_SCHEDULE")
	}
}

func TestAnalytics_Options(t *testing.T) {
	t.Setenv("LEAGUE_IDS", "111")
	t.Setenv("CLOSE_LOSS_THRESHOLD", "7.5")
	t.Setenv("BEAN_THRESHOLD", "2")

	cfg, err := New()
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	opts := cfg.Analytics.Options()
	if opts.CloseLossThreshold != 7.5 || opts.BeanThreshold != 2 || opts.LeaderboardSize != 10 || opts.StrictLoserAttribution {
		t.Errorf("Options() = %+v", opts)
	}
	if cfg.Server.Timezone != "America/Chicago" {
		t.Errorf("Timezone = %q", cfg.Server.Timezone)
	}
}
