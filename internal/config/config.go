package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
	"github.com/omarshaarawi/sleeperstats/internal/analytics"
	"github.com/robfig/cron/v3"
)

type Config struct {
	TelegramBot TelegramBot
	Sleeper     Sleeper
	Analytics   Analytics
	Server      Server
}

type TelegramBot struct {
	Token  string `envconfig:"TELEGRAM_TOKEN"`
	ChatID int64  `envconfig:"CHAT_ID"`
}

// Enabled is false when no token is set; reports then go to stdout only.
func (t TelegramBot) Enabled() bool {
	return t.Token != ""
}

type Sleeper struct {
	LeagueIDs     []string `envconfig:"LEAGUE_IDS" required:"true"`
	UsersLeagueID string   `envconfig:"USERS_LEAGUE_ID"`
	MaxWeek       int      `envconfig:"MAX_WEEK" default:"18"`
	MaxRound      int      `envconfig:"MAX_ROUND" default:"18"`
	CacheDir      string   `envconfig:"CACHE_DIR" default:"data"`
	Refresh       bool     `envconfig:"REFRESH" default:"false"`
}

type Analytics struct {
	CloseLossThreshold     float64 `envconfig:"CLOSE_LOSS_THRESHOLD" default:"10"`
	BeanThreshold          int     `envconfig:"BEAN_THRESHOLD" default:"1"`
	LeaderboardSize        int     `envconfig:"LEADERBOARD_SIZE" default:"10"`
	StrictLoserAttribution bool    `envconfig:"STRICT_LOSER_ATTRIBUTION" default:"false"`
}

func (a Analytics) Options() analytics.Options {
	return analytics.Options{
		CloseLossThreshold:     a.CloseLossThreshold,
		BeanThreshold:          a.BeanThreshold,
		LeaderboardSize:        a.LeaderboardSize,
		StrictLoserAttribution: a.StrictLoserAttribution,
	}
}

type Server struct {
	Addr           string `envconfig:"HTTP_ADDR" default:":80"`
	ReportSchedule string `envconfig:"REPORT_SCHEDULE" default:"30 7 * * 2"`
	Timezone       string `envconfig:"TIMEZONE" default:"America/Chicago"`
}

func New() (*Config, error) {
	var c Config
	err := envconfig.Process("", &c)
	if err != nil {
		return nil, err
	}
	if err := c.validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

func (c *Config) validate() error {
	if len(c.Sleeper.LeagueIDs) == 0 {
		return fmt.Errorf("LEAGUE_IDS must list at least one league")
	}
	if c.Sleeper.UsersLeagueID == "" {
		c.Sleeper.UsersLeagueID = c.Sleeper.LeagueIDs[len(c.Sleeper.LeagueIDs)-1]
	}
	if c.Sleeper.MaxWeek < 1 || c.Sleeper.MaxRound < 1 {
		return fmt.Errorf("MAX_WEEK and MAX_ROUND must be positive")
	}
	if c.Analytics.LeaderboardSize < 1 {
		return fmt.Errorf("LEADERBOARD_SIZE must be positive")
	}
	if _, err := cron.ParseStandard(c.Server.ReportSchedule); err != nil {
		return fmt.Errorf("invalid REPORT_SCHEDULE %q: %w", c.Server.ReportSchedule, err)
	}
	return nil
}
