package service

import (
	"context"
	"strings"

	"github.com/omarshaarawi/sleeperstats/internal/models"
)

// Telegram's legacy Markdown has no escapes inside an entity, so
// user-supplied text is kept outside bold spans and escaped here.
var markdownEscaper = strings.NewReplacer("_", "\\_", "*", "\\*", "`", "\\`", "[", "\\[")

func escapeMarkdown(s string) string {
	return markdownEscaper.Replace(s)
}

func (s *StatsService) GetMatchupReport(ctx context.Context) (string, error) {
	report, err := s.MatchupReport(ctx)
	if err != nil {
		return "", err
	}
	return s.formatMatchupReport(report), nil
}

func (s *StatsService) GetTradeReport(ctx context.Context) (string, error) {
	report, err := s.TradeReport(ctx)
	if err != nil {
		return "", err
	}
	return s.formatTradeReport(report), nil
}

func (s *StatsService) GetWaiverReport(ctx context.Context) (string, error) {
	report, err := s.WaiverReport(ctx)
	if err != nil {
		return "", err
	}
	return s.formatWaiverReport(report), nil
}

func (s *StatsService) GetPlayerReport(ctx context.Context, name string) (string, error) {
	season, err := s.PlayerLookup(ctx, name)
	if err != nil {
		return "", err
	}
	return s.formatPlayerSeason(season), nil
}

func (s *StatsService) formatMatchupReport(r models.MatchupReport) string {
	p := s.printer
	var sb strings.Builder

	sb.WriteString("📊 *Season Points by Position*\n\n")
	for _, m := range r.Metrics {
		sb.WriteString(p.Sprintf("%s: %.2f total\n", escapeMarkdown(m.Name), m.TotalPoints))
		sb.WriteString(p.Sprintf("   QB %.2f | RB %.2f | WR %.2f | TE %.2f\n", m.QBPoints, m.RBPoints, m.WRPoints, m.TEPoints))
		sb.WriteString(p.Sprintf("   🍩 %d\n", m.NumDonuts))
	}

	sb.WriteString("\n🏆 *Season Leaders*\n")
	for _, l := range r.Leaders {
		sb.WriteString(p.Sprintf("%s: %s (%.2f)\n", l.Category, escapeMarkdown(l.Name), l.Value))
	}

	writeStarters(&sb, s, "🍩 *Most Donuts*", r.Peaks.MostDonuts, true)
	writeStarters(&sb, s, "🔥 *Highest Single Game*", r.Peaks.HighestPeak, false)
	writeStarters(&sb, s, "*Top QB Games*", r.Peaks.PeakQB, false)
	writeStarters(&sb, s, "*Top RB Games*", r.Peaks.PeakRB, false)
	writeStarters(&sb, s, "*Top WR Games*", r.Peaks.PeakWR, false)
	writeStarters(&sb, s, "*Top TE Games*", r.Peaks.PeakTE, false)

	sb.WriteString("\n😬 *Closest Loss*\n")
	if r.ClosestLoss.Found {
		sb.WriteString(p.Sprintf("%s lost by %.2f in week %d\n", escapeMarkdown(r.ClosestLoss.Loser), r.ClosestLoss.Margin, r.ClosestLoss.Week))
	} else {
		sb.WriteString("No completed matchups yet.\n")
	}

	sb.WriteString("\n*Close Losses*\n")
	for _, c := range r.CloseLosses {
		sb.WriteString(p.Sprintf("%s: %d\n", escapeMarkdown(c.Name), c.Count))
	}

	if len(r.Alliterative) > 0 {
		sb.WriteString("\n*Alliteration All-Stars*\n")
		sb.WriteString(escapeMarkdown(strings.Join(r.Alliterative, ", ")))
		sb.WriteString("\n")
	}

	return sb.String()
}

func writeStarters(sb *strings.Builder, s *StatsService, title string, starters []models.Starter, donuts bool) {
	sb.WriteString("\n" + title + "\n")
	for i, st := range starters {
		if donuts {
			sb.WriteString(s.printer.Sprintf("%d. %s %s (%d)\n", i+1, st.Position, escapeMarkdown(st.Name), st.NumDonuts))
		} else {
			sb.WriteString(s.printer.Sprintf("%d. %s %s (%.2f)\n", i+1, st.Position, escapeMarkdown(st.Name), st.MaxMatchupPoints))
		}
	}
}

func (s *StatsService) formatTradeReport(r models.TradeReport) string {
	p := s.printer
	var sb strings.Builder

	sb.WriteString("🔄 *Trades*\n\n")
	for _, u := range r.Users {
		sb.WriteString(p.Sprintf("%s: %d trades (QB %d, RB %d, WR %d, TE %d)\n", escapeMarkdown(u.Name), u.Trades, u.QB, u.RB, u.WR, u.TE))
	}

	writeCounts(&sb, s, "📈 *Most Traded*", r.MostTraded)
	writeCounts(&sb, s, "*Most Traded RBs*", r.MostTradedRB)
	writeCounts(&sb, s, "*Most Traded QBs*", r.MostTradedQB)
	writeCounts(&sb, s, "🗑 *Most Dropped*", r.MostDropped)

	sb.WriteString("\n🫘 *Beans*\n")
	for _, b := range r.Beans {
		sb.WriteString(p.Sprintf("%s: received %d, spent %d\n", escapeMarkdown(b.Name), b.Received, b.Spent))
	}

	return sb.String()
}

func writeCounts(sb *strings.Builder, s *StatsService, title string, counts []models.PlayerCount) {
	sb.WriteString("\n" + title + "\n")
	if len(counts) == 0 {
		sb.WriteString("None\n")
		return
	}
	for i, c := range counts {
		sb.WriteString(s.printer.Sprintf("%d. %s %s (%d)\n", i+1, c.Position, escapeMarkdown(c.Name), c.Count))
	}
}

func (s *StatsService) formatWaiverReport(r models.WaiverReport) string {
	p := s.printer
	var sb strings.Builder

	sb.WriteString("📝 *Waivers*\n\n")
	for _, u := range r.Users {
		sb.WriteString(p.Sprintf("%s: %d claims, $%d bid\n", escapeMarkdown(u.Name), u.Waivers, u.BidTotal))
		sb.WriteString(p.Sprintf("   QB %d | RB %d | WR %d | TE %d\n", u.QB, u.RB, u.WR, u.TE))
	}
	return sb.String()
}

func (s *StatsService) formatPlayerSeason(season models.PlayerSeason) string {
	if !season.Found {
		return s.printer.Sprintf("🔍 No player found matching '%s'.", escapeMarkdown(season.Query))
	}

	p := s.printer
	var sb strings.Builder
	sb.WriteString(p.Sprintf("%s (%s)\n", escapeMarkdown(season.Name), season.Position))
	sb.WriteString("━━━━━━━━━━━━━━━━\n")
	if season.RosteredBy != "" {
		sb.WriteString(p.Sprintf("Rostered by %s\n", escapeMarkdown(season.RosteredBy)))
	} else {
		sb.WriteString("Free Agent\n")
	}
	sb.WriteString(p.Sprintf("\n%d starts\n", season.Starts))
	sb.WriteString(p.Sprintf("Best game: %.2f pts\n", season.MaxMatchupPoints))
	sb.WriteString(p.Sprintf("🍩 %d", season.NumDonuts))
	return sb.String()
}
