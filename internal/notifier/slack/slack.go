package slack

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/hand-cricket/internal/cricket"
	"github.com/mauv0809/hand-cricket/internal/metrics"
	"github.com/mauv0809/hand-cricket/internal/notifier"
	"github.com/mauv0809/hand-cricket/internal/scorecard"
	"github.com/slack-go/slack"
)

// slackClient is an interface that contains the methods from the slack.Client that we use.
// This allows for easy mocking in tests.
type slackClient interface {
	PostMessageContext(ctx context.Context, channelID string, options ...slack.MsgOption) (string, string, error)
}

var _ notifier.Notifier = &Notifier{}

// Notifier posts user match results and the champion to a Slack channel.
// Other events only update what the final message shows.
type Notifier struct {
	api       slackClient
	channelID string
	metrics   metrics.Metrics
	dryRun    bool

	mu        sync.Mutex
	standings map[string][]cricket.StandingsEntry
}

// NewNotifier creates a new Notifier. In dry run mode messages are logged
// instead of posted.
func NewNotifier(token, channelID string, metrics metrics.Metrics, dryRun bool) *Notifier {
	return NewNotifierWithAPI(slack.New(token), channelID, metrics, dryRun)
}

// NewNotifierWithAPI creates a new Notifier with a specific slack.Client instance.
// Useful for tests that need to intercept API calls.
func NewNotifierWithAPI(api slackClient, channelID string, metrics metrics.Metrics, dryRun bool) *Notifier {
	return &Notifier{
		api:       api,
		channelID: channelID,
		metrics:   metrics,
		dryRun:    dryRun,
		standings: make(map[string][]cricket.StandingsEntry),
	}
}

func (s *Notifier) sendMessage(ctx context.Context, message slack.Message) (string, string, error) {
	if s.dryRun {
		jsonMsg, _ := json.MarshalIndent(message, "", "  ")
		log.Info("[Dry Run] Would send Slack message", "channel", s.channelID, "message", string(jsonMsg))
		return "dry-run-ts", "dry-run-thread-ts", nil
	}

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	channelID, timestamp, err := s.api.PostMessageContext(
		ctx,
		s.channelID,
		slack.MsgOptionBlocks(message.Blocks.BlockSet...),
		slack.MsgOptionAsUser(true),
	)

	if err != nil {
		s.metrics.IncNotifFailed()
		log.Error("Failed to send Slack message", "error", err, "channel", s.channelID)
		return "", "", fmt.Errorf("failed to post message: %w", err)
	}

	s.metrics.IncNotifSent()
	log.Info("Successfully sent Slack message", "channel", channelID, "timestamp", timestamp)
	return channelID, timestamp, nil
}

func (s *Notifier) TournamentStarted(ctx context.Context, info cricket.TournamentInfo) error {
	return nil
}

func (s *Notifier) FixturesChanged(ctx context.Context, tournamentID string, fixtures []cricket.Fixture) error {
	return nil
}

// StandingsChanged keeps the latest table for the champion message.
func (s *Notifier) StandingsChanged(ctx context.Context, tournamentID string, table []cricket.StandingsEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.standings[tournamentID] = table
	return nil
}

// MatchStateChanged posts the result once a user match is decided.
func (s *Notifier) MatchStateChanged(ctx context.Context, tournamentID string, change cricket.MatchChange) error {
	if change.Kind != cricket.ChangeMatchFinished || change.Verdict == nil {
		return nil
	}
	_, _, err := s.sendMessage(ctx, s.formatMatchResult(change))
	return err
}

func (s *Notifier) TournamentCompleted(ctx context.Context, tournamentID string, champion string) error {
	s.mu.Lock()
	table := s.standings[tournamentID]
	delete(s.standings, tournamentID)
	s.mu.Unlock()

	_, _, err := s.sendMessage(ctx, s.formatChampion(champion, table))
	return err
}

// formatMatchResult creates the Slack message for a finished user match using Block Kit.
func (s *Notifier) formatMatchResult(change cricket.MatchChange) slack.Message {
	state := change.State
	blocks := make([]slack.Block, 0)

	// Header
	headerText := slack.NewTextBlockObject("plain_text", "🏏 Match finished! 🏏", true, false)
	blocks = append(blocks, slack.NewHeaderBlock(headerText))

	// Details
	detailsText := fmt.Sprintf("*%s* vs *%s*\n%s", state.UserTeam, state.Opponent, change.Verdict.Result)
	blocks = append(blocks, slack.NewSectionBlock(slack.NewTextBlockObject("mrkdwn", detailsText, false, false), nil, nil))

	// Context
	var outcome string
	switch {
	case change.Verdict.Tie:
		outcome = "🤝 It's a tie"
	case change.Verdict.Winner == state.UserTeam:
		outcome = fmt.Sprintf("🎉 %s won by %d runs", state.UserTeam, change.Verdict.Margin)
	default:
		outcome = fmt.Sprintf("😞 %s lost by %d runs", state.UserTeam, change.Verdict.Margin)
	}
	contextText := fmt.Sprintf("%s · %s %d · %s %d", outcome, state.UserTeam, state.UserScore, state.Opponent, state.OpponentScore)
	blocks = append(blocks, slack.NewContextBlock("", slack.NewTextBlockObject("plain_text", contextText, true, false)))

	return slack.NewBlockMessage(blocks...)
}

// formatChampion creates the Slack message announcing the champion, with the
// final league table when one is known. An empty champion means the playoffs
// never took place.
func (s *Notifier) formatChampion(champion string, table []cricket.StandingsEntry) slack.Message {
	blocks := make([]slack.Block, 0)

	headerText := slack.NewTextBlockObject("plain_text", "🏆 Tournament complete! 🏆", true, false)
	blocks = append(blocks, slack.NewHeaderBlock(headerText))

	championText := fmt.Sprintf("*%s* are the champions!", champion)
	if champion == "" {
		championText = "Not enough teams for playoffs. No champion this time."
	}
	blocks = append(blocks, slack.NewSectionBlock(slack.NewTextBlockObject("mrkdwn", championText, false, false), nil, nil))

	if len(table) > 0 {
		blocks = append(blocks, slack.NewDividerBlock())
		blocks = append(blocks, slack.NewSectionBlock(slack.NewTextBlockObject("mrkdwn", formatTable(table), false, false), nil, nil))
	}

	return slack.NewBlockMessage(blocks...)
}

func formatTable(table []cricket.StandingsEntry) string {
	var b strings.Builder
	b.WriteString("```\n")
	scorecard.WriteTable(&b, table)
	b.WriteString("```")
	return b.String()
}
