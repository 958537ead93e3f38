// Package bot wires the scoring pipeline to Discord: gateway lifecycle,
// slash-command registration, and the /score interaction flow.
package bot

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"

	"github.com/rivertam/pants-off-podrick/internal/analyzer"
	"github.com/rivertam/pants-off-podrick/internal/data/fetcher"
	"github.com/rivertam/pants-off-podrick/internal/data/identity"
	"github.com/rivertam/pants-off-podrick/internal/util"
)

// resolveConcurrency bounds in-flight display-name lookups.
const resolveConcurrency = 8

type Config struct {
	Token     string
	GuildID   string
	ChannelID string
}

type Bot struct {
	config   *Config
	session  *discordgo.Session
	analyzer *analyzer.Analyzer
	fetcher  *fetcher.Fetcher
	resolver identity.Resolver
}

func New(config *Config, a *analyzer.Analyzer) (*Bot, error) {
	session, err := discordgo.New("Bot " + config.Token)
	if err != nil {
		return nil, fmt.Errorf("creating Discord session: %w", err)
	}
	session.Identify.Intents = discordgo.IntentsGuildMessages | discordgo.IntentMessageContent

	b := &Bot{
		config:   config,
		session:  session,
		analyzer: a,
		fetcher:  fetcher.New(session),
		resolver: identity.NewDiscordResolver(session),
	}

	session.AddHandler(b.onReady)
	session.AddHandler(b.onMessageCreate)
	session.AddHandler(b.onInteractionCreate)

	return b, nil
}

// Start opens the gateway connection and blocks until ctx is cancelled.
func (b *Bot) Start(ctx context.Context) error {
	if err := b.session.Open(); err != nil {
		return fmt.Errorf("opening gateway connection: %w", err)
	}
	defer b.session.Close()

	<-ctx.Done()
	util.LogInfo("Shutting down")
	return nil
}

// Score fetches the channel history, resolves author names, and renders the
// report. Unresolvable authors keep their raw id as the row label.
func (b *Bot) Score(ctx context.Context, full bool) (string, error) {
	msgs, err := b.fetcher.Fetch(ctx, b.config.ChannelID)
	if err != nil {
		return "", err
	}

	result, err := b.analyzer.Aggregate(msgs)
	if err != nil {
		return "", err
	}

	names, failures := identity.ResolveAll(ctx, b.resolver, result.Authors, resolveConcurrency)
	for _, ferr := range failures {
		util.LogWarn(ferr.Error())
	}

	table := b.analyzer.RenderTable(result, names, full)
	return "\n```\n" + table + "\n```", nil
}

func (b *Bot) onReady(s *discordgo.Session, r *discordgo.Ready) {
	util.LogInfo(fmt.Sprintf("%s is connected", r.User.Username))

	cmd, err := s.ApplicationCommandCreate(s.State.User.ID, b.config.GuildID, &discordgo.ApplicationCommand{
		Name:        "score",
		Description: "post the pants-off score",
	})
	if err != nil {
		util.LogError(fmt.Sprintf("Failed to register score command: %v", err))
		return
	}
	util.LogInfo(fmt.Sprintf("Registered command %q", cmd.Name))

	// Full report on startup, logged rather than posted, so a bad deploy
	// is visible without spamming the channel.
	report, err := b.Score(context.Background(), true)
	if err != nil {
		util.LogError(fmt.Sprintf("Startup score failed: %v", err))
		return
	}
	util.LogInfo("Startup score:" + report)
}

func (b *Bot) onMessageCreate(s *discordgo.Session, m *discordgo.MessageCreate) {
	if m.Author == nil || m.Author.ID == s.State.User.ID {
		return
	}
	if m.Content == "!hello" {
		if _, err := s.ChannelMessageSend(m.ChannelID, "world!"); err != nil {
			util.LogError(fmt.Sprintf("Error sending message: %v", err))
		}
	}
}

func (b *Bot) onInteractionCreate(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.Type != discordgo.InteractionApplicationCommand {
		return
	}
	if i.ApplicationCommandData().Name != "score" {
		util.LogWarn(fmt.Sprintf("Unknown command: %s", i.ApplicationCommandData().Name))
		return
	}

	// Counting the whole history outlasts the 3-second interaction window,
	// so defer first and edit the response once the report is ready.
	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredChannelMessageWithSource,
	})
	if err != nil {
		util.LogError(fmt.Sprintf("Cannot respond to slash command: %v", err))
		return
	}

	if err := s.ChannelTyping(b.config.ChannelID); err != nil {
		util.LogWarn(fmt.Sprintf("Failed to start typing: %v", err))
	}

	util.LogInfo("Counting...")

	report, err := b.Score(context.Background(), false)
	if err != nil {
		report = fmt.Sprintf("Failed to compute score: %v", err)
		util.LogError(report)
	}

	if _, err := s.InteractionResponseEdit(i.Interaction, &discordgo.WebhookEdit{
		Content: &report,
	}); err != nil {
		util.LogError(fmt.Sprintf("Failed to edit interaction response: %v", err))
	}
}
