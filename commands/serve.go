package commands

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/rivertam/pants-off-podrick/internal/analyzer"
	"github.com/rivertam/pants-off-podrick/internal/bot"
	"github.com/rivertam/pants-off-podrick/internal/util"
)

var (
	botToken  string
	guildID   string
	channelID string

	serveCmd = &cobra.Command{
		Use:   "serve",
		Short: "Run the Discord bot",
		Long: `Connects to the Discord gateway, registers the /score slash command on the
configured guild, and answers it with the monthly compliance report.

Credentials default to the DISCORD_TOKEN, GUILD_ID and PANTS_OFF_CHANNEL_ID
environment variables.`,
		RunE: runServe,
	}
)

func init() {
	serveCmd.Flags().StringVar(&botToken, "token", "",
		"Discord bot token (default $DISCORD_TOKEN)")
	serveCmd.Flags().StringVar(&guildID, "guild", "",
		"Guild to register the /score command on (default $GUILD_ID)")
	serveCmd.Flags().StringVar(&channelID, "channel", "",
		"Channel whose history is scored (default $PANTS_OFF_CHANNEL_ID)")

	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	if botToken == "" {
		botToken = os.Getenv("DISCORD_TOKEN")
	}
	if guildID == "" {
		guildID = os.Getenv("GUILD_ID")
	}
	if channelID == "" {
		channelID = os.Getenv("PANTS_OFF_CHANNEL_ID")
	}

	if botToken == "" {
		return fmt.Errorf("'DISCORD_TOKEN' was not found")
	}
	if guildID == "" {
		return fmt.Errorf("'GUILD_ID' was not found")
	}
	if channelID == "" {
		return fmt.Errorf("'PANTS_OFF_CHANNEL_ID' was not found")
	}

	a, err := analyzer.New(&analyzer.Config{Timezone: timezone})
	if err != nil {
		return err
	}

	b, err := bot.New(&bot.Config{
		Token:     botToken,
		GuildID:   guildID,
		ChannelID: channelID,
	}, a)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	util.LogInfo("Starting bot")
	return b.Start(ctx)
}
