// cmd/claimscope/bot.go
package main

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"
)

// Bot is the optional Discord surface: a /factcheck slash command that runs
// the same pipeline as the web page
type Bot struct {
	cfg     *Config
	checker *Checker
	discord *discordgo.Session
}

var botCommands = []*discordgo.ApplicationCommand{
	{
		Name:        "factcheck",
		Description: "Analyze a claim for credibility",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "claim",
				Description: "The claim to verify",
				Required:    true,
			},
		},
	},
}

// NewBot creates a Discord bot instance
func NewBot(cfg *Config, checker *Checker) (*Bot, error) {
	discord, err := discordgo.New("Bot " + cfg.BotToken)
	if err != nil {
		return nil, fmt.Errorf("failed to create Discord session: %v", err)
	}

	return &Bot{
		cfg:     cfg,
		checker: checker,
		discord: discord,
	}, nil
}

// Start connects to Discord and registers the slash commands
func (b *Bot) Start() error {
	b.discord.AddHandler(b.handleReady)
	b.discord.AddHandler(b.handleInteraction)

	if err := b.discord.Open(); err != nil {
		return fmt.Errorf("failed to open Discord connection: %v", err)
	}

	return b.registerCommands()
}

// Stop closes the Discord connection
func (b *Bot) Stop() {
	if b.discord != nil {
		b.discord.Close()
	}
}

// registerCommands registers all slash commands
func (b *Bot) registerCommands() error {
	for _, cmd := range botCommands {
		_, err := b.discord.ApplicationCommandCreate(b.discord.State.User.ID, b.cfg.GuildID, cmd)
		if err != nil {
			return fmt.Errorf("failed to create command %s: %v", cmd.Name, err)
		}
	}
	return nil
}

func (b *Bot) handleReady(s *discordgo.Session, r *discordgo.Ready) {
	Logger().Info("Discord connected as %s", r.User.Username)
}

func (b *Bot) handleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.Type != discordgo.InteractionApplicationCommand {
		return
	}

	data := i.ApplicationCommandData()
	if data.Name != "factcheck" {
		return
	}

	claim := data.Options[0].StringValue()
	if !ValidateClaim(claim) {
		countRejection()
		b.respondEphemeral(s, i, invalidClaimMessage)
		return
	}

	// The pipeline takes longer than Discord's 3 second interaction window,
	// so defer and edit the response when the check completes.
	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredChannelMessageWithSource,
	})
	if err != nil {
		RecordError("discord", err)
		return
	}

	go func() {
		defer RecoverFromPanic("discord-factcheck")

		result := b.checker.Check(context.Background(), claim)
		embed := buildResultEmbed(result)

		_, err := s.InteractionResponseEdit(i.Interaction, &discordgo.WebhookEdit{
			Embeds: &[]*discordgo.MessageEmbed{embed},
		})
		if err != nil {
			RecordError("discord", err)
		}
	}()
}

func (b *Bot) respondEphemeral(s *discordgo.Session, i *discordgo.InteractionCreate, message string) {
	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: message,
			Flags:   discordgo.MessageFlagsEphemeral,
		},
	})
	if err != nil {
		RecordError("discord", err)
	}
}

// buildResultEmbed formats a check result as a Discord embed
func buildResultEmbed(result *CheckResult) *discordgo.MessageEmbed {
	analysis := result.Analysis

	embed := &discordgo.MessageEmbed{
		Title:       "Fact Check",
		Description: result.Claim,
		Color:       scoreColor(analysis.CredibilityScore),
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Credibility Score", Value: fmt.Sprintf("%d/10", analysis.CredibilityScore), Inline: true},
			{Name: "Verdict", Value: analysis.Verdict, Inline: true},
			{Name: "Confidence", Value: analysis.Confidence, Inline: true},
			{Name: "Analysis", Value: truncate(analysis.Explanation, 1024)},
		},
		Footer: &discordgo.MessageEmbedFooter{
			Text: fmt.Sprintf("%s v%s", AppName, AppVersion),
		},
	}

	for idx, source := range result.Sources {
		if idx >= 3 {
			break
		}
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:  fmt.Sprintf("Source %d", idx+1),
			Value: fmt.Sprintf("[%s](%s)", truncate(source.Title, 200), source.Link),
		})
	}

	return embed
}

// scoreColor maps a credibility score to an embed color
func scoreColor(score int) int {
	switch {
	case score >= 7:
		return 0x2ECC71 // green
	case score >= 4:
		return 0xE67E22 // orange
	default:
		return 0xE74C3C // red
	}
}

// truncate shortens a string to fit Discord field limits
func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
