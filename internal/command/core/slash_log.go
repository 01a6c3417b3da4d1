package core

import (
	"fmt"
	"strings"

	"github.com/MubtasimTazwer/utility-bot/internal/bot"
	"github.com/MubtasimTazwer/utility-bot/internal/command"
	"github.com/MubtasimTazwer/utility-bot/internal/storage"

	"github.com/bwmarrin/discordgo"
)

const (
	discordMaxMessageLength = 2000
	codeLeftBlockWrapper    = "```md"
	codeRightBlockWrapper   = "```"
)

// The wrapper lengths plus the newline after the opening fence count against
// the message limit.
var maxContentLength = discordMaxMessageLength - len(codeLeftBlockWrapper) - len(codeRightBlockWrapper) - 1

type LogCommand struct{}

func (c *LogCommand) Name() string        { return "log" }
func (c *LogCommand) Description() string { return "Review recently executed commands" }

func (c *LogCommand) Group() string    { return "core" }
func (c *LogCommand) Category() string { return "ℹ️ Core" }

func (c *LogCommand) UserPermissions() []int64 {
	return []int64{discordgo.PermissionManageServer}
}

func (c *LogCommand) SlashDefinition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        c.Name(),
		Description: c.Description(),
		Type:        discordgo.ChatApplicationCommand,
	}
}

func (c *LogCommand) Run(ctx interface{}) error {
	slash, ok := ctx.(*command.SlashContext)
	if !ok {
		return fmt.Errorf("wrong context type")
	}
	s, e := slash.Session, slash.Event

	records, err := slash.Deps.Storage.FetchCommandHistory(e.GuildID)
	if err != nil {
		return command.ExternalRejection("fetch command history", err)
	}
	if len(records) == 0 {
		return bot.RespondEphemeral(s, e, "No command history recorded for this server yet.")
	}

	out := formatHistory(records)
	return bot.RespondEphemeral(s, e, out)
}

// formatHistory renders the journal newest first inside a markdown code
// block, dropping older lines once the message limit is reached.
func formatHistory(records []storage.CommandHistoryRecord) string {
	var builder strings.Builder
	builder.WriteString(fmt.Sprintf("%-19s\t%-15s\t%-12s\t%s\n", "# Datetime", "# Username", "# Channel", "# Command"))

	for idx := len(records) - 1; idx >= 0; idx-- {
		r := records[idx]
		line := fmt.Sprintf(
			"%-19s\t%-15s\t#%-12s\t/%s\n",
			r.Datetime.Format("2006-01-02 15:04:05"),
			r.Username,
			r.ChannelName,
			r.Command,
		)
		if builder.Len()+len(line) > maxContentLength {
			break
		}
		builder.WriteString(line)
	}

	return codeLeftBlockWrapper + "\n" + builder.String() + codeRightBlockWrapper
}

func init() {
	command.Register(command.Apply(
		&LogCommand{},
		command.WithCommandLogger(),
		command.WithUserPermissionCheck(),
		command.WithGuildOnly(),
	))
}
