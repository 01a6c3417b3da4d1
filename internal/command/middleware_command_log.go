package command

import (
	"log"

	"github.com/MubtasimTazwer/utility-bot/internal/bot"
)

// WithCommandLogger records each slash invocation to the per-guild history
// journal after the command runs. Component clicks are not journaled; they
// are navigation, not commands.
func WithCommandLogger() Middleware {
	return func(cmd Command) Command {
		return &WrappedCommand{
			Command: cmd,
			Wrap: func(ctx interface{}) error {
				err := dispatch(cmd, ctx)

				if v, ok := ctx.(*SlashContext); ok && v.Deps != nil && v.Deps.Storage != nil && v.Event.GuildID != "" {
					user := bot.ResolveUser(v.Event)
					if logErr := bot.LogCommand(v.Session, v.Deps.Storage, v.Event.GuildID, v.Event.ChannelID, user.ID, user.Username, Root(cmd).Name()); logErr != nil {
						log.Printf("[WARN] Failed to log command /%s: %v", Root(cmd).Name(), logErr)
					}
				}
				return err
			},
		}
	}
}
