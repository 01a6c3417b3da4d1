package command

import (
	"github.com/MubtasimTazwer/utility-bot/internal/bot"

	"github.com/bwmarrin/discordgo"
)

type Middleware func(Command) Command

// WrappedCommand decorates a command with a Wrap func while keeping its
// slash definition and component handler reachable through the wrapper.
type WrappedCommand struct {
	Command
	Wrap func(ctx interface{}) error
}

func (w *WrappedCommand) Run(ctx interface{}) error {
	if w.Wrap != nil {
		return w.Wrap(ctx)
	}
	return w.Command.Run(ctx)
}

func (w *WrappedCommand) Component(ctx *ComponentContext) error {
	if w.Wrap != nil {
		return w.Wrap(ctx)
	}
	if ch, ok := w.Command.(ComponentHandler); ok {
		return ch.Component(ctx)
	}
	return nil
}

func (w *WrappedCommand) SlashDefinition() *discordgo.ApplicationCommand {
	if sp, ok := w.Command.(SlashProvider); ok {
		return sp.SlashDefinition()
	}
	return nil
}

// Apply wraps cmd with the given middlewares, innermost first.
func Apply(cmd Command, mws ...Middleware) Command {
	for _, mw := range mws {
		cmd = mw(cmd)
	}
	return cmd
}

// Root unwraps middleware layers down to the original command.
func Root(cmd Command) Command {
	for {
		w, ok := cmd.(*WrappedCommand)
		if !ok {
			return cmd
		}
		cmd = w.Command
	}
}

// WithGuildOnly rejects invocations that arrive outside a guild.
func WithGuildOnly() Middleware {
	return func(cmd Command) Command {
		return &WrappedCommand{
			Command: cmd,
			Wrap: func(ctx interface{}) error {
				var s *discordgo.Session
				var e *discordgo.InteractionCreate
				switch v := ctx.(type) {
				case *SlashContext:
					s, e = v.Session, v.Event
				case *ComponentContext:
					s, e = v.Session, v.Event
				default:
					return dispatch(cmd, ctx)
				}
				if e.GuildID == "" {
					return bot.RespondEphemeral(s, e, "This command only works inside a server.")
				}
				return dispatch(cmd, ctx)
			},
		}
	}
}

// dispatch routes a context to the right handler method on the inner command.
func dispatch(cmd Command, ctx interface{}) error {
	if comp, ok := ctx.(*ComponentContext); ok {
		if ch, isHandler := cmd.(ComponentHandler); isHandler {
			return ch.Component(comp)
		}
		return nil
	}
	return cmd.Run(ctx)
}
