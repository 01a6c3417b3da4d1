package discord

import (
	"testing"

	"github.com/MubtasimTazwer/utility-bot/internal/command"
	"github.com/MubtasimTazwer/utility-bot/internal/config"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type captureCommand struct {
	slash     *command.SlashContext
	component *command.ComponentContext
}

func (c *captureCommand) Name() string             { return "capture" }
func (c *captureCommand) Description() string      { return "records the contexts it receives" }
func (c *captureCommand) Group() string            { return "test" }
func (c *captureCommand) Category() string         { return "test" }
func (c *captureCommand) UserPermissions() []int64 { return nil }

func (c *captureCommand) Run(ctx interface{}) error {
	c.slash, _ = ctx.(*command.SlashContext)
	return nil
}

func (c *captureCommand) Component(ctx *command.ComponentContext) error {
	c.component = ctx
	return nil
}

func TestSlashDispatchSharesDeps(t *testing.T) {
	cmd := &captureCommand{}
	command.Register(cmd)

	deps := &command.Deps{Cfg: &config.Config{}}
	b := &Bot{cfg: deps.Cfg, deps: deps}

	s := &discordgo.Session{}
	i := &discordgo.InteractionCreate{
		Interaction: &discordgo.Interaction{
			Type: discordgo.InteractionApplicationCommand,
			Data: discordgo.ApplicationCommandInteractionData{Name: "capture"},
		},
	}

	b.onInteractionCreate(s, i)

	require.NotNil(t, cmd.slash)
	assert.Same(t, deps, cmd.slash.Deps)
	assert.Same(t, s, cmd.slash.Session)
	assert.Same(t, i, cmd.slash.Event)
}

func TestComponentDispatchRoutesByPrefix(t *testing.T) {
	cmd := &captureCommand{}
	command.Register(cmd)

	deps := &command.Deps{Cfg: &config.Config{}}
	b := &Bot{cfg: deps.Cfg, deps: deps}

	s := &discordgo.Session{}
	i := &discordgo.InteractionCreate{
		Interaction: &discordgo.Interaction{
			Type: discordgo.InteractionMessageComponent,
			Data: discordgo.MessageComponentInteractionData{CustomID: "capture_button_1"},
		},
	}

	b.onInteractionCreate(s, i)

	require.NotNil(t, cmd.component)
	assert.Same(t, deps, cmd.component.Deps)
}
