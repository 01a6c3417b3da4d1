package command

import (
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCommand struct {
	ran int
}

func (c *fakeCommand) Name() string             { return "fake" }
func (c *fakeCommand) Description() string      { return "test double" }
func (c *fakeCommand) Group() string            { return "test" }
func (c *fakeCommand) Category() string         { return "Test" }
func (c *fakeCommand) UserPermissions() []int64 { return nil }
func (c *fakeCommand) Run(ctx interface{}) error {
	c.ran++
	return nil
}
func (c *fakeCommand) SlashDefinition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{Name: c.Name(), Description: c.Description()}
}

func TestApplyOrderAndRoot(t *testing.T) {
	inner := &fakeCommand{}
	var order []string
	first := func(cmd Command) Command {
		return &WrappedCommand{Command: cmd, Wrap: func(ctx interface{}) error {
			order = append(order, "first")
			return dispatch(cmd, ctx)
		}}
	}
	second := func(cmd Command) Command {
		return &WrappedCommand{Command: cmd, Wrap: func(ctx interface{}) error {
			order = append(order, "second")
			return dispatch(cmd, ctx)
		}}
	}

	wrapped := Apply(inner, first, second)
	require.NoError(t, wrapped.Run(&SlashContext{}))

	assert.Equal(t, []string{"second", "first"}, order)
	assert.Equal(t, 1, inner.ran)
	assert.Same(t, inner, Root(wrapped))
}

func TestWrappedCommandKeepsSlashDefinition(t *testing.T) {
	wrapped := Apply(&fakeCommand{}, WithGuildOnly())
	sp, ok := wrapped.(SlashProvider)
	require.True(t, ok)
	require.NotNil(t, sp.SlashDefinition())
	assert.Equal(t, "fake", sp.SlashDefinition().Name)
}

func TestRegistry(t *testing.T) {
	cmd := &fakeCommand{}
	Register(cmd)

	got, ok := Get("fake")
	require.True(t, ok)
	assert.Same(t, Command(cmd), got)

	names := map[string]bool{}
	for _, c := range All() {
		names[c.Name()] = true
	}
	assert.True(t, names["fake"])
}

func TestPermissionNamesCoverModerationBits(t *testing.T) {
	for _, bit := range []int64{
		discordgo.PermissionKickMembers,
		discordgo.PermissionBanMembers,
		discordgo.PermissionManageServer,
		discordgo.PermissionManageMessages,
		discordgo.PermissionManageRoles,
		discordgo.PermissionModerateMembers,
	} {
		assert.NotEmpty(t, PermissionNames[bit], "missing label for bit %d", bit)
	}
}
