package command

import (
	"github.com/MubtasimTazwer/utility-bot/internal/config"
	"github.com/MubtasimTazwer/utility-bot/internal/football"
	"github.com/MubtasimTazwer/utility-bot/internal/polls"
	"github.com/MubtasimTazwer/utility-bot/internal/reminders"
	"github.com/MubtasimTazwer/utility-bot/internal/scores"
	"github.com/MubtasimTazwer/utility-bot/internal/storage"

	"github.com/bwmarrin/discordgo"
)

// Command is what every bot command implements. Run receives either a
// *SlashContext or a *ComponentContext depending on how it was triggered.
type Command interface {
	Name() string
	Description() string
	Group() string
	Category() string
	UserPermissions() []int64
	Run(ctx interface{}) error
}

// SlashProvider is implemented by commands that register a slash definition
// with Discord.
type SlashProvider interface {
	SlashDefinition() *discordgo.ApplicationCommand
}

// ComponentHandler is implemented by commands that own message components
// (buttons, select menus). A component interaction routes to the command
// whose name prefixes the custom ID.
type ComponentHandler interface {
	Component(ctx *ComponentContext) error
}

// Deps carries the shared services commands need. The dispatcher builds one
// at startup and threads it through every context.
type Deps struct {
	Cfg       *config.Config
	Storage   *storage.Storage
	Polls     polls.Store
	Reminders *reminders.Scheduler
	Scores    *scores.Manager
	Football  *football.Client
}

type SlashContext struct {
	Session *discordgo.Session
	Event   *discordgo.InteractionCreate
	Deps    *Deps
}

type ComponentContext struct {
	Session *discordgo.Session
	Event   *discordgo.InteractionCreate
	Deps    *Deps
}
