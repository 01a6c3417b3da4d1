package utilities

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/MubtasimTazwer/utility-bot/internal/bot"
	"github.com/MubtasimTazwer/utility-bot/internal/command"
	"github.com/MubtasimTazwer/utility-bot/internal/embed"

	"github.com/bwmarrin/discordgo"
)

type WeatherCommand struct{}

func (c *WeatherCommand) Name() string        { return "weather" }
func (c *WeatherCommand) Description() string { return "Get weather search links for a city" }

func (c *WeatherCommand) Group() string    { return "utilities" }
func (c *WeatherCommand) Category() string { return "🔧 Utilities" }

func (c *WeatherCommand) UserPermissions() []int64 { return nil }

func (c *WeatherCommand) SlashDefinition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        c.Name(),
		Description: c.Description(),
		Type:        discordgo.ChatApplicationCommand,
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "city",
				Description: "The city to get weather links for",
				Required:    true,
			},
		},
	}
}

func (c *WeatherCommand) Run(ctx interface{}) error {
	slash, ok := ctx.(*command.SlashContext)
	if !ok {
		return fmt.Errorf("wrong context type")
	}
	s, e := slash.Session, slash.Event

	city := command.StringOption(command.OptionMap(e), "city", "")
	if strings.TrimSpace(city) == "" {
		return command.Validationf("You must provide a city name.")
	}

	display := titleCase(city)
	query := url.QueryEscape(city)

	links := []string{
		fmt.Sprintf("[Weather.com](https://weather.com/search/enhancedlocalsearch?query=%s)", query),
		fmt.Sprintf("[AccuWeather](https://www.accuweather.com/en/search-locations?query=%s)", query),
		fmt.Sprintf("[Weather Underground](https://www.wunderground.com/weather/%s)", query),
		fmt.Sprintf("[OpenWeatherMap](https://openweathermap.org/find?q=%s)", query),
		fmt.Sprintf("[Google Weather](https://www.google.com/search?q=weather+%s)", query),
	}

	return bot.RespondEmbed(s, e, embed.New().
		Title(fmt.Sprintf("🌤️ Weather for %s", display)).
		Description(fmt.Sprintf("Here are some reliable weather sources for **%s**:", display)).
		Color(embed.ColorInfo).
		Field("🔗 Weather Sources", strings.Join(links, "\n"), false).
		Field("💡 Tip", "Click any link above to get current weather conditions, forecasts, and detailed weather information for your location.", false).
		Footer(fmt.Sprintf("Requested by %s", e.Member.User.Username), e.Member.User.AvatarURL("")).
		Build())
}

func titleCase(s string) string {
	words := strings.Fields(strings.ToLower(s))
	for i, word := range words {
		words[i] = strings.ToUpper(word[:1]) + word[1:]
	}
	return strings.Join(words, " ")
}

func init() {
	command.Register(command.Apply(
		&WeatherCommand{},
		command.WithCommandLogger(),
		command.WithGuildOnly(),
	))
}
