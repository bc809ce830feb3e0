package main

import (
	"context"
	"fmbot/internal/adapters/handler"
	"fmbot/internal/adapters/lastfm"
	"fmbot/internal/adapters/sender"
	"fmbot/internal/adapters/store"
	"fmbot/internal/adapters/weather"
	"fmbot/internal/core/domain/command"
	"fmbot/internal/core/port"
	"fmbot/internal/core/service"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

func main() {
	log.Info().Msg("starting fmbot...")

	loadConfig()

	var logLevel zerolog.Level

	switch viper.GetString("bot.log_level") {
	case "info":
		logLevel = zerolog.InfoLevel
	case "debug":
		logLevel = zerolog.DebugLevel
	default:
		logLevel = zerolog.InfoLevel
	}

	zerolog.SetGlobalLevel(logLevel)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	token := viper.GetString("telegram.bot_token")
	opts := []bot.Option{
		bot.WithDefaultHandler(noOpHandler),
		bot.WithWorkers(viper.GetInt("telegram.workers")),
	}

	b, err := bot.New(token, opts...)
	if err != nil {
		log.Fatal().Err(err).Msg("failed initializing telegram bot")
	}

	s := sender.NewTelegramSender(b)

	bindings, closeStore, err := newBindingStore(viper.GetString("store.driver"), viper.GetString("store.path"))
	if err != nil {
		log.Fatal().Err(err).Msg("failed initializing binding store")
	}
	defer closeStore()

	glyphs, err := weather.LoadGlyphs(viper.GetString("weather.emojis_file"))
	if err != nil {
		log.Fatal().Err(err).Msg("failed loading weather glyphs")
	}

	httpClient := &http.Client{}

	lastfmClient := lastfm.NewClientCustom(httpClient,
		viper.GetString("lastfm.api_key"),
		viper.GetString("lastfm.base_url"),
		viper.GetString("lastfm.station_url"))

	owm := weather.NewOpenWeatherMap(httpClient,
		viper.GetString("weather.base_url"),
		viper.GetString("weather.api_key"),
		"metric", "es")

	resolver := service.NewIdentityResolver(bindings, s)

	commandRegistry := &command.Registry{}

	commandRegistry.Register(command.NewStatic(viper.GetString("bot.start_text"), s, "/start"))
	commandRegistry.Register(command.NewHelp(viper.GetString("bot.help_text"), commandRegistry, s, "/help"))
	commandRegistry.Register(command.NewBind(bindings, s, "/setlastfm"))
	commandRegistry.Register(command.NewNowPlaying(lastfmClient, resolver, s, "/np"))
	commandRegistry.Register(command.NewNowPlaying(lastfmClient, resolver, s, "/npfull"))
	commandRegistry.Register(command.NewRecommend(lastfmClient, resolver, s,
		viper.GetInt("recommend.count"), "/recommend"))
	commandRegistry.Register(command.NewWeather(owm, glyphs, s,
		viper.GetString("weather.default_location"), "/weather"))
	commandRegistry.Register(command.NewShout(s, "/shout"))

	handlerTimeout, err := time.ParseDuration(viper.GetString("handler.timeout"))
	if err != nil {
		log.Fatal().Err(err).Msg("invalid timeout for handler in config")
	}

	me, err := b.GetMe(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("failed fetching bot identity")
	}

	commandHandler := handler.NewCommand(commandRegistry, handlerTimeout, me.Username)

	b.RegisterHandlerMatchFunc(commandHandler.Match, commandHandler.Handle)

	publishCommands(ctx, b, commandRegistry)

	log.Info().Msg("bot listening")
	b.Start(ctx)
}

func loadConfig() {
	if err := godotenv.Load(); err != nil {
		log.Debug().Err(err).Msg("no .env file loaded")
	}

	viper.AddConfigPath(".")
	viper.SetConfigName("config")
	viper.SetConfigType("toml")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	viper.SetDefault("bot.log_level", "info")
	viper.SetDefault("bot.start_text", "Buenas, vengo a reemplazar a otouto. RIP.")
	viper.SetDefault("bot.help_text", "Preguntale a akka.")
	viper.SetDefault("telegram.workers", 4)
	viper.SetDefault("handler.timeout", "30s")
	viper.SetDefault("lastfm.base_url", lastfm.BaseURL)
	viper.SetDefault("lastfm.station_url", lastfm.StationURL)
	viper.SetDefault("recommend.count", 5)
	viper.SetDefault("weather.base_url", weather.BaseURL)
	viper.SetDefault("weather.default_location", "Buenos Aires")
	viper.SetDefault("store.driver", "json")
	viper.SetDefault("store.path", "config/lastfm_users.json")

	log.Info().Msg("reading config file...")
	err := viper.ReadInConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("could not read config file")
	}
}

func newBindingStore(driver, path string) (port.BindingStore, func(), error) {
	switch driver {
	case "sqlite":
		s, err := store.NewSQLite(path)
		if err != nil {
			return nil, nil, err
		}
		return s, func() {
			if err := s.Close(); err != nil {
				log.Warn().Err(err).Msg("failed closing binding store")
			}
		}, nil
	default:
		return store.NewJSON(path), func() {}, nil
	}
}

var commandDescriptions = map[string]string{
	"/start":     "Saludo",
	"/help":      "Ayuda",
	"/setlastfm": "Establecer usuario de last.fm",
	"/np":        "Qué estás escuchando",
	"/npfull":    "Qué estás escuchando",
	"/recommend": "Recomendaciones de last.fm",
	"/weather":   "Clima actual",
	"/shout":     "G R I T A R",
}

func publishCommands(ctx context.Context, b *bot.Bot, registry port.CommandRegistry) {
	var commands []models.BotCommand
	for _, c := range registry.ListCommands() {
		commands = append(commands, models.BotCommand{
			Command:     strings.TrimPrefix(c, "/"),
			Description: commandDescriptions[c],
		})
	}

	_, err := b.SetMyCommands(ctx, &bot.SetMyCommandsParams{Commands: commands})
	if err != nil {
		log.Warn().Err(err).Msg("failed publishing command list")
	}
}

func noOpHandler(_ context.Context, _ *bot.Bot, _ *models.Update) {}
