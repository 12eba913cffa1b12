/* main.go
 * Entry point for coinbot. Loads configuration from the environment, assembles
 * the api, bot and keep-alive web server, and runs the bot until interrupted.
 */

package main

import (
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"coinbot/api"
	"coinbot/api/external"
	"coinbot/bot"
	"coinbot/web"
)

func main() {
	log := slog.New(slog.NewTextHandler(os.Stdout, nil))
	slog.SetDefault(log)

	// .env is optional; real deployments set the environment directly.
	if err := godotenv.Load(); err != nil {
		log.Info("no .env file loaded, using process environment")
	}

	token := os.Getenv("DISCORD_TOKEN")
	if token == "" {
		log.Error("DISCORD_TOKEN is required")
		os.Exit(1)
	}

	cfg := api.Config{
		OwnerID:         os.Getenv("OWNER_ID"),
		StartingBalance: envInt64("STARTING_BALANCE", 0),
		DailyReward:     envInt64("DAILY_REWARD", 500),
		DailyCooldown:   24 * time.Hour,
		GambleCooldown:  10 * time.Second,
	}

	dataFile := os.Getenv("DATA_FILE")
	if dataFile == "" {
		dataFile = "balances.json"
	}

	content := external.NewClient(os.Getenv("TENOR_API_KEY"), log)
	apiPtr, err := api.NewAPI(dataFile, content, cfg, log)
	if err != nil {
		log.Error("failed to initialize api", "err", err)
		os.Exit(1)
	}

	b, err := bot.NewBot(token, apiPtr, os.Getenv("COMMAND_PREFIX"), log)
	if err != nil {
		log.Error("failed to initialize bot", "err", err)
		os.Exit(1)
	}

	server := web.NewServer(web.Config{
		Port:     os.Getenv("PORT"),
		SelfPing: envBool("SELF_PING"),
		SelfURL:  os.Getenv("SELF_URL"),
		Log:      log,
	})
	go func() {
		if err := server.Run(); err != nil {
			log.Error("web server stopped", "err", err)
		}
	}()

	if err := b.Run(); err != nil {
		log.Error("bot stopped", "err", err)
		os.Exit(1)
	}
}

// envInt64 reads an integer env var, falling back on absence or garbage.
func envInt64(key string, fallback int64) int64 {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		slog.Warn("ignoring invalid env value", "key", key, "value", raw)
		return fallback
	}
	return n
}

// envBool treats "1", "true" and "yes" as true.
func envBool(key string) bool {
	switch os.Getenv(key) {
	case "1", "true", "yes", "TRUE", "Yes", "True":
		return true
	}
	return false
}
