package main

import (
	"context"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"hotwords/internal/config"
	"hotwords/internal/gemini"
	"hotwords/internal/hotlist"
	"hotwords/internal/pipeline"
	"hotwords/internal/prompt"
)

func main() {
	if err := app().Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func app() *cli.App {
	return &cli.App{
		Name:  "hotwords",
		Usage: "Extract trending keywords from hotlist channels",
		Description: `Fetches trending-topic hotlists from the DailyHot aggregation API,
		combines each channel's item titles and descriptions, and asks the
		Gemini API for representative keywords. The result is printed as a
		JSON object mapping channel names to keyword lists.

		Requires GOOGLE_API_KEY (read from the environment or a .env file).
		GOOGLE_MODEL_NAME selects the Gemini model, default gemini-pro.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "channel",
				Aliases: []string{"c"},
				Usage:   "only process this channel instead of all discovered channels",
			},
			&cli.IntFlag{
				Name:    "limit",
				Aliases: []string{"l"},
				Value:   20,
				Usage:   "number of items to fetch per channel",
				EnvVars: []string{"HOTLIST_LIMIT"},
			},
			&cli.BoolFlag{
				Name:  "cache",
				Usage: "request cached upstream data instead of fresh data",
			},
		},
		Action: runAction,
		Commands: []*cli.Command{
			serveCmd(),
		},
	}
}

// runAction executes the one-shot pipeline. Per-channel failures and an
// empty channel set are reported via logs, not the exit code.
func runAction(ctx *cli.Context) error {
	cfg := config.Load()

	hotlistClient := hotlist.NewClient(cfg.APIBase)
	geminiClient := gemini.NewClient(cfg.GoogleAPIKey, cfg.GoogleModel, prompt.NewLoader(cfg.PromptFile))
	p := pipeline.New(hotlistClient, geminiClient)

	result, err := p.Run(context.Background(), pipeline.Options{
		Channel:  ctx.String("channel"),
		Limit:    ctx.Int("limit"),
		UseCache: ctx.Bool("cache"),
	})
	if err != nil {
		log.Errorf("aborting: %v", err)
		return nil
	}

	return result.Emit(os.Stdout)
}
