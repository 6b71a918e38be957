package main

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/varoOP/sankanime/internal/app"
)

// runQuery wires a single endpoint call to the shared output handling
func runQuery(name string, query func(ctx context.Context, a *app.App) (any, error)) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		return withApp(cmd, func(ctx context.Context, a *app.App) error {
			v, err := query(ctx, a)
			if err != nil {
				return fmt.Errorf("%s failed: %w", name, err)
			}
			return writeResult(cmd, a, v)
		})
	}
}

var infoCmd = &cobra.Command{
	Use:   "info [id]",
	Short: "Show details of an anime",
	Long:  `Show details of the anime with the given id, or of a random anime with --random.`,
	Args: func(cmd *cobra.Command, args []string) error {
		random, _ := cmd.Flags().GetBool("random")
		if random {
			return cobra.NoArgs(cmd, args)
		}
		return cobra.ExactArgs(1)(cmd, args)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		random, _ := cmd.Flags().GetBool("random")
		return runQuery("info", func(ctx context.Context, a *app.App) (any, error) {
			if random {
				return a.Anime().FetchRandomAnimeInfo(ctx)
			}
			return a.Anime().FetchAnimeInfo(ctx, args[0])
		})(cmd, args)
	},
}

var episodesCmd = &cobra.Command{
	Use:   "episodes <id>",
	Short: "List the episodes of an anime",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runQuery("episodes", func(ctx context.Context, a *app.App) (any, error) {
			return a.Anime().GetEpisodes(ctx, args[0])
		})(cmd, args)
	},
}

var serversCmd = &cobra.Command{
	Use:   "servers <id>",
	Short: "List the playback servers of an episode",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ep, _ := cmd.Flags().GetString("ep")
		return runQuery("servers", func(ctx context.Context, a *app.App) (any, error) {
			return a.Anime().GetServers(ctx, args[0], ep)
		})(cmd, args)
	},
}

var streamCmd = &cobra.Command{
	Use:   "stream <id>",
	Short: "Resolve the stream of an episode",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ep, _ := cmd.Flags().GetString("ep")
		server, _ := cmd.Flags().GetString("server")
		streamType, _ := cmd.Flags().GetString("type")
		return runQuery("stream", func(ctx context.Context, a *app.App) (any, error) {
			return a.Anime().GetStreamInfo(ctx, args[0], ep, server, streamType)
		})(cmd, args)
	},
}

var qtipCmd = &cobra.Command{
	Use:   "qtip <id>",
	Short: "Show the quick preview of an anime",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runQuery("qtip", func(ctx context.Context, a *app.App) (any, error) {
			return a.Anime().GetQtip(ctx, args[0])
		})(cmd, args)
	},
}

var suggestCmd = &cobra.Command{
	Use:   "suggest <keyword>",
	Short: "Show search suggestions for a keyword",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		keyword := strings.Join(args, " ")
		return runQuery("suggest", func(ctx context.Context, a *app.App) (any, error) {
			return a.Anime().GetSearchSuggestion(ctx, keyword)
		})(cmd, args)
	},
}

var scheduleCmd = &cobra.Command{
	Use:   "schedule",
	Short: "Show the airing schedule of a day",
	Long:  `Show the airing schedule of the day given by --date (YYYY-MM-DD), today by default.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		date, _ := cmd.Flags().GetString("date")
		if date == "" {
			date = time.Now().Format(time.DateOnly)
		} else if _, err := time.Parse(time.DateOnly, date); err != nil {
			return fmt.Errorf("invalid --date %q: expected YYYY-MM-DD", date)
		}
		return runQuery("schedule", func(ctx context.Context, a *app.App) (any, error) {
			return a.Anime().GetSchedule(ctx, date)
		})(cmd, args)
	},
}

var nextEpisodeCmd = &cobra.Command{
	Use:   "next-episode <id>",
	Short: "Show when the next episode of an anime airs",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runQuery("next-episode", func(ctx context.Context, a *app.App) (any, error) {
			return a.Anime().GetNextEpisodeSchedule(ctx, args[0])
		})(cmd, args)
	},
}

var charactersCmd = &cobra.Command{
	Use:   "characters <id>",
	Short: "List the characters and voice actors of an anime",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		page, _ := cmd.Flags().GetInt("page")
		return runQuery("characters", func(ctx context.Context, a *app.App) (any, error) {
			return a.Anime().FetchVoiceActorInfo(ctx, args[0], page)
		})(cmd, args)
	},
}

var categoryCmd = &cobra.Command{
	Use:   "category <path>",
	Short: "List a category such as most-popular or genre/action",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		page, _ := cmd.Flags().GetInt("page")
		return runQuery("category", func(ctx context.Context, a *app.App) (any, error) {
			return a.Anime().GetCategoryInfo(ctx, args[0], page)
		})(cmd, args)
	},
}

var searchCmd = &cobra.Command{
	Use:   "search <keyword>",
	Short: "Search the catalog",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		page, _ := cmd.Flags().GetInt("page")
		keyword := strings.Join(args, " ")
		return runQuery("search", func(ctx context.Context, a *app.App) (any, error) {
			return a.Anime().GetSearch(ctx, keyword, page)
		})(cmd, args)
	},
}

func init() {
	infoCmd.Flags().Bool("random", false, "show a random anime")

	serversCmd.Flags().String("ep", "", "episode id")
	serversCmd.MarkFlagRequired("ep")

	streamCmd.Flags().String("ep", "", "episode id")
	streamCmd.Flags().String("server", "hd-1", "server name")
	streamCmd.Flags().String("type", "sub", "stream type: sub, dub or raw")
	streamCmd.MarkFlagRequired("ep")

	scheduleCmd.Flags().String("date", "", "day to show (YYYY-MM-DD)")

	for _, c := range []*cobra.Command{charactersCmd, categoryCmd, searchCmd} {
		c.Flags().Int("page", 1, "result page")
	}

	rootCmd.AddCommand(infoCmd, episodesCmd, serversCmd, streamCmd, qtipCmd, suggestCmd,
		scheduleCmd, nextEpisodeCmd, charactersCmd, categoryCmd, searchCmd)
}
