package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/webbplats/site/internal/api/handlers"
	"github.com/webbplats/site/internal/api/mapper"
	"github.com/webbplats/site/internal/config"
	"github.com/webbplats/site/internal/content"
	"github.com/webbplats/site/internal/placeholder"
	"github.com/webbplats/site/internal/site"
	"github.com/webbplats/site/internal/utils"
	"github.com/webbplats/site/internal/version"

	"github.com/briandowns/spinner"
	"github.com/spf13/cobra"
)

var homepageCmd = &cobra.Command{
	Use:   "homepage",
	Short: "Print the normalized homepage configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withClient(cmd, "Loading homepage...", func(ctx context.Context, c *content.Client, _ *config.Config) (any, error) {
			return c.FetchHomepageConfig(ctx), nil
		})
	},
}

var postsCmd = &cobra.Command{
	Use:   "posts",
	Short: "List recent posts",
	Long: `List recent posts as summaries.

Example:
  sitectl posts              # 3 latest posts
  sitectl posts --count 10   # 10 latest posts`,
	RunE: func(cmd *cobra.Command, args []string) error {
		count, _ := cmd.Flags().GetInt("count")
		return withClient(cmd, "Fetching posts...", func(ctx context.Context, c *content.Client, _ *config.Config) (any, error) {
			return mapper.ItemsToPostSummaries(c.FetchPosts(ctx, count)), nil
		})
	},
}

var postCmd = &cobra.Command{
	Use:   "post <slug>",
	Short: "Print a single post",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withClient(cmd, "Fetching post...", func(ctx context.Context, c *content.Client, _ *config.Config) (any, error) {
			return found(c.FetchPostBySlug(ctx, args[0]), "post", args[0])
		})
	},
}

var pageCmd = &cobra.Command{
	Use:   "page <slug>",
	Short: "Print a single page",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withClient(cmd, "Fetching page...", func(ctx context.Context, c *content.Client, _ *config.Config) (any, error) {
			return found(c.FetchPageBySlug(ctx, args[0]), "page", args[0])
		})
	},
}

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List categories",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withClient(cmd, "Fetching categories...", func(ctx context.Context, c *content.Client, _ *config.Config) (any, error) {
			return c.FetchCategories(ctx), nil
		})
	},
}

var categoryCmd = &cobra.Command{
	Use:   "category <slug>",
	Short: "List the posts in a category",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		count, _ := cmd.Flags().GetInt("count")
		return withClient(cmd, "Fetching category...", func(ctx context.Context, c *content.Client, _ *config.Config) (any, error) {
			category := c.FetchCategoryBySlug(ctx, args[0])
			if category == nil {
				return nil, fmt.Errorf("category %q not found", args[0])
			}
			return mapper.ItemsToPostSummaries(c.FetchPostsByCategory(ctx, category.ID, count)), nil
		})
	},
}

var slugsCmd = &cobra.Command{
	Use:       "slugs <posts|categories|services>",
	Short:     "List slugs for static path generation",
	Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	ValidArgs: []string{handlers.SlugKindPosts, handlers.SlugKindCategories, handlers.SlugKindServices},
	RunE: func(cmd *cobra.Command, args []string) error {
		return withClient(cmd, "Fetching slugs...", func(ctx context.Context, c *content.Client, cfg *config.Config) (any, error) {
			switch args[0] {
			case handlers.SlugKindPosts:
				return c.FetchAllPostSlugs(ctx), nil
			case handlers.SlugKindCategories:
				return c.FetchAllCategorySlugs(ctx), nil
			default:
				return c.FetchServicePageSlugs(ctx, ""), nil
			}
		})
	},
}

var navigationCmd = &cobra.Command{
	Use:   "navigation",
	Short: "Print the resolved header navigation",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withClient(cmd, "Resolving navigation...", func(ctx context.Context, c *content.Client, cfg *config.Config) (any, error) {
			return site.BuildNavigation(cfg.Site, c.FetchHomepageConfig(ctx)), nil
		})
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	RunE: func(cmd *cobra.Command, args []string) error {
		return printJSON(version.GetBuildInfo())
	},
}

func init() {
	postsCmd.Flags().Int("count", content.DefaultPostCount, "Number of posts to fetch (max 100)")
	categoryCmd.Flags().Int("count", content.DefaultCategoryPostCount, "Number of posts to fetch (max 100)")
	rootCmd.AddCommand(navigationCmd)
}

type fetchFunc func(ctx context.Context, c *content.Client, cfg *config.Config) (any, error)

// withClient builds a content client from the environment, runs fn behind a
// spinner and prints its result.
func withClient(cmd *cobra.Command, label string, fn fetchFunc) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	for _, warning := range cfg.Warnings {
		logger.Warn("Config: %s", warning)
	}

	normalizer := placeholder.New(placeholder.Values{
		SiteBaseURL:  cfg.Site.BaseURL,
		SiteName:     cfg.Site.Name,
		CompanyEmail: cfg.Site.ContactEmail,
	})
	client, err := content.New(cfg.Content, normalizer,
		content.WithHTTPClient(utils.NewHTTPClient(cfg.HTTPTimeout)),
		content.WithLogger(logger),
	)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	noSpinner, _ := cmd.Flags().GetBool("no-spinner")
	var s *spinner.Spinner
	if !noSpinner {
		s = spinner.New(spinner.CharSets[14], 120*time.Millisecond, spinner.WithWriter(os.Stderr))
		s.Suffix = " " + label
		s.Start()
	}
	result, err := fn(ctx, client, cfg)
	if s != nil {
		s.Stop()
	}
	if err != nil {
		return err
	}

	return printJSON(result)
}

func found[T any](v *T, kind, slug string) (any, error) {
	if v == nil {
		return nil, fmt.Errorf("%s %q not found", kind, slug)
	}
	return v, nil
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
