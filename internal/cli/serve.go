package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/matzehuels/dotkit/internal/server"
	"github.com/matzehuels/dotkit/pkg/cache"
	"github.com/matzehuels/dotkit/pkg/pipeline"
	"github.com/matzehuels/dotkit/pkg/store"
)

// serveOpts holds the command-line flags for the serve command.
type serveOpts struct {
	addr       string // listen address
	redis      string // redis URL for the shared cache, empty for file cache
	mongo      string // mongodb URI for document storage, empty for in-memory
	mongoDB    string // mongodb database name
	cacheScope string // cache key namespace for shared backends
	noCache    bool   // disable caching entirely
}

// serveCommand creates the serve command, which runs the HTTP API.
func (c *CLI) serveCommand() *cobra.Command {
	var opts serveOpts

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the dotkit HTTP API server",
		Long: `Run the dotkit HTTP API server.

By default documents are stored in memory and build results are cached on
disk. Point --mongo at a MongoDB instance for persistent storage and --redis
at a Redis instance for a cache shared across server processes.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runServe(cmd.Context(), &opts)
		},
	}

	cmd.Flags().StringVar(&opts.addr, "addr", ":8080", "listen address")
	cmd.Flags().StringVar(&opts.redis, "redis", "", "redis URL for a shared cache (redis://host:port/db)")
	cmd.Flags().StringVar(&opts.mongo, "mongo", "", "mongodb URI for persistent document storage")
	cmd.Flags().StringVar(&opts.mongoDB, "mongo-db", appName, "mongodb database name")
	cmd.Flags().StringVar(&opts.cacheScope, "cache-scope", "", "namespace prefix for cache keys on shared backends")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable caching")

	return cmd
}

func (c *CLI) runServe(ctx context.Context, opts *serveOpts) error {
	logger := loggerFromContext(ctx)

	cc, err := c.serveCache(ctx, opts)
	if err != nil {
		return err
	}

	st, err := c.serveStore(ctx, opts)
	if err != nil {
		_ = cc.Close()
		return err
	}
	defer st.Close(context.Background())

	runner := pipeline.NewRunner(cc, serveKeyer(opts), logger)
	defer runner.Close()

	srv := server.New(server.Config{
		Addr:   opts.addr,
		Store:  st,
		Runner: runner,
		Logger: logger,
	})
	return srv.ListenAndServe(ctx)
}

// serveKeyer namespaces cache keys when a scope is set. Shared backends
// (one redis serving several deployments) then never read each other's
// entries. A nil return lets the runner fall back to the default keyer.
func serveKeyer(opts *serveOpts) cache.Keyer {
	if opts.cacheScope == "" {
		return nil
	}
	return cache.NewScopedKeyer(nil, opts.cacheScope+":")
}

// serveCache picks the cache backend. Redis connects are retried with
// backoff since the instance may still be starting alongside the server.
func (c *CLI) serveCache(ctx context.Context, opts *serveOpts) (cache.Cache, error) {
	if opts.noCache {
		return cache.NewNullCache(), nil
	}
	if opts.redis == "" {
		return newCache(false)
	}

	var cc cache.Cache
	err := cache.RetryWithBackoff(ctx, func() error {
		var err error
		cc, err = cache.NewRedisCache(ctx, opts.redis)
		return err
	})
	if err != nil {
		return nil, err
	}
	c.Logger.Info("connected to redis cache", "url", opts.redis)
	return cc, nil
}

func (c *CLI) serveStore(ctx context.Context, opts *serveOpts) (store.Store, error) {
	if opts.mongo == "" {
		return store.NewMemoryStore(), nil
	}
	st, err := store.NewMongoStore(ctx, opts.mongo, opts.mongoDB, "documents")
	if err != nil {
		return nil, err
	}
	c.Logger.Info("connected to mongodb store", "database", opts.mongoDB)
	return st, nil
}
