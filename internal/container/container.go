// Package container wires the application graph. Each *Package function
// registers one concern with the injector; binaries compose the packages they
// need.
package container

import (
	"context"
	"net/http"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill-redisstream/pkg/redisstream"
	"github.com/cosmichub/api/internal/analytics"
	analyticsstore "github.com/cosmichub/api/internal/analytics/store"
	"github.com/cosmichub/api/internal/github"
	"github.com/cosmichub/api/internal/handlers"
	"github.com/cosmichub/api/internal/links"
	"github.com/cosmichub/api/internal/mailer"
	"github.com/cosmichub/api/internal/menu"
	"github.com/cosmichub/api/internal/messaging"
	appmiddleware "github.com/cosmichub/api/internal/middleware"
	"github.com/cosmichub/api/internal/nft"
	"github.com/cosmichub/api/internal/ratelimit"
	"github.com/cosmichub/api/internal/store"
	"github.com/cosmichub/api/internal/video"
	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jaevor/go-nanoid"
	"github.com/redis/go-redis/v9"
	"github.com/samber/do"
	"go.uber.org/zap"
)

// Options holds the CLI/environment options for both binaries.
type Options struct {
	Port              int    `default:"8888"                                 help:"Port to listen on"                              short:"p"`
	RedisAddr         string `default:"localhost:6379"                       help:"Redis server address"                           short:"r"`
	PostgresDSN       string `default:""                                     help:"PostgreSQL DSN for the analytics store (empty logs events instead)"`
	LogFormat         string `default:"console"                              help:"Log format: console or json"`
	MenuJSONPath      string `default:"public/menu.json"                     help:"Path of the menu JSON document"`
	MenuYAMLPath      string `default:"data/menu.yml"                        help:"Fallback path of the menu YAML document"`
	FormspreeEndpoint string `default:"https://formspree.io/f/xyzqwerty"     help:"Formspree form endpoint for contact messages"`
	ObjktContract     string `default:"KT1KS9HczgmgFuqkSSe3AeZsbu7eyH9MeRXZ" help:"Tezos contract of the featured NFT collection"`
}

// LoggerPackage registers the zap logger.
func LoggerPackage(injector *do.Injector) {
	do.Provide(injector, func(i *do.Injector) (*zap.Logger, error) {
		options := do.MustInvoke[*Options](i)

		if options.LogFormat == "json" {
			return zap.NewProduction()
		}

		return zap.NewDevelopment()
	})
}

// RedisPackage registers the shared Redis client.
func RedisPackage(injector *do.Injector) {
	do.Provide(injector, func(i *do.Injector) (*redis.Client, error) {
		options := do.MustInvoke[*Options](i)

		return redis.NewClient(&redis.Options{
			Addr: options.RedisAddr,
		}), nil
	})
}

// PostgresPackage registers the analytics database pool. Only invoked when a
// DSN is configured.
func PostgresPackage(injector *do.Injector) {
	do.Provide(injector, func(i *do.Injector) (*pgxpool.Pool, error) {
		options := do.MustInvoke[*Options](i)

		return pgxpool.New(context.Background(), options.PostgresDSN)
	})
}

// GitHubPackage registers the link repository client and the link list
// service. Credentials are validated at call time, so the server starts even
// without them; link-store operations then fail with a configuration error.
func GitHubPackage(injector *do.Injector) {
	do.Provide(injector, func(i *do.Injector) (*github.Client, error) {
		cfg, err := github.ConfigFromEnv()
		if err != nil {
			return nil, err
		}

		return github.NewClient(cfg, http.DefaultClient), nil
	})

	do.Provide(injector, func(i *do.Injector) (*links.Service, error) {
		client := do.MustInvoke[*github.Client](i)
		logger := do.MustInvoke[*zap.Logger](i)

		return links.NewService(github.NewLinksStore(client), logger), nil
	})
}

// RateLimitPackage registers the policy limiter backed by Redis.
func RateLimitPackage(injector *do.Injector) {
	do.Provide(injector, func(i *do.Injector) (*ratelimit.PolicyLimiter, error) {
		client := do.MustInvoke[*redis.Client](i)

		return ratelimit.NewPolicyLimiter(store.NewRateLimitRedisStore(client), ratelimit.DefaultPolicy()), nil
	})
}

// PublisherGroupPackage registers the Redis Streams publisher used for
// analytics events.
func PublisherGroupPackage(injector *do.Injector) {
	do.Provide(injector, func(i *do.Injector) (*messaging.PublisherGroup, error) {
		client := do.MustInvoke[*redis.Client](i)

		publisher, err := redisstream.NewPublisher(redisstream.PublisherConfig{
			Client: client,
		}, watermill.NopLogger{})
		if err != nil {
			return nil, err
		}

		return messaging.NewPublisherGroup(publisher), nil
	})
}

// ConsumerGroupPackage registers the analytics consumer group. Events go to
// PostgreSQL when a DSN is configured, otherwise to the logging store.
func ConsumerGroupPackage(injector *do.Injector) {
	do.Provide(injector, func(i *do.Injector) (*messaging.ConsumerGroup, error) {
		options := do.MustInvoke[*Options](i)
		client := do.MustInvoke[*redis.Client](i)
		logger := do.MustInvoke[*zap.Logger](i)

		subscriber, err := redisstream.NewSubscriber(redisstream.SubscriberConfig{
			Client:        client,
			ConsumerGroup: "analytics",
		}, watermill.NopLogger{})
		if err != nil {
			return nil, err
		}

		var eventStore analytics.Store
		if options.PostgresDSN != "" {
			pool := do.MustInvoke[*pgxpool.Pool](i)
			eventStore = analyticsstore.NewPostgres(pool)
		} else {
			eventStore = analyticsstore.NewNoop(logger)
		}

		group := messaging.NewConsumerGroup(subscriber, logger)
		group.Add(analytics.NewConsumer(subscriber, eventStore, logger))

		return group, nil
	})
}

// HTTPPackage registers the router, the huma API, and all handlers.
func HTTPPackage(injector *do.Injector) {
	do.Provide(injector, func(i *do.Injector) (*chi.Mux, error) {
		router := chi.NewMux()
		router.Use(appmiddleware.CORS)

		return router, nil
	})

	do.Provide(injector, func(i *do.Injector) (huma.API, error) {
		options := do.MustInvoke[*Options](i)
		router := do.MustInvoke[*chi.Mux](i)
		logger := do.MustInvoke[*zap.Logger](i)
		limiter := do.MustInvoke[*ratelimit.PolicyLimiter](i)
		linkService := do.MustInvoke[*links.Service](i)
		publisherGroup := do.MustInvoke[*messaging.PublisherGroup](i)

		api := humachi.New(router, huma.DefaultConfig("Cosmic Hub API", "1.0.0"))
		api.UseMiddleware(appmiddleware.RequestMeta(api))
		api.UseMiddleware(appmiddleware.PolicyRateLimiter(api, limiter, ratelimit.NewOperationScopeResolver(), logger))

		publishLinkCreated := messaging.NewPublishFunc[analytics.LinkCreatedEvent](
			publisherGroup.Publisher(), analytics.TopicLinkCreated)
		publishMessageReceived := messaging.NewPublishFunc[analytics.MessageReceivedEvent](
			publisherGroup.Publisher(), analytics.TopicMessageReceived)

		generateID, err := nanoid.Standard(12)
		if err != nil {
			return nil, err
		}

		objktClient := nft.NewObjktClient(http.DefaultClient, logger)

		linksHandler := handlers.NewLinksHandler(linkService, publishLinkCreated, logger)
		messageHandler := handlers.NewMessageHandler(
			mailer.NewFormspreeRelay(options.FormspreeEndpoint, http.DefaultClient, logger),
			generateID,
			publishMessageReceived,
			logger,
		)
		contentHandler := handlers.NewContentHandler(
			menu.NewLoader(options.MenuJSONPath, options.MenuYAMLPath, logger))
		nftHandler := handlers.NewNFTHandler(
			objktClient,
			nft.NewResolver(objktClient, http.DefaultClient, logger),
			options.ObjktContract,
			logger,
		)
		videoHandler := handlers.NewVideoHandler(video.NewLookup(http.DefaultClient, logger))

		handlers.RegisterRoutes(api, linksHandler, messageHandler, contentHandler, nftHandler, videoHandler)

		return api, nil
	})
}
