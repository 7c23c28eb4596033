package storefront

import (
	"context"
	"os"
	"strings"
	"time"

	"encore.dev/rlog"
	"encore.dev/storage/sqldb"
	"github.com/redis/go-redis/v9"
	"go.temporal.io/sdk/client"
	"go.temporal.io/sdk/temporal"
	"go.temporal.io/sdk/worker"
	"golang.org/x/time/rate"

	"encore.app/storefront/business/blog"
	"encore.app/storefront/business/catalog"
	"encore.app/storefront/business/checkout"
	"encore.app/storefront/business/email"
	"encore.app/storefront/business/order"
	"encore.app/storefront/cache"
	"encore.app/storefront/config"
	"encore.app/storefront/domain"
	"encore.app/storefront/monitor"
	"encore.app/storefront/repository"
	"encore.app/storefront/workflow"
)

const serviceName = "naaz-storefront"

var naazDB = sqldb.NewDatabase("naaz", sqldb.DatabaseConfig{
	Migrations: "./db/migrations",
})

//encore:service
type Service struct {
	checkout checkout.Business
	orders   order.Business
	emails   email.Business
	catalog  catalog.Business
	blog     blog.Business

	temporal client.Client
	worker   worker.Worker
	monitor  *monitor.Monitor
	cache    *cache.Cache
	cfg      config.Config
	limiter  *rate.Limiter
}

func initService() (*Service, error) {
	ctx := context.Background()

	cfg, problems, err := config.Load(environ())
	for _, p := range problems {
		rlog.Warn("configuration problem", "problem", p)
	}
	if err != nil {
		rlog.Error("failed to load configuration", "error", err)
		return nil, err
	}

	mon := newMonitor(ctx, cfg)
	mon.Initialize(ctx)

	appCache, err := newCache(ctx, cfg)
	if err != nil {
		rlog.Error("failed to open cache", "error", err)
		return nil, err
	}
	appCache.Initialize()

	pgxdb := sqldb.Driver(naazDB)
	repo := repository.NewRepository(pgxdb)
	stateMachine := domain.NewOrderStateMachine(pgxdb, repo.Orders, repo.Products)

	emailBusiness := email.NewEmailBusiness(repo.Emails, email.NewFunctionSender(cfg.EmailFunction(), cfg.SupabaseAnonKey))
	workflow.SetActivityDependencies(emailBusiness)

	temporalClient, err := client.Dial(client.Options{HostPort: cfg.TemporalHost})
	if err != nil {
		rlog.Error("failed to connect to temporal", "error", err, "host", cfg.TemporalHost)
		return nil, err
	}

	w := worker.New(temporalClient, workflow.TaskQueue, worker.Options{})
	w.RegisterWorkflow(workflow.DrainEmailQueue)
	w.RegisterWorkflow(workflow.OrderEmail)
	w.RegisterActivity(workflow.ProcessEmailQueueActivity)
	w.RegisterActivity(workflow.SendOrderEmailActivity)
	if err := w.Start(); err != nil {
		temporalClient.Close()
		rlog.Error("failed to start temporal worker", "error", err)
		return nil, err
	}

	if err := startEmailQueueDrain(ctx, temporalClient); err != nil {
		rlog.Error("failed to schedule email queue drain", "error", err)
	}

	return &Service{
		checkout: checkout.NewCheckoutBusiness(repo.Carts, repo.Products, repo.Coupons, repo.Addresses, repo.Orders, repo.Audit),
		orders:   order.NewOrderBusiness(repo.Orders, stateMachine),
		emails:   emailBusiness,
		catalog:  catalog.NewCatalogBusiness(repo.Products, appCache, cfg.CacheTTL()),
		blog:     blog.NewBlogBusiness(repo.Posts, appCache, cfg.CacheTTL()),
		temporal: temporalClient,
		worker:   w,
		monitor:  mon,
		cache:    appCache,
		cfg:      cfg,
		limiter:  newLimiter(cfg),
	}, nil
}

// Shutdown stops background work and flushes the monitoring sinks.
func (s *Service) Shutdown(force context.Context) {
	if s.worker != nil {
		s.worker.Stop()
	}
	if s.temporal != nil {
		s.temporal.Close()
	}
	s.cache.Dispose(force)
	s.monitor.Dispose(force)
}

func environ() map[string]string {
	out := make(map[string]string)
	for _, kv := range os.Environ() {
		if k, v, ok := strings.Cut(kv, "="); ok && strings.HasPrefix(k, config.Prefix) {
			out[k] = v
		}
	}
	return out
}

func newMonitor(ctx context.Context, cfg config.Config) *monitor.Monitor {
	sinks := []monitor.Sink{monitor.Console{}}
	if cfg.IsDevelopment() {
		sinks = append(sinks, monitor.NewLocalStore(cfg.LogFile, monitor.DefaultLocalCapacity))
	}
	if cfg.RemoteLogging() {
		fwd, err := monitor.NewForwarder(ctx, cfg.OTelEndpoint, serviceName, cfg.AppVersion, cfg.AppEnv)
		if err != nil {
			rlog.Warn("error tracking disabled", "error", err)
		} else {
			sinks = append(sinks, fwd)
		}
	}
	return monitor.New(monitor.Options{
		Environment: cfg.AppEnv,
		Release:     cfg.AppVersion,
		Sinks:       sinks,
		Notifier:    topicNotifier{},
	})
}

func newCache(ctx context.Context, cfg config.Config) (*cache.Cache, error) {
	opts := cache.Options{
		Version:    cfg.AppVersion,
		DefaultTTL: cfg.CacheTTL(),
		Dir:        cfg.CacheDir,
		DBPath:     cfg.CacheDBPath,
		MaxBytes:   cfg.CacheMaxBytes,
		Secret:     cfg.CacheSecret,
	}
	if cfg.RedisURL != "" {
		redisOpts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			rlog.Warn("session cache tier disabled", "error", err)
		} else {
			opts.Redis = redis.NewClient(redisOpts)
		}
	}
	return cache.New(ctx, opts)
}

// newLimiter allows RateLimitRequests per RateLimitWindow with a full burst.
func newLimiter(cfg config.Config) *rate.Limiter {
	if cfg.RateLimitRequests <= 0 || cfg.RateLimitWindowMs <= 0 {
		defaults := config.Defaults()
		cfg.RateLimitRequests, cfg.RateLimitWindowMs = defaults.RateLimitRequests, defaults.RateLimitWindowMs
	}
	every := cfg.RateLimitWindow() / time.Duration(cfg.RateLimitRequests)
	return rate.NewLimiter(rate.Every(every), cfg.RateLimitRequests)
}

func startEmailQueueDrain(ctx context.Context, c client.Client) error {
	options := client.StartWorkflowOptions{
		ID:           workflow.DrainEmailQueueWorkflowID,
		TaskQueue:    workflow.TaskQueue,
		CronSchedule: workflow.DrainEmailQueueSchedule,
	}
	_, err := c.ExecuteWorkflow(ctx, options, workflow.DrainEmailQueue, workflow.DrainEmailQueueParams{})
	if err != nil && temporal.IsWorkflowExecutionAlreadyStartedError(err) {
		rlog.Info("email queue drain already scheduled", "workflow_id", workflow.DrainEmailQueueWorkflowID)
		return nil
	}
	return err
}
