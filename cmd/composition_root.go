package cmd

import (
	"context"
	"io"
	"log/slog"
	"time"

	"station/internal/adapters/in/cli"
	"station/internal/adapters/out/filestore"
	"station/internal/adapters/out/labels"
	"station/internal/core/application/usecases/commands"
	"station/internal/core/application/usecases/queries"
	"station/internal/core/domain/services"
	"station/internal/core/ports"
	"station/internal/jobs"

	"gocloud.dev/blob"
)

type CompositionRoot struct {
	config     Config
	logger     *slog.Logger
	store      *filestore.Store
	uowFactory *filestore.UnitOfWorkFactory
	ids        *filestore.IDAllocator
	pricing    services.PricingEngine
	codes      *services.PickupCodeGenerator
	shelves    services.ShelfAssigner
	labels     ports.LabelPrinter
	now        func() time.Time
}

type Option func(*CompositionRoot)

// WithClock pins the time every handler sees.
func WithClock(now func() time.Time) Option {
	return func(c *CompositionRoot) {
		c.now = now
	}
}

// WithShelfAssigner replaces the random shelf assignment.
func WithShelfAssigner(a services.ShelfAssigner) Option {
	return func(c *CompositionRoot) {
		c.shelves = a
	}
}

func NewCompositionRoot(config Config, bucket *blob.Bucket, logger *slog.Logger, opts ...Option) (*CompositionRoot, error) {
	ids, err := filestore.NewIDAllocator(bucket, config.UserIDStart, config.PackageIDStart, logger)
	if err != nil {
		return nil, err
	}

	store := filestore.NewStore(bucket, logger)
	c := &CompositionRoot{
		config:     config,
		logger:     logger,
		store:      store,
		uowFactory: filestore.NewUnitOfWorkFactory(store),
		ids:        ids,
		pricing:    services.NewPricingEngine(),
		codes:      services.NewPickupCodeGenerator(),
		shelves:    services.NewRandomShelfAssigner(0),
		labels:     labels.NopPrinter{},
		now:        time.Now,
	}
	if config.Labels.Enabled {
		c.labels = labels.NewQRPrinter(bucket, config.Labels.Size, config.Labels.Level)
	}
	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// Load reads the persisted records and lifts the ID counters above every
// stored ID.
func (c *CompositionRoot) Load(ctx context.Context) error {
	if err := c.store.Load(ctx); err != nil {
		return err
	}
	maxUser, maxPackage := c.store.MaxIDs()
	return c.ids.EnsureAbove(ctx, maxUser, maxPackage)
}

func (c *CompositionRoot) Store() *filestore.Store {
	return c.store
}

func (c *CompositionRoot) CreateRegisterUserCommandHandler() commands.RegisterUserCommandHandler {
	var f commands.UserUoWFactory = FuncUserUoWFactory(func() commands.UserUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRegisterUserCommandHandler(f, c.ids, c.now)
}

func (c *CompositionRoot) CreateRecomputeMembershipsCommandHandler() commands.RecomputeMembershipsCommandHandler {
	var f commands.UserUoWFactory = FuncUserUoWFactory(func() commands.UserUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRecomputeMembershipsCommandHandler(f, c.now)
}

func (c *CompositionRoot) CreateIntakePackageCommandHandler() commands.IntakePackageCommandHandler {
	return commands.NewIntakePackageCommandHandler(
		c.newUoWFactory(), c.ids, c.pricing, c.codes, c.shelves, c.labels, c.now, c.logger,
	)
}

func (c *CompositionRoot) CreatePickupPackageCommandHandler() commands.PickupPackageCommandHandler {
	return commands.NewPickupPackageCommandHandler(c.newUoWFactory(), c.now)
}

func (c *CompositionRoot) CreateReportExceptionCommandHandler() commands.ReportExceptionCommandHandler {
	return commands.NewReportExceptionCommandHandler(c.newUoWFactory(), c.now, c.logger)
}

func (c *CompositionRoot) CreateFindUsersQueryHandler() queries.FindUsersQueryHandler {
	return queries.NewFindUsersQueryHandler(c.store, c.now)
}

func (c *CompositionRoot) CreateGetPackageQueryHandler() queries.GetPackageQueryHandler {
	return queries.NewGetPackageQueryHandler(c.store)
}

func (c *CompositionRoot) CreateGetInventoryQueryHandler() queries.GetInventoryQueryHandler {
	return queries.NewGetInventoryQueryHandler(c.store, c.config.ShelfCapacity, c.config.WarningThreshold)
}

func (c *CompositionRoot) CreateGetFinancialReportQueryHandler() queries.GetFinancialReportQueryHandler {
	return queries.NewGetFinancialReportQueryHandler(c.store, c.now)
}

func (c *CompositionRoot) CreateGetArrivalsReportQueryHandler() queries.GetArrivalsReportQueryHandler {
	return queries.NewGetArrivalsReportQueryHandler(c.store, c.now)
}

// CreateJobManager returns a manager with no jobs when jobs are disabled.
func (c *CompositionRoot) CreateJobManager() (*jobs.JobManager, error) {
	var schedules jobs.Schedules
	if c.config.Jobs.Enabled {
		schedules = jobs.Schedules{
			MembershipRefresh: c.config.Jobs.MembershipRefresh,
			Autosave:          c.config.Jobs.Autosave,
		}
	}
	return jobs.NewJobManager(c.CreateRecomputeMembershipsCommandHandler(), c.store, schedules, c.logger)
}

func (c *CompositionRoot) CreateApp(in io.Reader, out io.Writer) *cli.App {
	h := cli.Handlers{
		RegisterUser:         c.CreateRegisterUserCommandHandler(),
		RecomputeMemberships: c.CreateRecomputeMembershipsCommandHandler(),
		IntakePackage:        c.CreateIntakePackageCommandHandler(),
		PickupPackage:        c.CreatePickupPackageCommandHandler(),
		ReportException:      c.CreateReportExceptionCommandHandler(),
		FindUsers:            c.CreateFindUsersQueryHandler(),
		GetPackage:           c.CreateGetPackageQueryHandler(),
		GetInventory:         c.CreateGetInventoryQueryHandler(),
		GetFinancialReport:   c.CreateGetFinancialReportQueryHandler(),
		GetArrivalsReport:    c.CreateGetArrivalsReportQueryHandler(),
	}
	return cli.NewApp(in, out, h, c.store, c.logger)
}

func (c *CompositionRoot) newUoWFactory() commands.UoWFactory {
	return FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
}

type FuncUserUoWFactory func() commands.UserUoW

func (f FuncUserUoWFactory) Create() commands.UserUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
