package services

import (
	"context"
	"net/http"

	"cloud.google.com/go/spanner"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/light-bringer/storefront-service/internal/app/storefront/contracts"
	"github.com/light-bringer/storefront-service/internal/app/storefront/domain"
	"github.com/light-bringer/storefront-service/internal/app/storefront/pricing"
	"github.com/light-bringer/storefront-service/internal/app/storefront/queries/get_cart_summary"
	"github.com/light-bringer/storefront-service/internal/app/storefront/queries/get_loyalty_status"
	"github.com/light-bringer/storefront-service/internal/app/storefront/queries/get_product"
	"github.com/light-bringer/storefront-service/internal/app/storefront/queries/list_events"
	"github.com/light-bringer/storefront-service/internal/app/storefront/queries/list_products"
	"github.com/light-bringer/storefront-service/internal/app/storefront/queries/list_tiers"
	"github.com/light-bringer/storefront-service/internal/app/storefront/repo"
	"github.com/light-bringer/storefront-service/internal/app/storefront/usecases/add_item"
	"github.com/light-bringer/storefront-service/internal/app/storefront/usecases/apply_coupon"
	"github.com/light-bringer/storefront-service/internal/app/storefront/usecases/award_points"
	"github.com/light-bringer/storefront-service/internal/app/storefront/usecases/checkout"
	"github.com/light-bringer/storefront-service/internal/app/storefront/usecases/create_session"
	"github.com/light-bringer/storefront-service/internal/app/storefront/usecases/generate_images"
	"github.com/light-bringer/storefront-service/internal/app/storefront/usecases/remove_item"
	"github.com/light-bringer/storefront-service/internal/app/storefront/usecases/select_shipping"
	"github.com/light-bringer/storefront-service/internal/app/storefront/usecases/set_quantity"
	"github.com/light-bringer/storefront-service/internal/app/storefront/usecases/spin_wheel"
	"github.com/light-bringer/storefront-service/internal/app/storefront/usecases/toggle_wishlist"
	"github.com/light-bringer/storefront-service/internal/config"
	"github.com/light-bringer/storefront-service/internal/imagegen"
	"github.com/light-bringer/storefront-service/internal/pkg/clock"
	"github.com/light-bringer/storefront-service/internal/pkg/mockdata"
	"github.com/light-bringer/storefront-service/internal/transport/grpc/storefront"
	httptransport "github.com/light-bringer/storefront-service/internal/transport/http"
)

// ServiceOptions holds all dependencies for the application.
type ServiceOptions struct {
	SpannerClient *spanner.Client // nil unless the catalog or events are in Spanner
	Sessions      *repo.MemorySessionRepo
	Events        contracts.EventReader
	Generator     *imagegen.Generator

	HTTPHandler *httptransport.Handler
	GRPCHandler *storefront.Handler

	pubsub *repo.PubSubPublisher
	logger *zap.Logger
}

// NewServiceOptions creates and wires up all application dependencies.
func NewServiceOptions(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*ServiceOptions, error) {
	opts := &ServiceOptions{logger: logger}
	ok := false
	defer func() {
		if !ok {
			opts.Close()
		}
	}()

	// 1. Domain configuration
	policy, err := cfg.Pricing.Policy()
	if err != nil {
		return nil, err
	}
	coupons, err := cfg.Pricing.CouponBook()
	if err != nil {
		return nil, err
	}
	tiers, err := cfg.Loyalty.TierTable()
	if err != nil {
		return nil, err
	}
	wheel, err := cfg.SpinWheel.Wheel()
	if err != nil {
		return nil, err
	}

	// 2. Infrastructure
	clk := clock.NewRealClock()

	catalog, err := opts.newCatalog(ctx, cfg.Catalog)
	if err != nil {
		return nil, err
	}

	publisher, err := opts.newPublisher(ctx, cfg)
	if err != nil {
		return nil, err
	}

	backend, err := newImageBackend(ctx, cfg.ImageGen)
	if err != nil {
		return nil, err
	}
	opts.Generator = imagegen.NewGenerator(backend, imagegen.Options{
		Count:   cfg.ImageGen.Count,
		Size:    cfg.ImageGen.Size,
		Timeout: cfg.ImageGen.Timeout,
	}, clk, logger.Named("imagegen"))

	// 3. Repositories and domain services
	opts.Sessions = repo.NewMemorySessionRepo()
	quoter := pricing.NewQuoter(catalog, domain.NewPricingCalculator(policy, coupons), logger)

	// 4. Command use cases
	createSession := create_session.NewInteractor(opts.Sessions, tiers, clk, logger)
	addItem := add_item.NewInteractor(opts.Sessions, catalog, publisher, logger)
	removeItem := remove_item.NewInteractor(opts.Sessions, publisher, logger)
	setQuantity := set_quantity.NewInteractor(opts.Sessions, publisher, logger)
	applyCoupon := apply_coupon.NewInteractor(opts.Sessions, coupons, publisher, logger)
	selectShipping := select_shipping.NewInteractor(opts.Sessions, publisher, logger)
	checkoutUseCase := checkout.NewInteractor(opts.Sessions, quoter, publisher, logger)
	spinWheel := spin_wheel.NewInteractor(opts.Sessions, wheel, nil, publisher, logger)
	awardPoints := award_points.NewInteractor(opts.Sessions, publisher, logger)
	toggleWishlist := toggle_wishlist.NewInteractor(opts.Sessions, publisher, logger)
	generateImages := generate_images.NewInteractor(opts.Sessions, opts.Generator)

	// 5. Queries
	cartSummary := get_cart_summary.NewQuery(opts.Sessions, quoter)
	loyaltyStatus := get_loyalty_status.NewQuery(opts.Sessions)
	listTiers := list_tiers.NewQuery(tiers)
	listProducts := list_products.NewQuery(catalog)
	getProduct := get_product.NewQuery(catalog)
	listEvents := list_events.NewQuery(opts.Events)

	// 6. Transport handlers
	opts.HTTPHandler = httptransport.NewHandler(httptransport.Deps{
		CreateSession:  createSession,
		AddItem:        addItem,
		RemoveItem:     removeItem,
		SetQuantity:    setQuantity,
		ApplyCoupon:    applyCoupon,
		SelectShipping: selectShipping,
		Checkout:       checkoutUseCase,
		SpinWheel:      spinWheel,
		AwardPoints:    awardPoints,
		ToggleWishlist: toggleWishlist,
		GenerateImages: generateImages,
		CartSummary:    cartSummary,
		LoyaltyStatus:  loyaltyStatus,
		ListTiers:      listTiers,
		ListProducts:   listProducts,
		GetProduct:     getProduct,
		ListEvents:     listEvents,
	}, logger.Named("http"))
	opts.GRPCHandler = storefront.NewHandler(cartSummary, loyaltyStatus, listTiers)

	logger.Info("services initialized",
		zap.String("catalog", cfg.Catalog.Source),
		zap.String("events", cfg.Events.Provider),
		zap.String("image_provider", backend.Name()),
	)

	ok = true
	return opts, nil
}

func (s *ServiceOptions) newCatalog(ctx context.Context, cfg config.CatalogConfig) (contracts.Catalog, error) {
	switch cfg.Source {
	case "spanner":
		client, err := s.spannerClient(ctx, cfg.Spanner)
		if err != nil {
			return nil, err
		}
		return repo.NewSpannerCatalog(client), nil
	default:
		products := mockdata.NewGenerator(cfg.Seed).Products(cfg.MockSize)
		catalog, err := repo.NewMemoryCatalog(products)
		if err != nil {
			return nil, errors.Wrap(err, "failed to build mock catalog")
		}
		return catalog, nil
	}
}

// spannerClient opens the catalog database once; the catalog and the event
// store share it.
func (s *ServiceOptions) spannerClient(ctx context.Context, cfg config.SpannerConfig) (*spanner.Client, error) {
	if s.SpannerClient != nil {
		return s.SpannerClient, nil
	}
	client, err := spanner.NewClient(ctx, cfg.Database())
	if err != nil {
		return nil, errors.Wrap(err, "failed to create Spanner client")
	}
	s.SpannerClient = client
	return client, nil
}

// newPublisher picks the event sink and the reader behind the events listing.
// The Spanner store is both; otherwise the in-memory log serves reads and
// Pub/Sub is added behind a fan-out when configured.
func (s *ServiceOptions) newPublisher(ctx context.Context, cfg *config.Config) (contracts.EventPublisher, error) {
	switch cfg.Events.Provider {
	case "spanner":
		client, err := s.spannerClient(ctx, cfg.Catalog.Spanner)
		if err != nil {
			return nil, err
		}
		store := repo.NewSpannerEventStore(client)
		s.Events = store
		return store, nil
	case "pubsub":
		log := repo.NewEventLog(cfg.Events.LogCapacity)
		s.Events = log
		ps, err := repo.NewPubSubPublisher(ctx, cfg.Events.ProjectID, cfg.Events.TopicID, s.logger)
		if err != nil {
			return nil, errors.Wrap(err, "failed to create Pub/Sub publisher")
		}
		s.pubsub = ps
		return repo.NewFanoutPublisher(s.logger, log, ps), nil
	default:
		log := repo.NewEventLog(cfg.Events.LogCapacity)
		s.Events = log
		return log, nil
	}
}

func newImageBackend(ctx context.Context, cfg config.ImageGenConfig) (imagegen.Backend, error) {
	switch cfg.Provider {
	case "genai":
		backend, err := imagegen.NewGenAIBackend(ctx, cfg.APIKey, cfg.Model)
		if err != nil {
			return nil, errors.Wrap(err, "failed to create GenAI backend")
		}
		return backend, nil
	default:
		return imagegen.NewOpenAIBackend(cfg.Endpoint, cfg.APIKey, cfg.Model, &http.Client{}), nil
	}
}

// Close closes all resources.
func (s *ServiceOptions) Close() {
	if s.Generator != nil {
		s.Generator.Close()
	}
	if s.pubsub != nil {
		if err := s.pubsub.Close(); err != nil {
			s.logger.Warn("failed to close Pub/Sub publisher", zap.Error(err))
		}
	}
	if s.SpannerClient != nil {
		s.SpannerClient.Close()
	}
}
