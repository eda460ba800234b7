package app

import (
	"context"
	"log"

	"go.mongodb.org/mongo-driver/mongo"
	"gorm.io/gorm"

	"shoestore_be/config"
	"shoestore_be/controller/auth"
	"shoestore_be/controller/brand"
	"shoestore_be/controller/category"
	"shoestore_be/controller/dashboard"
	"shoestore_be/controller/image"
	"shoestore_be/controller/orphan"
	"shoestore_be/controller/promocode"
	"shoestore_be/controller/shoe"
	"shoestore_be/controller/transaction"
	"shoestore_be/helper/event"
	"shoestore_be/helper/ghupload"
	"shoestore_be/helper/googleauth"
	"shoestore_be/repository"
	"shoestore_be/routes"
	"shoestore_be/service"
)

// newPublisher falls back to a no-op publisher when Kafka is not configured
// or not reachable; events are never required for a request to succeed.
func newPublisher(cfg *config.Config) event.Publisher {
	if len(cfg.KafkaBrokers) == 0 {
		log.Println("[INFO] KAFKA_BROKERS not set, transaction events disabled")
		return event.Noop{}
	}
	publisher, err := event.NewKafkaPublisher(cfg.KafkaBrokers, cfg.KafkaTopic)
	if err != nil {
		log.Println("[WARN] transaction events disabled:", err)
		return event.Noop{}
	}
	return publisher
}

func newImageStore(ctx context.Context, cfg *config.Config) *ghupload.Store {
	return ghupload.NewStore(ctx, ghupload.Config{
		AccessToken:   cfg.GHAccessToken,
		Owner:         cfg.GHOwner,
		Repo:          cfg.GHRepo,
		Branch:        cfg.GHBranch,
		AuthorName:    cfg.GHAuthorName,
		AuthorEmail:   cfg.GHAuthorEmail,
		PublicBaseURL: cfg.GHPublicPrefix,
	})
}

// buildHandlers wires repositories, services and controllers. mdb may be nil.
func buildHandlers(ctx context.Context, cfg *config.Config, db *gorm.DB, mdb *mongo.Database, events event.Publisher) routes.Handlers {
	images := newImageStore(ctx, cfg)

	var ledger service.OrphanRecorder
	var orphans orphan.Ledger
	if mdb != nil {
		repo := repository.NewOrphanImageRepository(mdb)
		ledger, orphans = repo, repo
	}

	var google service.IDTokenVerifier
	if cfg.GoogleClientID != "" {
		google = googleauth.NewVerifier(cfg.GoogleClientID)
	}

	brands := repository.NewBrandRepository(db)
	categories := repository.NewCategoryRepository(db)
	shoes := repository.NewShoeRepository(db)
	promos := repository.NewPromoCodeRepository(db)
	transactions := repository.NewTransactionRepository(db)
	users := repository.NewUserRepository(db)

	return routes.Handlers{
		Auth:         auth.NewHandler(service.NewAuthService(users, google, cfg.PrivateKey, cfg.TokenHours)),
		Brand:        brand.NewHandler(service.NewBrandService(brands, images, ledger)),
		Category:     category.NewHandler(service.NewCategoryService(categories, images, ledger)),
		Shoe:         shoe.NewHandler(service.NewShoeService(shoes, images, ledger)),
		PromoCode:    promocode.NewHandler(service.NewPromoCodeService(promos)),
		Transaction:  transaction.NewHandler(service.NewTransactionService(transactions, shoes, promos, events, images, ledger)),
		Image:        image.NewHandler(images, ledger),
		Dashboard:    dashboard.NewHandler(service.NewDashboardService(shoes, brands, categories, promos, transactions)),
		Orphan:       orphan.NewHandler(orphans),
		PublicKey:    cfg.PublicKey,
		AllowOrigins: cfg.CORSOrigins,
	}
}
