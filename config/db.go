package config

import (
	"context"
	"log"

	"go.mongodb.org/mongo-driver/mongo"
	"gorm.io/gorm"

	"shoestore_be/helper/atdb"
	"shoestore_be/model"
)

// Models lists every table owned by the service, parents first.
var Models = []interface{}{
	&model.Brand{},
	&model.Category{},
	&model.Shoe{},
	&model.ShoePhoto{},
	&model.ShoeSize{},
	&model.PromoCode{},
	&model.ProductTransaction{},
	&model.User{},
}

func ConnectPostgres(cfg *Config) (*gorm.DB, error) {
	db, err := atdb.PostgresConnect(cfg.PostgresString, cfg.GormDebug)
	if err != nil {
		return nil, err
	}
	log.Println("[INFO] connected to PostgreSQL with GORM")
	return db, nil
}

// ConnectMongo returns nil without error when Mongo is not configured.
func ConnectMongo(ctx context.Context, cfg *Config) (*mongo.Database, error) {
	if cfg.MongoString == "" {
		return nil, nil
	}
	db, err := atdb.MongoConnect(ctx, atdb.DBInfo{
		DBString: cfg.MongoString,
		DBName:   cfg.MongoDB,
	})
	if err != nil {
		return nil, err
	}
	log.Println("[INFO] connected to MongoDB")
	return db, nil
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(Models...)
}
