package config

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// DB holds the document store connection
type DB struct {
	Mongo *mongo.Client
	log   zerolog.Logger
}

// InitDB opens the Mongo connection. A failed connect or ping is logged and
// returned, but the returned DB is always usable: Mongo stays nil only when
// no client could be built, and otherwise the driver keeps trying on its own.
func InitDB(cfg *Config, log zerolog.Logger) (*DB, error) {
	db := &DB{log: log}

	client, err := initMongo(cfg.MongoURI)
	db.Mongo = client
	if err != nil {
		log.Error().Err(err).Msg("MongoDB connection error")
		return db, err
	}

	log.Info().Str("database", DatabaseName).Msg("Connected to MongoDB successfully")
	return db, nil
}

// initMongo initializes the MongoDB connection
func initMongo(uri string) (*mongo.Client, error) {
	clientOptions := options.Client().ApplyURI(uri)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, err
	}

	// Ping the primary to verify connection
	if err = client.Ping(ctx, nil); err != nil {
		return client, err
	}

	return client, nil
}

// Collection returns the datasave collection, or nil without a client
func (db *DB) Collection() *mongo.Collection {
	if db.Mongo == nil {
		return nil
	}
	return db.Mongo.Database(DatabaseName).Collection(RecordCollection)
}

// CloseDB closes the database connection
func (db *DB) CloseDB() {
	if db.Mongo == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.Mongo.Disconnect(ctx); err != nil {
		db.log.Error().Err(err).Msg("Error closing MongoDB connection")
	} else {
		db.log.Info().Msg("MongoDB connection closed.")
	}
}
