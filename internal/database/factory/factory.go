package factory

import (
	"context"
	"fmt"

	"github.com/Karl-Horning/nextjs-shoe-store/internal/config"
	"github.com/Karl-Horning/nextjs-shoe-store/internal/database"
	"github.com/Karl-Horning/nextjs-shoe-store/internal/database/dynamodb"
	"github.com/Karl-Horning/nextjs-shoe-store/internal/database/memory"
	"github.com/Karl-Horning/nextjs-shoe-store/internal/database/sqlstore"
)

func NewClient(ctx context.Context, cfg *config.Config) (database.Client, error) {
	switch provider := cfg.Database.Provider; {
	case provider == "dynamodb":
		client, err := dynamodb.Connect(ctx, dynamodb.Options{
			Region:      cfg.Database.Region,
			Profile:     cfg.Database.Profile,
			Endpoint:    cfg.Database.Endpoint,
			MaxAttempts: cfg.Database.MaxAttempts,
			BatchSize:   cfg.Seed.BatchSize,
		})
		if err != nil {
			return nil, err
		}
		return client, nil
	case provider == "memory":
		return memory.New(cfg.Tables.Orders, cfg.Tables.Shoes).WithBatchSize(cfg.Seed.BatchSize), nil
	case cfg.IsSQL():
		dbURL, err := cfg.GetDatabaseURL()
		if err != nil {
			return nil, err
		}
		client, err := sqlstore.Open(ctx, provider, dbURL, cfg.Seed.BatchSize)
		if err != nil {
			return nil, err
		}
		return client, nil
	default:
		return nil, fmt.Errorf("unsupported database provider: %s", provider)
	}
}
