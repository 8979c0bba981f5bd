package main

import (
	"context"
	"fmt"

	"coletaverde/internal/adapter/persistence/memory"
	"coletaverde/internal/adapter/persistence/repository"
	"coletaverde/internal/infrastructure/config"
	"coletaverde/internal/infrastructure/database"
	"coletaverde/internal/usecase/interfaces"

	"github.com/sirupsen/logrus"
)

type stores struct {
	solicitations interfaces.ISolicitationRepository
	users         interfaces.IUserRepository
	chats         interfaces.IChatRepository
	payments      interfaces.IBillingPaymentRepository
	sequence      interfaces.ISequence
}

// openStores selects the persistence backend from STORE_DRIVER.
func openStores(ctx context.Context, cfg config.Config, logger logrus.FieldLogger) (stores, error) {
	log := logger.WithField("store", cfg.StoreDriver)

	switch cfg.StoreDriver {
	case config.StoreMemory:
		log.Warn("using in-memory store; data is lost on restart")
		return stores{
			solicitations: memory.NewSolicitationRepository(),
			users:         memory.NewUserRepository(),
			chats:         memory.NewChatRepository(),
			payments:      memory.NewBillingPaymentRepository(),
			sequence:      memory.NewSequence(),
		}, nil

	case config.StoreDynamoDB:
		ddb, err := database.ConnectDynamoDB(ctx, cfg)
		if err != nil {
			return stores{}, err
		}
		if cfg.DynamoDBCreateTables {
			if err := repository.EnsureTables(ctx, ddb, cfg.Tables, logger); err != nil {
				return stores{}, err
			}
		}
		log.WithField("endpoint", cfg.DynamoDBEndpoint).Info("dynamodb store ready")
		return stores{
			solicitations: repository.NewSolicitationDynamoRepository(ddb, cfg.Tables.Solicitations),
			users:         repository.NewUserDynamoRepository(ddb, cfg.Tables.Users),
			chats:         repository.NewChatDynamoRepository(ddb, cfg.Tables.Chats, cfg.Tables.Messages),
			payments:      repository.NewBillingPaymentDynamoRepository(ddb, cfg.Tables.Payments),
			sequence:      repository.NewDynamoSequence(ddb, cfg.Tables.Counters),
		}, nil
	}
	return stores{}, fmt.Errorf("unknown STORE_DRIVER %q", cfg.StoreDriver)
}
