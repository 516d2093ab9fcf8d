package app

import (
	"fmt"
	"sync"

	"github.com/allisson/hybridcrypt/internal/database"
	envelopeHTTP "github.com/allisson/hybridcrypt/internal/envelope/http"
	envelopeRepository "github.com/allisson/hybridcrypt/internal/envelope/repository"
	envelopeUseCase "github.com/allisson/hybridcrypt/internal/envelope/usecase"
)

// envelopeComponents holds the envelope store. It exists only when DB_DRIVER is set.
type envelopeComponents struct {
	envelopeRepository envelopeUseCase.EnvelopeRepository
	envelopeUseCase    envelopeUseCase.EnvelopeUseCase
	envelopeHandler    *envelopeHTTP.EnvelopeHandler

	envelopeRepositoryInit sync.Once
	envelopeUseCaseInit    sync.Once
	envelopeHandlerInit    sync.Once
}

// EnvelopeRepository returns the envelope repository based on database driver.
func (c *Container) EnvelopeRepository() (envelopeUseCase.EnvelopeRepository, error) {
	var err error
	c.envelopeRepositoryInit.Do(func() {
		c.envelopeRepository, err = c.initEnvelopeRepository()
		if err != nil {
			c.initErrors["envelopeRepository"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["envelopeRepository"]; exists {
		return nil, storedErr
	}
	return c.envelopeRepository, nil
}

// EnvelopeUseCase returns the envelope use case.
func (c *Container) EnvelopeUseCase() (envelopeUseCase.EnvelopeUseCase, error) {
	var err error
	c.envelopeUseCaseInit.Do(func() {
		c.envelopeUseCase, err = c.initEnvelopeUseCase()
		if err != nil {
			c.initErrors["envelopeUseCase"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["envelopeUseCase"]; exists {
		return nil, storedErr
	}
	return c.envelopeUseCase, nil
}

// EnvelopeHandler returns the HTTP handler for /v1/envelopes.
func (c *Container) EnvelopeHandler() (*envelopeHTTP.EnvelopeHandler, error) {
	var err error
	c.envelopeHandlerInit.Do(func() {
		c.envelopeHandler, err = c.initEnvelopeHandler()
		if err != nil {
			c.initErrors["envelopeHandler"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["envelopeHandler"]; exists {
		return nil, storedErr
	}
	return c.envelopeHandler, nil
}

func (c *Container) initEnvelopeRepository() (envelopeUseCase.EnvelopeRepository, error) {
	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for envelope repository: %w", err)
	}
	if db == nil {
		return nil, ErrEnvelopeStoreDisabled
	}

	switch c.config.DBDriver {
	case database.DriverMySQL:
		return envelopeRepository.NewMySQLEnvelopeRepository(db), nil
	case database.DriverPostgres:
		return envelopeRepository.NewPostgreSQLEnvelopeRepository(db), nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", c.config.DBDriver)
	}
}

func (c *Container) initEnvelopeUseCase() (envelopeUseCase.EnvelopeUseCase, error) {
	txManager, err := c.TxManager()
	if err != nil {
		return nil, fmt.Errorf("failed to get tx manager for envelope use case: %w", err)
	}

	repository, err := c.EnvelopeRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get envelope repository for envelope use case: %w", err)
	}

	hybridUseCase, err := c.HybridUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get hybrid use case for envelope use case: %w", err)
	}

	baseUseCase := envelopeUseCase.NewEnvelopeUseCase(txManager, repository, hybridUseCase)

	if c.config.MetricsEnabled {
		businessMetrics, err := c.BusinessMetrics()
		if err != nil {
			return nil, fmt.Errorf("failed to get business metrics for envelope use case: %w", err)
		}
		return envelopeUseCase.NewEnvelopeUseCaseWithMetrics(baseUseCase, businessMetrics), nil
	}

	return baseUseCase, nil
}

func (c *Container) initEnvelopeHandler() (*envelopeHTTP.EnvelopeHandler, error) {
	useCase, err := c.EnvelopeUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get envelope use case for envelope handler: %w", err)
	}
	return envelopeHTTP.NewEnvelopeHandler(useCase, c.Logger()), nil
}
