package app

import (
	"fmt"
	"sync"

	hybridDomain "github.com/allisson/hybridcrypt/internal/hybrid/domain"
	hybridHTTP "github.com/allisson/hybridcrypt/internal/hybrid/http"
	hybridService "github.com/allisson/hybridcrypt/internal/hybrid/service"
	hybridUseCase "github.com/allisson/hybridcrypt/internal/hybrid/usecase"
)

// hybridComponents holds the cipher services, use cases and handlers.
// None of them needs a database.
type hybridComponents struct {
	codec         *hybridService.Codec
	keyValidator  hybridService.KeyValidator
	blockCipher   hybridService.BlockCipher
	keyWrapper    hybridService.KeyWrapper
	keyGenerator  hybridService.KeyGenerator
	hybridUseCase hybridUseCase.HybridUseCase
	keyUseCase    hybridUseCase.KeyUseCase
	hybridHandler *hybridHTTP.HybridHandler
	keyHandler    *hybridHTTP.KeyHandler

	codecInit         sync.Once
	keyValidatorInit  sync.Once
	hybridUseCaseInit sync.Once
	keyUseCaseInit    sync.Once
	hybridHandlerInit sync.Once
	keyHandlerInit    sync.Once
}

// Codec returns the alphabet codec built from the configured fill symbol and text policy.
func (c *Container) Codec() (*hybridService.Codec, error) {
	var err error
	c.codecInit.Do(func() {
		c.codec, err = c.initCodec()
		if err != nil {
			c.initErrors["codec"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["codec"]; exists {
		return nil, storedErr
	}
	return c.codec, nil
}

// KeyValidator returns the key matrix validator shared by every cipher component.
func (c *Container) KeyValidator() hybridService.KeyValidator {
	c.keyValidatorInit.Do(func() {
		c.keyValidator = hybridService.NewKeyValidator()
	})
	return c.keyValidator
}

// HybridUseCase returns the encrypt/decrypt use case, wrapped with metrics when enabled.
func (c *Container) HybridUseCase() (hybridUseCase.HybridUseCase, error) {
	var err error
	c.hybridUseCaseInit.Do(func() {
		c.hybridUseCase, err = c.initHybridUseCase()
		if err != nil {
			c.initErrors["hybridUseCase"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["hybridUseCase"]; exists {
		return nil, storedErr
	}
	return c.hybridUseCase, nil
}

// KeyUseCase returns the key generation use case, wrapped with metrics when enabled.
func (c *Container) KeyUseCase() (hybridUseCase.KeyUseCase, error) {
	var err error
	c.keyUseCaseInit.Do(func() {
		c.keyUseCase, err = c.initKeyUseCase()
		if err != nil {
			c.initErrors["keyUseCase"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["keyUseCase"]; exists {
		return nil, storedErr
	}
	return c.keyUseCase, nil
}

// HybridHandler returns the HTTP handler for /v1/hybrid.
func (c *Container) HybridHandler() (*hybridHTTP.HybridHandler, error) {
	var err error
	c.hybridHandlerInit.Do(func() {
		c.hybridHandler, err = c.initHybridHandler()
		if err != nil {
			c.initErrors["hybridHandler"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["hybridHandler"]; exists {
		return nil, storedErr
	}
	return c.hybridHandler, nil
}

// KeyHandler returns the HTTP handler for /v1/keys.
func (c *Container) KeyHandler() (*hybridHTTP.KeyHandler, error) {
	var err error
	c.keyHandlerInit.Do(func() {
		c.keyHandler, err = c.initKeyHandler()
		if err != nil {
			c.initErrors["keyHandler"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["keyHandler"]; exists {
		return nil, storedErr
	}
	return c.keyHandler, nil
}

func (c *Container) initCodec() (*hybridService.Codec, error) {
	fill := []rune(c.config.CipherFillSymbol)
	if len(fill) != 1 {
		return nil, fmt.Errorf("fill symbol must be a single character, got %q", c.config.CipherFillSymbol)
	}

	codec, err := hybridService.NewCodec(fill[0], hybridDomain.TextPolicy(c.config.CipherTextPolicy))
	if err != nil {
		return nil, fmt.Errorf("failed to create codec: %w", err)
	}
	return codec, nil
}

// initHybridUseCase assembles cipher and key wrap around the shared validator.
func (c *Container) initHybridUseCase() (hybridUseCase.HybridUseCase, error) {
	codec, err := c.Codec()
	if err != nil {
		return nil, fmt.Errorf("failed to get codec for hybrid use case: %w", err)
	}

	validator := c.KeyValidator()
	c.blockCipher = hybridService.NewHillCipher(codec)
	c.keyWrapper = hybridService.NewKeyWrapper(validator)

	baseUseCase := hybridUseCase.NewHybridUseCase(
		validator,
		c.blockCipher,
		c.keyWrapper,
		c.config.CipherMaxMessageLength,
		c.Logger(),
	)

	if c.config.MetricsEnabled {
		businessMetrics, err := c.BusinessMetrics()
		if err != nil {
			return nil, fmt.Errorf("failed to get business metrics for hybrid use case: %w", err)
		}
		return hybridUseCase.NewHybridUseCaseWithMetrics(baseUseCase, businessMetrics), nil
	}

	return baseUseCase, nil
}

func (c *Container) initKeyUseCase() (hybridUseCase.KeyUseCase, error) {
	c.keyGenerator = hybridService.NewKeyGenerator(c.KeyValidator(), c.config.KeyGenerationMaxAttempts)
	baseUseCase := hybridUseCase.NewKeyUseCase(c.keyGenerator)

	if c.config.MetricsEnabled {
		businessMetrics, err := c.BusinessMetrics()
		if err != nil {
			return nil, fmt.Errorf("failed to get business metrics for key use case: %w", err)
		}
		return hybridUseCase.NewKeyUseCaseWithMetrics(baseUseCase, businessMetrics), nil
	}

	return baseUseCase, nil
}

func (c *Container) initHybridHandler() (*hybridHTTP.HybridHandler, error) {
	useCase, err := c.HybridUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get hybrid use case for hybrid handler: %w", err)
	}
	return hybridHTTP.NewHybridHandler(useCase, c.Logger()), nil
}

func (c *Container) initKeyHandler() (*hybridHTTP.KeyHandler, error) {
	useCase, err := c.KeyUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get key use case for key handler: %w", err)
	}
	return hybridHTTP.NewKeyHandler(useCase, c.Logger()), nil
}
