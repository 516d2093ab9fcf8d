package main

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/allisson/hybridcrypt/cmd/app/commands"
	"github.com/allisson/hybridcrypt/internal/app"
	"github.com/allisson/hybridcrypt/internal/config"
)

// newCipherContainer loads and validates configuration for a one-shot command.
func newCipherContainer() (*app.Container, error) {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return app.NewContainer(cfg), nil
}

func getCipherCommands() []*cli.Command {
	return []*cli.Command{
		{
			Name:  "encrypt",
			Usage: "Encrypt a message with a key matrix, optionally wrapping the key with a public key",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     "message",
					Aliases:  []string{"m"},
					Required: true,
					Usage:    "Message to encrypt ('-' reads it from stdin)",
				},
				&cli.StringFlag{
					Name:     "key-matrix",
					Aliases:  []string{"k"},
					Required: true,
					Usage:    "Key matrix, rows separated by newlines or a flattened list of N*N integers",
				},
				&cli.StringFlag{
					Name:    "public-key",
					Aliases: []string{"p"},
					Usage:   "Public key as '<exponent>,<modulus>' to wrap the key matrix",
				},
				formatFlag(),
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				container, err := newCipherContainer()
				if err != nil {
					return err
				}
				defer func() { _ = container.Shutdown(ctx) }()

				useCase, err := container.HybridUseCase()
				if err != nil {
					return err
				}

				return commands.RunEncrypt(
					ctx,
					useCase,
					container.Logger(),
					commands.DefaultIO(),
					cmd.String("message"),
					cmd.String("key-matrix"),
					cmd.String("public-key"),
					cmd.String("format"),
				)
			},
		},
		{
			Name:  "decrypt",
			Usage: "Decrypt a message with a key matrix, or with an encrypted key and a private key",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     "encrypted-message",
					Aliases:  []string{"m"},
					Required: true,
					Usage:    "Encrypted message ('-' reads it from stdin)",
				},
				&cli.StringFlag{
					Name:    "key-matrix",
					Aliases: []string{"k"},
					Usage:   "Key matrix shared out of band",
				},
				&cli.StringFlag{
					Name:    "encrypted-key",
					Aliases: []string{"e"},
					Usage:   "Wrapped key matrix as comma-separated integers",
				},
				&cli.StringFlag{
					Name:    "private-key",
					Aliases: []string{"p"},
					Usage:   "Private key as '<exponent>,<modulus>'",
				},
				&cli.IntFlag{
					Name:    "message-length",
					Aliases: []string{"l"},
					Usage:   "Original message length, removes the padding when set",
				},
				formatFlag(),
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				container, err := newCipherContainer()
				if err != nil {
					return err
				}
				defer func() { _ = container.Shutdown(ctx) }()

				useCase, err := container.HybridUseCase()
				if err != nil {
					return err
				}

				return commands.RunDecrypt(
					ctx,
					useCase,
					container.Logger(),
					commands.DefaultIO(),
					commands.DecryptOptions{
						EncryptedMessage: cmd.String("encrypted-message"),
						KeyMatrix:        cmd.String("key-matrix"),
						EncryptedKey:     cmd.String("encrypted-key"),
						PrivateKey:       cmd.String("private-key"),
						MessageLength:    int(cmd.Int("message-length")),
					},
					cmd.String("format"),
				)
			},
		},
	}
}

func getKeyCommands() []*cli.Command {
	return []*cli.Command{
		{
			Name:  "generate-key-matrix",
			Usage: "Generate a random invertible key matrix",
			Flags: []cli.Flag{
				&cli.IntFlag{
					Name:    "dimension",
					Aliases: []string{"n"},
					Value:   3,
					Usage:   "Key matrix dimension (block size)",
				},
				formatFlag(),
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				container, err := newCipherContainer()
				if err != nil {
					return err
				}
				defer func() { _ = container.Shutdown(ctx) }()

				useCase, err := container.KeyUseCase()
				if err != nil {
					return err
				}

				return commands.RunGenerateKeyMatrix(
					ctx,
					useCase,
					commands.DefaultIO(),
					int(cmd.Int("dimension")),
					cmd.String("format"),
				)
			},
		},
		{
			Name:  "generate-key-pair",
			Usage: "Derive an RSA key pair from primes p and q, or generate one of a given size",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:  "p",
					Usage: "First prime (decimal)",
				},
				&cli.StringFlag{
					Name:  "q",
					Usage: "Second prime (decimal)",
				},
				&cli.StringFlag{
					Name:    "e",
					Aliases: []string{"exponent"},
					Usage:   "Public exponent (required with p and q, defaults to 65537 when generating)",
				},
				&cli.IntFlag{
					Name:    "bits",
					Aliases: []string{"b"},
					Usage:   "Modulus size in bits when generating random primes",
				},
				formatFlag(),
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				container, err := newCipherContainer()
				if err != nil {
					return err
				}
				defer func() { _ = container.Shutdown(ctx) }()

				useCase, err := container.KeyUseCase()
				if err != nil {
					return err
				}

				return commands.RunGenerateKeyPair(
					ctx,
					useCase,
					commands.DefaultIO(),
					commands.KeyPairOptions{
						P:    cmd.String("p"),
						Q:    cmd.String("q"),
						E:    cmd.String("e"),
						Bits: int(cmd.Int("bits")),
					},
					cmd.String("format"),
				)
			},
		},
	}
}
