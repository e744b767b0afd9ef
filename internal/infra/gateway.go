package infra

import (
	"go.uber.org/zap"

	intasend "github.com/congo-pay/intasend-go"
	"github.com/congo-pay/intasend-go/client"
	"github.com/congo-pay/intasend-go/internal/config"
)

// NewGatewayClient builds the IntaSend client used by the relay handlers.
func NewGatewayClient(cfg config.Gateway, logger *zap.Logger) *client.API {
	opts := []intasend.Option{
		intasend.WithTimeout(cfg.Timeout),
		intasend.WithLogger(logger.Named("intasend")),
		intasend.WithUserAgent("intasend-relay/1.0"),
	}
	if cfg.BaseURL != "" {
		opts = append(opts, intasend.WithBaseURL(cfg.BaseURL))
	}
	return client.New(cfg.PublishableKey, cfg.SecretKey, cfg.TestMode, opts...)
}
