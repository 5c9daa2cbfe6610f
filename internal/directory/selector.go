package directory

import (
	"context"
	"fmt"

	"github.com/pharmahub/pharma-backend/pkg/config"
	"github.com/pharmahub/pharma-backend/pkg/db"
	"github.com/pharmahub/pharma-backend/pkg/logger"
	"github.com/pharmahub/pharma-backend/pkg/migrate"
)

const (
	KindPersistent = "persistent"
	KindEphemeral  = "ephemeral"
)

// Selection is the process-wide storage decision, made exactly once at
// startup. There is no runtime failover between variants: when a database is
// configured it must be reachable, and connection faults during requests
// surface as errors instead of silently downgrading to the in-memory store.
type Selection struct {
	Directory Directory
	Pinger    db.Pinger // nil for the ephemeral variant
	Kind      string
	close     func() error
}

// Close releases the resources owned by the selected variant.
func (s *Selection) Close() error {
	if s == nil || s.close == nil {
		return nil
	}
	return s.close()
}

// Select inspects the configuration and binds the directory variant backing
// all requests for the lifetime of the process.
func Select(ctx context.Context, cfg *config.Config, logg *logger.Logger) (*Selection, error) {
	if cfg.DB.HasDSN() {
		client, err := db.New(ctx, cfg.DB, logg)
		if err != nil {
			return nil, fmt.Errorf("connecting durable user directory: %w", err)
		}
		if err := migrate.MaybeRunDev(ctx, cfg, logg, client); err != nil {
			_ = client.Close()
			return nil, fmt.Errorf("migrating user directory: %w", err)
		}
		if logg != nil {
			logg.Info(logg.WithStore(ctx, KindPersistent), "user directory selected")
		}
		return &Selection{
			Directory: NewPersistent(client.DB()),
			Pinger:    client,
			Kind:      KindPersistent,
			close:     client.Close,
		}, nil
	}

	if logg != nil {
		logg.Warn(logg.WithStore(ctx, KindEphemeral), "no database configured, user directory resets on restart")
	}
	return &Selection{
		Directory: NewEphemeral(),
		Kind:      KindEphemeral,
	}, nil
}
