package directory

import (
	"context"
	"testing"

	"github.com/pharmahub/pharma-backend/pkg/config"
)

func TestSelectWithoutDSNBindsEphemeral(t *testing.T) {
	cfg := &config.Config{}

	sel, err := Select(context.Background(), cfg, nil)
	if err != nil {
		t.Fatalf("select: %v", err)
	}
	t.Cleanup(func() { _ = sel.Close() })

	if sel.Kind != KindEphemeral {
		t.Fatalf("expected ephemeral selection, got %s", sel.Kind)
	}
	if _, ok := sel.Directory.(*Ephemeral); !ok {
		t.Fatalf("expected *Ephemeral directory, got %T", sel.Directory)
	}
	if sel.Pinger != nil {
		t.Fatalf("ephemeral selection must not expose a pinger")
	}
}

func TestSelectionCloseIsNilSafe(t *testing.T) {
	var sel *Selection
	if err := sel.Close(); err != nil {
		t.Fatalf("nil selection close: %v", err)
	}
	if err := (&Selection{}).Close(); err != nil {
		t.Fatalf("empty selection close: %v", err)
	}
}
