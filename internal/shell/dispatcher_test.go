package shell

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseValidCommands(t *testing.T) {
	tests := []struct {
		line   string
		entity Entity
		action Action
		args   []string
	}{
		{"product create Widget Acme piece", EntityProduct, ActionCreate, []string{"Widget", "Acme", "piece"}},
		{"customer get 5", EntityCustomer, ActionGet, []string{"5"}},
		{"purchase get-all", EntityPurchase, ActionGetAll, nil},
		{"purchase get-all 10 20", EntityPurchase, ActionGetAll, []string{"10", "20"}},
		{"product delete-all", EntityProduct, ActionDeleteAll, nil},
		{"customer generate 7", EntityCustomer, ActionGenerate, []string{"7"}},
		{"purchase update 1 2 3 4.5 2025-01-01_10:00:00 6.0", EntityPurchase, ActionUpdate, []string{"1", "2", "3", "4.5", "2025-01-01_10:00:00", "6.0"}},
		{"query 1 Acme piece", EntityQuery, ActionQueryProductsByManufacturer, []string{"Acme", "piece"}},
		{"query 4 12", EntityQuery, ActionQuerySalesByProduct, []string{"12"}},
		{"  product   get   3  ", EntityProduct, ActionGet, []string{"3"}},
	}

	for _, tt := range tests {
		cmd, ok := Parse(tt.line)
		require.True(t, ok, "expected %q to parse", tt.line)
		assert.Equal(t, tt.entity, cmd.Entity)
		assert.Equal(t, tt.action, cmd.Action)
		if tt.args == nil {
			assert.Empty(t, cmd.Args)
		} else {
			assert.Equal(t, tt.args, cmd.Args)
		}
	}
}

func TestParseInvalidCommands(t *testing.T) {
	lines := []string{
		"",
		"product",
		"exit now",
		"order create a b c",
		"product drop",
		"query 5",
		"query create",
		"customer 1",
	}

	for _, line := range lines {
		_, ok := Parse(line)
		assert.False(t, ok, "expected %q to be rejected", line)
	}
}
