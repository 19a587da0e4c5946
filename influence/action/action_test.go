package action_test

import (
	"testing"

	"github.com/ratel-online/influence/consts"
	"github.com/ratel-online/influence/influence/action"
	"github.com/ratel-online/influence/influence/role"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestByName(t *testing.T) {
	scenarios := []struct {
		description string
		name        string
		expected    action.Action
	}{
		{description: "income", name: "income", expected: action.Income},
		{description: "harvest_alias", name: "harvest", expected: action.Income},
		{description: "foreign_aid_camel_case", name: "foreignAid", expected: action.ForeignAid},
		{description: "smuggle_goods_alias", name: "smuggle_goods", expected: action.ForeignAid},
		{description: "overthrow_alias", name: "Overthrow", expected: action.Coup},
		{description: "assassinate", name: "assassinate", expected: action.Assassinate},
	}

	for _, scenario := range scenarios {
		t.Run(scenario.description, func(t *testing.T) {
			a, err := action.ByName(scenario.name)
			require.NoError(t, err)
			assert.Equal(t, scenario.expected, a)
		})
	}

	t.Run("unknown_action", func(t *testing.T) {
		_, err := action.ByName("embezzle")
		assert.Equal(t, consts.ErrorsUnknownAction, err)
	})
}

func TestCatalog(t *testing.T) {
	t.Run("coup_is_neither_challengeable_nor_blockable", func(t *testing.T) {
		entry := action.Coup.Entry()
		assert.Equal(t, 7, entry.Cost)
		assert.True(t, entry.Targeted)
		assert.False(t, entry.Challengeable())
		assert.False(t, entry.Blockable())
	})

	t.Run("foreign_aid_is_block_only", func(t *testing.T) {
		entry := action.ForeignAid.Entry()
		assert.False(t, entry.Challengeable())
		assert.True(t, entry.BlockableBy(role.Duke))
		assert.False(t, entry.BlockableBy(role.Contessa))
	})

	t.Run("steal_is_blocked_by_two_roles", func(t *testing.T) {
		entry := action.Steal.Entry()
		assert.Equal(t, role.Captain, entry.Claim)
		assert.True(t, entry.BlockableBy(role.Captain))
		assert.True(t, entry.BlockableBy(role.Contessa))
		assert.False(t, entry.BlockableBy(role.Ambassador))
		assert.False(t, entry.BlockableBy(role.Duke))
	})

	t.Run("assassinate_costs_three", func(t *testing.T) {
		entry := action.Assassinate.Entry()
		assert.Equal(t, 3, entry.Cost)
		assert.Equal(t, role.Assassin, entry.Claim)
		assert.Equal(t, []role.Role{role.Contessa}, entry.Blockers)
	})

	t.Run("unblockable_claims", func(t *testing.T) {
		for _, a := range []action.Action{action.Tax, action.Exchange} {
			entry := a.Entry()
			assert.True(t, entry.Challengeable(), a.String())
			assert.False(t, entry.Blockable(), a.String())
		}
	})

	t.Run("every_action_has_an_entry", func(t *testing.T) {
		for _, a := range action.All {
			assert.True(t, a.Valid())
			assert.Equal(t, a, a.Entry().Action)
		}
		assert.False(t, action.Action(0).Valid())
		assert.Panics(t, func() { action.Action(0).Entry() })
	})
}
