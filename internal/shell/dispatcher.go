// Package shell implements the interactive command surface: a parser that
// resolves a typed line to an (entity, action) pair and a runner that
// executes the resolved command against the repositories.
package shell

import (
	"strings"
)

type Entity string

const (
	EntityProduct  Entity = "product"
	EntityCustomer Entity = "customer"
	EntityPurchase Entity = "purchase"
	EntityQuery    Entity = "query"
)

type Action string

const (
	ActionCreate    Action = "create"
	ActionGet       Action = "get"
	ActionGetAll    Action = "get-all"
	ActionUpdate    Action = "update"
	ActionDelete    Action = "delete"
	ActionDeleteAll Action = "delete-all"
	ActionGenerate  Action = "generate"

	// Ad-hoc analytic queries keep their numeric names from the shell syntax
	ActionQueryProductsByManufacturer Action = "1"
	ActionQueryCustomerPurchases      Action = "2"
	ActionQueryUpdatePrice            Action = "3"
	ActionQuerySalesByProduct         Action = "4"
)

// Command is a parsed shell command. Args are kept as raw tokens; the
// runner converts numeric and date arguments before invocation.
type Command struct {
	Entity Entity
	Action Action
	Args   []string
}

// Parse splits a command line into entity, action and arguments. The second
// return value is false for unrecognized or too-short input; that is a
// sentinel consumed by the runner to print usage, not an error.
func Parse(line string) (Command, bool) {
	tokens := strings.Fields(line)
	if len(tokens) < 2 {
		return Command{}, false
	}

	entity, action := Entity(tokens[0]), Action(tokens[1])
	if !validCommand(entity, action) {
		return Command{}, false
	}

	return Command{Entity: entity, Action: action, Args: tokens[2:]}, true
}

func validCommand(entity Entity, action Action) bool {
	switch entity {
	case EntityProduct, EntityCustomer, EntityPurchase:
		switch action {
		case ActionCreate, ActionGet, ActionGetAll, ActionUpdate,
			ActionDelete, ActionDeleteAll, ActionGenerate:
			return true
		}
	case EntityQuery:
		switch action {
		case ActionQueryProductsByManufacturer, ActionQueryCustomerPurchases,
			ActionQueryUpdatePrice, ActionQuerySalesByProduct:
			return true
		}
	}

	return false
}
