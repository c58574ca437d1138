package contracts

import "encoding/json"

// Types of the solc standard JSON interface, restricted to the fields we use.

type solcInput struct {
	Language string                `json:"language"`
	Sources  map[string]solcSource `json:"sources"`
	Settings solcSettings          `json:"settings"`
}

type solcSource struct {
	Content string `json:"content"`
}

type solcOptimizer struct {
	Enabled bool `json:"enabled"`
	Runs    int  `json:"runs"`
}

type solcSettings struct {
	Optimizer       solcOptimizer                  `json:"optimizer"`
	OutputSelection map[string]map[string][]string `json:"outputSelection"`
}

type solcOutput struct {
	Errors    []solcError                        `json:"errors"`
	Contracts map[string]map[string]solcContract `json:"contracts"`
}

type solcError struct {
	Severity         string `json:"severity"`
	Type             string `json:"type"`
	Message          string `json:"message"`
	FormattedMessage string `json:"formattedMessage"`
}

type solcBytecode struct {
	Object         string         `json:"object"`
	LinkReferences LinkReferences `json:"linkReferences"`
}

type solcContract struct {
	Abi json.RawMessage `json:"abi"`
	Evm struct {
		Bytecode         solcBytecode `json:"bytecode"`
		DeployedBytecode solcBytecode `json:"deployedBytecode"`
	} `json:"evm"`
}

var defaultOutputSelection = map[string]map[string][]string{
	"*": {
		"*": {
			"abi",
			"evm.bytecode.object",
			"evm.bytecode.linkReferences",
			"evm.deployedBytecode.object",
			"evm.deployedBytecode.linkReferences",
		},
	},
}
