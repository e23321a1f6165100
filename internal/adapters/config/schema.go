package config

import "gopkg.in/yaml.v3"

// Girdfile is the top-level structure of a girdfile.yaml. Rules stay a
// raw yaml.Node so the loader can walk the mapping in document order;
// declaration order is part of the listing contract.
type Girdfile struct {
	Version string    `yaml:"version"`
	Rules   yaml.Node `yaml:"rules"`
}

// RuleDTO is one rule definition in the file. Predicate dependencies and
// function recipes are not expressible declaratively; they belong to the
// programmatic API.
type RuleDTO struct {
	// Target is the file the rule produces, relative to the girdfile.
	// Empty means a phony target named by the rule's key.
	Target string `yaml:"target"`
	// Deps name either another rule (by key) or a file path.
	Deps []string `yaml:"deps"`
	// Recipe is the ordered list of shell commands.
	Recipe []string `yaml:"recipe"`
	// Help is the description shown by the list command.
	Help string `yaml:"help"`
	// Parallel allows the rule to run concurrently with other ready
	// rules.
	Parallel bool `yaml:"parallel"`
	// Listed controls visibility in the list command. Defaults to true.
	Listed *bool `yaml:"listed"`
	// WorkDir overrides the recipe's working directory, relative to the
	// girdfile. Defaults to the girdfile's directory.
	WorkDir string `yaml:"workdir"`
}
