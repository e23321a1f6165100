// Package config loads rule definitions from a girdfile.yaml.
package config

import (
	"os"
	"path/filepath"

	"github.com/gird-dev/gird/internal/core/domain"
	"github.com/gird-dev/gird/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Loader implements ports.RuleLoader for YAML rule files.
type Loader struct {
	logger ports.Logger
}

// NewLoader creates a Loader.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{logger: logger}
}

// Load reads the girdfile at path and returns the registry. Rules keep
// the file's declaration order. Recipes run in the girdfile's directory
// unless a rule overrides its workdir.
func (l *Loader) Load(path string) (*domain.RuleSet, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to read girdfile"), "path", path)
	}

	var file Girdfile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to parse girdfile"), "path", path)
	}

	names, dtos, err := decodeRules(&file.Rules)
	if err != nil {
		return nil, zerr.With(err, "path", path)
	}

	baseDir := filepath.Dir(path)

	// First pass: bind every rule name to its target so dependency
	// references resolve regardless of declaration order.
	targets := make(map[string]domain.Target, len(names))
	for i, name := range names {
		targets[name] = ruleTarget(name, dtos[i], baseDir)
	}

	rules := domain.NewRuleSet()
	for i, name := range names {
		rule, err := buildRule(name, dtos[i], targets, baseDir)
		if err != nil {
			return nil, err
		}
		if err := rules.Add(rule); err != nil {
			return nil, err
		}
	}

	l.logger.Info("loaded " + path)
	return rules, nil
}

// decodeRules walks the rules mapping node in document order.
func decodeRules(node *yaml.Node) ([]string, []*RuleDTO, error) {
	if node.Kind == 0 || (node.Kind == yaml.ScalarNode && node.Tag == "!!null") {
		return nil, nil, nil
	}
	if node.Kind != yaml.MappingNode {
		return nil, nil, zerr.New("girdfile 'rules' must be a mapping of rule names")
	}

	var (
		names []string
		dtos  []*RuleDTO
	)
	for i := 0; i+1 < len(node.Content); i += 2 {
		keyNode, valueNode := node.Content[i], node.Content[i+1]

		var name string
		if err := keyNode.Decode(&name); err != nil {
			return nil, nil, zerr.Wrap(err, "failed to decode rule name")
		}
		dto := &RuleDTO{}
		if err := valueNode.Decode(dto); err != nil {
			return nil, nil, zerr.With(zerr.Wrap(err, "failed to decode rule"), "rule", name)
		}
		names = append(names, name)
		dtos = append(dtos, dto)
	}
	return names, dtos, nil
}

// ruleTarget derives the rule's target: a path target relative to the
// girdfile, or a phony target named by the rule's key.
func ruleTarget(name string, dto *RuleDTO, baseDir string) domain.Target {
	if dto.Target == "" {
		return domain.PhonyTarget(name)
	}
	return domain.PathTarget(filepath.Join(baseDir, dto.Target))
}

func buildRule(name string, dto *RuleDTO, targets map[string]domain.Target, baseDir string) (*domain.Rule, error) {
	deps := make([]domain.Dependency, 0, len(dto.Deps))
	for _, dep := range dto.Deps {
		if target, ok := targets[dep]; ok {
			deps = append(deps, domain.DepOn(target))
			continue
		}
		// Not a rule reference: a plain file path. Whether it is a legal
		// leaf is the resolver's call, because it depends on disk state.
		deps = append(deps, domain.DepOn(domain.PathTarget(filepath.Join(baseDir, dep))))
	}

	recipe := make([]domain.SubRecipe, 0, len(dto.Recipe))
	for _, cmd := range dto.Recipe {
		recipe = append(recipe, domain.Command(cmd))
	}

	workDir := baseDir
	if dto.WorkDir != "" {
		workDir = filepath.Join(baseDir, dto.WorkDir)
	}

	rule := &domain.Rule{
		Target:   targets[name],
		Deps:     deps,
		Recipe:   recipe,
		Help:     dto.Help,
		Parallel: dto.Parallel,
		Unlisted: dto.Listed != nil && !*dto.Listed,
		WorkDir:  workDir,
	}
	if err := rule.Validate(); err != nil {
		return nil, zerr.With(err, "rule", name)
	}
	return rule, nil
}
