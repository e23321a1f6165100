package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gird-dev/gird/internal/adapters/config"
	"github.com/gird-dev/gird/internal/core/domain"
	"github.com/gird-dev/gird/internal/core/ports/mocks"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func setupLoaderTest(t *testing.T) *config.Loader {
	t.Helper()
	ctrl := gomock.NewController(t)
	logger := mocks.NewMockLogger(ctrl)
	logger.EXPECT().Info(gomock.Any()).AnyTimes()
	return config.NewLoader(logger)
}

func writeGirdfile(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "girdfile.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_DeclarationOrder(t *testing.T) {
	path := writeGirdfile(t, `
version: "1"
rules:
  zeta:
    recipe: ["echo zeta"]
  alpha:
    recipe: ["echo alpha"]
  mid:
    recipe: ["echo mid"]
`)
	loader := setupLoaderTest(t)

	rules, err := loader.Load(path)
	require.NoError(t, err)
	require.Equal(t, 3, rules.Len())

	var names []string
	for rule := range rules.Rules() {
		names = append(names, rule.ID().String())
	}
	require.Equal(t, []string{"zeta", "alpha", "mid"}, names)
}

func TestLoad_PhonyByDefault(t *testing.T) {
	path := writeGirdfile(t, `
rules:
  test:
    recipe: ["go test ./..."]
    help: run the tests
`)
	loader := setupLoaderTest(t)

	rules, err := loader.Load(path)
	require.NoError(t, err)

	rule, ok := rules.Lookup(domain.NewInternedString("test"))
	require.True(t, ok)
	require.Equal(t, domain.KindPhony, rule.Target.Kind())
	require.Equal(t, "run the tests", rule.Help)
}

func TestLoad_PathTargetRelativeToGirdfile(t *testing.T) {
	path := writeGirdfile(t, `
rules:
  report:
    target: out/report.csv
    recipe: ["generate > out/report.csv"]
`)
	loader := setupLoaderTest(t)

	rules, err := loader.Load(path)
	require.NoError(t, err)

	want := domain.PathTarget(filepath.Join(filepath.Dir(path), "out/report.csv"))
	rule, ok := rules.Lookup(want.ID())
	require.True(t, ok)
	require.Equal(t, domain.KindPath, rule.Target.Kind())
}

func TestLoad_RuleReferenceAndFileDeps(t *testing.T) {
	path := writeGirdfile(t, `
rules:
  data:
    target: data.csv
    recipe: ["fetch > data.csv"]
  report:
    target: report.pdf
    deps:
      - data
      - template.tex
    recipe: ["render"]
`)
	loader := setupLoaderTest(t)

	rules, err := loader.Load(path)
	require.NoError(t, err)

	baseDir := filepath.Dir(path)
	report, ok := rules.Lookup(domain.PathTarget(filepath.Join(baseDir, "report.pdf")).ID())
	require.True(t, ok)
	require.Len(t, report.Deps, 2)

	// "data" names a rule, so the dependency binds to that rule's path
	// target, not to a file literally called "data".
	require.Equal(t,
		domain.PathTarget(filepath.Join(baseDir, "data.csv")).ID(),
		report.Deps[0].Target().ID())

	// "template.tex" names no rule and becomes a plain file dependency.
	require.Equal(t,
		domain.PathTarget(filepath.Join(baseDir, "template.tex")).ID(),
		report.Deps[1].Target().ID())
}

func TestLoad_ForwardRuleReference(t *testing.T) {
	// Dependencies may name rules declared later in the file.
	path := writeGirdfile(t, `
rules:
  all:
    deps: [build]
  build:
    target: bin/tool
    recipe: ["compile"]
`)
	loader := setupLoaderTest(t)

	rules, err := loader.Load(path)
	require.NoError(t, err)

	all, ok := rules.Lookup(domain.NewInternedString("all"))
	require.True(t, ok)
	require.Len(t, all.Deps, 1)
	require.Equal(t,
		domain.PathTarget(filepath.Join(filepath.Dir(path), "bin/tool")).ID(),
		all.Deps[0].Target().ID())
}

func TestLoad_PhonyRuleReference(t *testing.T) {
	path := writeGirdfile(t, `
rules:
  all:
    deps: [test]
  test:
    recipe: ["go test ./..."]
`)
	loader := setupLoaderTest(t)

	rules, err := loader.Load(path)
	require.NoError(t, err)

	all, ok := rules.Lookup(domain.NewInternedString("all"))
	require.True(t, ok)
	require.Equal(t, domain.KindPhony, all.Deps[0].Target().Kind())
	require.Equal(t, "test", all.Deps[0].Target().ID().String())
}

func TestLoad_ListedAndParallel(t *testing.T) {
	path := writeGirdfile(t, `
rules:
  visible:
    recipe: ["echo"]
  hidden:
    recipe: ["echo"]
    listed: false
  concurrent:
    recipe: ["echo"]
    parallel: true
`)
	loader := setupLoaderTest(t)

	rules, err := loader.Load(path)
	require.NoError(t, err)

	visible, _ := rules.Lookup(domain.NewInternedString("visible"))
	require.False(t, visible.Unlisted)
	require.False(t, visible.Parallel)

	hidden, _ := rules.Lookup(domain.NewInternedString("hidden"))
	require.True(t, hidden.Unlisted)

	concurrent, _ := rules.Lookup(domain.NewInternedString("concurrent"))
	require.True(t, concurrent.Parallel)
}

func TestLoad_WorkDir(t *testing.T) {
	path := writeGirdfile(t, `
rules:
  default:
    recipe: ["pwd"]
  sub:
    recipe: ["pwd"]
    workdir: nested
`)
	loader := setupLoaderTest(t)

	rules, err := loader.Load(path)
	require.NoError(t, err)

	baseDir := filepath.Dir(path)
	def, _ := rules.Lookup(domain.NewInternedString("default"))
	require.Equal(t, baseDir, def.WorkDir)

	sub, _ := rules.Lookup(domain.NewInternedString("sub"))
	require.Equal(t, filepath.Join(baseDir, "nested"), sub.WorkDir)
}

func TestLoad_EmptyRules(t *testing.T) {
	path := writeGirdfile(t, `
version: "1"
`)
	loader := setupLoaderTest(t)

	rules, err := loader.Load(path)
	require.NoError(t, err)
	require.Equal(t, 0, rules.Len())
}

func TestLoad_MissingFile(t *testing.T) {
	loader := setupLoaderTest(t)
	_, err := loader.Load(filepath.Join(t.TempDir(), "girdfile.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := writeGirdfile(t, "rules: [not a mapping")
	loader := setupLoaderTest(t)

	_, err := loader.Load(path)
	require.Error(t, err)
}

func TestLoad_RulesNotAMapping(t *testing.T) {
	path := writeGirdfile(t, `
rules:
  - just
  - a
  - list
`)
	loader := setupLoaderTest(t)

	_, err := loader.Load(path)
	require.Error(t, err)
	require.Contains(t, err.Error(), "mapping")
}

func TestLoad_DuplicateRuleName(t *testing.T) {
	path := writeGirdfile(t, `
rules:
  build:
    recipe: ["echo one"]
  build:
    recipe: ["echo two"]
`)
	loader := setupLoaderTest(t)

	_, err := loader.Load(path)
	require.Error(t, err)
}

func TestLoad_EmptyCommand(t *testing.T) {
	path := writeGirdfile(t, `
rules:
  broken:
    recipe: [""]
`)
	loader := setupLoaderTest(t)

	_, err := loader.Load(path)
	require.ErrorIs(t, err, domain.ErrInvalidRule)
}
