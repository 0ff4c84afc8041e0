package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "ibea.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}
	return path
}

func TestLoadValidConfig(t *testing.T) {
	path := writeConfig(t, `
popSize: 40
generations: 200
k: 0.05
adaptive: true
tournamentSize: 2
indicator: ihd
crossoverRate: 0.9
mutationRate: 0.05
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.PopSize != 40 || cfg.Generations != 200 || !cfg.Adaptive || cfg.Indicator != "ihd" {
		t.Fatalf("unexpected config: %+v", cfg)
	}
}

func TestLoadRejectsUnknownIndicator(t *testing.T) {
	path := writeConfig(t, `
popSize: 10
generations: 10
k: 0.1
tournamentSize: 2
indicator: bogus
`)
	if _, err := Load(path); err == nil {
		t.Fatalf("expected an error for an unknown indicator")
	}
}

func TestLoadRejectsNonPositivePopSize(t *testing.T) {
	path := writeConfig(t, `
popSize: 0
generations: 10
k: 0.1
tournamentSize: 2
`)
	if _, err := Load(path); err == nil {
		t.Fatalf("expected an error for popSize=0")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatalf("expected an error for a missing file")
	}
}

func TestToIBEAConfigDefaultsPoolSizeToPopSize(t *testing.T) {
	cfg := &IBEAFileConfig{PopSize: 25, Generations: 5, K: 0.1, TournamentSize: 2}
	ibeaCfg := cfg.ToIBEAConfig([]float64{0, 0})
	if ibeaCfg.PoolSize != 25 {
		t.Fatalf("PoolSize = %d, want 25 (defaulted from PopSize)", ibeaCfg.PoolSize)
	}
	if ibeaCfg.Indicator == nil {
		t.Fatalf("expected a resolved indicator")
	}
}

func TestValidateRejectsUnknownCrossover(t *testing.T) {
	cfg := &IBEAFileConfig{PopSize: 10, Generations: 10, K: 0.1, TournamentSize: 2, Crossover: "bogus"}
	if err := cfg.Validate(); err == nil {
		t.Fatalf("expected an error for an unknown crossover")
	}
}

func TestValidateRejectsNegativePoolSize(t *testing.T) {
	cfg := &IBEAFileConfig{PopSize: 10, Generations: 10, K: 0.1, TournamentSize: 2, PoolSize: -1}
	if err := cfg.Validate(); err == nil {
		t.Fatalf("expected an error for a negative poolSize")
	}
}

func TestToIBEAConfigResolvesNPointCrossover(t *testing.T) {
	cfg := &IBEAFileConfig{
		PopSize: 10, Generations: 5, K: 0.1, TournamentSize: 2,
		Crossover: "npc", CrossoverRate: 0.8,
	}
	ibeaCfg := cfg.ToIBEAConfig([]float64{0, 0})
	if ibeaCfg.Crossover == nil {
		t.Fatalf("expected a resolved crossover operator")
	}
}
