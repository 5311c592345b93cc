package steps

import (
	"maps"

	"github.com/donaldgifford/prettierstep/internal/config"
	"github.com/donaldgifford/prettierstep/internal/prettier"
	"github.com/donaldgifford/prettierstep/internal/step"
)

// Prettier is the factory for `prettier` step declarations.
type Prettier struct{}

// Kind implements Factory.
func (Prettier) Kind() string { return "prettier" }

// Declared implements Factory.
func (Prettier) Declared(decl *config.Step) bool { return decl.Prettier != nil }

// NewFormatterStep implements Factory.
func (p Prettier) NewFormatterStep(decl *config.Step, env *Env) (prettier.FormatterStep, error) {
	return p.Resolver(env).Resolve(RawConfig(decl.Prettier))
}

// Resolver returns a resolver that locates files and builds steps on env.FS.
func (Prettier) Resolver(env *Env) *prettier.Resolver {
	loc := env.Locator()
	return &prettier.Resolver{
		Paths:    loc,
		Defaults: env.Defaults,
		Builder:  &step.Builder{FS: env.FS, BaseDir: loc.BaseDir(), BuildDir: loc.BuildDir()},
	}
}

// RawConfig converts a config declaration into the resolver's input. Maps
// are copied; nil stays nil.
func RawConfig(p *config.PrettierStep) *prettier.RawStepConfig {
	return &prettier.RawStepConfig{
		PrettierVersion:         p.PrettierVersion,
		DevDependencies:         maps.Clone(p.DevDependencies),
		DevDependencyProperties: maps.Clone(map[string]string(p.DevDependencyProperties)),
		Config:                  p.Config.Map(),
		ConfigFile:              p.ConfigFile,
		NpmExecutable:           p.NpmExecutable,
		Npmrc:                   p.Npmrc,
	}
}
