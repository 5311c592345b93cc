package runner

import (
	"encoding/json"
	"fmt"
	"io"
	"maps"
	"path/filepath"
	"slices"
	"strings"

	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/donaldgifford/prettierstep/internal/prettier"
	"github.com/donaldgifford/prettierstep/internal/step"
)

// Report describes the outcome of resolving one step.
type Report struct {
	Step           string                              `json:"step"`
	Kind           string                              `json:"kind,omitempty"`
	Name           string                              `json:"name,omitempty"`
	Dependencies   map[string]string                   `json:"dependencies,omitempty"`
	InlineConfig   *orderedmap.OrderedMap[string, any] `json:"inlineConfig,omitempty"`
	ConfigFile     string                              `json:"configFile,omitempty"`
	NpmExecutable  string                              `json:"npmExecutable,omitempty"`
	Npmrc          string                              `json:"npmrc,omitempty"`
	NodeModulesDir string                              `json:"nodeModulesDir,omitempty"`
	Fingerprint    string                              `json:"fingerprint,omitempty"`
	Error          string                              `json:"error,omitempty"`

	Err error `json:"-"`
}

func newReport(name, kind string, s prettier.FormatterStep) *Report {
	r := &Report{Step: name, Kind: kind, Name: s.Name()}
	if ps, ok := s.(*step.PrettierStep); ok {
		r.Dependencies = ps.Dependencies()
		r.InlineConfig = ps.InlineConfig()
		r.ConfigFile = ps.ConfigFile()
		r.NpmExecutable = ps.Npm().ExplicitNpm()
		r.Npmrc = ps.Npm().ExplicitNpmrc()
		r.NodeModulesDir = ps.NodeModulesDir()
	}
	return r
}

// relativize rewrites paths under baseDir relative to it.
func (r *Report) relativize(baseDir string) {
	r.ConfigFile = relPath(baseDir, r.ConfigFile)
	r.NpmExecutable = relPath(baseDir, r.NpmExecutable)
	r.Npmrc = relPath(baseDir, r.Npmrc)
	r.NodeModulesDir = relPath(baseDir, r.NodeModulesDir)
	if r.Err != nil {
		r.Error = r.Err.Error()
	}
}

func relPath(base, path string) string {
	if path == "" || base == "" {
		return path
	}
	rel, err := filepath.Rel(base, path)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return path
	}
	return filepath.ToSlash(rel)
}

func writeReports(w io.Writer, format, baseDir string, reports []*Report) error {
	for _, r := range reports {
		r.relativize(baseDir)
	}

	if format == FormatJSON {
		data, err := json.MarshalIndent(reports, "", "  ")
		if err != nil {
			return fmt.Errorf("encoding report: %w", err)
		}
		_, err = fmt.Fprintf(w, "%s\n", data)
		return err
	}

	var b strings.Builder
	for _, r := range reports {
		writeText(&b, r)
	}
	_, err := io.WriteString(w, b.String())
	return err
}

func writeText(b *strings.Builder, r *Report) {
	if r.Name == "" {
		fmt.Fprintf(b, "%s: error: %s\n", r.Step, r.Error)
		return
	}

	fmt.Fprintf(b, "%s (%s)\n", r.Step, r.Name)
	b.WriteString("  dependencies:\n")
	for _, name := range slices.Sorted(maps.Keys(r.Dependencies)) {
		fmt.Fprintf(b, "    %s: %s\n", name, r.Dependencies[name])
	}
	fmt.Fprintf(b, "  config file: %s\n", orDefault(r.ConfigFile, "(none)"))
	fmt.Fprintf(b, "  npm executable: %s\n", orDefault(r.NpmExecutable, "(auto)"))
	fmt.Fprintf(b, "  npmrc: %s\n", orDefault(r.Npmrc, "(auto)"))

	switch {
	case r.InlineConfig == nil:
		b.WriteString("  inline config: (none)\n")
	case r.InlineConfig.Len() == 0:
		b.WriteString("  inline config: (empty)\n")
	default:
		b.WriteString("  inline config:\n")
		for pair := r.InlineConfig.Oldest(); pair != nil; pair = pair.Next() {
			fmt.Fprintf(b, "    %s: %s\n", pair.Key, formatValue(pair.Value))
		}
	}

	fmt.Fprintf(b, "  node modules: %s\n", r.NodeModulesDir)
	if r.Fingerprint != "" {
		fmt.Fprintf(b, "  fingerprint: %s\n", r.Fingerprint)
	}
	if r.Error != "" {
		fmt.Fprintf(b, "  error: %s\n", r.Error)
	}
}

func formatValue(v any) string {
	if s, ok := v.(string); ok {
		return fmt.Sprintf("%q", s)
	}
	return fmt.Sprintf("%v", v)
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
