package fsworkspace

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/nadza/Yahtzee/internal/app/template"
	"github.com/nadza/Yahtzee/internal/domain"
	"github.com/nadza/Yahtzee/internal/ports"
)

type Initializer struct{}

func NewInitializer() *Initializer {
	return &Initializer{}
}

var _ ports.WorkspaceInitializer = (*Initializer)(nil)

// Init creates the data directories, writes yahtzee.yaml rendered from the
// requested config and keeps .gitignore up to date. Existing files are left
// alone unless force is set.
func (i *Initializer) Init(spec domain.WorkspaceSpec, force bool) (domain.InitReport, error) {
	root := filepath.Clean(spec.Root)
	report := domain.InitReport{Root: root}

	cfg := spec.Config
	if strings.TrimSpace(cfg.Paths.SavesDir) == "" {
		cfg = domain.DefaultConfig()
	}

	dirs := []string{
		filepath.Join(root, cfg.Paths.SavesDir),
		filepath.Join(root, filepath.Dir(cfg.Paths.HighScoresFile)),
		filepath.Join(root, filepath.Dir(cfg.Paths.ArchiveDB)),
		filepath.Join(root, ".yahtzee", "logs"),
	}
	for _, d := range dirs {
		if err := os.MkdirAll(d, 0o755); err != nil {
			return report, execErr("fsworkspace.mkdir", d, err)
		}
	}

	if err := ensureGitignore(root, cfg); err != nil {
		return report, execErr("fsworkspace.gitignore", filepath.Join(root, ".gitignore"), err)
	}

	vars := template.ConfigVars(cfg)
	err := fs.WalkDir(templatesFS, "templates", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		rel := strings.TrimPrefix(p, "templates/")
		dst := filepath.Join(root, rel)

		if !force {
			if _, statErr := os.Stat(dst); statErr == nil {
				report.Skipped = append(report.Skipped, rel)
				return nil
			}
		}

		raw, err := fs.ReadFile(templatesFS, p)
		if err != nil {
			return err
		}
		out, err := template.Render(rel, string(raw), vars)
		if err != nil {
			return err
		}

		if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
			return err
		}
		if err := os.WriteFile(dst, []byte(out), 0o644); err != nil {
			return err
		}
		report.Created = append(report.Created, rel)
		return nil
	})
	if err != nil {
		var oe *domain.OpError
		if errors.As(err, &oe) {
			return report, err
		}
		return report, execErr("fsworkspace.write", root, err)
	}

	return report, nil
}

func execErr(op, path string, err error) error {
	return &domain.OpError{Op: op, Kind: domain.KindExecution, Path: path, Err: err}
}

func ensureGitignore(root string, cfg domain.Config) error {
	const header = "# Yahtzee"
	entries := []string{
		".yahtzee/",
		filepath.ToSlash(filepath.Clean(cfg.Paths.SavesDir)) + "/",
	}
	if dir := filepath.Dir(cfg.Paths.HighScoresFile); dir != "." {
		entries = append(entries, filepath.ToSlash(dir)+"/")
	}

	path := filepath.Join(root, ".gitignore")
	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			lines := append([]string{header}, entries...)
			lines = append(lines, "")
			return os.WriteFile(path, []byte(strings.Join(lines, "\n")), 0o644)
		}
		return err
	}

	existing := string(b)
	present := map[string]bool{}
	for _, line := range strings.Split(existing, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			present[trimmed] = true
		}
	}

	var missing []string
	for _, e := range entries {
		if !present[e] {
			missing = append(missing, e)
		}
	}
	if len(missing) == 0 {
		return nil
	}

	var out strings.Builder
	out.Grow(len(existing) + 64)

	out.WriteString(existing)
	if existing != "" && !strings.HasSuffix(existing, "\n") {
		out.WriteByte('\n')
	}
	out.WriteByte('\n')
	if !present[header] {
		out.WriteString(header)
		out.WriteByte('\n')
	}
	for _, e := range missing {
		out.WriteString(e)
		out.WriteByte('\n')
	}

	return os.WriteFile(path, []byte(out.String()), 0o644)
}
