package migration

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"github.com/orris-inc/footprint/internal/shared/logger"
)

var migrateFilePattern = regexp.MustCompile(`^(\d+)_.+\.(up|down)\.sql$`)

var migrationNamePattern = regexp.MustCompile(`^[a-z0-9_]+$`)

// Generator creates golang-migrate up/down script pairs on disk.
type Generator struct {
	scriptsPath string
	logger      logger.Interface
}

// NewGenerator creates a generator writing into scriptsPath
func NewGenerator(scriptsPath string, log logger.Interface) *Generator {
	return &Generator{
		scriptsPath: scriptsPath,
		logger:      log.With("component", "migration.generator"),
	}
}

// CreateMigration writes the next numbered pair and returns the up and down paths.
func (g *Generator) CreateMigration(name string) (string, string, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if !migrationNamePattern.MatchString(name) {
		return "", "", fmt.Errorf("invalid migration name %q: use lowercase letters, digits and underscores", name)
	}

	if err := os.MkdirAll(g.scriptsPath, 0o755); err != nil {
		return "", "", fmt.Errorf("failed to create scripts directory: %w", err)
	}

	next, err := g.nextVersion()
	if err != nil {
		return "", "", err
	}

	base := fmt.Sprintf("%06d_%s", next, name)
	upPath := filepath.Join(g.scriptsPath, base+".up.sql")
	downPath := filepath.Join(g.scriptsPath, base+".down.sql")

	if err := os.WriteFile(upPath, []byte(fmt.Sprintf("-- Migration: %s\n\n", name)), 0o644); err != nil {
		return "", "", fmt.Errorf("failed to create up migration file: %w", err)
	}
	if err := os.WriteFile(downPath, []byte(fmt.Sprintf("-- Rollback: %s\n\n", name)), 0o644); err != nil {
		return "", "", fmt.Errorf("failed to create down migration file: %w", err)
	}

	g.logger.Infow("migration files created successfully",
		"up_file", upPath,
		"down_file", downPath)

	return upPath, downPath, nil
}

func (g *Generator) nextVersion() (int, error) {
	entries, err := os.ReadDir(g.scriptsPath)
	if err != nil {
		return 0, fmt.Errorf("failed to read scripts directory: %w", err)
	}

	highest := 0
	for _, e := range entries {
		m := migrateFilePattern.FindStringSubmatch(e.Name())
		if m == nil {
			continue
		}
		v, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		if v > highest {
			highest = v
		}
	}
	return highest + 1, nil
}
