package registry

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"
	"go.uber.org/zap"

	"github.com/Dave-Meloncelli/reliquary-desktop/internal/infrastructure/logging"
	"github.com/Dave-Meloncelli/reliquary-desktop/internal/shared/types"
)

// Seeder loads application descriptors from disk into the registry.
type Seeder struct {
	manager *Manager
	appsDir string
	logger  *logging.Logger
}

// NewSeeder creates a descriptor seeder for the given directory.
func NewSeeder(manager *Manager, appsDir string, logger *logging.Logger) *Seeder {
	return &Seeder{
		manager: manager,
		appsDir: appsDir,
		logger:  logger,
	}
}

// SeedApps loads every *.yaml / *.yml descriptor under the apps directory.
// Individual file failures are logged and skipped; a missing directory is
// not an error.
func (s *Seeder) SeedApps() error {
	if _, err := os.Stat(s.appsDir); os.IsNotExist(err) {
		s.logger.Warn("apps directory not found, skipping seed", zap.String("dir", s.appsDir))
		return nil
	}

	entries, err := os.ReadDir(s.appsDir)
	if err != nil {
		return fmt.Errorf("failed to read apps directory: %w", err)
	}

	var loaded, failed int
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		ext := strings.ToLower(filepath.Ext(name))
		if ext != ".yaml" && ext != ".yml" {
			continue
		}

		if err := s.seedFile(filepath.Join(s.appsDir, name)); err != nil {
			s.logger.Warn("failed to seed descriptor",
				zap.String("file", name),
				zap.Error(err),
			)
			failed++
			continue
		}
		loaded++
	}

	s.logger.Info("descriptor seeding complete",
		zap.Int("loaded", loaded),
		zap.Int("failed", failed),
	)
	return nil
}

// SeedDefaults registers the built-in descriptors every desktop carries so
// the workspace is usable without any descriptor files on disk.
func (s *Seeder) SeedDefaults() error {
	defaults := []types.Descriptor{
		{
			AppID:       "notes",
			Title:       "Notes",
			DefaultSize: types.Size{Width: 400, Height: 300},
			MinSize:     &types.Size{Width: 240, Height: 160},
		},
		{
			AppID:       "terminal",
			Title:       "Terminal",
			DefaultSize: types.Size{Width: 720, Height: 480},
			MinSize:     &types.Size{Width: 320, Height: 200},
		},
		{
			AppID:       "files",
			Title:       "File Browser",
			DefaultSize: types.Size{Width: 800, Height: 600},
		},
	}

	for _, desc := range defaults {
		// Descriptor files take precedence over built-ins.
		if _, exists := s.manager.Get(desc.AppID); exists {
			continue
		}
		if err := s.manager.Register(desc); err != nil {
			return fmt.Errorf("failed to register default descriptor %s: %w", desc.AppID, err)
		}
	}
	return nil
}

func (s *Seeder) seedFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read: %w", err)
	}

	var desc types.Descriptor
	if err := yaml.Unmarshal(data, &desc); err != nil {
		return fmt.Errorf("parse: %w", err)
	}

	return s.manager.Register(desc)
}
