package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/mitchellh/go-homedir"
	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"

	"github.com/bloomreach-forge/addonctl/internal/addon"
	"github.com/bloomreach-forge/addonctl/internal/catalog"
	"github.com/bloomreach-forge/addonctl/internal/install"
	"github.com/bloomreach-forge/addonctl/internal/messages"
)

const configFileName = ".addonctl.toml"

// fileConfig is the on-disk CLI configuration shape.
type fileConfig struct {
	ProjectRoot string `toml:"project-root"`
	CatalogDir  string `toml:"catalog-dir"`
	LogLevel    string `toml:"log-level"`
}

// app carries resolved CLI configuration into command implementations.
type app struct {
	projectRoot string
	catalogDir  string
	logLevel    string
	out         io.Writer
	errOut      io.Writer

	logger  *log.Logger
	catalog addon.Catalog
	service *install.Service
}

func newRootCmd(stdout io.Writer, stderr io.Writer) *cobra.Command {
	a := &app{out: stdout, errOut: stderr}
	cmd := &cobra.Command{
		Use:           messages.RootUse,
		Short:         messages.RootShort,
		Long:          messages.RootLong,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup()
		},
	}
	cmd.PersistentFlags().StringVar(&a.projectRoot, "project-root", "", messages.RootFlagProjectRoot)
	cmd.PersistentFlags().StringVar(&a.catalogDir, "catalog-dir", "", messages.RootFlagCatalogDir)
	cmd.PersistentFlags().StringVar(&a.logLevel, "log-level", "", messages.RootFlagLogLevel)

	cmd.AddCommand(newInstallCmd(a))
	cmd.AddCommand(newUninstallCmd(a))
	cmd.AddCommand(newFixCmd(a))
	cmd.AddCommand(newListCmd(a))
	cmd.AddCommand(newStatusCmd(a))
	return cmd
}

// setup merges flags with config files and builds the logger, catalog, and
// engine service. Flags win over the project config file, which wins over
// the home config file.
func (a *app) setup() error {
	cfg, err := a.loadConfig()
	if err != nil {
		return err
	}
	if a.projectRoot == "" {
		a.projectRoot = cfg.ProjectRoot
	}
	if a.projectRoot == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return err
		}
		a.projectRoot = cwd
	}
	if a.catalogDir == "" {
		a.catalogDir = cfg.CatalogDir
	}
	if a.catalogDir == "" {
		return fmt.Errorf(messages.CatalogDirRequired)
	}
	if a.logLevel == "" {
		a.logLevel = cfg.LogLevel
	}

	level := log.WarnLevel
	if a.logLevel != "" {
		parsed, err := log.ParseLevel(a.logLevel)
		if err != nil {
			return fmt.Errorf(messages.LogLevelInvalidFmt, a.logLevel)
		}
		level = parsed
	}
	a.logger = log.NewWithOptions(a.errOut, log.Options{Level: level, ReportTimestamp: false})

	cat, err := catalog.Load(a.catalogDir, a.logger)
	if err != nil {
		return err
	}
	a.catalog = cat
	a.service = install.NewService(cat, install.Options{Logger: a.logger})
	return nil
}

// loadConfig reads the project-level config file, falling back to the home
// directory one. A missing file is not an error.
func (a *app) loadConfig() (fileConfig, error) {
	var paths []string
	if a.projectRoot != "" {
		paths = append(paths, filepath.Join(a.projectRoot, configFileName))
	} else if cwd, err := os.Getwd(); err == nil {
		paths = append(paths, filepath.Join(cwd, configFileName))
	}
	if home, err := homedir.Dir(); err == nil {
		paths = append(paths, filepath.Join(home, ".addonctl", "config.toml"))
	}

	for _, path := range paths {
		raw, err := os.ReadFile(path)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return fileConfig{}, fmt.Errorf(messages.ConfigReadFailedFmt, path, err)
		}
		var cfg fileConfig
		if err := toml.Unmarshal(raw, &cfg); err != nil {
			return fileConfig{}, fmt.Errorf(messages.ConfigParseFailedFmt, path, err)
		}
		return cfg, nil
	}
	return fileConfig{}, nil
}
