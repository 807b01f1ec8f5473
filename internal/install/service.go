// Package install implements the addon installation engine: plan
// computation, precondition validation, format-preserving edit execution,
// and transactional multi-file writes with rollback.
package install

import (
	"io"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/bloomreach-forge/addonctl/internal/addon"
	"github.com/bloomreach-forge/addonctl/internal/messages"
	"github.com/bloomreach-forge/addonctl/internal/project"
)

// Service orchestrates install, upgrade, uninstall, and fix operations
// against one project tree at a time.
//
// Operations against different project roots are independent. Concurrent
// operations against the same project root are not supported: there is no
// file locking, and callers must serialize per project.
type Service struct {
	sys     System
	catalog addon.Catalog
	cache   *project.Cache
	logger  *log.Logger
}

// Options configures a Service. Zero values select the OS filesystem and a
// discard logger.
type Options struct {
	System System
	Logger *log.Logger
}

// NewService builds a Service around an injected addon catalog.
func NewService(catalog addon.Catalog, opts Options) *Service {
	sys := opts.System
	if sys == nil {
		sys = RealSystem{}
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Service{
		sys:     sys,
		catalog: catalog,
		cache:   &project.Cache{},
		logger:  logger,
	}
}

// Context returns the resolved project context, rebuilding it from disk when
// the cache was invalidated by a previous mutating operation.
func (s *Service) Context(root string) (*project.Context, error) {
	return s.cache.Get(s.sys, root, s.catalog)
}

// Install installs an addon, or upgrades an installed one when upgrade is
// set. Validation failures touch no file; write failures roll back every
// touched file.
func (s *Service) Install(addonID string, root string, upgrade bool) Result {
	a, errs := s.prepare(addonID, root)
	if len(errs) > 0 {
		return failed(addonID, errs...)
	}

	plan := buildPlan(a, s.logger)
	if upgrade {
		resolveExistingProperty(s.sys, root, &plan)
	}
	if errs := validatePlan(s.sys, root, plan, upgrade); len(errs) > 0 {
		return failed(addonID, errs...)
	}

	edits := newEditSet(s.sys, root)
	for _, pc := range plan.PropertyChanges {
		if err := edits.apply(propertySet{pc}); err != nil {
			return failed(addonID, ioError(err))
		}
	}
	for _, dc := range plan.DependencyChanges {
		if err := edits.apply(dependencyUpsert{dc}); err != nil {
			return failed(addonID, ioError(err))
		}
	}
	if err := applyEdits(s.sys, root, edits.dirty()); err != nil {
		return failed(addonID, ioError(err))
	}
	s.cache.Invalidate()
	s.logger.Debug("install completed", "addon", addonID, "upgrade", upgrade, "changes", len(edits.changes))
	return completed(addonID, edits.changes, nil)
}

// prepare runs the checks shared by every operation: a configured project
// root and a known addon id.
func (s *Service) prepare(addonID string, root string) (*addon.Addon, []addon.Error) {
	if strings.TrimSpace(root) == "" {
		return nil, []addon.Error{addon.NewError(addon.CodeProjectRootNotSet, messages.ServiceRootRequired)}
	}
	a, ok := s.catalog.FindByID(addonID)
	if !ok {
		return nil, []addon.Error{addon.NewError(addon.CodeAddonNotFound, messages.ServiceAddonUnknownFmt, addonID)}
	}
	return a, nil
}

func ioError(err error) addon.Error {
	return addon.NewError(addon.CodeIOError, "%v", err)
}
