package application

import (
	"context"
	"fmt"

	"github.com/bnema/badb/internal/domain"
	"github.com/bnema/badb/internal/ports"
	"github.com/rs/zerolog"
)

// Service is the entry point of the CLI into the bridge. One Service serves
// one Session.
type Service struct {
	executor *Executor
	resolver *Resolver
	session  *Session
}

func NewService(runner ports.BridgeRunner, prompter ports.Prompter, session *Session, opts Options, logger zerolog.Logger) *Service {
	if session == nil {
		session = NewSession("")
	}

	opts = opts.withDefaults()
	executor := newExecutor(runner, session, opts, logger.With().Str("component", "executor").Logger())
	resolver := newResolver(executor, prompter, session, logger.With().Str("component", "resolver").Logger())
	executor.selector = resolver

	return &Service{
		executor: executor,
		resolver: resolver,
		session:  session,
	}
}

func (s *Service) Session() *Session {
	return s.session
}

// Run forwards args to the bridge and returns its standard output unchanged.
func (s *Service) Run(ctx context.Context, args []string) (string, error) {
	return s.executor.Run(ctx, args)
}

func (s *Service) ListPackages(ctx context.Context, filter PackageFilter) (string, error) {
	if !filter.Valid() {
		return "", fmt.Errorf("unsupported package filter %q", filter)
	}

	return s.executor.Run(ctx, filter.args())
}

// EnumerateDevices returns the attached devices with their metadata. An empty
// result is not an error.
func (s *Service) EnumerateDevices(ctx context.Context) ([]domain.Device, error) {
	return s.resolver.EnumerateDevices(ctx)
}

// ListDevices is EnumerateDevices for callers that need at least one device.
// A failed enumeration also reports ErrNoDevicesFound, wrapping the cause.
func (s *Service) ListDevices(ctx context.Context) ([]domain.Device, error) {
	return s.ListDevicesWithProgress(ctx, nil)
}

// ListDevicesWithProgress is ListDevices reporting each device to onProbe
// before it is probed. onProbe may be nil.
func (s *Service) ListDevicesWithProgress(ctx context.Context, onProbe ProbeFunc) ([]domain.Device, error) {
	devices, err := s.resolver.enumerate(ctx, onProbe)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrNoDevicesFound, err)
	}
	if len(devices) == 0 {
		return nil, domain.ErrNoDevicesFound
	}

	return devices, nil
}

func (s *Service) SelectDevice(ctx context.Context) (domain.DeviceID, error) {
	return s.resolver.SelectDevice(ctx)
}
