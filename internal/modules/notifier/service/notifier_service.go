package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"

	"tempo/internal/modules/notifier/domain"
	"tempo/internal/modules/notifier/dto"
	notifierout "tempo/internal/modules/notifier/port/out"
	apperrors "tempo/internal/platform/errors"
)

type NotifierService struct {
	store notifierout.ManifestStore
	host  notifierout.Host
}

func NewNotifierService(store notifierout.ManifestStore, host notifierout.Host) *NotifierService {
	return &NotifierService{store: store, host: host}
}

func (s *NotifierService) List(ctx context.Context) ([]dto.PluginInfo, error) {
	manifests, err := s.loadValidated(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.PluginInfo, 0, len(manifests))
	for _, m := range manifests {
		caps := make([]string, 0, len(m.Capabilities))
		for _, c := range m.Capabilities {
			caps = append(caps, string(c))
		}
		out = append(out, dto.PluginInfo{Name: m.Name, Version: m.Version, Enabled: m.Enabled, Binary: m.Binary, Capabilities: caps})
	}
	return out, nil
}

// Doctor reports per plugin whether the binary exists, the checksum
// matches and the process answers a metadata call.
func (s *NotifierService) Doctor(ctx context.Context) ([]dto.DoctorResult, error) {
	manifests, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	results := make([]dto.DoctorResult, 0, len(manifests))
	for _, m := range manifests {
		result := dto.DoctorResult{Name: m.Name}
		if err := m.Validate(); err != nil {
			result.Error = err.Error()
			results = append(results, result)
			continue
		}
		result.BinaryReachable = fileExists(m.Binary)
		if result.BinaryReachable {
			result.ChecksumValid = checksumMatches(m.Binary, m.SHA256) == nil
		}
		if result.BinaryReachable && result.ChecksumValid && m.Enabled && s.host != nil {
			if err := s.host.CheckLifecycle(ctx, m); err != nil {
				result.Error = err.Error()
			} else {
				result.LifecycleOK = true
			}
		}
		if !result.BinaryReachable {
			result.Error = fmt.Sprintf("binary does not exist: %s", m.Binary)
		}
		if result.BinaryReachable && !result.ChecksumValid {
			result.Error = "checksum mismatch"
		}
		results = append(results, result)
	}
	return results, nil
}

func (s *NotifierService) AmbienceOn(ctx context.Context, sound string) error {
	manifest, err := s.runnableWith(ctx, domain.CapabilityAmbience)
	if err != nil {
		return err
	}
	return s.host.StartAmbience(ctx, manifest, sound)
}

func (s *NotifierService) AmbienceOff(ctx context.Context) error {
	manifest, err := s.runnableWith(ctx, domain.CapabilityAmbience)
	if err != nil {
		return err
	}
	return s.host.StopAmbience(ctx, manifest)
}

func (s *NotifierService) Alert(ctx context.Context, kind domain.AlertKind) error {
	if err := kind.Validate(); err != nil {
		return err
	}
	manifest, err := s.runnableWith(ctx, domain.CapabilityAlert)
	if err != nil {
		return err
	}
	return s.host.Alert(ctx, manifest, kind)
}

func (s *NotifierService) Notify(ctx context.Context, notification domain.Notification) error {
	if err := notification.Validate(); err != nil {
		return err
	}
	manifest, err := s.runnableWith(ctx, domain.CapabilityNotify)
	if err != nil {
		return err
	}
	return s.host.Notify(ctx, manifest, notification)
}

func (s *NotifierService) loadValidated(ctx context.Context) ([]domain.Manifest, error) {
	manifests, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	seen := map[string]struct{}{}
	for _, manifest := range manifests {
		if err := manifest.Validate(); err != nil {
			return nil, err
		}
		if _, ok := seen[manifest.Name]; ok {
			return nil, fmt.Errorf("%w: duplicate plugin name %s", apperrors.ErrInvalidInput, manifest.Name)
		}
		seen[manifest.Name] = struct{}{}
	}
	return manifests, nil
}

// runnableWith picks the first enabled plugin carrying the capability
// and gates it on its checksum.
func (s *NotifierService) runnableWith(ctx context.Context, capability domain.Capability) (domain.Manifest, error) {
	manifests, err := s.loadValidated(ctx)
	if err != nil {
		return domain.Manifest{}, err
	}
	sawCapability := false
	for _, manifest := range manifests {
		if !manifest.HasCapability(capability) {
			continue
		}
		sawCapability = true
		if !manifest.Enabled {
			continue
		}
		if err := checksumMatches(manifest.Binary, manifest.SHA256); err != nil {
			return domain.Manifest{}, err
		}
		return manifest, nil
	}
	if sawCapability {
		return domain.Manifest{}, fmt.Errorf("%w: every %s plugin is disabled", apperrors.ErrPluginDisabled, capability)
	}
	return domain.Manifest{}, fmt.Errorf("%w: capability %s", domain.ErrPluginNotFound, capability)
}

func checksumMatches(path string, expected string) error {
	payload, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read plugin binary: %w", err)
	}
	hash := sha256.Sum256(payload)
	if hex.EncodeToString(hash[:]) != expected {
		return fmt.Errorf("%w: %s", apperrors.ErrChecksumMismatch, filepath.Base(path))
	}
	return nil
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
