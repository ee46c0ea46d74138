package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"tempo/internal/modules/notifier/domain"
	apperrors "tempo/internal/platform/errors"
)

type fakeManifestStore struct {
	manifests []domain.Manifest
	err       error
}

func (f fakeManifestStore) Load(context.Context) ([]domain.Manifest, error) {
	return f.manifests, f.err
}

type fakeHost struct {
	lifecycleErr error
	started      []string
	stopped      int
	alerts       []domain.AlertKind
	notified     []domain.Notification
}

func (f *fakeHost) CheckLifecycle(context.Context, domain.Manifest) error {
	return f.lifecycleErr
}

func (f *fakeHost) GetMetadata(context.Context, domain.Manifest) (domain.Metadata, error) {
	return domain.Metadata{}, nil
}

func (f *fakeHost) StartAmbience(_ context.Context, _ domain.Manifest, sound string) error {
	f.started = append(f.started, sound)
	return nil
}

func (f *fakeHost) StopAmbience(context.Context, domain.Manifest) error {
	f.stopped++
	return nil
}

func (f *fakeHost) Alert(_ context.Context, _ domain.Manifest, kind domain.AlertKind) error {
	f.alerts = append(f.alerts, kind)
	return nil
}

func (f *fakeHost) Notify(_ context.Context, _ domain.Manifest, n domain.Notification) error {
	f.notified = append(f.notified, n)
	return nil
}

func (f *fakeHost) Close() {}

func writeBinary(t *testing.T, payload string) (path, checksum string) {
	t.Helper()
	path = filepath.Join(t.TempDir(), "plugin-bin")
	if err := os.WriteFile(path, []byte(payload), 0o755); err != nil {
		t.Fatalf("write binary: %v", err)
	}
	sum := sha256.Sum256([]byte(payload))
	return path, hex.EncodeToString(sum[:])
}

func manifestFor(binary, checksum string, caps ...domain.Capability) domain.Manifest {
	return domain.Manifest{
		Name:         "chime",
		Version:      "1.0.0",
		Binary:       binary,
		SHA256:       checksum,
		Enabled:      true,
		Capabilities: caps,
	}
}

func TestAmbienceRoutesToCapablePlugin(t *testing.T) {
	t.Parallel()

	binary, checksum := writeBinary(t, "chime-v1")
	host := &fakeHost{}
	svc := NewNotifierService(fakeManifestStore{manifests: []domain.Manifest{
		manifestFor(binary, checksum, domain.CapabilityAmbience, domain.CapabilityAlert),
	}}, host)

	if err := svc.AmbienceOn(context.Background(), "rain"); err != nil {
		t.Fatalf("ambience on: %v", err)
	}
	if err := svc.AmbienceOff(context.Background()); err != nil {
		t.Fatalf("ambience off: %v", err)
	}
	if len(host.started) != 1 || host.started[0] != "rain" {
		t.Fatalf("started = %v", host.started)
	}
	if host.stopped != 1 {
		t.Fatalf("stopped = %d", host.stopped)
	}
}

func TestChecksumMismatchBlocksLaunch(t *testing.T) {
	t.Parallel()

	binary, _ := writeBinary(t, "chime-v1")
	host := &fakeHost{}
	wrong := "0000000000000000000000000000000000000000000000000000000000000000"
	svc := NewNotifierService(fakeManifestStore{manifests: []domain.Manifest{
		manifestFor(binary, wrong, domain.CapabilityAlert),
	}}, host)

	err := svc.Alert(context.Background(), domain.AlertGoalMet)
	if !errors.Is(err, apperrors.ErrChecksumMismatch) {
		t.Fatalf("err = %v, want ErrChecksumMismatch", err)
	}
	if len(host.alerts) != 0 {
		t.Fatal("alert reached host despite checksum mismatch")
	}
}

func TestDisabledPluginRejected(t *testing.T) {
	t.Parallel()

	binary, checksum := writeBinary(t, "chime-v1")
	manifest := manifestFor(binary, checksum, domain.CapabilityNotify)
	manifest.Enabled = false
	svc := NewNotifierService(fakeManifestStore{manifests: []domain.Manifest{manifest}}, &fakeHost{})

	err := svc.Notify(context.Background(), domain.Notification{Title: "t"})
	if !errors.Is(err, apperrors.ErrPluginDisabled) {
		t.Fatalf("err = %v, want ErrPluginDisabled", err)
	}
}

func TestMissingCapabilityReportsNotFound(t *testing.T) {
	t.Parallel()

	binary, checksum := writeBinary(t, "chime-v1")
	svc := NewNotifierService(fakeManifestStore{manifests: []domain.Manifest{
		manifestFor(binary, checksum, domain.CapabilityAlert),
	}}, &fakeHost{})

	err := svc.AmbienceOn(context.Background(), "rain")
	if !errors.Is(err, domain.ErrPluginNotFound) {
		t.Fatalf("err = %v, want ErrPluginNotFound", err)
	}
}

func TestAlertValidatesKind(t *testing.T) {
	t.Parallel()

	binary, checksum := writeBinary(t, "chime-v1")
	svc := NewNotifierService(fakeManifestStore{manifests: []domain.Manifest{
		manifestFor(binary, checksum, domain.CapabilityAlert),
	}}, &fakeHost{})

	if err := svc.Alert(context.Background(), domain.AlertKind("air-horn")); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("err = %v, want ErrInvalidInput", err)
	}
}

func TestNotifyRequiresTitle(t *testing.T) {
	t.Parallel()

	svc := NewNotifierService(fakeManifestStore{}, &fakeHost{})

	if err := svc.Notify(context.Background(), domain.Notification{}); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("err = %v, want ErrInvalidInput", err)
	}
}

func TestDoctorFlagsBrokenPlugins(t *testing.T) {
	t.Parallel()

	binary, checksum := writeBinary(t, "chime-v1")
	good := manifestFor(binary, checksum, domain.CapabilityAlert)
	missing := manifestFor(filepath.Join(t.TempDir(), "gone"), checksum, domain.CapabilityAlert)
	missing.Name = "gone"

	svc := NewNotifierService(fakeManifestStore{manifests: []domain.Manifest{good, missing}}, &fakeHost{})

	results, err := svc.Doctor(context.Background())
	if err != nil {
		t.Fatalf("doctor: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("results = %d", len(results))
	}
	if !results[0].BinaryReachable || !results[0].ChecksumValid || !results[0].LifecycleOK {
		t.Fatalf("healthy plugin flagged: %+v", results[0])
	}
	if results[1].BinaryReachable || results[1].Error == "" {
		t.Fatalf("missing binary not flagged: %+v", results[1])
	}
}

func TestDuplicatePluginNamesRejected(t *testing.T) {
	t.Parallel()

	binary, checksum := writeBinary(t, "chime-v1")
	a := manifestFor(binary, checksum, domain.CapabilityAlert)
	b := manifestFor(binary, checksum, domain.CapabilityNotify)
	svc := NewNotifierService(fakeManifestStore{manifests: []domain.Manifest{a, b}}, &fakeHost{})

	if _, err := svc.List(context.Background()); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("err = %v, want ErrInvalidInput", err)
	}
}
