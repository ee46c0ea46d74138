package domain

import (
	"errors"
	"fmt"
	"regexp"

	apperrors "tempo/internal/platform/errors"
)

// Capability names one thing a notifier plugin can do. Ambience is a
// looping background sound, alert is a short chime, notify is a desktop
// notification.
type Capability string

const (
	CapabilityAmbience Capability = "ambience"
	CapabilityAlert    Capability = "alert"
	CapabilityNotify   Capability = "notify"
)

var (
	ErrCapabilityMissing = errors.New("notifier capability missing")
	ErrPluginTimeout     = errors.New("notifier plugin timeout")
	ErrPluginNotFound    = errors.New("notifier plugin not found")
)

var sha256Pattern = regexp.MustCompile(`^[a-f0-9]{64}$`)

// Manifest describes one installed notifier plugin. The checksum gates
// every launch of the binary.
type Manifest struct {
	Name         string       `json:"name"`
	Version      string       `json:"version"`
	Binary       string       `json:"binary"`
	SHA256       string       `json:"sha256"`
	Enabled      bool         `json:"enabled"`
	Capabilities []Capability `json:"capabilities"`
}

func (m Manifest) Validate() error {
	if m.Name == "" {
		return fmt.Errorf("%w: plugin name is required", apperrors.ErrInvalidInput)
	}
	if m.Version == "" {
		return fmt.Errorf("%w: plugin version is required", apperrors.ErrInvalidInput)
	}
	if m.Binary == "" {
		return fmt.Errorf("%w: plugin binary path is required", apperrors.ErrInvalidInput)
	}
	if !sha256Pattern.MatchString(m.SHA256) {
		return fmt.Errorf("%w: plugin sha256 must be lowercase 64-char hex", apperrors.ErrInvalidInput)
	}
	if len(m.Capabilities) == 0 {
		return fmt.Errorf("%w: plugin capabilities are required", apperrors.ErrInvalidInput)
	}
	seen := map[Capability]struct{}{}
	for _, capability := range m.Capabilities {
		if err := capability.Validate(); err != nil {
			return err
		}
		if _, ok := seen[capability]; ok {
			return fmt.Errorf("%w: duplicate capability %s", apperrors.ErrInvalidInput, capability)
		}
		seen[capability] = struct{}{}
	}
	return nil
}

func (c Capability) Validate() error {
	switch c {
	case CapabilityAmbience, CapabilityAlert, CapabilityNotify:
		return nil
	default:
		return fmt.Errorf("%w: unknown capability %s", apperrors.ErrInvalidInput, c)
	}
}

func (m Manifest) HasCapability(capability Capability) bool {
	for _, c := range m.Capabilities {
		if c == capability {
			return true
		}
	}
	return false
}

// Metadata is what a running plugin reports about itself.
type Metadata struct {
	Name         string
	Version      string
	Capabilities []Capability
}

// Notification is a desktop message shown by a notify-capable plugin.
type Notification struct {
	Title string
	Body  string
}

func (n Notification) Validate() error {
	if n.Title == "" {
		return fmt.Errorf("%w: notification title is required", apperrors.ErrInvalidInput)
	}
	return nil
}

// AlertKind selects the chime a plugin should play.
type AlertKind string

const (
	AlertBreakStart AlertKind = "break_start"
	AlertBreakEnd   AlertKind = "break_end"
	AlertGoalMet    AlertKind = "goal_met"
	AlertReminder   AlertKind = "reminder"
)

func (k AlertKind) Validate() error {
	switch k {
	case AlertBreakStart, AlertBreakEnd, AlertGoalMet, AlertReminder:
		return nil
	default:
		return fmt.Errorf("%w: unknown alert kind %s", apperrors.ErrInvalidInput, k)
	}
}
