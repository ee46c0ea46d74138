package out

import (
	"context"
	"fmt"
	"io"
	"os/exec"
	"sync"
	"time"

	notifierrpc "tempo/internal/modules/notifier/adapter/out/rpc"
	"tempo/internal/modules/notifier/domain"
	notifierout "tempo/internal/modules/notifier/port/out"

	hclog "github.com/hashicorp/go-hclog"
	"github.com/hashicorp/go-plugin"
)

const (
	defaultStartTimeout = 3 * time.Second
	defaultCallTimeout  = 5 * time.Second
)

// GRPCHost launches notifier binaries over hashicorp go-plugin. One-shot
// calls spawn and kill a process; ambience keeps its process alive so
// the sound loop survives between calls.
type GRPCHost struct {
	mu       sync.Mutex
	ambience map[string]*liveClient
}

type liveClient struct {
	client  notifierrpc.TempoNotifierClient
	closeFn func()
}

func NewGRPCHost() notifierout.Host {
	return &GRPCHost{ambience: map[string]*liveClient{}}
}

func (h *GRPCHost) CheckLifecycle(ctx context.Context, manifest domain.Manifest) error {
	client, closeFn, err := h.connect(manifest)
	if err != nil {
		return err
	}
	defer closeFn()

	callCtx, cancel := h.callContext(ctx)
	defer cancel()
	if _, err := client.GetMetadata(callCtx); err != nil {
		return fmt.Errorf("get metadata: %w", err)
	}
	return nil
}

func (h *GRPCHost) GetMetadata(ctx context.Context, manifest domain.Manifest) (domain.Metadata, error) {
	client, closeFn, err := h.connect(manifest)
	if err != nil {
		return domain.Metadata{}, err
	}
	defer closeFn()

	callCtx, cancel := h.callContext(ctx)
	defer cancel()

	meta, err := client.GetMetadata(callCtx)
	if err != nil {
		return domain.Metadata{}, fmt.Errorf("get metadata: %w", err)
	}
	capabilities := make([]domain.Capability, 0, len(meta.Capabilities))
	for _, capability := range meta.Capabilities {
		capabilities = append(capabilities, domain.Capability(capability))
	}
	return domain.Metadata{Name: meta.Name, Version: meta.Version, Capabilities: capabilities}, nil
}

func (h *GRPCHost) StartAmbience(ctx context.Context, manifest domain.Manifest, sound string) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	live, ok := h.ambience[manifest.Name]
	if !ok {
		client, closeFn, err := h.connect(manifest)
		if err != nil {
			return err
		}
		live = &liveClient{client: client, closeFn: closeFn}
		h.ambience[manifest.Name] = live
	}

	callCtx, cancel := h.callContext(ctx)
	defer cancel()
	if err := live.client.StartAmbience(callCtx, &notifierrpc.AmbienceRequest{Sound: sound}); err != nil {
		live.closeFn()
		delete(h.ambience, manifest.Name)
		return fmt.Errorf("start ambience: %w", err)
	}
	return nil
}

func (h *GRPCHost) StopAmbience(ctx context.Context, manifest domain.Manifest) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	live, ok := h.ambience[manifest.Name]
	if !ok {
		return nil
	}
	delete(h.ambience, manifest.Name)
	defer live.closeFn()

	callCtx, cancel := h.callContext(ctx)
	defer cancel()
	if err := live.client.StopAmbience(callCtx); err != nil {
		return fmt.Errorf("stop ambience: %w", err)
	}
	return nil
}

func (h *GRPCHost) Alert(ctx context.Context, manifest domain.Manifest, kind domain.AlertKind) error {
	client, closeFn, err := h.connect(manifest)
	if err != nil {
		return err
	}
	defer closeFn()

	callCtx, cancel := h.callContext(ctx)
	defer cancel()
	if err := client.Alert(callCtx, &notifierrpc.AlertRequest{Kind: string(kind)}); err != nil {
		if callCtx.Err() == context.DeadlineExceeded {
			return fmt.Errorf("%w: alert %s", domain.ErrPluginTimeout, kind)
		}
		return fmt.Errorf("alert: %w", err)
	}
	return nil
}

func (h *GRPCHost) Notify(ctx context.Context, manifest domain.Manifest, notification domain.Notification) error {
	client, closeFn, err := h.connect(manifest)
	if err != nil {
		return err
	}
	defer closeFn()

	callCtx, cancel := h.callContext(ctx)
	defer cancel()
	if err := client.Notify(callCtx, &notifierrpc.NotifyRequest{Title: notification.Title, Body: notification.Body}); err != nil {
		if callCtx.Err() == context.DeadlineExceeded {
			return fmt.Errorf("%w: notify", domain.ErrPluginTimeout)
		}
		return fmt.Errorf("notify: %w", err)
	}
	return nil
}

// Close kills every ambience process still running.
func (h *GRPCHost) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for name, live := range h.ambience {
		live.closeFn()
		delete(h.ambience, name)
	}
}

func (h *GRPCHost) connect(manifest domain.Manifest) (notifierrpc.TempoNotifierClient, func(), error) {
	client := plugin.NewClient(&plugin.ClientConfig{
		HandshakeConfig:  notifierrpc.HandshakeConfig,
		AllowedProtocols: []plugin.Protocol{plugin.ProtocolGRPC},
		Plugins:          notifierrpc.PluginMap(nil),
		Cmd:              exec.Command(manifest.Binary),
		Managed:          true,
		StartTimeout:     defaultStartTimeout,
		Logger:           hclog.New(&hclog.LoggerOptions{Output: io.Discard, Level: hclog.NoLevel}),
	})
	closeFn := func() { client.Kill() }

	rpcClient, err := client.Client()
	if err != nil {
		closeFn()
		return nil, nil, fmt.Errorf("start plugin client: %w", err)
	}
	raw, err := rpcClient.Dispense(notifierrpc.PluginMapKey)
	if err != nil {
		closeFn()
		return nil, nil, fmt.Errorf("dispense plugin: %w", err)
	}
	typed, ok := raw.(notifierrpc.TempoNotifierClient)
	if !ok {
		closeFn()
		return nil, nil, fmt.Errorf("plugin rpc client type mismatch")
	}
	return typed, closeFn, nil
}

func (h *GRPCHost) callContext(parent context.Context) (context.Context, context.CancelFunc) {
	if _, ok := parent.Deadline(); ok {
		return context.WithCancel(parent)
	}
	return context.WithTimeout(parent, defaultCallTimeout)
}
