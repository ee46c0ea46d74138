package main

import (
	"context"
	"fmt"
	"os"
	"sync"

	notifierrpc "tempo/internal/modules/notifier/adapter/out/rpc"

	"github.com/hashicorp/go-plugin"
)

// chime is the reference notifier plugin. It has no audio backend; it
// prints what a real plugin would play so the host integration can be
// exercised end to end.
type server struct {
	mu      sync.Mutex
	playing string
}

func (s *server) GetMetadata(_ context.Context, _ *notifierrpc.Empty) (*notifierrpc.Metadata, error) {
	return &notifierrpc.Metadata{
		Name:         "chime",
		Version:      "1.0.0",
		Capabilities: []string{"ambience", "alert", "notify"},
	}, nil
}

func (s *server) StartAmbience(_ context.Context, in *notifierrpc.AmbienceRequest) (*notifierrpc.Empty, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.playing = in.Sound
	fmt.Fprintf(os.Stderr, "chime: ambience %q on\n", in.Sound)
	return &notifierrpc.Empty{}, nil
}

func (s *server) StopAmbience(_ context.Context, _ *notifierrpc.Empty) (*notifierrpc.Empty, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.playing != "" {
		fmt.Fprintf(os.Stderr, "chime: ambience %q off\n", s.playing)
		s.playing = ""
	}
	return &notifierrpc.Empty{}, nil
}

func (s *server) Alert(_ context.Context, in *notifierrpc.AlertRequest) (*notifierrpc.Empty, error) {
	fmt.Fprintf(os.Stderr, "chime: alert %s\a\n", in.Kind)
	return &notifierrpc.Empty{}, nil
}

func (s *server) Notify(_ context.Context, in *notifierrpc.NotifyRequest) (*notifierrpc.Empty, error) {
	fmt.Fprintf(os.Stderr, "chime: %s: %s\n", in.Title, in.Body)
	return &notifierrpc.Empty{}, nil
}

func main() {
	plugin.Serve(&plugin.ServeConfig{
		HandshakeConfig: notifierrpc.HandshakeConfig,
		Plugins:         notifierrpc.PluginMap(&server{}),
		GRPCServer:      plugin.DefaultGRPCServer,
	})
}
