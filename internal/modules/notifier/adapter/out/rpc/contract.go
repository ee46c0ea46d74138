package rpc

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hashicorp/go-plugin"
	"google.golang.org/grpc"
	"google.golang.org/grpc/encoding"
)

const (
	PluginMapKey        = "tempo"
	serviceName         = "tempo.notifier.v1.TempoNotifier"
	jsonCodecName       = "json"
	methodGetMetadata   = "/" + serviceName + "/GetMetadata"
	methodStartAmbience = "/" + serviceName + "/StartAmbience"
	methodStopAmbience  = "/" + serviceName + "/StopAmbience"
	methodAlert         = "/" + serviceName + "/Alert"
	methodNotify        = "/" + serviceName + "/Notify"
)

var HandshakeConfig = plugin.HandshakeConfig{
	ProtocolVersion:  1,
	MagicCookieKey:   "TEMPO_PLUGIN",
	MagicCookieValue: "tempo",
}

type jsonCodec struct{}

func (jsonCodec) Marshal(v any) ([]byte, error) {
	return json.Marshal(v)
}

func (jsonCodec) Unmarshal(data []byte, v any) error {
	return json.Unmarshal(data, v)
}

func (jsonCodec) Name() string {
	return jsonCodecName
}

func init() {
	encoding.RegisterCodec(jsonCodec{})
}

type Empty struct{}

type Metadata struct {
	Name         string   `json:"name"`
	Version      string   `json:"version"`
	Capabilities []string `json:"capabilities"`
}

type AmbienceRequest struct {
	Sound string `json:"sound"`
}

type AlertRequest struct {
	Kind string `json:"kind"`
}

type NotifyRequest struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

type TempoNotifierServer interface {
	GetMetadata(ctx context.Context, in *Empty) (*Metadata, error)
	StartAmbience(ctx context.Context, in *AmbienceRequest) (*Empty, error)
	StopAmbience(ctx context.Context, in *Empty) (*Empty, error)
	Alert(ctx context.Context, in *AlertRequest) (*Empty, error)
	Notify(ctx context.Context, in *NotifyRequest) (*Empty, error)
}

type TempoNotifierClient interface {
	GetMetadata(ctx context.Context) (*Metadata, error)
	StartAmbience(ctx context.Context, in *AmbienceRequest) error
	StopAmbience(ctx context.Context) error
	Alert(ctx context.Context, in *AlertRequest) error
	Notify(ctx context.Context, in *NotifyRequest) error
}

type tempoNotifierClient struct {
	conn *grpc.ClientConn
}

func NewTempoNotifierClient(conn *grpc.ClientConn) TempoNotifierClient {
	return &tempoNotifierClient{conn: conn}
}

func (c *tempoNotifierClient) GetMetadata(ctx context.Context) (*Metadata, error) {
	out := &Metadata{}
	if err := c.conn.Invoke(ctx, methodGetMetadata, &Empty{}, out, grpc.CallContentSubtype(jsonCodecName)); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *tempoNotifierClient) StartAmbience(ctx context.Context, in *AmbienceRequest) error {
	return c.conn.Invoke(ctx, methodStartAmbience, in, &Empty{}, grpc.CallContentSubtype(jsonCodecName))
}

func (c *tempoNotifierClient) StopAmbience(ctx context.Context) error {
	return c.conn.Invoke(ctx, methodStopAmbience, &Empty{}, &Empty{}, grpc.CallContentSubtype(jsonCodecName))
}

func (c *tempoNotifierClient) Alert(ctx context.Context, in *AlertRequest) error {
	return c.conn.Invoke(ctx, methodAlert, in, &Empty{}, grpc.CallContentSubtype(jsonCodecName))
}

func (c *tempoNotifierClient) Notify(ctx context.Context, in *NotifyRequest) error {
	return c.conn.Invoke(ctx, methodNotify, in, &Empty{}, grpc.CallContentSubtype(jsonCodecName))
}

func unaryHandler[Req any](method string, call func(context.Context, *Req) (any, error)) func(any, context.Context, func(any) error, grpc.UnaryServerInterceptor) (any, error) {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := new(Req)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(ctx, in)
		}
		info := &grpc.UnaryServerInfo{Server: srv, FullMethod: method}
		handler := func(ctx context.Context, req any) (any, error) {
			typed, ok := req.(*Req)
			if !ok {
				return nil, fmt.Errorf("invalid request type")
			}
			return call(ctx, typed)
		}
		return interceptor(ctx, in, info, handler)
	}
}

func RegisterTempoNotifierServer(server grpc.ServiceRegistrar, impl TempoNotifierServer) {
	server.RegisterService(&grpc.ServiceDesc{
		ServiceName: serviceName,
		HandlerType: (*TempoNotifierServer)(nil),
		Methods: []grpc.MethodDesc{
			{
				MethodName: "GetMetadata",
				Handler: unaryHandler(methodGetMetadata, func(ctx context.Context, in *Empty) (any, error) {
					return impl.GetMetadata(ctx, in)
				}),
			},
			{
				MethodName: "StartAmbience",
				Handler: unaryHandler(methodStartAmbience, func(ctx context.Context, in *AmbienceRequest) (any, error) {
					return impl.StartAmbience(ctx, in)
				}),
			},
			{
				MethodName: "StopAmbience",
				Handler: unaryHandler(methodStopAmbience, func(ctx context.Context, in *Empty) (any, error) {
					return impl.StopAmbience(ctx, in)
				}),
			},
			{
				MethodName: "Alert",
				Handler: unaryHandler(methodAlert, func(ctx context.Context, in *AlertRequest) (any, error) {
					return impl.Alert(ctx, in)
				}),
			},
			{
				MethodName: "Notify",
				Handler: unaryHandler(methodNotify, func(ctx context.Context, in *NotifyRequest) (any, error) {
					return impl.Notify(ctx, in)
				}),
			},
		},
		Streams:  []grpc.StreamDesc{},
		Metadata: "schemas/notifier-rpc-v1.proto",
	}, impl)
}

type GRPCPlugin struct {
	plugin.NetRPCUnsupportedPlugin
	Impl TempoNotifierServer
}

func (p *GRPCPlugin) GRPCServer(_ *plugin.GRPCBroker, server *grpc.Server) error {
	RegisterTempoNotifierServer(server, p.Impl)
	return nil
}

func (p *GRPCPlugin) GRPCClient(_ context.Context, _ *plugin.GRPCBroker, conn *grpc.ClientConn) (any, error) {
	return NewTempoNotifierClient(conn), nil
}

func PluginMap(impl TempoNotifierServer) map[string]plugin.Plugin {
	return map[string]plugin.Plugin{
		PluginMapKey: &GRPCPlugin{Impl: impl},
	}
}
