// Package storefront serves the storefront.v1.StorefrontService gRPC API.
// Messages are google.protobuf.Struct values so no generated code is needed.
package storefront

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
)

const (
	ServiceName = "storefront.v1.StorefrontService"

	QuoteCartMethod        = "/" + ServiceName + "/QuoteCart"
	GetLoyaltyStatusMethod = "/" + ServiceName + "/GetLoyaltyStatus"
	ListTiersMethod        = "/" + ServiceName + "/ListTiers"
)

// StorefrontServer is the server API for StorefrontService.
type StorefrontServer interface {
	// QuoteCart expects {"session_id": string}.
	QuoteCart(context.Context, *structpb.Struct) (*structpb.Struct, error)
	// GetLoyaltyStatus expects {"session_id": string}.
	GetLoyaltyStatus(context.Context, *structpb.Struct) (*structpb.Struct, error)
	// ListTiers takes an empty struct.
	ListTiers(context.Context, *structpb.Struct) (*structpb.Struct, error)
}

// ServiceDesc describes StorefrontService for grpc.Server.RegisterService.
var ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*StorefrontServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "QuoteCart", Handler: unaryHandler(QuoteCartMethod, StorefrontServer.QuoteCart)},
		{MethodName: "GetLoyaltyStatus", Handler: unaryHandler(GetLoyaltyStatusMethod, StorefrontServer.GetLoyaltyStatus)},
		{MethodName: "ListTiers", Handler: unaryHandler(ListTiersMethod, StorefrontServer.ListTiers)},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "storefront/v1/storefront.proto",
}

// RegisterStorefrontServer registers srv on s.
func RegisterStorefrontServer(s grpc.ServiceRegistrar, srv StorefrontServer) {
	s.RegisterService(&ServiceDesc, srv)
}

type unaryMethod func(StorefrontServer, context.Context, *structpb.Struct) (*structpb.Struct, error)

func unaryHandler(fullMethod string, call unaryMethod) grpc.MethodHandler {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := new(structpb.Struct)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(StorefrontServer), ctx, in)
		}
		info := &grpc.UnaryServerInfo{Server: srv, FullMethod: fullMethod}
		handler := func(ctx context.Context, req any) (any, error) {
			return call(srv.(StorefrontServer), ctx, req.(*structpb.Struct))
		}
		return interceptor(ctx, in, info, handler)
	}
}

// Client calls StorefrontService over a connection.
type Client struct {
	cc grpc.ClientConnInterface
}

// NewClient wraps cc.
func NewClient(cc grpc.ClientConnInterface) *Client {
	return &Client{cc: cc}
}

// QuoteCart prices a session's cart.
func (c *Client) QuoteCart(ctx context.Context, sessionID string, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, QuoteCartMethod, sessionRequest(sessionID), opts...)
}

// GetLoyaltyStatus returns a session's points and tier progress.
func (c *Client) GetLoyaltyStatus(ctx context.Context, sessionID string, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, GetLoyaltyStatusMethod, sessionRequest(sessionID), opts...)
}

// ListTiers returns the membership tier table.
func (c *Client) ListTiers(ctx context.Context, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, ListTiersMethod, &structpb.Struct{}, opts...)
}

func (c *Client) invoke(ctx context.Context, method string, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, method, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func sessionRequest(sessionID string) *structpb.Struct {
	return &structpb.Struct{Fields: map[string]*structpb.Value{
		sessionIDField: structpb.NewStringValue(sessionID),
	}}
}
