package service

import (
	"context"
	"google.golang.org/grpc"
	"guild-service/internal/utils/jsoncodec"
)

// The guild service has no protobuf definition. Its messages are plain structs carried by the JSON
// codec, so clients must call it with the "json" content-subtype.
const ServiceName = "guild.GuildService"

type GuildServiceServer interface {
	CreateGuild(ctx context.Context, req *CreateGuildRequest) (*Response, error)
	RequestToJoin(ctx context.Context, req *RequestToJoinRequest) (*Response, error)
	ListJoinRequests(ctx context.Context, req *PlayerRequest) (*Response, error)
	ApproveJoinRequest(ctx context.Context, req *ReviewRequest) (*Response, error)
	DeclineJoinRequest(ctx context.Context, req *ReviewRequest) (*Response, error)
	ChangeGuildRole(ctx context.Context, req *ChangeRoleRequest) (*Response, error)
	BanGuildMember(ctx context.Context, req *BanRequest) (*Response, error)
	LeaveGuild(ctx context.Context, req *PlayerRequest) (*Response, error)
	RecordAttendance(ctx context.Context, req *PlayerRequest) (*Response, error)
	UpdateGuildNotice(ctx context.Context, req *UpdateNoticeRequest) (*Response, error)
	SearchGuilds(ctx context.Context, req *SearchRequest) (*Response, error)
	GetGuild(ctx context.Context, req *PlayerRequest) (*Response, error)
}

var GuildServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*GuildServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		unaryMethod("CreateGuild", GuildServiceServer.CreateGuild),
		unaryMethod("RequestToJoin", GuildServiceServer.RequestToJoin),
		unaryMethod("ListJoinRequests", GuildServiceServer.ListJoinRequests),
		unaryMethod("ApproveJoinRequest", GuildServiceServer.ApproveJoinRequest),
		unaryMethod("DeclineJoinRequest", GuildServiceServer.DeclineJoinRequest),
		unaryMethod("ChangeGuildRole", GuildServiceServer.ChangeGuildRole),
		unaryMethod("BanGuildMember", GuildServiceServer.BanGuildMember),
		unaryMethod("LeaveGuild", GuildServiceServer.LeaveGuild),
		unaryMethod("RecordAttendance", GuildServiceServer.RecordAttendance),
		unaryMethod("UpdateGuildNotice", GuildServiceServer.UpdateGuildNotice),
		unaryMethod("SearchGuilds", GuildServiceServer.SearchGuilds),
		unaryMethod("GetGuild", GuildServiceServer.GetGuild),
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "guild.json",
}

func RegisterGuildServiceServer(s grpc.ServiceRegistrar, srv GuildServiceServer) {
	s.RegisterService(&GuildServiceDesc, srv)
}

func fullMethod(method string) string {
	return "/" + ServiceName + "/" + method
}

// unaryMethod builds the method descriptor a protoc plugin would otherwise generate.
func unaryMethod[Req any](method string, call func(GuildServiceServer, context.Context, *Req) (*Response, error)) grpc.MethodDesc {
	return grpc.MethodDesc{
		MethodName: method,
		Handler: func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
			in := new(Req)
			if err := dec(in); err != nil {
				return nil, err
			}
			if interceptor == nil {
				return call(srv.(GuildServiceServer), ctx, in)
			}

			info := &grpc.UnaryServerInfo{Server: srv, FullMethod: fullMethod(method)}
			handler := func(ctx context.Context, req any) (any, error) {
				return call(srv.(GuildServiceServer), ctx, req.(*Req))
			}
			return interceptor(ctx, in, info, handler)
		},
	}
}

// GuildServiceClient calls the guild service over an existing connection.
type GuildServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewGuildServiceClient(cc grpc.ClientConnInterface) *GuildServiceClient {
	return &GuildServiceClient{cc: cc}
}

func (c *GuildServiceClient) invoke(ctx context.Context, method string, in any, opts []grpc.CallOption) (*Response, error) {
	out := new(Response)
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(jsoncodec.Name)}, opts...)
	if err := c.cc.Invoke(ctx, fullMethod(method), in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *GuildServiceClient) CreateGuild(ctx context.Context, in *CreateGuildRequest, opts ...grpc.CallOption) (*Response, error) {
	return c.invoke(ctx, "CreateGuild", in, opts)
}

func (c *GuildServiceClient) RequestToJoin(ctx context.Context, in *RequestToJoinRequest, opts ...grpc.CallOption) (*Response, error) {
	return c.invoke(ctx, "RequestToJoin", in, opts)
}

func (c *GuildServiceClient) ListJoinRequests(ctx context.Context, in *PlayerRequest, opts ...grpc.CallOption) (*Response, error) {
	return c.invoke(ctx, "ListJoinRequests", in, opts)
}

func (c *GuildServiceClient) ApproveJoinRequest(ctx context.Context, in *ReviewRequest, opts ...grpc.CallOption) (*Response, error) {
	return c.invoke(ctx, "ApproveJoinRequest", in, opts)
}

func (c *GuildServiceClient) DeclineJoinRequest(ctx context.Context, in *ReviewRequest, opts ...grpc.CallOption) (*Response, error) {
	return c.invoke(ctx, "DeclineJoinRequest", in, opts)
}

func (c *GuildServiceClient) ChangeGuildRole(ctx context.Context, in *ChangeRoleRequest, opts ...grpc.CallOption) (*Response, error) {
	return c.invoke(ctx, "ChangeGuildRole", in, opts)
}

func (c *GuildServiceClient) BanGuildMember(ctx context.Context, in *BanRequest, opts ...grpc.CallOption) (*Response, error) {
	return c.invoke(ctx, "BanGuildMember", in, opts)
}

func (c *GuildServiceClient) LeaveGuild(ctx context.Context, in *PlayerRequest, opts ...grpc.CallOption) (*Response, error) {
	return c.invoke(ctx, "LeaveGuild", in, opts)
}

func (c *GuildServiceClient) RecordAttendance(ctx context.Context, in *PlayerRequest, opts ...grpc.CallOption) (*Response, error) {
	return c.invoke(ctx, "RecordAttendance", in, opts)
}

func (c *GuildServiceClient) UpdateGuildNotice(ctx context.Context, in *UpdateNoticeRequest, opts ...grpc.CallOption) (*Response, error) {
	return c.invoke(ctx, "UpdateGuildNotice", in, opts)
}

func (c *GuildServiceClient) SearchGuilds(ctx context.Context, in *SearchRequest, opts ...grpc.CallOption) (*Response, error) {
	return c.invoke(ctx, "SearchGuilds", in, opts)
}

func (c *GuildServiceClient) GetGuild(ctx context.Context, in *PlayerRequest, opts ...grpc.CallOption) (*Response, error) {
	return c.invoke(ctx, "GetGuild", in, opts)
}
