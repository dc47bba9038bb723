package grpc

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
)

// ServiceName is the fully qualified gRPC service name.
const ServiceName = "moviereview.v1.ReviewService"

// Messages are google.protobuf.Struct documents whose fields mirror the JSON
// schema of the TMDB resources, so any gRPC client can call the service
// without generated stubs.
type unaryMethod func(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error)

// ReviewServiceServer is the server API for ReviewService.
type ReviewServiceServer interface {
	GetTopRatedMovies(context.Context, *structpb.Struct) (*structpb.Struct, error)
	GetTopRatedTvShows(context.Context, *structpb.Struct) (*structpb.Struct, error)
	GetMovieDetails(context.Context, *structpb.Struct) (*structpb.Struct, error)
	GetTvShowDetails(context.Context, *structpb.Struct) (*structpb.Struct, error)
	GetRatedMovies(context.Context, *structpb.Struct) (*structpb.Struct, error)
	GetRatedTvShows(context.Context, *structpb.Struct) (*structpb.Struct, error)
	RateMovie(context.Context, *structpb.Struct) (*structpb.Struct, error)
	RateTvShow(context.Context, *structpb.Struct) (*structpb.Struct, error)
	CreateGuestSession(context.Context, *structpb.Struct) (*structpb.Struct, error)
	Login(context.Context, *structpb.Struct) (*structpb.Struct, error)
	Logout(context.Context, *structpb.Struct) (*structpb.Struct, error)
	GetCurrentSession(context.Context, *structpb.Struct) (*structpb.Struct, error)
}

// FullMethod returns the "/service/method" path used on the wire.
func FullMethod(method string) string {
	return "/" + ServiceName + "/" + method
}

func unaryHandler(method string, pick func(ReviewServiceServer) unaryMethod) grpc.MethodDesc {
	return grpc.MethodDesc{
		MethodName: method,
		Handler: func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
			in := new(structpb.Struct)
			if err := dec(in); err != nil {
				return nil, err
			}
			call := pick(srv.(ReviewServiceServer))
			if interceptor == nil {
				return call(ctx, in)
			}
			info := &grpc.UnaryServerInfo{Server: srv, FullMethod: FullMethod(method)}
			handler := func(ctx context.Context, req any) (any, error) {
				return call(ctx, req.(*structpb.Struct))
			}
			return interceptor(ctx, in, info, handler)
		},
	}
}

// ReviewServiceDesc describes ReviewService for grpc.Server.RegisterService.
var ReviewServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*ReviewServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		unaryHandler("GetTopRatedMovies", func(s ReviewServiceServer) unaryMethod { return s.GetTopRatedMovies }),
		unaryHandler("GetTopRatedTvShows", func(s ReviewServiceServer) unaryMethod { return s.GetTopRatedTvShows }),
		unaryHandler("GetMovieDetails", func(s ReviewServiceServer) unaryMethod { return s.GetMovieDetails }),
		unaryHandler("GetTvShowDetails", func(s ReviewServiceServer) unaryMethod { return s.GetTvShowDetails }),
		unaryHandler("GetRatedMovies", func(s ReviewServiceServer) unaryMethod { return s.GetRatedMovies }),
		unaryHandler("GetRatedTvShows", func(s ReviewServiceServer) unaryMethod { return s.GetRatedTvShows }),
		unaryHandler("RateMovie", func(s ReviewServiceServer) unaryMethod { return s.RateMovie }),
		unaryHandler("RateTvShow", func(s ReviewServiceServer) unaryMethod { return s.RateTvShow }),
		unaryHandler("CreateGuestSession", func(s ReviewServiceServer) unaryMethod { return s.CreateGuestSession }),
		unaryHandler("Login", func(s ReviewServiceServer) unaryMethod { return s.Login }),
		unaryHandler("Logout", func(s ReviewServiceServer) unaryMethod { return s.Logout }),
		unaryHandler("GetCurrentSession", func(s ReviewServiceServer) unaryMethod { return s.GetCurrentSession }),
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: ServiceFile,
}

// RegisterReviewServiceServer registers srv on s.
func RegisterReviewServiceServer(s grpc.ServiceRegistrar, srv ReviewServiceServer) {
	s.RegisterService(&ReviewServiceDesc, srv)
}
