package grpc

import (
	"fmt"

	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/reflect/protodesc"
	"google.golang.org/protobuf/reflect/protoreflect"
	"google.golang.org/protobuf/reflect/protoregistry"
	"google.golang.org/protobuf/types/descriptorpb"
	"google.golang.org/protobuf/types/known/structpb"
)

// ServiceFile is the proto file path the service descriptor is registered under.
const ServiceFile = "moviereview/v1/review_service.proto"

const structType = ".google.protobuf.Struct"

// reviewServiceFile describes ReviewService as if compiled from ServiceFile, so
// server reflection can resolve it. Every method takes and returns a Struct.
var reviewServiceFile protoreflect.FileDescriptor

func init() {
	fd, err := buildServiceFile()
	if err != nil {
		panic(fmt.Sprintf("grpc: build %s: %v", ServiceFile, err))
	}
	if err := protoregistry.GlobalFiles.RegisterFile(fd); err != nil {
		panic(fmt.Sprintf("grpc: register %s: %v", ServiceFile, err))
	}
	reviewServiceFile = fd
}

func buildServiceFile() (protoreflect.FileDescriptor, error) {
	methods := make([]*descriptorpb.MethodDescriptorProto, 0, len(ReviewServiceDesc.Methods))
	for _, m := range ReviewServiceDesc.Methods {
		methods = append(methods, &descriptorpb.MethodDescriptorProto{
			Name:       proto.String(m.MethodName),
			InputType:  proto.String(structType),
			OutputType: proto.String(structType),
		})
	}

	file := &descriptorpb.FileDescriptorProto{
		Name:       proto.String(ServiceFile),
		Package:    proto.String("moviereview.v1"),
		Dependency: []string{structpb.File_google_protobuf_struct_proto.Path()},
		Syntax:     proto.String("proto3"),
		Service: []*descriptorpb.ServiceDescriptorProto{{
			Name:   proto.String("ReviewService"),
			Method: methods,
		}},
		Options: &descriptorpb.FileOptions{
			GoPackage: proto.String("github.com/Belphemur/ReelRate/internal/grpc"),
		},
	}
	return protodesc.NewFile(file, protoregistry.GlobalFiles)
}
