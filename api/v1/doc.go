// Package v1 is the gRPC API of hpcd, service hpc.v1.ClusterService, generated
// from cluster.proto.
package v1

//go:generate protoc -I ../.. --go_out=../.. --go_opt=paths=source_relative --go-grpc_out=../.. --go-grpc_opt=paths=source_relative api/v1/cluster.proto
