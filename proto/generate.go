// Package proto holds the lottery gRPC service definition and its generated
// bindings.
package proto

//go:generate protoc --go_out=. --go_opt=paths=source_relative --go-grpc_out=. --go-grpc_opt=paths=source_relative lottery.proto
