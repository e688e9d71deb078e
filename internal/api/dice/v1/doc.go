// Package dicev1 holds the generated dice.v1 protobuf messages and the
// DiceService gRPC bindings.
package dicev1

//go:generate protoc -I ../../../../api/proto --go_out=. --go_opt=paths=source_relative --go-grpc_out=. --go-grpc_opt=paths=source_relative dice/v1/dice.proto
