package smtbridge

import (
	"fmt"

	"github.com/jhump/protoreflect/desc"
	"github.com/jhump/protoreflect/desc/protoparse"
)

// schemaSource is the wire contract between a Bridge and whatever SMT
// process sits behind the gRPC connection: three calls (assert, check
// satisfiability, read back a value for a handle) batched per session.
// It is compiled once, at package init, the same way the teacher's
// grpcLoadProto loads a schema at call time — except this schema never
// changes, so there is no registry to guard with a mutex, just a single
// parsed result shared read-only by every Bridge.
const schemaSource = `
syntax = "proto3";
package foltl.smt;

service Solver {
  rpc Assert(AssertRequest) returns (AssertResponse);
  rpc CheckSat(CheckSatRequest) returns (CheckSatResponse);
  rpc GetValue(GetValueRequest) returns (GetValueResponse);
}

message AssertRequest {
  string session_id = 1;
  string request_id = 2;
  string formula = 3;
}

message AssertResponse {
  bool ok = 1;
  string error = 2;
}

message CheckSatRequest {
  string session_id = 1;
  string request_id = 2;
}

message CheckSatResponse {
  string result = 1;
  string error = 2;
}

message GetValueRequest {
  string session_id = 1;
  string request_id = 2;
  repeated string handles = 3;
}

message GetValueResponse {
  map<string, string> values = 1;
  string error = 2;
}
`

const schemaFile = "foltl_smt.proto"

var (
	solverService    *desc.ServiceDescriptor
	assertRequestMsg *desc.MessageDescriptor
	assertReplyMsg   *desc.MessageDescriptor
	checkSatReqMsg   *desc.MessageDescriptor
	checkSatReplyMsg *desc.MessageDescriptor
	getValueReqMsg   *desc.MessageDescriptor
	getValueReplyMsg *desc.MessageDescriptor
)

func init() {
	parser := protoparse.Parser{
		Accessor: protoparse.FileContentsFromMap(map[string]string{schemaFile: schemaSource}),
	}
	fds, err := parser.ParseFiles(schemaFile)
	if err != nil {
		panic(fmt.Sprintf("smtbridge: failed to parse embedded schema: %v", err))
	}
	fd := fds[0]

	solverService = fd.FindService("foltl.smt.Solver")
	if solverService == nil {
		panic("smtbridge: embedded schema is missing service foltl.smt.Solver")
	}
	assertRequestMsg = fd.FindMessage("foltl.smt.AssertRequest")
	assertReplyMsg = fd.FindMessage("foltl.smt.AssertResponse")
	checkSatReqMsg = fd.FindMessage("foltl.smt.CheckSatRequest")
	checkSatReplyMsg = fd.FindMessage("foltl.smt.CheckSatResponse")
	getValueReqMsg = fd.FindMessage("foltl.smt.GetValueRequest")
	getValueReplyMsg = fd.FindMessage("foltl.smt.GetValueResponse")
}

func methodPath(name string) string {
	return "/foltl.smt.Solver/" + name
}
