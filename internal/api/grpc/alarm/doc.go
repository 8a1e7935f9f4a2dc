// Package alarm implements the gRPC status API of the alarm LED service.
//
// The API has a single read-only method, alarmled.v1.StatusService/GetStatus,
// which takes google.protobuf.Empty and returns the current alarm and publish
// loop state as a google.protobuf.Struct. The service descriptor is declared
// by hand, so no generated code is involved. A client for the same method is
// provided for the status subcommand.
package alarm
