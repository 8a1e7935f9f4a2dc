// Package payload encodes and decodes the JSON documents exchanged over MQTT.
//
// A document is an object with an optional "timestamp" and a "metrics" object:
//
//	{"timestamp": "2024-05-01T10:00:00Z", "metrics": {"value": 35.2}}
//
// Encoding goes through protobuf well-known types (structpb, timestamppb) and
// protojson, so numbers always decode as float64.
package payload
