// Package alarm contains core domain types for the threshold alarm.
//
// It defines State (the latched alarm flag and the threshold it is compared
// against), the inbound and outbound message shapes, the component properties
// and the collaborator interfaces the transport layer implements.
package alarm
