// Package mqtt connects the alarm to an MQTT broker.
//
// Client implements both the subscriber and the publisher collaborators of
// the alarm domain: readings arriving on the data topic are decoded and fanned
// out to subscriber listeners, status reports are encoded and published to the
// status topic, and broker connectivity changes are reported to connection
// listeners.
package mqtt
