// Package led runs the threshold alarm: it latches the alarm when a reading
// exceeds the configured threshold and republishes the alarm flag on a fixed
// cadence.
//
// Scheduler owns the single publish loop. Every configuration cancels the
// running generation of the loop and starts a new one, first tick
// immediately. Ticks of all generations run one at a time, and a tick that
// belongs to a replaced generation never publishes. Handler receives readings
// and connectivity events from the transport.
package led
