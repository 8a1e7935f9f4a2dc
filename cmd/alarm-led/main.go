// Command alarm-led latches an alarm when a sensor reading exceeds a threshold
// and republishes the alarm status over MQTT.
package main

import "github.com/oshokin/alarm-led/cmd/alarm-led/cmd"

func main() {
	cmd.Execute()
}
