// Package config defines the settings of the alarm-led service and provides
// helpers to load, validate and save them in YAML format.
//
// Component properties (threshold.value, publish.rate) are kept as a raw map
// and interpreted by the alarm domain on activation and on every update.
package config
