// Package infra contains technical adapters such as the GLPK solving
// engine, the sqlite assignment log, metrics exporters and the MQTT
// notifier. These packages should depend only on the interfaces defined
// in the core packages.
package infra
