// Package config loads and validates the configuration tree consumed by
// every sporegraph manager: pendulum parameters, cost selection, tree
// factors, merge thresholds, optimizer bounds, spawn region, and the
// color/theme keys forwarded untouched to the external visual layer.
//
// Loading is layered (defaults < file < environment) via
// github.com/spf13/viper.
package config
