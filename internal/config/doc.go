// Package config loads settings for the clitree command from an optional config file and
// CLITREE_* environment variables.
package config
