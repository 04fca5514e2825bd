// Package config loads and validates application configuration from
// environment variables and an optional config file. It exposes
// type-safe settings structs to the rest of the application while
// keeping configuration sources out of business logic.
package config
