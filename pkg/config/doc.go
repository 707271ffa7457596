// Package config loads typed configuration structs from environment
// variables, with one-time .env file support for local development.
//
// It wraps caarlos0/env and godotenv behind a generic Load/MustLoad pair;
// parse failures are reported joined with ErrParsingConfig so callers can
// test for the category with errors.Is.
package config
