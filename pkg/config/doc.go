// Package config loads typed configuration from environment variables using
// github.com/caarlos0/env struct tags, after reading an optional .env file
// with github.com/joho/godotenv.
//
// Fields of type environment.Environment accept the usual aliases
// ("prod", "stage", "dev").
package config
