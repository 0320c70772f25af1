// Package config loads runtime configuration for the QuestKeeper CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected via -c or -config.
//  3. Environment variables prefixed with QUESTKEEPER_.
//  4. Command-line flags, which override everything else.
//
// Supported flags
//
//	-d string   data directory
//	-b string   storage backend: sqlite | bolt
//	-l string   log level: debug | info | warn | error
//	-s string   credential scheme for new hashes: fingerprint | argon2id
//
// # JSON schema
//
//	{
//	  "data_dir": "./questkeeper-data",
//	  "backend": "sqlite",
//	  "document_key": "qtrpg_v1",
//	  "log_level": "warn",
//	  "credential_scheme": "fingerprint",
//	  "bolt_open_timeout": "1s"
//	}
package config
