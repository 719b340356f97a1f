package config

// Base application details
const AppName = "timeline"
const Version = "0.1.0"
const DefaultConfigFileName = "config.toml" // Main config file
const DefaultLogFileName = "timeline.log"

// Timeline defaults
const DefaultUnit = "rune"
const DefaultChain = "blank"
const DefaultMaxRecords = 0 // Unlimited
const DefaultStrict = false

// Clipboard defaults
const SystemClipboard = false
