// Package config provides editor settings for nanox.
//
// Settings are resolved in layers, higher layers overriding lower:
//
//	┌─────────────────────────────┐
//	│  4. Command Line Flags      │  ← Highest priority (applied by cmd/nanox)
//	├─────────────────────────────┤
//	│  3. Environment Variables   │  ← NANOX_*
//	├─────────────────────────────┤
//	│  2. User Settings           │  ← ~/.config/nanox/config.toml
//	├─────────────────────────────┤
//	│  1. Built-in Defaults       │  ← Lowest priority
//	└─────────────────────────────┘
//
// Highlight rule files and colorscheme files are not settings; they are
// located through the same Paths but parsed by the highlight and
// colorscheme packages.
//
// # Sub-packages
//
//   - loader: TOML, environment and INI loading
//   - watcher: change notification for live reload
package config
