// Package config provides the runtime settings for huectl.
//
// huectl keeps no configuration files. Settings are resolved from three
// layers, with later layers overriding earlier ones:
//
//  1. Defaults (Defaults)
//  2. Environment variables (ApplyEnv)
//  3. Command-line flags, applied by the cmd package
//
// # Environment Variables
//
//   - HUECTL_OUTPUT: output format, one of text, json, yaml
//   - HUECTL_OVERFLOW: channel narrowing policy, clamp or wrap
//   - HUECTL_COLOR: colour mode, auto, always or never
//   - HUECTL_THEME: dark or light; selects the palette for table chrome
//
// NO_COLOR is honoured separately by the color package.
package config
