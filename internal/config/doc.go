// Package config manages atheme's own settings.
//
// Settings live in ~/.config/atheme/config.yaml (XDG config home) and may be
// overridden per variable with the ATHEME_ prefix:
//
//	version: 1
//	config_file: ~/dotfiles/alacritty.yml   # optional
//
// config_file, when set, takes the place of Alacritty config discovery. The
// --config-file flag still wins over it.
//
// Call [Init] once at startup, then [Load]. [Set] and [Save] back the
// "atheme config set" command.
package config
