// Package theme switches the active color scheme of an Alacritty YAML config.
//
// An Alacritty config declares its schemes under a top-level color_schemes
// mapping and selects one with a YAML alias on its own line:
//
//	color_schemes:
//	  gruvbox_dark: &gruvbox_dark
//	    primary:
//	      background: '0x282828'
//	  gruvbox_light: &gruvbox_light
//	    ...
//	colors: *gruvbox_dark
//
// A [Session] holds the raw file text, the catalog of scheme names parsed
// from it, and the compiled pattern for the colors line. Changing the theme
// splices that one line; the rest of the file is never reformatted, so
// comments and layout survive. Nothing reaches disk until [Session.Save].
//
// Every failure is returned as an error that matches one of the package
// sentinels with errors.Is. The package never prints or exits.
package theme
