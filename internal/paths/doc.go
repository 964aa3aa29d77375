// Package paths resolves the user-level directories atheme reads from.
//
// It wraps github.com/adrg/xdg for XDG Base Directory lookups and
// os.UserHomeDir for the home directory. On Linux the config home is
// $XDG_CONFIG_HOME or ~/.config; on macOS it is ~/Library/Application Support.
//
// [ResolveHome] is the only function that reports failure: callers that need
// the home directory must handle [ErrHomeDirNotFound] rather than silently
// falling back to a relative path.
package paths
