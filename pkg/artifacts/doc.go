// Package artifacts computes where colorscheme artifacts live.
//
// A colorscheme artifact is a cache file written by the color backend plus
// a sample image. Both paths are a pure function of the wallpaper name, the
// backend name and the managed directory; nothing here creates them.
package artifacts
