// Package paths provides centralized path handling for wpg.
//
// # Environment Variables
//
//   - WPG_DIR: managed app directory (default: $XDG_CONFIG_HOME/wpg)
//   - WPG_WALLPAPERS_DIR: wallpapers directory (default: $WPG_DIR/wallpapers)
//
// # Layout
//
//	$WPG_DIR/
//	  .current        symlink to the active wallpaper
//	  wp_init.sh      restore script
//	  wpg.toml        user settings
//	  wallpapers/     flat collection of images
//	  templates/      <name>.base files and <name> symlinks
//	  samples/        <wallpaper>_<backend>_sample.png
//	  schemes/        backend colorscheme cache
//
// # Usage
//
//	p, err := paths.New("") // resolve from environment
//	if err != nil {
//	    log.Fatal(err)
//	}
//	p.TemplatesDir() // /home/user/.config/wpg/templates
package paths
