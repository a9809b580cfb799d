// Package gif decodes GIF images into pixel grids.
package gif
