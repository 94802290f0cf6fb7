// Package theme resolves mdblog themes and writes them back to disk.
//
// A theme is a fixed set of static assets (icons, stylesheets, scripts) and
// page templates. It is read from <root>/_themes/<name>/ when that directory
// exists, otherwise the built-in "simple" theme compiled into the binary is
// used. A resolved theme can be materialized as an editable source tree under
// _themes/ or as flattened static output under _builds/.
package theme
