// Locates the build's input files on disk.
//
// Autodetection anchors on the package descriptor: the lexicographically
// latest "*.spec" file in the working directory names the build, and its
// stem selects the source archive among the files sharing the directory.
// "Latest by reverse sort" is a proxy for version recency inherited from
// the packaging convention; it mis-orders names that do not sort like
// their versions (e.g. v9 vs v10).
//
// The module manifest search is a plain tree walk, first match wins.
// Not-found conditions are reported via errdefs.ErrNotFound so callers
// can distinguish them from I/O failures.
package locate
