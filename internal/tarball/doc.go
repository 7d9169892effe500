// Extracts source archives and packages vendor trees.
//
// Extraction validates the archive's filename extension against the
// configured codec, then applies the decompressed tar stream to the target
// directory. Packaging walks a vendor directory and writes it to a fresh
// compressed archive with its internal root rewritten to the canonical
// "vendor" name, so downstream consumers always see "vendor/..." paths
// regardless of where the tree was produced.
package tarball
