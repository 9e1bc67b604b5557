/*
Package status owns the file system side of a patch run.

🎯 Purpose:
- Reads and atomically rewrites files under the search root
- Tracks the outcome of every file (fixed, unchanged, would-fix)
- Renders line diffs for dry runs

📝 Writes go through a temp file in the target's directory followed by a
rename, so a failed write never leaves a half written source file. There is
still no backup: once renamed, the original content is gone.
*/
package status
