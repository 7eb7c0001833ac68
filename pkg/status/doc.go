/*
Package status owns file I/O and per-file outcome tracking for textscrub.

	            +-------------+
	            |   Status    |
	            |  (Storage)  |
	            +------+------+
	                   |
	      +-----------+-----------+
	      |                       |
	+-----+-----+           +----+----+
	|   Files   |           | Tracking|
	| (Storage) |           | (Debug) |
	+-----------+           +---------+

Writes go through WriteFileAtomic: the new content lands in a temp file next
to the target and is renamed over it, so a failed write leaves the original
untouched. The file mode of the original is carried over. If the directory
refuses new files, an existing file is rewritten in place instead.

Every processed file is recorded with its outcome, checksum and a rune-level
diff summary; the records are emitted at debug level and are available via
ListFiles once a batch completes.
*/
package status
