/*
Package operation implements the batch rewrite over a directory tree.

	+-------------+
	|  Traverse   |
	|   (Walk)    |
	+------+------+
	       |
	+------+------+
	|  Transform  |
	| (Pipeline)  |
	+------+------+
	       |
	+------+------+
	|   Status    |
	|  (Storage)  |
	+-------------+

Traverse lists every file under the root that ends with the configured
extension and is not excluded, then hands each one to TransformFile in
lexical order. A file is read, run through the text pipeline and written back
only when the result differs from what was read.

Failures are per file: a FileProcessingError is recorded, printed and the
batch moves on. The only errors Traverse returns are a missing or non-directory
root and a cancelled context, which is checked between files and never
mid-write.

	rw, err := operation.NewRewriter(operation.Options{Config: cfg, Console: console})
	report, err := rw.Traverse(ctx)
	fmt.Println(report.ModifiedCount())
*/
package operation
