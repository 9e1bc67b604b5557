/*
Package operation implements the file patcher.

	+-------------+
	|  Discover   |
	|   (glob)    |
	+------+------+
	       |
	+------+------+
	|   Rewrite   |
	|   (rules)   |
	+------+------+
	       |
	+------+------+
	|    Write    |
	|  (status)   |
	+-------------+

🔄 Flow:
1. Discover matches the configured glob under the search root
2. Each file is read, passed through the text rewriter, and written back only
   when the content changed
3. Every file gets a progress line, and the run ends with a summary

⚡ Files are handled strictly one at a time. The first read or write error
stops the run; files already written stay written.

🔍 Example:

	op, err := operation.NewPatchOperation(operation.Options{
		Config:    cfg,
		StatusMgr: status.New(cfg.Root),
		Rewriter:  text.NewRewriter(cfg.RewriteOptions()),
		Logger:    logger,
	})
	err = operation.NewRunner(logger.Zerolog()).Run(ctx, op)
*/
package operation
