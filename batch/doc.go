// Package batch reads infix expressions from text files, one per line.
//
// Blank lines are skipped, as are lines starting with the comment prefix
// ("#" by default). A trailing carriage return is trimmed.
//
//	r, err := batch.NewReader("exprs.txt")
//	defer r.Close()
//	exprs, err := r.ReadAll()
//
// Tail follows a file and delivers expressions appended after the call,
// using fsnotify with a polling fallback. A file renamed over the path, as
// editors do on save, is picked up and read from its first line:
//
//	for expr := range r.Tail(ctx) {
//	    fmt.Println(notation.Convert(expr).Output)
//	}
package batch
