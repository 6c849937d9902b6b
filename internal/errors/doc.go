// Package errors provides structured error messages for Aurochs.
//
// Each error carries a code (e.g. "E201") that maps to a category, a short
// message and a longer explanation. Errors raised while reading a tree
// document also carry the file position and the surrounding lines, so the
// CLI can point at the offending node:
//
//	err := errors.New(errors.CodeTreeNode).
//	    WithDetail(`node has both "text" and "children"`).
//	    WithLocation("pages/index.yaml", 12, 7)
//
//	fmt.Println(err.Format())
//	// ERROR E201: Malformed tree node
//	//
//	//   pages/index.yaml:12:7
//	//
//	//     11 │   - tag: p
//	//   → 12 │     text: Hello
//	//        │     ^
//	//     13 │     children: []
//
// Errors compare equal under errors.Is when their codes match.
package errors
