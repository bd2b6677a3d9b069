/*
Package scan provides the lexical scanning primitives for the small token
grammars of Markdown block and inline syntax: reference definitions,
list-item markers, ATX headings, bracketed spans and inline link targets.

Scanning is line-local. A Cursor never crosses a newline; the classifier
and the inline parser hand it exactly one line (or a slice of one).

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2023 Norbert Pillmayer <norbert@pillmayer.com>

*/
package scan
